package itemset

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/fpm/lattice"
	"github.com/timtadh/fpm/stores/postings"
	"github.com/timtadh/fpm/types/labels"
)

const Separator = ";"

// ItemSets is the transaction database for itemset mining. Each transaction
// is the set of item ids on one input line; repeated items collapse.
type ItemSets struct {
	Txs           []*set.SortedSet
	InvertedIndex *postings.Index
	labels        *labels.Labels
}

func NewItemSets() *ItemSets {
	return &ItemSets{
		Txs:           make([]*set.SortedSet, 0, 1024),
		InvertedIndex: postings.New(1024),
		labels:        labels.New(),
	}
}

// FromSlices builds a database from transactions already split into
// symbols.
func FromSlices(txs [][]string) (*ItemSets, error) {
	i := NewItemSets()
	for line, fields := range txs {
		if err := lattice.CheckFields(line+1, fields, Separator); err != nil {
			return nil, err
		}
		if err := i.add(fields); err != nil {
			return nil, err
		}
	}
	return i, nil
}

func (i *ItemSets) add(fields []string) error {
	tx := int32(len(i.Txs))
	items := set.NewSortedSet(len(fields))
	for _, field := range fields {
		item := i.labels.Intern(field)
		if err := items.Add(types.Int32(item)); err != nil {
			return err
		}
		if err := i.InvertedIndex.Add(item, tx); err != nil {
			return err
		}
	}
	i.Txs = append(i.Txs, items)
	return nil
}

func (i *ItemSets) Transactions() int {
	return len(i.Txs)
}

func (i *ItemSets) Labels() *labels.Labels {
	return i.labels
}

func (i *ItemSets) Generator() lattice.Generator {
	return NewJoiner(i)
}

func (i *ItemSets) Counter() lattice.Counter {
	return &Counter{sets: i}
}

// LargestLevel bounds the size of any itemset by the item alphabet.
func (i *ItemSets) LargestLevel() int {
	return i.labels.Size()
}

// Subset reports whether every item is in transaction tx.
func (i *ItemSets) Subset(tx int32, items []int32) bool {
	t := i.Txs[tx]
	for _, item := range items {
		if !t.Has(types.Int32(item)) {
			return false
		}
	}
	return true
}

func (i *ItemSets) Close() error {
	i.Txs = nil
	i.InvertedIndex = nil
	return nil
}

type Loader struct{}

func NewLoader() lattice.Loader {
	return &Loader{}
}

func (l *Loader) Load(input lattice.Input) (lattice.DataType, error) {
	sets := NewItemSets()
	err := lattice.ScanFields(input, Separator, func(line int, fields []string) error {
		return sets.add(fields)
	})
	if err != nil {
		return nil, err
	}
	errors.Logf("INFO", "loaded %d transactions over %d items, %d postings", sets.Transactions(), sets.labels.Size(), sets.InvertedIndex.Size())
	return sets, nil
}
