package itemset

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/fpm/lattice"
	"github.com/timtadh/fpm/stores/postings"
)

// Joiner generates Apriori candidates. Level 1 is every item; level 2 every
// pair of frequent items; above that frequent (k-1)-itemsets sharing their
// first k-2 items are joined and a candidate survives only if all of its
// (k-1)-subsets were frequent.
type Joiner struct {
	sets       *ItemSets
	singletons int
}

func NewJoiner(sets *ItemSets) *Joiner {
	return &Joiner{
		sets:       sets,
		singletons: -1,
	}
}

func (j *Joiner) Candidates(level int, frequent []*lattice.Node) ([]lattice.Pattern, error) {
	if level < 1 {
		return nil, errors.Errorf("bad level %d", level)
	} else if level == 1 {
		return j.items()
	} else if len(frequent) == 0 {
		return nil, nil
	}
	if level == 2 {
		j.singletons = len(frequent)
	}
	if j.singletons >= 0 && level > j.singletons {
		return nil, nil
	}
	prev := make([]Items, 0, len(frequent))
	seen := hashtable.NewLinearHash()
	for _, n := range frequent {
		items, ok := n.Pat.(Items)
		if !ok || len(items) != level-1 {
			return nil, errors.Errorf("level %d got a non (k-1)-itemset %v", level, n.Pat)
		}
		prev = append(prev, items)
		if err := seen.Put(types.ByteSlice(items.Label()), nil); err != nil {
			return nil, err
		}
	}
	sortItems(prev)
	candidates := make([]lattice.Pattern, 0, len(prev))
	pruned := 0
	for a := range prev {
		for b := a + 1; b < len(prev) && prev[a].sharesPrefix(prev[b]); b++ {
			c := prev[a].join(prev[b])
			if allFrequent(c, seen) {
				candidates = append(candidates, c)
			} else {
				pruned++
			}
		}
	}
	errors.Logf("DEBUG", "level %d: joined %d candidates, pruned %d", level, len(candidates)+pruned, pruned)
	return candidates, nil
}

func (j *Joiner) items() ([]lattice.Pattern, error) {
	items := make([]lattice.Pattern, 0, j.sets.labels.Size())
	err := postings.DoKeys(j.sets.InvertedIndex.Keys, func(item int32) error {
		items = append(items, Items{item})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func allFrequent(c Items, seen *hashtable.LinearHash) bool {
	for _, parent := range c.Parents() {
		if !seen.Has(types.ByteSlice(parent.Label())) {
			return false
		}
	}
	return true
}

func sortItems(items []Items) {
	sort.Slice(items, func(a, b int) bool {
		return lattice.Compare(items[a], items[b]) < 0
	})
}
