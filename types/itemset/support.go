package itemset

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// Counter counts an itemset by the subset rule: a transaction supports the
// candidate when it contains every item. Only the transactions holding the
// rarest item of the candidate are tested.
type Counter struct {
	sets *ItemSets
}

func (c *Counter) Supported(p lattice.Pattern) ([]int32, error) {
	items := p.Items()
	if len(items) == 0 {
		return nil, errors.Errorf("cannot count the empty itemset")
	}
	rarest, count := c.sets.InvertedIndex.Rarest(items)
	candidates := c.sets.InvertedIndex.Find(rarest)
	txs := make([]int32, 0, count)
	if len(items) == 1 {
		return append(txs, candidates...), nil
	}
	for _, tx := range candidates {
		if c.sets.Subset(tx, items) {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}
