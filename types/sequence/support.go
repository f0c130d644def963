package sequence

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// Counter counts a phrase by the number of sequences it occurs in
// contiguously; repeats inside one sequence count once.
type Counter struct {
	seqs *Sequences
}

func (c *Counter) Supported(p lattice.Pattern) ([]int32, error) {
	phrase, ok := p.(Phrase)
	if !ok {
		phrase = Phrase(p.Items())
	}
	if len(phrase) == 0 {
		return nil, errors.Errorf("cannot count the empty phrase")
	}
	rarest, count := c.seqs.InvertedIndex.Rarest(phrase)
	candidates := c.seqs.InvertedIndex.Find(rarest)
	txs := make([]int32, 0, count)
	for _, tx := range candidates {
		if phrase.In(c.seqs.Seqs[tx]) {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}
