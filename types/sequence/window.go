package sequence

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// Windows enumerates candidates straight from the corpus: every distinct
// length-k window of every sequence. Contiguity makes a join step
// unnecessary, so the previous level is only used to decide whether to go
// on.
type Windows struct {
	seqs *Sequences
}

func (w *Windows) Candidates(level int, frequent []*lattice.Node) ([]lattice.Pattern, error) {
	if level < 1 {
		return nil, errors.Errorf("bad level %d", level)
	} else if level > 1 && len(frequent) == 0 {
		return nil, nil
	}
	pooled := hashtable.NewLinearHash()
	candidates := make([]lattice.Pattern, 0, 128)
	windows := 0
	for _, seq := range w.seqs.Seqs {
		if len(seq) < level {
			continue
		}
		seen := hashtable.NewLinearHash()
		for i := 0; i+level <= len(seq); i++ {
			p := Phrase(seq[i : i+level])
			label := types.ByteSlice(p.Label())
			if seen.Has(label) {
				continue
			}
			if err := seen.Put(label, nil); err != nil {
				return nil, err
			}
			windows++
			if pooled.Has(label) {
				continue
			}
			if err := pooled.Put(label, nil); err != nil {
				return nil, err
			}
			candidates = append(candidates, append(Phrase(nil), p...))
		}
	}
	lattice.SortPatterns(candidates)
	errors.Logf("DEBUG", "level %d: %d windows, %d distinct", level, windows, len(candidates))
	return candidates, nil
}
