package sequence

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// Phrase is a contiguous run of token ids in sequence order.
type Phrase []int32

func (p Phrase) Equals(o types.Equatable) bool {
	b, ok := o.(Phrase)
	return ok && lattice.Compare(p, b) == 0
}

func (p Phrase) Less(o types.Sortable) bool {
	b, ok := o.(Phrase)
	return ok && lattice.Compare(p, b) < 0
}

func (p Phrase) Hash() int {
	return types.ByteSlice(p.Label()).Hash()
}

func (p Phrase) Label() []byte {
	return lattice.Label(p)
}

func (p Phrase) Level() int {
	return len(p)
}

func (p Phrase) Items() []int32 {
	return p
}

func (p Phrase) String() string {
	return fmt.Sprintf("%v", []int32(p))
}

// In reports whether the phrase occurs as an unbroken run in seq.
func (p Phrase) In(seq []int32) bool {
	if len(p) == 0 {
		return true
	}
outer:
	for i := 0; i+len(p) <= len(seq); i++ {
		for j, token := range p {
			if seq[i+j] != token {
				continue outer
			}
		}
		return true
	}
	return false
}
