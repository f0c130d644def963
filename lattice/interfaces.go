package lattice

import (
	"io"
)

import (
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/fpm/types/labels"
)

type Input func() (reader io.Reader, closer func(), err error)

type Loader interface {
	Load(input Input) (DataType, error)
}

// DataType is a loaded corpus. It is read-only once Load returns and may be
// shared by any number of counting goroutines.
type DataType interface {
	Transactions() int
	Labels() *labels.Labels
	Generator() Generator
	Counter() Counter
	LargestLevel() int
	Close() error
}

// Generator produces the candidates of a level from the frequent patterns
// of the level before it. The returned candidates are sorted and unique.
type Generator interface {
	Candidates(level int, frequent []*Node) ([]Pattern, error)
}

// Counter computes the ascending ids of the transactions supporting a
// candidate. It must be safe for concurrent use.
type Counter interface {
	Supported(Pattern) ([]int32, error)
}

type Pattern interface {
	types.Hashable
	Label() []byte
	Level() int
	Items() []int32
}

type Formatter interface {
	PatternName(*Node) string
	FormatPattern(io.Writer, *Node) error
}
