package miners

import (
	"context"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// Note: the miner's Close function should close both the reporter and the
// datatype that were passed into it.
type Miner interface {
	Mine(context.Context, lattice.DataType, Reporter, lattice.Formatter) error
	Close() error
}

type Reporter interface {
	Report(*lattice.Node) error
	Close() error
}

// LevelReporter is told when every pattern of a level has been reported.
// Reporters that buffer output flush here.
type LevelReporter interface {
	Reporter
	EndLevel(level, count int) error
}
