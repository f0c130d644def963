package reporters

import (
	"fmt"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// HeapProfile writes a heap profile to `<prefix>.<level>` after every
// level.
type HeapProfile struct {
	prefix string
}

func NewHeapProfile(prefix string) *HeapProfile {
	return &HeapProfile{prefix: prefix}
}

func (hp *HeapProfile) Report(n *lattice.Node) error {
	return nil
}

func (hp *HeapProfile) EndLevel(level, count int) error {
	path := fmt.Sprintf("%s.%d", hp.prefix, level)
	f, err := os.Create(path)
	if err != nil {
		return &lattice.IOError{Op: "create", Path: path, Err: err}
	}
	werr := pprof.WriteHeapProfile(f)
	cerr := f.Close()
	if werr != nil {
		return &lattice.IOError{Op: "write", Path: path, Err: werr}
	}
	if cerr != nil {
		return &lattice.IOError{Op: "close", Path: path, Err: cerr}
	}
	return nil
}

func (hp *HeapProfile) Close() error {
	return nil
}
