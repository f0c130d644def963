package reporters

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// Count tallies frequent patterns per level and writes the tallies when
// closed: one `<level> <count>` line per level then `total <count>`.
type Count struct {
	filename string
	levels   []int
	count    int
}

func NewCount(filename string) *Count {
	return &Count{filename: filename}
}

func (r *Count) Report(n *lattice.Node) error {
	r.count++
	return nil
}

func (r *Count) EndLevel(level, count int) error {
	for len(r.levels) < level {
		r.levels = append(r.levels, 0)
	}
	r.levels[level-1] = count
	return nil
}

func (r *Count) Close() error {
	f, err := os.Create(r.filename)
	if err != nil {
		return &lattice.IOError{Op: "create", Path: r.filename, Err: err}
	}
	var perr error
	for i, c := range r.levels {
		if _, err := fmt.Fprintf(f, "%d %d\n", i+1, c); err != nil && perr == nil {
			perr = err
		}
	}
	if _, err := fmt.Fprintf(f, "total %d\n", r.count); err != nil && perr == nil {
		perr = err
	}
	err = f.Close()
	if perr != nil {
		return &lattice.IOError{Op: "write", Path: r.filename, Err: perr}
	}
	if err != nil {
		return &lattice.IOError{Op: "close", Path: r.filename, Err: err}
	}
	return nil
}
