package reporters

import (
	"bufio"
	"os"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// File writes one record per frequent pattern. Output is buffered and
// flushed at the end of every level.
type File struct {
	fmt  lattice.Formatter
	path string
	f    *os.File
	w    *bufio.Writer
}

func NewFile(fmt lattice.Formatter, path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &lattice.IOError{Op: "create", Path: path, Err: err}
	}
	r := &File{
		fmt:  fmt,
		path: path,
		f:    f,
		w:    bufio.NewWriter(f),
	}
	return r, nil
}

func (r *File) Report(n *lattice.Node) error {
	err := r.fmt.FormatPattern(r.w, n)
	if err != nil {
		return &lattice.IOError{Op: "write", Path: r.path, Err: err}
	}
	return nil
}

func (r *File) EndLevel(level, count int) error {
	if err := r.w.Flush(); err != nil {
		return &lattice.IOError{Op: "flush", Path: r.path, Err: err}
	}
	return nil
}

func (r *File) Close() error {
	if r.f == nil {
		return nil
	}
	f := r.f
	r.f = nil
	ferr := r.w.Flush()
	cerr := f.Close()
	if ferr != nil {
		return &lattice.IOError{Op: "flush", Path: r.path, Err: ferr}
	}
	if cerr != nil {
		return &lattice.IOError{Op: "close", Path: r.path, Err: cerr}
	}
	return nil
}
