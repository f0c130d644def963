package sequence

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fpm/lattice"
	"github.com/timtadh/fpm/stores/postings"
	"github.com/timtadh/fpm/types/labels"
)

const Separator = " "

// Sequences is the corpus for contiguous pattern mining. Token order and
// repetition within a sequence are kept as read.
type Sequences struct {
	Seqs          [][]int32
	InvertedIndex *postings.Index
	labels        *labels.Labels
	longest       int
}

func NewSequences() *Sequences {
	return &Sequences{
		Seqs:          make([][]int32, 0, 1024),
		InvertedIndex: postings.New(1024),
		labels:        labels.New(),
	}
}

func FromSlices(seqs [][]string) (*Sequences, error) {
	s := NewSequences()
	for line, fields := range seqs {
		if err := lattice.CheckFields(line+1, fields, Separator); err != nil {
			return nil, err
		}
		if err := s.add(fields); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Sequences) add(fields []string) error {
	tx := int32(len(s.Seqs))
	seq := make([]int32, 0, len(fields))
	for _, field := range fields {
		token := s.labels.Intern(field)
		if err := s.InvertedIndex.Add(token, tx); err != nil {
			return err
		}
		seq = append(seq, token)
	}
	if len(seq) > s.longest {
		s.longest = len(seq)
	}
	s.Seqs = append(s.Seqs, seq)
	return nil
}

func (s *Sequences) Transactions() int {
	return len(s.Seqs)
}

func (s *Sequences) Labels() *labels.Labels {
	return s.labels
}

func (s *Sequences) Generator() lattice.Generator {
	return &Windows{seqs: s}
}

func (s *Sequences) Counter() lattice.Counter {
	return &Counter{seqs: s}
}

// LargestLevel is the length of the longest sequence; no contiguous pattern
// can be longer.
func (s *Sequences) LargestLevel() int {
	return s.longest
}

func (s *Sequences) Close() error {
	s.Seqs = nil
	s.InvertedIndex = nil
	return nil
}

type Loader struct{}

func NewLoader() lattice.Loader {
	return &Loader{}
}

func (l *Loader) Load(input lattice.Input) (lattice.DataType, error) {
	seqs := NewSequences()
	err := lattice.ScanFields(input, Separator, func(line int, fields []string) error {
		return seqs.add(fields)
	})
	if err != nil {
		return nil, err
	}
	errors.Logf("INFO", "loaded %d sequences over %d tokens, longest %d, %d postings", seqs.Transactions(), seqs.labels.Size(), seqs.longest, seqs.InvertedIndex.Size())
	return seqs, nil
}
