package sequence

import (
	"io"
	"strings"
	"testing"
)

import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/fpm/lattice"
)

var corpus = [][]string{
	{"x", "y", "z"},
	{"x", "y"},
	{"y", "z", "x"},
}

func stringInput(s string) lattice.Input {
	return func() (io.Reader, func(), error) {
		return strings.NewReader(s), func() {}, nil
	}
}

func phrase(t *testing.T, s *Sequences, tokens ...string) Phrase {
	p := make(Phrase, 0, len(tokens))
	for _, token := range tokens {
		id, has := s.Labels().Id(token)
		if !has {
			t.Fatalf("no token %q", token)
		}
		p = append(p, id)
	}
	return p
}

func count(t *testing.T, s *Sequences, tokens ...string) int {
	txs, err := s.Counter().Supported(phrase(t, s, tokens...))
	if err != nil {
		t.Fatal(err)
	}
	return len(txs)
}

func TestLoad(x *testing.T) {
	t := assert.New(x)
	dt, err := NewLoader().Load(stringInput("x y z\r\n  x y \ny z x y\n"))
	t.Nil(err)
	s := dt.(*Sequences)
	t.Equal(3, s.Transactions())
	t.Equal(3, s.Labels().Size())
	t.Equal(4, s.LargestLevel())
	t.Equal([]int32{1, 2, 0, 1}, s.Seqs[2])
	t.Equal([]int32{0, 1, 2}, s.InvertedIndex.Find(1))
}

func TestLoadParseErrors(x *testing.T) {
	t := assert.New(x)
	_, err := NewLoader().Load(stringInput("x y\n\nz\n"))
	t.NotNil(err)
	perr, ok := err.(*lattice.ParseError)
	t.True(ok)
	t.Equal(2, perr.Line)

	_, err = NewLoader().Load(stringInput("x  y\n"))
	t.IsType(&lattice.ParseError{}, err)
}

func TestFromSlicesRejectsSeparator(x *testing.T) {
	t := assert.New(x)
	_, err := FromSlices([][]string{{"a"}, {"a b"}})
	t.IsType(&lattice.ParseError{}, err)
	_, err = FromSlices([][]string{{}})
	t.IsType(&lattice.ParseError{}, err)
}

func TestContiguousCount(x *testing.T) {
	t := assert.New(x)
	s, err := FromSlices(corpus)
	t.Nil(err)
	t.Equal(3, count(x, s, "x"))
	t.Equal(3, count(x, s, "y"))
	t.Equal(2, count(x, s, "z"))
	t.Equal(2, count(x, s, "x", "y"))
	t.Equal(2, count(x, s, "y", "z"))
	t.Equal(1, count(x, s, "z", "x"))
	t.Equal(1, count(x, s, "x", "y", "z"))
	t.Equal(0, count(x, s, "x", "z"))
	t.Equal(0, count(x, s, "y", "x"))
}

func TestRepeatsCountOnce(x *testing.T) {
	t := assert.New(x)
	s, err := FromSlices([][]string{{"a", "b", "a", "b"}, {"b", "a"}})
	t.Nil(err)
	t.Equal(2, count(x, s, "a"))
	t.Equal(1, count(x, s, "a", "b"))
	t.Equal(2, count(x, s, "b", "a"))
	txs, err := s.Counter().Supported(phrase(x, s, "a", "b"))
	t.Nil(err)
	t.Equal([]int32{0}, txs)
}

func TestCountEmptyPhrase(x *testing.T) {
	t := assert.New(x)
	s, err := FromSlices(corpus)
	t.Nil(err)
	_, err = s.Counter().Supported(Phrase{})
	t.NotNil(err)
}

func TestWindows(x *testing.T) {
	t := assert.New(x)
	s, err := FromSlices(corpus)
	t.Nil(err)
	w := s.Generator()

	one, err := w.Candidates(1, nil)
	t.Nil(err)
	t.Equal([]lattice.Pattern{Phrase{0}, Phrase{1}, Phrase{2}}, one)

	frequent := []*lattice.Node{{Pat: Phrase{0}}}
	two, err := w.Candidates(2, frequent)
	t.Nil(err)
	t.Equal([]lattice.Pattern{Phrase{0, 1}, Phrase{1, 2}, Phrase{2, 0}}, two)

	three, err := w.Candidates(3, frequent)
	t.Nil(err)
	t.Equal([]lattice.Pattern{Phrase{0, 1, 2}, Phrase{1, 2, 0}}, three)

	four, err := w.Candidates(4, frequent)
	t.Nil(err)
	t.Len(four, 0)
}

func TestWindowsStop(x *testing.T) {
	t := assert.New(x)
	s, err := FromSlices(corpus)
	t.Nil(err)
	cands, err := s.Generator().Candidates(2, nil)
	t.Nil(err)
	t.Nil(cands)
	_, err = s.Generator().Candidates(0, nil)
	t.NotNil(err)
}

func TestWindowsDedupe(x *testing.T) {
	t := assert.New(x)
	s, err := FromSlices([][]string{{"a", "a", "a", "a"}, {"a", "a"}})
	t.Nil(err)
	cands, err := s.Generator().Candidates(2, []*lattice.Node{{Pat: Phrase{0}}})
	t.Nil(err)
	t.Equal([]lattice.Pattern{Phrase{0, 0}}, cands)
}

func TestPhraseIn(x *testing.T) {
	t := assert.New(x)
	t.True(Phrase{1, 2}.In([]int32{0, 1, 2}))
	t.False(Phrase{1, 2}.In([]int32{1, 0, 2}))
	t.False(Phrase{1, 2, 3}.In([]int32{1, 2}))
	t.True(Phrase{}.In(nil))
}

func TestPhraseHashable(x *testing.T) {
	t := assert.New(x)
	t.True(Phrase{1, 2}.Equals(Phrase{1, 2}))
	t.False(Phrase{1, 2}.Equals(Phrase{2, 1}))
	t.True(Phrase{1, 2}.Less(Phrase{2, 1}))
	t.Equal(Phrase{3, 4}.Hash(), Phrase{3, 4}.Hash())
	t.Equal(2, Phrase{3, 4}.Level())
}

func TestFormatter(x *testing.T) {
	t := assert.New(x)
	s, err := FromSlices(corpus)
	t.Nil(err)
	f := &Formatter{Labels: s.Labels()}
	var buf strings.Builder
	n := &lattice.Node{Pat: phrase(x, s, "z", "x"), Txs: []int32{2}}
	t.Nil(f.FormatPattern(&buf, n))
	t.Equal("1:z;x\n", buf.String())
}
