package lattice

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/types"
)

type ids []int32

func (p ids) Equals(o types.Equatable) bool { return Compare(p, o.(ids)) == 0 }
func (p ids) Less(o types.Sortable) bool    { return Compare(p, o.(ids)) < 0 }
func (p ids) Hash() int                     { return types.ByteSlice(Label(p)).Hash() }
func (p ids) Label() []byte                 { return Label(p) }
func (p ids) Level() int                    { return len(p) }
func (p ids) Items() []int32                { return p }

func TestAbsoluteSupport(x *testing.T) {
	t := assert.New(x)
	t.Equal(Threshold(2), AbsoluteSupport(.5, 4))
	t.Equal(Threshold(1), AbsoluteSupport(.34, 3))
	t.Equal(Threshold(0), AbsoluteSupport(.1, 3))
	t.Equal(Threshold(10), AbsoluteSupport(1, 10))
}

func TestStrictThreshold(x *testing.T) {
	t := assert.New(x)
	th := AbsoluteSupport(.5, 4)
	t.False(th.Frequent(2))
	t.True(th.Frequent(3))
}

func TestSupported(x *testing.T) {
	t := assert.New(x)
	nodes := []*Node{
		{Pat: ids{2}, Txs: []int32{0, 1, 2}},
		{Pat: ids{0}, Txs: []int32{0, 1}},
		{Pat: ids{1}, Txs: []int32{0, 1, 2, 3}},
	}
	sup := AbsoluteSupport(.5, 4).Supported(nodes)
	t.Len(sup, 2)
	t.Equal([]int32{1}, sup[0].Pat.Items())
	t.Equal([]int32{2}, sup[1].Pat.Items())
	t.Equal(4, sup[0].Support())
}

func TestCompare(x *testing.T) {
	t := assert.New(x)
	t.Equal(0, Compare([]int32{1, 2}, []int32{1, 2}))
	t.Equal(-1, Compare([]int32{1, 2}, []int32{1, 3}))
	t.Equal(1, Compare([]int32{2}, []int32{1, 3}))
	t.Equal(-1, Compare([]int32{1}, []int32{1, 0}))
	t.Equal(1, Compare([]int32{1, 0}, []int32{1}))
}

func TestLabel(x *testing.T) {
	t := assert.New(x)
	t.Equal([]byte{0, 0, 0, 0}, Label(nil))
	t.Equal([]byte{0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 1, 0}, Label([]int32{1, 256}))
	t.NotEqual(Label([]int32{1, 2}), Label([]int32{2, 1}))
}

func TestErrorList(x *testing.T) {
	t := assert.New(x)
	var errs ErrorList
	t.Nil(errs.Err())
	errs = append(errs, &ParseError{Line: 3, Reason: "blank line"})
	t.NotNil(errs.Err())
	t.Equal("Errors [parse error on line 3: blank line]", errs.Error())
}
