package postings

import "testing"
import "github.com/stretchr/testify/assert"

func build(t *assert.Assertions, txs [][]int32) *Index {
	x := New(10)
	for tx, items := range txs {
		for _, item := range items {
			t.Nil(x.Add(item, int32(tx)))
		}
	}
	return x
}

func TestAddDedup(x *testing.T) {
	t := assert.New(x)
	idx := build(t, [][]int32{
		{0, 1, 1, 0},
		{1},
		{3},
	})
	t.Equal([]int32{0}, idx.Find(0))
	t.Equal([]int32{0, 1}, idx.Find(1))
	t.Nil(idx.Find(2))
	t.Equal([]int32{2}, idx.Find(3))
	t.Nil(idx.Find(17))
	t.Equal(4, idx.Size())
	t.Equal(0, idx.Count(2))
	t.Equal(1, idx.Count(3))
}

func TestAddOutOfOrder(x *testing.T) {
	t := assert.New(x)
	idx := New(1)
	t.Nil(idx.Add(0, 5))
	t.NotNil(idx.Add(0, 2))
	t.NotNil(idx.Add(-1, 2))
}

func TestRarest(x *testing.T) {
	t := assert.New(x)
	idx := build(t, [][]int32{
		{0, 1, 2},
		{0, 1},
		{0},
	})
	item, count := idx.Rarest([]int32{0, 1, 2})
	t.Equal(int32(2), item)
	t.Equal(1, count)
	item, count = idx.Rarest([]int32{0, 9})
	t.Equal(int32(9), item)
	t.Equal(0, count)
}

func TestKeys(x *testing.T) {
	t := assert.New(x)
	idx := build(t, [][]int32{
		{2, 0},
		{0},
	})
	var keys []int32
	err := DoKeys(idx.Keys, func(item int32) error {
		keys = append(keys, item)
		return nil
	})
	t.Nil(err)
	t.Equal([]int32{0, 2}, keys)
}
