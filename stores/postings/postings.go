package postings

import (
	"github.com/timtadh/data-structures/errors"
)

// Index is an in-memory inverted index from an item (or token) id to the
// ascending, duplicate free list of transactions containing it.
type Index struct {
	lists [][]int32
	pairs int
}

type KeyIterator func() (int32, error, KeyIterator)

func New(size int) *Index {
	return &Index{
		lists: make([][]int32, 0, size),
	}
}

// Add records that item occurs in tx. Transactions must be added in
// ascending order; repeats of the same (item, tx) pair are ignored.
func (x *Index) Add(item, tx int32) error {
	if item < 0 {
		return errors.Errorf("negative item id %d", item)
	}
	for int(item) >= len(x.lists) {
		x.lists = append(x.lists, nil)
	}
	list := x.lists[item]
	if len(list) > 0 {
		last := list[len(list)-1]
		if last == tx {
			return nil
		} else if last > tx {
			return errors.Errorf("tx %d added out of order for item %d (last %d)", tx, item, last)
		}
	}
	x.lists[item] = append(list, tx)
	x.pairs++
	return nil
}

func (x *Index) Find(item int32) []int32 {
	if item < 0 || int(item) >= len(x.lists) {
		return nil
	}
	return x.lists[item]
}

func (x *Index) Count(item int32) int {
	return len(x.Find(item))
}

// Rarest returns the item of items with the shortest posting list.
func (x *Index) Rarest(items []int32) (rarest int32, count int) {
	rarest = -1
	for _, item := range items {
		c := x.Count(item)
		if rarest < 0 || c < count {
			rarest = item
			count = c
		}
	}
	return rarest, count
}

// Size is the number of (item, tx) pairs in the index.
func (x *Index) Size() int {
	return x.pairs
}

func (x *Index) Keys() (it KeyIterator, err error) {
	item := int32(0)
	it = func() (int32, error, KeyIterator) {
		for int(item) < len(x.lists) {
			cur := item
			item++
			if len(x.lists[cur]) > 0 {
				return cur, nil, it
			}
		}
		return 0, nil, nil
	}
	return it, nil
}

func DoKeys(run func() (KeyIterator, error), do func(item int32) error) error {
	it, err := run()
	if err != nil {
		return err
	}
	var item int32
	for item, err, it = it(); it != nil; item, err, it = it() {
		e := do(item)
		if e != nil {
			return e
		}
	}
	return err
}
