package itemset

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/fpm/lattice"
)

// Items is an itemset held as strictly ascending item ids.
type Items []int32

func (i Items) Equals(o types.Equatable) bool {
	b, ok := o.(Items)
	return ok && lattice.Compare(i, b) == 0
}

func (i Items) Less(o types.Sortable) bool {
	b, ok := o.(Items)
	return ok && lattice.Compare(i, b) < 0
}

func (i Items) Hash() int {
	return types.ByteSlice(i.Label()).Hash()
}

func (i Items) Label() []byte {
	return lattice.Label(i)
}

func (i Items) Level() int {
	return len(i)
}

func (i Items) Items() []int32 {
	return i
}

func (i Items) String() string {
	return fmt.Sprintf("%v", []int32(i))
}

// Parents are the itemsets with exactly one item removed.
func (i Items) Parents() []Items {
	if len(i) <= 1 {
		return nil
	}
	parents := make([]Items, 0, len(i))
	for skip := range i {
		parent := make(Items, 0, len(i)-1)
		parent = append(parent, i[:skip]...)
		parent = append(parent, i[skip+1:]...)
		parents = append(parents, parent)
	}
	return parents
}

func (i Items) sharesPrefix(o Items) bool {
	if len(i) != len(o) || len(i) == 0 {
		return false
	}
	return lattice.Compare(i[:len(i)-1], o[:len(o)-1]) == 0
}

// join assumes both share all but their last item and i sorts first.
func (i Items) join(o Items) Items {
	items := make(Items, 0, len(i)+1)
	items = append(items, i...)
	return append(items, o[len(o)-1])
}
