package Trees

import (
	"cmp"
	"fmt"
	"golang.org/x/exp/constraints"
	"slices"
)

// InvalidSliceError is the panic value of FromSorted when the slice isn't
// strictly increasing: Prev, at Index-1, isn't less than Next, at Index.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("Trees: slice not strictly increasing at %d: %v, %v", e.Index, e.Prev, e.Next)
}

// BuildNaive inserts keys in order with Insert. Sorted input gives a chain of
// height len(keys)-1.
// Time: O(n*D)
func BuildNaive[T cmp.Ordered, S constraints.Unsigned](keys []T) *OrderedTree[T, S] {
	u := New[T](S(len(keys)))
	for _, v := range keys {
		u.Insert(v)
	}
	return u
}

// BuildSelfBalancing inserts keys in order with SmartInsert. The height is
// O(log n) whatever the order.
// Time: O(n*log n)
func BuildSelfBalancing[T cmp.Ordered, S constraints.Unsigned](keys []T) *OrderedTree[T, S] {
	u := New[T](S(len(keys)))
	for _, v := range keys {
		u.SmartInsert(v)
	}
	return u
}

// BuildMedianBalanced sorts a copy of keys and inserts them with Insert,
// midpoint of every range first. For distinct keys the result is as close to
// a complete tree as the lower middle rule allows; duplicates keep the shape
// deterministic but not necessarily of minimal height.
// Time: O(n*log n)
func BuildMedianBalanced[T cmp.Ordered, S constraints.Unsigned](keys []T) *OrderedTree[T, S] {
	u := New[T](S(len(keys)))
	for _, v := range medianOrder(keys) {
		u.Insert(v)
	}
	return u
}

// medianOrder returns the sorted keys in the order the median construction
// inserts them: the lower middle of [lo, hi], then the order of the left
// half, then the order of the right half.
func medianOrder[T cmp.Ordered](keys []T) []T {
	s := slices.Clone(keys)
	slices.Sort(s)
	out := make([]T, 0, len(s))
	var rec func(lo, hi int)
	rec = func(lo, hi int) {
		if lo > hi {
			return
		}
		m := mid(uint(lo), uint(hi))
		out = append(out, s[m])
		rec(lo, int(m)-1)
		rec(int(m)+1, hi)
	}
	rec(0, len(s)-1)
	return out
}

// FromSorted builds the tree of BuildMedianBalanced in O(n), laying the nodes
// out directly in the arena. The given slice must be sorted in ascending
// order and mustn't contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic
// with InvalidSliceError if they are broken. Otherwise it is up to the caller,
// and a bad slice gives a corrupt tree.
// sorted is copied; the caller keeps ownership. Panics with CapacityError
// if S can't address len(sorted) nodes.
// Time: O(n)
func FromSorted[T cmp.Ordered, S constraints.Unsigned](sorted []T, safe bool) *OrderedTree[T, S] {
	if safe {
		for i := 1; i < len(sorted); i++ {
			if !(sorted[i-1] < sorted[i]) {
				panic(InvalidSliceError{i, sorted[i-1], sorted[i]})
			}
		}
	}
	checkCapacity[S](uint64(len(sorted)))
	root, ifs := buildIfs(S(len(sorted)))
	vs := make([]T, len(sorted)+1)
	copy(vs[1:], sorted)
	return &OrderedTree[T, S]{base[T, S]{root: root, ifs: ifs, vs: vs}}
}

// Sort returns keys in ascending order by building a naive tree and reading
// it in order.
func Sort[T cmp.Ordered](keys []T) []T {
	return BuildNaive[T, uint](keys).InOrder()
}
