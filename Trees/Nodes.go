package Trees

import (
	"fmt"
	"golang.org/x/exp/constraints"
)

// A node slot in the arena of an OrderedTree.
// The zero value is meaningless for a real node: a live node always has h>=0
// and sz>=1. ifs[0] is the empty node, a loopback with h=-1 and sz=0.
type info[S constraints.Unsigned] struct {
	l, r S
	sz   S
	h    int
}

// RotationError is the panic value of a rotation called without the pivot child.
// It only shows up when the balancing logic itself is broken.
type RotationError struct {
	Dir   string
	Index uint64
}

func (e RotationError) Error() string {
	return "Trees: rotate " + e.Dir + " at node without pivot child"
}

// CapacityError is the panic value of an insertion that needs more nodes than
// the index type S can address.
type CapacityError struct {
	Max uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("Trees: index type exhausted, at most %d nodes", e.Max)
}

// fix recomputes the height and size of node i from its children.
// Time: O(1)
func (u *base[T, S]) fix(i S) {
	n := &u.ifs[i]
	n.h = max(u.ifs[n.l].h, u.ifs[n.r].h) + 1
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
}

// balance factor of node i.
func (u *base[T, S]) balance(i S) int {
	return u.ifs[u.ifs[i].l].h - u.ifs[u.ifs[i].r].h
}

// rotateLeft pivots on the right child of ni and returns the new subtree root.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(ni S) S {
	rci := u.ifs[ni].r
	if rci == 0 {
		panic(RotationError{"left", uint64(ni)})
	}
	u.ifs[ni].r = u.ifs[rci].l
	u.ifs[rci].l = ni
	u.fix(ni)
	u.fix(rci)
	return rci
}

// rotateRight pivots on the left child of ni and returns the new subtree root.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(ni S) S {
	lci := u.ifs[ni].l
	if lci == 0 {
		panic(RotationError{"right", uint64(ni)})
	}
	u.ifs[ni].l = u.ifs[lci].r
	u.ifs[lci].r = ni
	u.fix(ni)
	u.fix(lci)
	return lci
}

// Node is a read-only handle to a node of an OrderedTree. The zero Node is
// the empty node; it is what Search returns on a miss.
// A Node is invalidated by any mutation of its tree.
type Node[T any, S constraints.Unsigned] struct {
	u *base[T, S]
	i S
}

// Empty reports whether n is the empty node.
func (n Node[T, S]) Empty() bool {
	return n.u == nil || n.i == 0
}

// Key of n. Undefined for the empty node.
func (n Node[T, S]) Key() T {
	if n.Empty() {
		return *new(T)
	}
	return n.u.vs[n.i]
}

func (n Node[T, S]) Left() Node[T, S] {
	if n.Empty() {
		return n
	}
	return Node[T, S]{n.u, n.u.ifs[n.i].l}
}

func (n Node[T, S]) Right() Node[T, S] {
	if n.Empty() {
		return n
	}
	return Node[T, S]{n.u, n.u.ifs[n.i].r}
}

// Height of the subtree rooted at n, -1 for the empty node.
func (n Node[T, S]) Height() int {
	if n.Empty() {
		return -1
	}
	return n.u.ifs[n.i].h
}

// Size of the subtree rooted at n.
func (n Node[T, S]) Size() S {
	if n.Empty() {
		return 0
	}
	return n.u.ifs[n.i].sz
}

// Balance factor at n, height(left)-height(right). 0 for the empty node.
func (n Node[T, S]) Balance() int {
	if n.Empty() {
		return 0
	}
	return n.u.balance(n.i)
}
