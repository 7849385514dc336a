package Trees

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// base is the arena shared by the tree algorithms. Nodes are addressed by
// index; ifs[i] holds the links and bookkeeping of node i and vs[i] its key.
// ifs[0] and vs[0] belong to the empty node, so len(ifs)==len(vs) always.
type base[T any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs        []info[S]
	vs         []T
}

func newBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	ifs[0].h = -1
	return base[T, S]{ifs: ifs, vs: make([]T, 1, int(hint)+1)}
}

// addFree index once. The key is reset so the arena doesn't retain it.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a detached leaf holding v, reusing a free index when there is one.
// Panics with CapacityError when S can't address another node.
func (u *base[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i], u.vs[i] = info[S]{sz: 1}, v
		return i
	}
	checkCapacity[S](uint64(len(u.ifs)))
	u.ifs = append(u.ifs, info[S]{sz: 1})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() S {
	return u.ifs[u.root].sz
}

// Height of the tree. The empty tree has height -1 and a single node tree 0.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Height() int {
	return u.ifs[u.root].h
}

// Root returns a handle to the root node; the empty Node if the tree is empty.
func (u *base[T, S]) Root() Node[T, S] {
	return Node[T, S]{u, u.root}
}

// Clear the tree. The arena keeps its capacity, stored keys are zeroed.
// Time: O(n)
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:1]
	u.root, u.free = 0, 0
}

// KSmallest returns the k-th smallest key, 1<=k<=Size().
// Time: O(D); Space: O(1)
func (u *base[T, S]) KSmallest(k S) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	for curI := u.root; curI != 0; {
		if li := u.ifs[curI].l; k <= u.ifs[li].sz {
			curI = li
		} else if k > u.ifs[li].sz+1 {
			k -= u.ifs[li].sz + 1
			curI = u.ifs[curI].r
		} else {
			return u.vs[curI], true
		}
	}
	return *new(T), false
}

// Balanced reports whether every node has a balance factor within [-1, 1].
// Recursive.
func (u *base[T, S]) Balanced() bool {
	var rec func(S) bool
	rec = func(i S) bool {
		if i == 0 {
			return true
		}
		if b := u.balance(i); b > 1 || b < -1 {
			return false
		}
		return rec(u.ifs[i].l) && rec(u.ifs[i].r)
	}
	return rec(u.root)
}

// measure recomputes height and size of the subtree at i without trusting the
// stored values. ok is false as soon as a stored value disagrees.
// Recursive.
func (u *base[T, S]) measure(i S) (h int, sz S, ok bool) {
	if i == 0 {
		return -1, 0, true
	}
	lh, lsz, lok := u.measure(u.ifs[i].l)
	rh, rsz, rok := u.measure(u.ifs[i].r)
	h, sz = max(lh, rh)+1, lsz+rsz+1
	return h, sz, lok && rok && h == u.ifs[i].h && sz == u.ifs[i].sz
}

// checkCapacity panics unless n is a valid index of S.
func checkCapacity[S constraints.Unsigned](n uint64) {
	if m := uint64(^S(0)); n > m {
		panic(CapacityError{m})
	}
}

// mid is equivalent to (a+b)/2 for a<=b but doesn't overflow.
func mid[S constraints.Unsigned](a, b S) S {
	return a + (b-a)>>1
}

// buildIfs of length n+1 describing the tree that picks the lower middle of
// every range [1, n] as its root. Node i holds the i-th smallest key, so the
// key slice can be used as is. Iterative.
func buildIfs[S constraints.Unsigned](n S) (root S, ifs []info[S]) {
	ifs = make([]info[S], int(n)+1)
	ifs[0].h = -1
	if n == 0 {
		return 0, ifs
	}
	st := make([][3]S, 0, bits.Len64(uint64(n))+1) //[left,right,mid]
	{
		root = mid(1, n)
		st = append(st, [3]S{1, n, root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		sz := top[1] - top[0] + 1
		ifs[top[2]].sz, ifs[top[2]].h = sz, bits.Len64(uint64(sz))-1
		if top[0] < top[2] {
			nr := top[2] - 1
			ifs[top[2]].l = mid(top[0], nr)
			st = append(st, [3]S{top[0], nr, ifs[top[2]].l})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			ifs[top[2]].r = mid(nl, top[1])
			st = append(st, [3]S{nl, top[1], ifs[top[2]].r})
		}
	}
	return
}
