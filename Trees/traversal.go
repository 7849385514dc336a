package Trees

import (
	"github.com/g-m-twostay/ordtree/Queues"
)

// Order of a traversal.
type Order byte

const (
	OrderIn    Order = iota // left, node, right: ascending keys.
	OrderPre                // node, left, right.
	OrderPost               // left, right, node.
	OrderLevel              // breadth first, left to right.
)

func (o Order) String() string {
	switch o {
	case OrderIn:
		return "in-order"
	case OrderPre:
		return "pre-order"
	case OrderPost:
		return "post-order"
	case OrderLevel:
		return "level-order"
	}
	return "unknown order"
}

// Walk calls f on every key in the given order until f returns false.
// The tree must not be modified during the walk.
func (u *base[T, S]) Walk(o Order, f func(T) bool) {
	switch o {
	case OrderIn:
		u.inOrder(f)
	case OrderPre:
		u.preOrder(f)
	case OrderPost:
		u.postOrder(u.root, f)
	case OrderLevel:
		u.levelOrder(f)
	}
}

// collect the keys of a walk in a slice of length Size().
func (u *base[T, S]) collect(o Order) []T {
	s := make([]T, 0, u.Size())
	u.Walk(o, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// InOrder keys, ascending. Empty slice for the empty tree.
func (u *base[T, S]) InOrder() []T { return u.collect(OrderIn) }

func (u *base[T, S]) PreOrder() []T { return u.collect(OrderPre) }

func (u *base[T, S]) PostOrder() []T { return u.collect(OrderPost) }

// LevelOrder keys, breadth first.
func (u *base[T, S]) LevelOrder() []T { return u.collect(OrderLevel) }

// stack based iterative in-order traversal.
func (u *base[T, S]) inOrder(f func(T) bool) {
	st := make([]S, 0, u.Height()+1)
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(u.vs[curI]) {
			return
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
}

func (u *base[T, S]) preOrder(f func(T) bool) {
	if u.root == 0 {
		return
	}
	st := make([]S, 1, u.Height()+2)
	st[0] = u.root
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(u.vs[curI]) {
			return
		}
		n := u.ifs[curI]
		if n.r != 0 {
			st = append(st, n.r)
		}
		if n.l != 0 {
			st = append(st, n.l)
		}
	}
}

// postOrder is recursive; it returns false once f asked to stop.
func (u *base[T, S]) postOrder(curI S, f func(T) bool) bool {
	if curI == 0 {
		return true
	}
	return u.postOrder(u.ifs[curI].l, f) && u.postOrder(u.ifs[curI].r, f) && f(u.vs[curI])
}

func (u *base[T, S]) levelOrder(f func(T) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](uint(u.Size()))
	q.Push(u.root)
	for !q.Empty() {
		curI, _ := q.Pop()
		if !f(u.vs[curI]) {
			return
		}
		n := u.ifs[curI]
		if n.l != 0 {
			q.Push(n.l)
		}
		if n.r != 0 {
			q.Push(n.r)
		}
	}
}
