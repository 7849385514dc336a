package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// OrderedTree is a binary search tree over an arena of nodes addressed by
// indices of type S. It can grow naively (Insert) or stay AVL balanced
// (SmartInsert); both can be used on the same tree.
//
// Equal keys are accepted and always routed to the left subtree, so Search
// finds the instance nearest to the root. A tree grown only by Insert keeps
// left <= node < right. Rotations may carry an equal key into a right subtree,
// after which the tree keeps left <= node <= right. In-order is non-decreasing
// in every case.
//
// T must be totally ordered: NaN keys are not supported.
// S must be wide enough to index every node ever alive at once plus one.
//
// OrderedTree is not safe for concurrent use. The zero value isn't usable,
// create trees with New or one of the Build functions.
type OrderedTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty tree with room for hint nodes before the arena grows.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *OrderedTree[T, S] {
	return &OrderedTree[T, S]{newBase[T](hint)}
}

// Insert v without rebalancing. The shape depends entirely on the insertion
// order: sorted input degenerates into a chain. Recursive.
// Time: O(D)
func (u *OrderedTree[T, S]) Insert(v T) {
	// alloc first: the arena must not move during the descent.
	n := u.alloc(v)
	u.root = u.insert(u.root, n)
}

func (u *OrderedTree[T, S]) insert(curI, n S) S {
	if curI == 0 {
		return n
	}
	if u.vs[n] <= u.vs[curI] {
		u.ifs[curI].l = u.insert(u.ifs[curI].l, n)
	} else {
		u.ifs[curI].r = u.insert(u.ifs[curI].r, n)
	}
	u.fix(curI)
	return curI
}

// SmartInsert v and restore the AVL balance on every ancestor of the new
// leaf, so that the height stays below 1.44*log2(n+2) if the tree was
// balanced before. Recursive.
// Time: O(D)
func (u *OrderedTree[T, S]) SmartInsert(v T) {
	n := u.alloc(v)
	u.root = u.smartInsert(u.root, n)
}

func (u *OrderedTree[T, S]) smartInsert(curI, n S) S {
	if curI == 0 {
		return n
	}
	if u.vs[n] <= u.vs[curI] {
		u.ifs[curI].l = u.smartInsert(u.ifs[curI].l, n)
	} else {
		u.ifs[curI].r = u.smartInsert(u.ifs[curI].r, n)
	}
	return u.rebalance(curI)
}

// rebalance refreshes node i and applies the single or double rotation its
// balance factor calls for. Returns the new subtree root.
// After an insertion the child's balance factor has the same sign as the
// side the key went to, so this picks the same case as comparing the key
// with the child's key, duplicates included.
func (u *OrderedTree[T, S]) rebalance(i S) S {
	u.fix(i)
	switch b := u.balance(i); {
	case b > 1:
		if u.balance(u.ifs[i].l) < 0 { // left-right
			u.ifs[i].l = u.rotateLeft(u.ifs[i].l)
		}
		return u.rotateRight(i)
	case b < -1:
		if u.balance(u.ifs[i].r) > 0 { // right-left
			u.ifs[i].r = u.rotateRight(u.ifs[i].r)
		}
		return u.rotateLeft(i)
	}
	return i
}

// Search returns the node holding v nearest to the root.
// (Node{}, false) if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Search(v T) (Node[T, S], bool) {
	for curI := u.root; curI != 0; {
		if k := u.vs[curI]; k == v {
			return Node[T, S]{&u.base, curI}, true
		} else if k < v {
			curI = u.ifs[curI].r
		} else {
			curI = u.ifs[curI].l
		}
	}
	return Node[T, S]{}, false
}

// Has element v.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Has(v T) bool {
	_, ok := u.Search(v)
	return ok
}

// Minimum element of the tree. (zero, false) for the empty tree.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return u.vs[0], false
	}
	curI := u.root
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return u.vs[curI], true
}

// Maximum element of the tree. (zero, false) for the empty tree.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return u.vs[0], false
	}
	curI := u.root
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return u.vs[curI], true
}

// Delete one instance of v. Returns false, leaving the tree untouched, if v
// isn't in the tree. A node with two children takes the key of its in-order
// successor, which is then deleted from the right subtree.
// Delete never rotates: a tree kept balanced by SmartInsert can lose its
// balance through deletions, use SmartDelete to avoid that.
// Iterative, except for one level of recursion for the successor.
// Time: O(D)
func (u *OrderedTree[T, S]) Delete(v T) bool {
	var ok bool
	u.root, ok = u.delete(u.root, v)
	return ok
}

// delete one node holding v from the subtree at sub. Returns the new root of
// the subtree.
func (u *OrderedTree[T, S]) delete(sub S, v T) (S, bool) {
	path := make([]S, 0, u.ifs[sub].h+1) // ancestors of curI, root first.
	curI := sub
	for curI != 0 && u.vs[curI] != v {
		path = append(path, curI)
		if v < u.vs[curI] {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	if curI == 0 {
		return sub, false
	}

	var repl S
	if n := u.ifs[curI]; n.l == 0 {
		repl = n.r
		u.addFree(curI)
	} else if n.r == 0 {
		repl = n.l
		u.addFree(curI)
	} else {
		succ := n.r
		for u.ifs[succ].l != 0 {
			succ = u.ifs[succ].l
		}
		u.vs[curI] = u.vs[succ]
		u.ifs[curI].r, _ = u.delete(n.r, u.vs[succ])
		u.fix(curI)
		repl = curI
	}

	if len(path) == 0 {
		return repl, true
	}
	if p := &u.ifs[path[len(path)-1]]; p.l == curI {
		p.l = repl
	} else {
		p.r = repl
	}
	for i := len(path) - 1; i > -1; i-- {
		u.fix(path[i])
	}
	return sub, true
}

// SmartDelete one instance of v and rebalance every ancestor of the spliced
// node, keeping a balanced tree balanced. Recursive.
// Time: O(D)
func (u *OrderedTree[T, S]) SmartDelete(v T) bool {
	var ok bool
	u.root, ok = u.smartDelete(u.root, v)
	return ok
}

func (u *OrderedTree[T, S]) smartDelete(curI S, v T) (S, bool) {
	if curI == 0 {
		return 0, false
	}
	var ok bool
	if k := u.vs[curI]; v < k {
		u.ifs[curI].l, ok = u.smartDelete(u.ifs[curI].l, v)
	} else if v > k {
		u.ifs[curI].r, ok = u.smartDelete(u.ifs[curI].r, v)
	} else if n := u.ifs[curI]; n.l == 0 || n.r == 0 {
		repl := n.l
		if repl == 0 {
			repl = n.r
		}
		u.addFree(curI)
		return repl, true
	} else {
		succ := n.r
		for u.ifs[succ].l != 0 {
			succ = u.ifs[succ].l
		}
		u.vs[curI] = u.vs[succ]
		u.ifs[curI].r, ok = u.smartDelete(n.r, u.vs[succ])
	}
	if !ok {
		return curI, false
	}
	return u.rebalance(curI), true
}

// RankOf v: 1 plus the number of keys strictly less than v. 0 if v isn't in
// the tree.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) RankOf(v T) S {
	var ra S
	found := false
	for curI := u.root; curI != 0; {
		if k := u.vs[curI]; k < v {
			ra += u.ifs[u.ifs[curI].l].sz + 1
			curI = u.ifs[curI].r
		} else {
			found = found || k == v
			curI = u.ifs[curI].l
		}
	}
	if !found {
		return 0
	}
	return ra + 1
}

// Predecessor returns the greatest element less than v.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Predecessor(v T) (T, bool) {
	curI, p := u.root, S(0)
	for curI != 0 {
		if v <= u.vs[curI] {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// Successor returns the smallest element greater than v.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Successor(v T) (T, bool) {
	curI, p := u.root, S(0)
	for curI != 0 {
		if v < u.vs[curI] {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.vs[p], p != 0
}

// Corrupt returns whether the stored heights or sizes disagree with the shape
// of the tree, or the keys aren't in order. This is to be distinguished from
// whether the tree is balanced or not.
// Time: O(n)
func (u *OrderedTree[T, S]) Corrupt() bool {
	if _, _, ok := u.measure(u.root); !ok {
		return true
	}
	sorted, first := true, true
	var prev T
	u.Walk(OrderIn, func(v T) bool {
		if !first && v < prev {
			sorted = false
		}
		prev, first = v, false
		return sorted
	})
	return !sorted
}
