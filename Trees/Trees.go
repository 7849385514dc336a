// Package Trees implements an ordered-key index: a binary search tree kept in
// an arena of index-addressed nodes, grown naively or with AVL rotations.
package Trees

import "golang.org/x/exp/constraints"

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v to the Tree without rebalancing.
	Insert(v T)
	//SmartInsert v to the Tree and rebalance the path to it.
	SmartInsert(v T)
	//Delete one instance of v. Returns false if v isn't in the Tree.
	Delete(v T) bool
	//SmartDelete is Delete followed by rebalancing.
	SmartDelete(v T) bool
	//Search the node holding v.
	Search(v T) (Node[T, S], bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(T) (T, bool)
	//KSmallest find the k smallest element.
	//1<=k<=Size().
	KSmallest(k S) (T, bool)
	//RankOf v in the tree according to in-order.
	//1<=r<=Size(), 0 if v isn't in the tree.
	RankOf(v T) S
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() S
	//Height of the tree, -1 when empty.
	Height() int
	//Walk the keys in the given order until f returns false. The tree must
	//not be modified during the walk.
	Walk(o Order, f func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
	//Balanced reports whether every balance factor is within [-1, 1].
	Balanced() bool
}

var _ Tree[int, uint] = (*OrderedTree[int, uint])(nil)
