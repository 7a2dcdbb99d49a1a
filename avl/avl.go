// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package avl implements an insertion-only AVL tree of int values as described in
//  G. M. Adelson-Velsky and E. M. Landis, "An algorithm for the organization of information", 1962.
//  http://en.wikipedia.org/wiki/AVL_tree
package avl

// A Node represents a node in the AVL tree.
type Node struct {
	Elem        int
	Left, Right *Node
	Height      int // Height of the subtree rooted at the node. A leaf has height 1.
}

// A Tree manages the root node of an AVL tree. Public methods are exposed through this type.
// The zero value is an empty tree ready to use.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of elements stored.
}

// Helper methods

// height returns the cached height of a Node. A nil node has height 0.
func (self *Node) height() int {
	if self == nil {
		return 0
	}
	return self.Height
}

func (self *Node) updateHeight() {
	l, r := self.Left.height(), self.Right.height()
	if l > r {
		self.Height = l + 1
	} else {
		self.Height = r + 1
	}
}

// balance returns the difference between the left and right subtree heights.
func (self *Node) balance() int {
	return self.Left.height() - self.Right.height()
}

// A shape is the path an unbalancing insertion took below a node.
type shape int

const (
	leftLeft shape = iota
	leftRight
	rightLeft
	rightRight
)

func (s shape) String() string {
	switch s {
	case leftLeft:
		return "LL"
	case leftRight:
		return "LR"
	case rightLeft:
		return "RL"
	case rightRight:
		return "RR"
	}
	return "invalid"
}

// shapeOf returns the rotation shape for an unbalanced node. The heavy child
// determines the first step and the heavy grandchild the second; a child that
// is level on both sides is treated as a single rotation case.
func (self *Node) shapeOf() shape {
	if self.balance() > 0 {
		if self.Left.balance() < 0 {
			return leftRight
		}
		return leftLeft
	}
	if self.Right.balance() > 0 {
		return rightLeft
	}
	return rightRight
}

// rotate performs the three node restructuring for s rooted at self and
// returns the new subtree root. In each case the participating nodes are
// labelled a < b < c and b becomes the root with a and c as its children.
func (self *Node) rotate(s shape) *Node {
	var a, b, c *Node
	switch s {
	case leftLeft:
		// ((a,)b,)c -rotR-> (a,c)b
		c = self
		b = must(c.Left)
		a = must(b.Left)
		c.Left = b.Right
		b.Right = c
	case rightRight:
		// (,(,c)b)a -rotL-> (a,c)b
		a = self
		b = must(a.Right)
		c = must(b.Right)
		a.Right = b.Left
		b.Left = a
	case leftRight:
		// ((,b)a,)c -rotLR-> (a,c)b
		c = self
		a = must(c.Left)
		b = must(a.Right)
		a.Right = b.Left
		c.Left = b.Right
		b.Left, b.Right = a, c
	case rightLeft:
		// (,(b,)c)a -rotRL-> (a,c)b
		a = self
		c = must(a.Right)
		b = must(c.Left)
		a.Right = b.Left
		c.Left = b.Right
		b.Left, b.Right = a, c
	default:
		panic("avl: unknown rotation shape")
	}
	a.updateHeight()
	c.updateHeight()
	b.updateHeight()
	return b
}

// must asserts that a node taking part in a rotation exists.
func must(n *Node) *Node {
	if n == nil {
		panic("avl: rotation on missing child")
	}
	return n
}

// Len returns the number of elements stored in the Tree.
func (self *Tree) Len() int {
	return self.Count
}

// Height returns the height of the Tree. An empty tree has height 0.
func (self *Tree) Height() int {
	return self.Root.height()
}

// Insert inserts v into the Tree. If v is already present the tree is left unchanged.
func (self *Tree) Insert(v int) {
	var d int
	self.Root, d = self.Root.insert(v)
	self.Count += d
}

func (self *Node) insert(v int) (root *Node, d int) {
	if self == nil {
		return &Node{Elem: v, Height: 1}, 1
	}

	switch {
	case v < self.Elem:
		self.Left, d = self.Left.insert(v)
	case v > self.Elem:
		self.Right, d = self.Right.insert(v)
	default:
		return self, 0
	}
	if d == 0 {
		return self, 0
	}

	self.updateHeight()
	if b := self.balance(); b > 1 || b < -1 {
		self = self.rotate(self.shapeOf())
	}
	root = self

	return
}

// An Operation is a function that operates on an element. If done is returned true, the
// Operation is indicating that no further work needs to be done and so the Do function should
// traverse no further.
type Operation func(v int) (done bool)

// Do performs fn on all values stored in the tree in sort order. A boolean is returned
// indicating whether the Do traversal was interupted by an Operation returning true.
func (self *Tree) Do(fn Operation) bool {
	if self.Root == nil {
		return false
	}
	return self.Root.do(fn)
}

func (self *Node) do(fn Operation) (done bool) {
	if self.Left != nil {
		done = self.Left.do(fn)
		if done {
			return
		}
	}
	done = fn(self.Elem)
	if done {
		return
	}
	if self.Right != nil {
		done = self.Right.do(fn)
	}
	return
}

// DoNodes performs fn on all nodes of the tree in sort order. It is intended for
// inspection of tree structure; fn must not modify the nodes it is passed.
func (self *Tree) DoNodes(fn func(*Node) (done bool)) bool {
	if self.Root == nil {
		return false
	}
	return self.Root.doNodes(fn)
}

func (self *Node) doNodes(fn func(*Node) bool) (done bool) {
	if self.Left != nil && self.Left.doNodes(fn) {
		return true
	}
	if fn(self) {
		return true
	}
	return self.Right != nil && self.Right.doNodes(fn)
}
