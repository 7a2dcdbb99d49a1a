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

// Package redblack implements an insertion-only Red Black tree of int values with
// bottom-up rebalancing, as described in
//  http://en.wikipedia.org/wiki/Red%E2%80%93black_tree
//
// Rebalancing is driven from the insertion recursion: each level reports to its
// caller whether a rotation is needed there, so no rebalancing state outlives a
// single Insert call.
package redblack

// A Color represents the color of a Node.
type Color bool

// String returns a string representation of a Color.
func (c Color) String() string {
	if c {
		return "Black"
	}
	return "Red"
}

const (
	// Red as false give us the defined behaviour that new nodes are red. Although this
	// is incorrect for the root node, that is resolved at the end of each insertion.
	Red   Color = false
	Black Color = true
)

// A Node represents a node in the Red Black tree.
type Node struct {
	Elem        int
	Left, Right *Node
	Parent      *Node // Parent is nil for the root. It is not an ownership reference.
	Color       Color
	Height      int // Height of the subtree rooted at the node. Not used for balancing.
}

// A Tree manages the root node of a Red Black tree. Public methods are exposed through this type.
// The zero value is an empty tree ready to use.
type Tree struct {
	Root  *Node // Root node of the tree.
	Count int   // Number of elements stored.
}

// Helper methods

// color returns the effect color of a Node. A nil node returns black.
func (self *Node) color() Color {
	if self == nil {
		return Black
	}
	return self.Color
}

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

// A shape names the rotation a grandparent must perform to resolve a
// double red below it.
type shape int

const (
	none shape = iota
	leftLeft
	leftRight
	rightLeft
	rightRight
)

func (s shape) String() string {
	switch s {
	case none:
		return "none"
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

// fixup is the rebalancing state returned by one level of the insertion
// recursion to the level above.
type fixup struct {
	added   bool  // A new node was created below.
	pending shape // Rotation for the receiving level to execute.
}

// rotate performs the three node restructuring for s rooted at self, fixing
// heights and parent references, and returns the new subtree root. In each
// case the participating nodes are labelled a < b < c and b becomes the root
// with a and c as its children. Colors are not changed.
func (self *Node) rotate(s shape) *Node {
	var a, b, c *Node
	parent := self.Parent
	switch s {
	case leftLeft:
		// ((a,)b,)c -rotR-> (a,c)b
		c = self
		b = must(c.Left)
		a = must(b.Left)
		c.Left = b.Right
		c.Left.setParent(c)
		b.Right = c
	case rightRight:
		// (,(,c)b)a -rotL-> (a,c)b
		a = self
		b = must(a.Right)
		c = must(b.Right)
		a.Right = b.Left
		a.Right.setParent(a)
		b.Left = a
	case leftRight:
		// ((,b)a,)c -rotLR-> (a,c)b
		c = self
		a = must(c.Left)
		b = must(a.Right)
		a.Right = b.Left
		a.Right.setParent(a)
		c.Left = b.Right
		c.Left.setParent(c)
		b.Left, b.Right = a, c
	case rightLeft:
		// (,(b,)c)a -rotRL-> (a,c)b
		a = self
		c = must(a.Right)
		b = must(c.Left)
		a.Right = b.Left
		a.Right.setParent(a)
		c.Left = b.Right
		c.Left.setParent(c)
		b.Left, b.Right = a, c
	default:
		panic("redblack: unknown rotation shape")
	}
	a.Parent, c.Parent = b, b
	b.Parent = parent
	a.updateHeight()
	c.updateHeight()
	b.updateHeight()
	return b
}

func (self *Node) setParent(p *Node) {
	if self != nil {
		self.Parent = p
	}
}

// must asserts that a node taking part in a rotation exists.
func must(n *Node) *Node {
	if n == nil {
		panic("redblack: rotation on missing child")
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

// BlackHeight returns the number of black nodes on the path from the root to
// the minimum element.
func (self *Tree) BlackHeight() (h int) {
	for n := self.Root; n != nil; n = n.Left {
		if n.Color == Black {
			h++
		}
	}
	return
}

// Insert inserts v into the Tree. If v is already present the tree is left unchanged.
func (self *Tree) Insert(v int) {
	var f fixup
	self.Root, f = self.Root.insert(nil, v)
	if f.pending != none {
		panic("redblack: rotation pending above root")
	}
	if f.added {
		self.Count++
	}
	self.Root.Color = Black
}

func (self *Node) insert(parent *Node, v int) (root *Node, f fixup) {
	if self == nil {
		return &Node{Elem: v, Parent: parent, Height: 1}, fixup{added: true}
	}

	var child *Node
	switch {
	case v < self.Elem:
		self.Left, f = self.Left.insert(self, v)
		child = self.Left
	case v > self.Elem:
		self.Right, f = self.Right.insert(self, v)
		child = self.Right
	default:
		return self, fixup{}
	}
	if !f.added {
		return self, f
	}
	self.updateHeight()

	// A rotation requested by the level below resolves a double red with a
	// black uncle. The promoted node takes this node's place and color.
	if f.pending != none {
		self = self.rotate(f.pending)
		self.Color = Black
		self.Left.Color = Red
		self.Right.Color = Red
		return self, fixup{added: true}
	}

	if self.Color == Red && child.color() == Red {
		f.pending = self.resolve(child)
	}
	root = self

	return
}

// resolve handles a double red between self and its child. If the uncle is red
// the violation is pushed up by recoloring, otherwise the rotation shape to be
// performed by the grandparent is returned.
func (self *Node) resolve(child *Node) shape {
	g := self.Parent
	if g == nil {
		panic("redblack: red root during insertion")
	}
	left := self.Elem < g.Elem
	uncle := g.Left
	if left {
		uncle = g.Right
	}
	if uncle.color() == Red {
		self.Color = Black
		uncle.Color = Black
		g.Color = Red
		return none
	}
	switch {
	case left && child == self.Left:
		return leftLeft
	case left:
		return leftRight
	case child == self.Left:
		return rightLeft
	default:
		return rightRight
	}
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
