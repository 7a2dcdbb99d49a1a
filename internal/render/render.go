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

// Package render writes in-order dumps of tree nodes.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/biogo/balance/avl"
	"github.com/biogo/balance/redblack"
)

// A Painter decorates the color name of a Red Black node.
type Painter func(c redblack.Color, s string) string

// Plain returns s unchanged.
func Plain(_ redblack.Color, s string) string { return s }

// Styled returns a Painter that renders red node colors in red using lipgloss.
func Styled() Painter {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	return func(c redblack.Color, s string) string {
		if c == redblack.Red {
			return red.Render(s)
		}
		return s
	}
}

func elem(ok bool, v int) string {
	if !ok {
		return "null"
	}
	return strconv.Itoa(v)
}

// AVL writes one line per node of t in sort order.
func AVL(w io.Writer, t *avl.Tree) (err error) {
	if _, err = fmt.Fprintln(w, "=== AVL Tree ==="); err != nil {
		return err
	}
	t.DoNodes(func(n *avl.Node) (done bool) {
		var l, r int
		if n.Left != nil {
			l = n.Left.Elem
		}
		if n.Right != nil {
			r = n.Right.Elem
		}
		_, err = fmt.Fprintf(w, "height %d, value = %d, left = %s, right = %s\n",
			n.Height, n.Elem, elem(n.Left != nil, l), elem(n.Right != nil, r))
		return err != nil
	})
	return err
}

// RedBlack writes one line per node of t in sort order, decorating node colors
// with paint. A nil paint is equivalent to Plain.
func RedBlack(w io.Writer, t *redblack.Tree, paint Painter) (err error) {
	if paint == nil {
		paint = Plain
	}
	if _, err = fmt.Fprintln(w, "=== Red Black Tree ==="); err != nil {
		return err
	}
	t.DoNodes(func(n *redblack.Node) (done bool) {
		var l, r int
		if n.Left != nil {
			l = n.Left.Elem
		}
		if n.Right != nil {
			r = n.Right.Elem
		}
		_, err = fmt.Fprintf(w, "height %d, color %s, value = %d, left = %s, right = %s\n",
			n.Height, paint(n.Color, n.Color.String()), n.Elem, elem(n.Left != nil, l), elem(n.Right != nil, r))
		return err != nil
	})
	return err
}
