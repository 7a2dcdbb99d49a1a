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

package redblack_test

import (
	"fmt"

	"github.com/biogo/balance/redblack"
)

func Example() {
	t := &redblack.Tree{}
	for v := 1; v <= 7; v++ {
		t.Insert(v)
	}
	t.Insert(4) // Already present.

	t.DoNodes(func(n *redblack.Node) (done bool) {
		fmt.Printf("%d %v\n", n.Elem, n.Color)
		return
	})
	fmt.Println("Height:", t.Height(), "Black height:", t.BlackHeight())

	// Output:
	// 1 Black
	// 2 Black
	// 3 Black
	// 4 Red
	// 5 Red
	// 6 Black
	// 7 Red
	// Height: 4 Black height: 2
}
