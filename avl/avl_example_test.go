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

package avl_test

import (
	"fmt"

	"github.com/biogo/balance/avl"
)

func Example() {
	values := []int{0, 1, 2, 3, 4, 2, 3, 5, 5, 65, 32, 3, 23}

	t := &avl.Tree{}
	for _, v := range values {
		t.Insert(v) // Repeated values are ignored.
	}

	results := []int(nil)
	t.Do(func(v int) (done bool) {
		results = append(results, v)
		return
	})

	fmt.Println("Values:", results)
	fmt.Println("Height:", t.Height())
	fmt.Println("Root:  ", t.Root.Elem)

	// Output:
	// Values: [0 1 2 3 4 5 23 32 65]
	// Height: 4
	// Root:   3
}
