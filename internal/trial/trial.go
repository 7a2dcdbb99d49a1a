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

// Package trial runs height comparison trials between AVL and Red Black trees.
package trial

import (
	"context"
	"math/rand"
	"sync"

	"github.com/biogo/balance/avl"
	"github.com/biogo/balance/internal/config"
	"github.com/biogo/balance/redblack"
)

// Values returns n values drawn uniformly from [0, 2n].
func Values(rnd *rand.Rand, n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = rnd.Intn(2*n + 1)
	}
	return v
}

// Ascending returns the values 0 to n-1 in order.
func Ascending(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

// Build inserts values into a new AVL tree and a new Red Black tree.
func Build(values []int) (*avl.Tree, *redblack.Tree) {
	rb := &redblack.Tree{}
	for _, v := range values {
		rb.Insert(v)
	}
	a := &avl.Tree{}
	for _, v := range values {
		a.Insert(v)
	}
	return a, rb
}

// A Result holds the outcome of a single trial.
type Result struct {
	Trial    int // Index of the trial.
	Len      int // Number of distinct values inserted.
	AVL      int // Height of the AVL tree.
	RedBlack int // Height of the Red Black tree.
}

// Ratio returns the Red Black tree height over the AVL tree height.
func (r Result) Ratio() float64 {
	if r.AVL == 0 {
		return 0
	}
	return float64(r.RedBlack) / float64(r.AVL)
}

// Compare builds both trees from values and reports their heights.
func Compare(values []int) Result {
	a, rb := Build(values)
	return Result{Len: a.Len(), AVL: a.Height(), RedBlack: rb.Height()}
}

// Workload returns the values inserted by trial i of the run described by c.
// The values depend only on c.Seed, c.Size, c.Sorted and i.
func Workload(c config.Config, i int) []int {
	if c.Sorted {
		return Ascending(c.Size)
	}
	return Values(rand.New(rand.NewSource(c.Seed+int64(i))), c.Size)
}

// Run performs the trials described by c over c.Workers goroutines and calls fn
// with each result in trial order. Run returns ctx.Err() if ctx is cancelled
// before all trials are reported.
func Run(ctx context.Context, c config.Config, fn func(Result)) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var (
		work    = make(chan int)
		results = make(chan Result, c.Workers)
		wg      sync.WaitGroup
	)
	for w := 0; w < c.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				r := Compare(Workload(c, i))
				r.Trial = i
				select {
				case results <- r:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		defer close(work)
		for i := 0; i < c.Trials; i++ {
			select {
			case work <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	// Results arrive in completion order; hold them until they can be
	// reported in trial order.
	var (
		next    int
		pending = make(map[int]Result)
	)
	for r := range results {
		pending[r.Trial] = r
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			fn(r)
			next++
		}
	}
	if next < c.Trials {
		return ctx.Err()
	}
	return nil
}
