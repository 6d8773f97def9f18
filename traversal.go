// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh

// searchStackDepth is the capacity of a PointSearch's traversal stack,
// and therefore the deepest tree a search can walk. It comfortably
// exceeds the depth of any balanced construction: the degenerate
// positional-halving fallback always bisects, so only adversarially
// unbalanced surface-area splits can approach it. Exceeding the
// capacity is a checked fault, not silent corruption.
const searchStackDepth = 64

// A PointSearch is a resumable point-containment traversal of a BVH.
// Each call to Next runs the traversal until it either yields the next
// candidate shape index or is exhausted. Reset rewinds the traversal
// to its initial state.
//
// A PointSearch holds a fixed-size stack and performs no heap
// allocation. It never mutates the underlying BVH, so any number of
// searches of the same BVH may run concurrently, each on its own
// goroutine.
type PointSearch struct {
	b       *BVH
	x, y    float64
	current int64
	pending bool
	depth   int
	stack   [searchStackDepth]int64
}

// SearchPoint begins a point-containment search of the BVH. The
// returned PointSearch yields, via Next, the index of every shape
// whose bounding box contains the point (x, y), in depth-first
// traversal order.
func (b *BVH) SearchPoint(x, y float64) PointSearch {
	s := PointSearch{b: b, x: x, y: y}
	s.Reset()
	return s
}

// Reset rewinds the search to its initial state. A subsequent drain of
// Next repeats the original result sequence exactly.
func (s *PointSearch) Reset() {
	s.depth = 0
	s.current = 0
	s.pending = len(s.b.nodes) > 0 && s.b.bounds.ContainsXY(s.x, s.y)
}

// Next advances the traversal to its next result. It returns the
// candidate shape's index and true, or zero and false once the
// traversal is exhausted. After returning false it keeps returning
// false until Reset is called.
//
// Next panics if the tree is deeper than the traversal stack; see
// searchStackDepth.
func (s *PointSearch) Next() (int, bool) {
	for {
		if s.pending {
			// Descend leftward, pushing each node on first visit,
			// while the left child's box contains the query point.
			s.push(s.current)
			n := &s.b.nodes[s.current]
			if !n.isLeaf() && n.leftBox.ContainsXY(s.x, s.y) {
				s.current = n.left
			} else {
				s.pending = false
			}
			continue
		}
		if s.depth == 0 {
			return 0, false
		}
		// Revisit the most recent node: a leaf yields its shape, an
		// internal node descends rightward if the right child's box
		// contains the query point. Either way the node is popped and
		// never pushed again.
		s.depth--
		n := &s.b.nodes[s.stack[s.depth]]
		if n.isLeaf() {
			return int(n.shape), true
		}
		if n.rightBox.ContainsXY(s.x, s.y) {
			s.current = n.right
			s.pending = true
		}
	}
}

func (s *PointSearch) push(slot int64) {
	if s.depth == len(s.stack) {
		fmtPanic("search stack overflow (tree deeper than %d)", searchStackDepth)
	}
	s.stack[s.depth] = slot
	s.depth++
}

// Search returns the index of every shape whose bounding box contains
// the point (x, y), in traversal order. The result never contains
// duplicates. Candidates are a broad-phase overapproximation: a box
// containing the point does not imply the shape itself does.
func (b *BVH) Search(x, y float64) []int {
	return b.SearchAppend(x, y, make([]int, 0))
}

// SearchBuf fills buf with the leading results of a point-containment
// search at (x, y) and returns the number of indices written. If the
// search produces more candidates than buf can hold, the excess is
// silently discarded; the written prefix always matches the prefix of
// the corresponding Search result.
func (b *BVH) SearchBuf(x, y float64, buf []int) int {
	s := b.SearchPoint(x, y)
	n := 0
	for n < len(buf) {
		i, ok := s.Next()
		if !ok {
			break
		}
		buf[n] = i
		n++
	}
	return n
}

// SearchAppend appends the results of a point-containment search at
// (x, y) to dst, preserving dst's existing contents, and returns the
// extended slice.
func (b *BVH) SearchAppend(x, y float64, dst []int) []int {
	s := b.SearchPoint(x, y)
	for {
		i, ok := s.Next()
		if !ok {
			return dst
		}
		dst = append(dst, i)
	}
}
