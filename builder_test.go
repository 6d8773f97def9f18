// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testShape is the trivial Bounded implementation used throughout the
// package tests: the shape is its own bounding box.
type testShape Box

func (s testShape) Box() Box {
	return Box(s)
}

func newIndex(boxes []Box) *BVH {
	shapes := make([]testShape, len(boxes))
	for i := range boxes {
		shapes[i] = testShape(boxes[i])
	}
	return New(shapes)
}

func diagonalBoxes(n int) []Box {
	boxes := make([]Box, n)
	for i := range boxes {
		d := float64(2 * i)
		boxes[i] = Box{d, d, d + 2, d + 2}
	}
	return boxes
}

func gridBoxes(w, h int) []Box {
	boxes := make([]Box, 0, w*h)
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			x, y := float64(i), float64(j)
			boxes = append(boxes, Box{x, y, x + 1, y + 1})
		}
	}
	return boxes
}

func identicalBoxes(n int) []Box {
	boxes := make([]Box, n)
	for i := range boxes {
		boxes[i] = Box{1, 1, 3, 3}
	}
	return boxes
}

func colinearPointBoxes(n int) []Box {
	boxes := make([]Box, n)
	for i := range boxes {
		x := float64(i)
		boxes[i] = Box{x, 0, x, 0}
	}
	return boxes
}

func randomBoxes(r *rand.Rand, n int) []Box {
	boxes := make([]Box, n)
	for i := range boxes {
		x := r.Float64() * 100
		y := r.Float64() * 100
		boxes[i] = Box{x, y, x + r.Float64()*10, y + r.Float64()*10}
	}
	return boxes
}

func joinBoxes(boxes []Box) Box {
	j := EmptyBox
	for i := range boxes {
		j.Expand(&boxes[i])
	}
	return j
}

// checkSubtree verifies the structural invariants of the subtree rooted
// at slot: children occupy strictly higher slots than their parent,
// each recorded child box is the exact join of the child subtree's
// shape boxes, and each shape index appears in exactly one leaf. It
// returns the subtree's joined bound.
func checkSubtree(t *testing.T, b *BVH, slot int64, seen []bool) Box {
	n := &b.nodes[slot]
	if n.isLeaf() {
		require.GreaterOrEqual(t, n.shape, int64(0))
		require.Less(t, n.shape, int64(b.numShapes))
		require.False(t, seen[n.shape], "shape %d indexed by more than one leaf", n.shape)
		seen[n.shape] = true
		return n.leftBox
	}
	require.Greater(t, n.left, slot)
	require.Greater(t, n.right, n.left)
	require.Less(t, n.right, int64(len(b.nodes)))
	require.Equal(t, int64(-1), n.shape)
	lb := checkSubtree(t, b, n.left, seen)
	rb := checkSubtree(t, b, n.right, seen)
	require.Equal(t, lb, n.leftBox, "slot %d: left child box is not tight", slot)
	require.Equal(t, rb, n.rightBox, "slot %d: right child box is not tight", slot)
	lb.Expand(&rb)
	return lb
}

func checkTree(t *testing.T, b *BVH, boxes []Box) {
	require.Equal(t, len(boxes), b.NumShapes())
	if len(boxes) == 0 {
		require.Empty(t, b.nodes)
		require.Equal(t, EmptyBox, b.Bounds())
		return
	}
	require.Len(t, b.nodes, 2*len(boxes)-1)

	seen := make([]bool, len(boxes))
	bounds := checkSubtree(t, b, 0, seen)
	for i := range seen {
		require.True(t, seen[i], "shape %d missing from tree", i)
	}
	require.Equal(t, joinBoxes(boxes), bounds)
	require.Equal(t, bounds, b.Bounds())
}

func TestNew(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		b := New([]testShape{})

		assert.Equal(t, 0, b.NumShapes())
		assert.Equal(t, EmptyBox, b.Bounds())
		assert.Empty(t, b.nodes)
	})

	t.Run("Single", func(t *testing.T) {
		b := newIndex([]Box{{1, 2, 3, 4}})

		require.Len(t, b.nodes, 1)
		assert.True(t, b.nodes[0].isLeaf())
		assert.Equal(t, int64(0), b.nodes[0].shape)
		assert.Equal(t, Box{1, 2, 3, 4}, b.Bounds())
	})

	t.Run("Invariants", func(t *testing.T) {
		testCases := []struct {
			name  string
			boxes []Box
		}{
			{"Pair", diagonalBoxes(2)},
			{"Diagonal", diagonalBoxes(11)},
			{"Grid", gridBoxes(8, 5)},
			{"IdenticalCentroids", identicalBoxes(8)},
			{"IdenticalCentroidsOdd", identicalBoxes(7)},
			{"ZeroAreaColinear", colinearPointBoxes(10)},
			{"NestedBoxes", []Box{{0, 0, 8, 8}, {1, 1, 7, 7}, {2, 2, 6, 6}, {3, 3, 5, 5}}},
		}
		for n := 1; n <= 64; n *= 4 {
			r := rand.New(rand.NewSource(int64(n)))
			testCases = append(testCases, struct {
				name  string
				boxes []Box
			}{fmt.Sprintf("Random%d", n), randomBoxes(r, n)})
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				b := newIndex(testCase.boxes)

				checkTree(t, b, testCase.boxes)
			})
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		r := rand.New(rand.NewSource(99))
		boxes := randomBoxes(r, 50)

		b := newIndex(boxes)
		c := newIndex(boxes)

		assert.Equal(t, b.nodes, c.nodes)
		assert.Equal(t, b.Bounds(), c.Bounds())
	})
}

func TestBVH_NumShapes(t *testing.T) {
	assert.Equal(t, 0, newIndex(nil).NumShapes())
	assert.Equal(t, 3, newIndex(diagonalBoxes(3)).NumShapes())
}

func TestBVH_Bounds(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, EmptyBox, newIndex(nil).Bounds())
	})

	t.Run("JoinOfShapes", func(t *testing.T) {
		boxes := []Box{{-3, 0, -1, 2}, {0, -5, 1, 1}, {4, 4, 6, 9}}

		b := newIndex(boxes)

		assert.Equal(t, Box{-3, -5, 6, 9}, b.Bounds())
	})
}
