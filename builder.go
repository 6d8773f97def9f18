// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh

import "math"

// Bounded is the one capability a shape type must provide to be
// indexed: a deterministic bounding Box. The builder reads each shape's
// box exactly once, so the method need not cache its result.
type Bounded interface {
	Box() Box
}

const (
	// numBuckets is the number of centroid intervals evaluated per
	// partition step. Four buckets trade split quality for build speed,
	// which is the right trade in 2D, where tree quality matters less
	// than in 3D.
	numBuckets = 4
	// minCentroidExtent is the centroid-bounds extent below which a
	// partition step treats the centroids as coincident and falls back
	// to positional halving, since no bucket assignment could tell the
	// members apart.
	minCentroidExtent = 1e-5
)

// New builds a BVH over shapes. Search results are indices into the
// shapes slice, 0-based and never remapped.
//
// An empty shapes slice is valid and yields a BVH whose searches
// return no results. A shape whose box contains NaN or is inverted
// (min greater than max) produces an undefined tree; New does not
// detect or reject such boxes.
func New[T Bounded](shapes []T) *BVH {
	n := len(shapes)
	b := &BVH{numShapes: n, bounds: EmptyBox}
	if n == 0 {
		return b
	}
	bld := builder{
		boxes:   make([]Box, n),
		scratch: make([]int64, 0, n),
		nodes:   make([]node, 0, 2*n-1),
	}
	order := make([]int64, n)
	for i := range shapes {
		bld.boxes[i] = shapes[i].Box()
		order[i] = int64(i)
	}
	bld.partition(order)
	b.nodes = bld.nodes
	b.bounds = b.rootBounds()
	return b
}

// A builder holds the scratch state for one BVH construction. The
// boxes slice caches every shape's bound, the scratch slice is the
// reorder buffer shared serially by every partition step, and nodes is
// the arena under construction, pre-sized to its final 2n-1 capacity.
type builder struct {
	boxes   []Box
	scratch []int64
	nodes   []node
}

// A bucket accumulates the member count and the joined bound of the
// shapes whose centroid falls in one interval of the split axis. It
// lives only for the duration of a single partition step.
type bucket struct {
	size int64
	box  Box
}

// partition builds the subtree indexing the shapes in members, a
// window of the build's shape ordering, and returns the arena slot of
// the subtree's root. It may reorder members, and recursion operates
// on sub-windows of it, so the arena grows strictly left to right.
func (b *builder) partition(members []int64) int64 {
	if len(members) == 1 {
		return b.leaf(members[0])
	}

	// The joined bound of the member boxes normalizes the split cost;
	// the bound of the member centroids picks the split axis.
	aabbBounds := EmptyBox
	centroidBounds := EmptyBox
	for _, s := range members {
		box := &b.boxes[s]
		aabbBounds.Expand(box)
		centroidBounds.ExpandXY(box.midX(), box.midY())
	}

	// Reserve this subtree's slot before the children claim theirs.
	slot := int64(len(b.nodes))
	b.nodes = append(b.nodes, node{})

	splitAxis := centroidBounds.largestAxis()
	splitExtent := centroidBounds.axisExtent(splitAxis)

	var mid int
	var leftBox, rightBox Box
	if splitExtent < minCentroidExtent {
		// Coincident centroids: halve by position to guarantee
		// progress, bypassing cost evaluation.
		mid = len(members) / 2
		leftBox, rightBox = EmptyBox, EmptyBox
		for _, s := range members[:mid] {
			leftBox.Expand(&b.boxes[s])
		}
		for _, s := range members[mid:] {
			rightBox.Expand(&b.boxes[s])
		}
	} else {
		mid, leftBox, rightBox = b.bucketSplit(members, splitAxis, &aabbBounds, &centroidBounds, splitExtent)
	}

	left := b.partition(members[:mid])
	right := b.partition(members[mid:])
	b.nodes[slot] = node{
		leftBox:  leftBox,
		rightBox: rightBox,
		left:     left,
		right:    right,
		shape:    -1,
	}
	return slot
}

// leaf appends a leaf node for one shape and returns its arena slot.
func (b *builder) leaf(shape int64) int64 {
	slot := int64(len(b.nodes))
	b.nodes = append(b.nodes, node{leftBox: b.boxes[shape], shape: shape})
	return slot
}

// bucketSplit distributes members into numBuckets centroid intervals
// along splitAxis, picks the cheapest of the numBuckets-1 split points
// by the surface-area heuristic, and reorders members so the chosen
// partition is contiguous. It returns the partition point within
// members and the joined bounds of the two sides.
//
// At least one member lands in the first bucket and one in the last,
// since the interval mapping sends the extreme centroids there, so
// every candidate split point has two non-empty sides and the returned
// mid always lies strictly inside members.
func (b *builder) bucketSplit(members []int64, splitAxis axis, aabbBounds, centroidBounds *Box, splitExtent float64) (mid int, leftBox, rightBox Box) {
	axisMin := centroidBounds.axisMin(splitAxis)

	var buckets [numBuckets]bucket
	for i := range buckets {
		buckets[i].box = EmptyBox
	}
	for _, s := range members {
		box := &b.boxes[s]
		i := bucketIndex(box, splitAxis, axisMin, splitExtent)
		buckets[i].size++
		buckets[i].box.Expand(box)
	}

	// Score each split point and keep the first minimum. A split with
	// an empty side scores NaN (zero count times infinite empty-box
	// area), which never compares below the running best, so only
	// two-sided splits are ever chosen; the bestSplit < 0 arm makes
	// the first candidate win outright if every cost is NaN, which can
	// happen when all member boxes are degenerate enough to have zero
	// total area.
	bestCost := math.Inf(1)
	bestSplit := -1
	for split := 0; split < numBuckets-1; split++ {
		l := bucket{box: EmptyBox}
		r := bucket{box: EmptyBox}
		for i := 0; i <= split; i++ {
			l.size += buckets[i].size
			l.box.Expand(&buckets[i].box)
		}
		for i := split + 1; i < numBuckets; i++ {
			r.size += buckets[i].size
			r.box.Expand(&buckets[i].box)
		}
		cost := (float64(l.size)*l.box.area() + float64(r.size)*r.box.area()) / aabbBounds.area()
		if bestSplit < 0 || cost < bestCost {
			bestCost = cost
			bestSplit = split
			leftBox = l.box
			rightBox = r.box
		}
	}

	// Reorder members so the chosen split is contiguous: bucket index
	// <= bestSplit on the left, the rest on the right. The scratch
	// buffer is shared across partition steps, which is safe because
	// the reorder completes before either side recurses.
	scratch := b.scratch[:0]
	mid = 0
	for _, s := range members {
		box := &b.boxes[s]
		if bucketIndex(box, splitAxis, axisMin, splitExtent) <= bestSplit {
			members[mid] = s
			mid++
		} else {
			scratch = append(scratch, s)
		}
	}
	copy(members[mid:], scratch)
	return mid, leftBox, rightBox
}

// bucketIndex maps a shape's normalized centroid position along the
// split axis into a bucket. The 0.01 fudge keeps the product strictly
// below numBuckets when the centroid sits on the interval's upper
// bound.
func bucketIndex(box *Box, a axis, axisMin, extent float64) int {
	var c float64
	if a == xAxis {
		c = box.midX()
	} else {
		c = box.midY()
	}
	rel := (c - axisMin) / extent
	return int(rel * (numBuckets - 0.01))
}
