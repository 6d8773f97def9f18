// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh

import (
	"container/heap"
	"io"
	"math"
)

// Results is a slice of candidate shape indices which implements
// sort.Interface in ascending index order.
type Results []int

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results) Len() int {
	return len(rs)
}

// Less establishes an absolute ordering by ascending shape index. It
// implements the corresponding method of sort.Interface.
func (rs Results) Less(i, j int) bool {
	return rs[i] < rs[j]
}

// Swap swaps two elements of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}

// A ticketBag is the collection of pending arena slots to visit during
// a streaming search. It behaves as a min-heap on the slot index, so
// that the serialized arena, whose children always sit at higher
// offsets than their parents, is read strictly forward.
type ticketBag []int64

func (tq ticketBag) Len() int            { return len(tq) }
func (tq ticketBag) Less(i, j int) bool  { return tq[i] < tq[j] }
func (tq ticketBag) Swap(i, j int)       { tq[i], tq[j] = tq[j], tq[i] }
func (tq *ticketBag) Push(x interface{}) { *tq = append(*tq, x.(int64)) }
func (tq *ticketBag) Pop() interface{} {
	old := *tq
	n := len(old)
	x := old[n-1]
	*tq = old[0 : n-1]
	return x
}

func heapPush(tq *ticketBag, slot int64) {
	heap.Push(tq, slot)
}

func heapPop(tq *ticketBag) int64 {
	return heap.Pop(tq).(int64)
}

// Seek searches the serialized representation of a BVH node arena
// directly from a seekable stream, without unmarshalling the arena
// into memory, and returns the index of every shape whose bounding box
// contains the point (x, y). Only the nodes on pruning-surviving paths
// are read. The order of the results is not defined; sort them if a
// deterministic order is needed.
//
// The stream must be positioned at the first byte of an arena written
// by Marshal for the same shape count. If Seek returns without error,
// the stream is positioned ready to read the first byte after the
// arena.
func Seek(rs io.ReadSeeker, numShapes int, x, y float64) (Results, error) {
	if rs == nil {
		textPanic("nil read seeker")
	}
	validateNumShapes(numShapes)

	r := make(Results, 0)
	numNodes, err := totalNodes(numShapes)
	if err != nil {
		return nil, err
	}
	if numNodes == 0 {
		return r, nil
	}

	// Cache the start offset of the arena.
	startOffset, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, wrapErr("failed to cache arena start offset", err)
	}

	// Calculate the end offset of the arena and check for integer
	// overflow.
	sz, err := size(numShapes)
	if err != nil {
		return nil, err
	} else if sz > math.MaxInt64-startOffset {
		return nil, textErr("arena end offset overflows int64")
	}
	endOffset := startOffset + sz

	// Keep track of the current offset.
	offset := startOffset

	// fetch reads the single node at arena slot i into nodes.
	nodes := make([]node, numNodes)
	fetch := func(i int) error {
		rel := startOffset + int64(i)*int64(numNodeBytes) - offset
		if rel != 0 {
			offset, err = rs.Seek(rel, io.SeekCurrent)
			if err != nil {
				return wrapErr("failed to seek to node %d, rel. offset %d", err, i, rel)
			}
		}
		if err = readLittleEndianNodes(rs, i, i+1, nodes); err != nil {
			return wrapErr("failed to read node %d, rel. offset %d", err, i, rel)
		}
		offset += int64(numNodeBytes)
		return nil
	}

	// Walk the arena from the root, visiting pending slots in
	// ascending order so the stream is only ever read forward.
	q := make(ticketBag, 1)
	q[0] = 0
	for len(q) > 0 {
		slot := heapPop(&q)
		if err = fetch(int(slot)); err != nil {
			return nil, err
		}
		n := &nodes[slot]
		if n.isLeaf() {
			if n.shape < 0 || n.shape >= int64(numShapes) {
				return nil, fmtErr("node %d: shape index %d out of range", slot, n.shape)
			}
			// A root leaf reaches here untested; deeper leaves were
			// already tested via the parent's child box, for which
			// the repeated test is a no-op.
			if n.leftBox.ContainsXY(x, y) {
				r = append(r, int(n.shape))
			}
		} else {
			if n.left <= slot || n.left >= int64(numNodes) || n.right <= slot || n.right >= int64(numNodes) {
				return nil, fmtErr("node %d: child link out of range", slot)
			}
			if n.leftBox.ContainsXY(x, y) {
				heapPush(&q, n.left)
			}
			if n.rightBox.ContainsXY(x, y) {
				heapPush(&q, n.right)
			}
		}
	}

	// Skip to the end of the arena so callers can make reasonable
	// assumptions about the read cursor after a successful search.
	if endOffset != offset {
		if _, err = rs.Seek(endOffset, io.SeekStart); err != nil {
			return nil, wrapErr("failed to skip to end of arena after Seek", err)
		}
	}

	return r, nil
}
