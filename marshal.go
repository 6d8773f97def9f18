// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh

import (
	"io"
	"math"
	"unsafe"
)

// Size returns the serialized size in bytes of a BVH node arena built
// from numShapes shapes. Panics if numShapes is negative, and returns
// an error if integer overflow occurs. A zero shape count has size
// zero.
func Size(numShapes int) (int64, error) {
	validateNumShapes(numShapes)
	return size(numShapes)
}

func validateNumShapes(numShapes int) {
	if numShapes < 0 {
		textPanic("negative shape count")
	}
}

func size(numShapes int) (int64, error) {
	numNodes, err := totalNodes(numShapes)
	if err != nil {
		return 0, err
	}
	if int64(numNodes) > math.MaxInt64/int64(numNodeBytes) {
		return 0, textErr("arena size overflows int64")
	}
	return int64(numNodes) * int64(numNodeBytes), nil
}

// totalNodes returns the arena length for a shape count: 2n-1 nodes
// for n shapes, or zero for an empty index. Returns an error if the
// count overflows int.
func totalNodes(numShapes int) (n int, err error) {
	if numShapes == 0 {
		return 0, nil
	}
	if numShapes > math.MaxInt/2 {
		return 0, textErr("total node count overflows int")
	}
	return 2*numShapes - 1, nil
}

// Marshal serializes the BVH node arena as little-endian octets to a
// writer, returning the number of bytes written. An empty index
// writes nothing. Panics if w is nil.
//
// The shape count is not part of the serialized form; callers that
// need a self-describing layout should frame the arena, for example
// with the bvhfile package.
func (b *BVH) Marshal(w io.Writer) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	}
	if len(b.nodes) == 0 {
		return 0, nil
	}
	ptr := (*byte)(unsafe.Pointer(&b.nodes[0]))
	src := unsafe.Slice(ptr, numNodeBytes*len(b.nodes))
	return writeLittleEndianOctets(w, src)
}

// Unmarshal deserializes a node arena previously written by Marshal,
// returning the in-memory BVH. The shape count must be supplied by the
// caller and must match the count the arena was built from. Panics if
// r is nil or numShapes is negative.
func Unmarshal(r io.Reader, numShapes int) (*BVH, error) {
	if r == nil {
		textPanic("nil reader")
	}
	validateNumShapes(numShapes)

	b := &BVH{numShapes: numShapes, bounds: EmptyBox}
	numNodes, err := totalNodes(numShapes)
	if err != nil {
		return nil, err
	}
	if numNodes == 0 {
		return b, nil
	}

	// Read the raw nodes directly into the arena. On a big-endian
	// system the byte order of every word is backward until fixed.
	b.nodes = make([]node, numNodes)
	ptr := (*byte)(unsafe.Pointer(&b.nodes[0]))
	dst := unsafe.Slice(ptr, numNodeBytes*len(b.nodes))
	if _, err = io.ReadFull(r, dst); err != nil {
		return nil, wrapErr("failed to read arena bytes", err)
	}
	fixLittleEndianOctets(dst)

	if err = b.validate(); err != nil {
		return nil, err
	}
	b.bounds = b.rootBounds()
	return b, nil
}

// validate rejects arenas whose links escape the arena or whose leaf
// shape indices escape the shape slice, so that a corrupted stream
// fails here rather than during a later search.
func (b *BVH) validate() error {
	numNodes := int64(len(b.nodes))
	for i := range b.nodes {
		n := &b.nodes[i]
		if n.isLeaf() {
			if n.shape < 0 || n.shape >= int64(b.numShapes) {
				return fmtErr("node %d: shape index %d out of range", i, n.shape)
			}
		} else if n.left <= int64(i) || n.left >= numNodes || n.right <= int64(i) || n.right >= numNodes {
			return fmtErr("node %d: child link out of range", i)
		}
	}
	return nil
}

func readLittleEndianNodes(r io.Reader, i, j int, nodes []node) error {
	ptr := (*byte)(unsafe.Pointer(&nodes[i]))
	b := unsafe.Slice(ptr, (j-i)*numNodeBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return err
	}
	fixLittleEndianOctets(b)
	return nil
}
