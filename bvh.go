// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh

import "unsafe"

// A node is one slot in the flat arena backing a BVH.
//
// A leaf node references a single shape in the caller's shape slice,
// and records that shape's bounding box in leftBox. An internal node
// references its two children by arena index and records each child
// subtree's bounding box, so that traversal can prune a subtree without
// dereferencing its root.
//
// Every field is an eight-byte word, so the whole arena can be viewed
// and byte-order-fixed as a flat run of octets (see native_bigendian.go).
type node struct {
	// leftBox is the bound of the left child subtree, or, on a leaf,
	// the bound of the referenced shape.
	leftBox Box
	// rightBox is the bound of the right child subtree. Unused on a
	// leaf.
	rightBox Box
	// left and right are the children's arena indices. Both are zero
	// on a leaf.
	left  int64
	right int64
	// shape is the referenced shape's index in the shape slice the BVH
	// was built from. It is -1 on an internal node.
	shape int64
}

const numNodeBytes = int(unsafe.Sizeof(node{}))

// isLeaf reports whether n is a leaf node. The root always occupies
// arena slot 0 and children always occupy strictly higher slots, so no
// internal node can have slot 0 as its left child.
func (n *node) isLeaf() bool {
	return n.left == 0
}

// A BVH is a static bounding volume hierarchy over a fixed collection
// of two-dimensional shapes. Use New to build one.
//
// A built BVH is immutable. Concurrent searches of the same BVH from
// multiple goroutines are safe without coordination, since each search
// owns its own traversal state.
type BVH struct {
	// numShapes is the number of shapes the hierarchy was built from.
	numShapes int
	// bounds is the bound of every indexed shape, or EmptyBox when
	// numShapes is zero.
	bounds Box
	// nodes is the node arena: 2n-1 slots for n indexed shapes (a
	// single leaf for n = 1, empty for n = 0), with the root at slot 0
	// and every child at a strictly higher slot than its parent.
	nodes []node
}

// NumShapes returns the number of shapes the BVH was built from.
func (b *BVH) NumShapes() int {
	return b.numShapes
}

// Bounds returns the bounding box around every shape indexed by the
// BVH. It returns EmptyBox when the BVH indexes no shapes.
func (b *BVH) Bounds() Box {
	return b.bounds
}

// rootBounds derives the total bound recorded in the arena: the join
// of the root's child boxes, or the shape box of a lone root leaf.
func (b *BVH) rootBounds() Box {
	if len(b.nodes) == 0 {
		return EmptyBox
	}
	root := &b.nodes[0]
	if root.isLeaf() {
		return root.leftBox
	}
	bounds := root.leftBox
	bounds.Expand(&root.rightBox)
	return bounds
}
