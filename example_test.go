// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh_test

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/gogama/bvh"
)

// A rect is a minimal shape for example purposes: its bound is itself.
type rect struct {
	box bvh.Box
}

func (r rect) Box() bvh.Box {
	return r.box
}

// Create a shape slice for example purposes.
var shapes = []rect{
	{box: bvh.Box{XMin: 0, YMin: 0, XMax: 2, YMax: 2}},
	{box: bvh.Box{XMin: 1, YMin: 0, XMax: 3, YMax: 2}},
	{box: bvh.Box{XMin: 0, YMin: 1, XMax: 2, YMax: 3}},
	{box: bvh.Box{XMin: 1, YMin: 1, XMax: 3, YMax: 3}},
}

func ExampleNew() {
	index := bvh.New(shapes)

	fmt.Println(index)
	// Output: BVH{Bounds:[0,0,3,3],NumShapes:4}
}

func ExampleBVH_Search() {
	index := bvh.New(shapes)

	rs1 := index.Search(1.5, 1.5) // Search 1: every box overlaps here.
	fmt.Println("Search 1:", rs1)

	rs2 := index.Search(0.5, 2.5) // Search 2: only shape 2.
	fmt.Println("Search 2:", rs2)

	rs3 := index.Search(10, 10) // Search 3: outside the total bounds.
	fmt.Println("Search 3:", rs3)
	// Output: Search 1: [0 1 2 3]
	// Search 2: [2]
	// Search 3: []
}

func ExampleBVH_SearchBuf() {
	index := bvh.New(shapes)

	buf := make([]int, 2) // Room for the first two candidates only.
	n := index.SearchBuf(1.5, 1.5, buf)

	fmt.Println(n, buf[:n])
	// Output: 2 [0 1]
}

func ExampleBVH_SearchPoint() {
	index := bvh.New(shapes)

	s := index.SearchPoint(0.5, 2.5)
	for {
		i, ok := s.Next()
		if !ok {
			break
		}
		fmt.Println("candidate:", i)
	}
	// Output: candidate: 2
}

func ExampleUnmarshal() {
	// Marshal an index to bytes so that we can Unmarshal it.
	index := bvh.New(shapes)
	var b bytes.Buffer
	_, _ = index.Marshal(&b) // Ignore error ONLY to keep example simple.

	// Unmarshal from bytes. The shape count is not part of the
	// serialized form, so the caller supplies it.
	index, _ = bvh.Unmarshal(&b, len(shapes))
	fmt.Println(index)
	// Output: BVH{Bounds:[0,0,3,3],NumShapes:4}
}

func ExampleSeek() {
	// Marshal an index to bytes so that we can seek within the raw bytes.
	index := bvh.New(shapes)
	var b bytes.Buffer
	_, _ = index.Marshal(&b) // Ignore error ONLY to keep example simple.

	// Do three streaming searches on the raw index bytes. Seek does not
	// define a result order, so sort before printing.
	rs1, err1 := bvh.Seek(bytes.NewReader(b.Bytes()), len(shapes), 1.5, 1.5)
	sort.Sort(rs1)
	fmt.Println("Seek 1:", rs1, err1)

	rs2, err2 := bvh.Seek(bytes.NewReader(b.Bytes()), len(shapes), 0.5, 2.5)
	sort.Sort(rs2)
	fmt.Println("Seek 2:", rs2, err2)

	rs3, err3 := bvh.Seek(bytes.NewReader(b.Bytes()), len(shapes), 10, 10)
	sort.Sort(rs3)
	fmt.Println("Seek 3:", rs3, err3)
	// Output: Seek 1: [0 1 2 3] <nil>
	// Seek 2: [2] <nil>
	// Seek 3: [] <nil>
}
