// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh

import (
	"fmt"
	"strconv"
)

// String returns a compact "[XMin,YMin,XMax,YMax]" rendering of the
// box.
func (b Box) String() string {
	return "[" + formatFloat(b.XMin) + "," + formatFloat(b.YMin) + "," +
		formatFloat(b.XMax) + "," + formatFloat(b.YMax) + "]"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}

// String returns a summary description of the BVH.
func (b *BVH) String() string {
	return fmt.Sprintf("BVH{Bounds:%s,NumShapes:%d}", b.Bounds(), b.numShapes)
}
