// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvh

import "math"

// A Box is a two-dimensional axis-aligned bounding rectangle. A
// non-empty Box satisfies XMin <= XMax and YMin <= YMax.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the identity value for Expand: expanding EmptyBox by any
// real box or point yields that box or point. Code that accumulates a
// bound over a collection must start from EmptyBox, not the zero Box,
// since the zero Box already contains the origin.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// An axis selects one coordinate of a point or box.
type axis uint8

const (
	xAxis axis = iota
	yAxis
)

// Width returns the box's extent along the X-axis.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the box's extent along the Y-axis.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Expand grows b to the smallest box containing both b and c. The
// parameter box is not changed.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// ExpandXY grows b to the smallest box containing b and the point
// (x, y).
func (b *Box) ExpandXY(x, y float64) {
	if x < b.XMin {
		b.XMin = x
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// ContainsXY reports whether the point (x, y) lies within b, inclusive
// of the boundary on both axes.
func (b *Box) ContainsXY(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// area returns the box's surface area. Construction uses it purely as
// a relative cost metric, so the value for an empty or inverted box,
// while positive, has no geometric meaning.
func (b *Box) area() float64 {
	return (b.XMax - b.XMin) * (b.YMax - b.YMin)
}

// largestAxis returns the axis along which b has the greater extent.
// X wins only on strict inequality.
func (b *Box) largestAxis() axis {
	if b.Width() > b.Height() {
		return xAxis
	}
	return yAxis
}

// axisMin returns the box's minimum coordinate along a.
func (b *Box) axisMin(a axis) float64 {
	if a == xAxis {
		return b.XMin
	}
	return b.YMin
}

// axisExtent returns the box's extent along a.
func (b *Box) axisExtent(a axis) float64 {
	if a == xAxis {
		return b.Width()
	}
	return b.Height()
}
