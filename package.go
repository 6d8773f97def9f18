// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package bvh provides a static bounding volume hierarchy over
// two-dimensional axis-aligned boxes, together with point-containment
// search algorithms over it.
//
// The hierarchy is built once, from a fixed shape collection, using a
// bucketed surface-area heuristic, and is immutable afterward. Searches
// return candidate shape indices whose bounding boxes contain the query
// point; callers are expected to run an exact geometric test on each
// candidate.
package bvh
