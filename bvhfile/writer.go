// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvhfile

import (
	"io"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/gogama/bvh"
	"github.com/gogama/bvh/bvhfile/flat"
)

// A Header describes the indexed shape set recorded in a BVH index
// file.
type Header struct {
	// NumShapes is the number of shapes the index was built from.
	NumShapes int
	// Bounds is the bounding box around every indexed shape, or
	// bvh.EmptyBox for an empty index.
	Bounds bvh.Box
}

// A Writer writes a BVH index file to an underlying stream. The file
// sections must be written in order: Header, then Index, then Close.
type Writer struct {
	stateful
	// w is the stream to write to.
	w io.Writer
	// numShapes is the shape count recorded in the header, kept to
	// validate the index against.
	numShapes int
}

// NewWriter creates a Writer that writes a BVH index file to w. Panics
// if w is nil.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		textPanic("nil writer")
	}
	return &Writer{w: w}
}

// Header writes the magic number and the file header, returning the
// number of bytes written. It must be the first write. Panics if the
// header's shape count is negative.
func (w *Writer) Header(h Header) (n int, err error) {
	if h.NumShapes < 0 {
		textPanic("negative shape count")
	}

	if err = w.toState(uninitialized, afterHeader); err == errUnexpectedState {
		return 0, textErr("header already written")
	} else if err != nil {
		return 0, err
	}

	// Write the magic number.
	m, err := w.w.Write(magic[:])
	n += m
	if err != nil {
		return n, w.toErr(wrapErr("failed to write magic number", err))
	}

	// Build and write the size-prefixed header table.
	b := flatbuffers.NewBuilder(64)
	flat.HeaderStart(b)
	flat.HeaderAddNumShapes(b, int64(h.NumShapes))
	flat.HeaderAddXMin(b, h.Bounds.XMin)
	flat.HeaderAddYMin(b, h.Bounds.YMin)
	flat.HeaderAddXMax(b, h.Bounds.XMax)
	flat.HeaderAddYMax(b, h.Bounds.YMax)
	b.FinishSizePrefixed(flat.HeaderEnd(b))
	m, err = w.w.Write(b.FinishedBytes())
	n += m
	if err != nil {
		return n, w.toErr(wrapErr("failed to write header", err))
	}

	// Save the shape count so Index can be validated against it.
	w.numShapes = h.NumShapes

	return n, nil
}

// Index writes the index's node arena, returning the number of bytes
// written. It must follow Header, and the index's shape count must
// match the count the header recorded. Panics if index is nil.
func (w *Writer) Index(index *bvh.BVH) (n int, err error) {
	if index == nil {
		textPanic("nil index")
	}

	if err = w.toState(afterHeader, afterIndex); err == errUnexpectedState {
		return 0, textErr("index must be written immediately after header")
	} else if err != nil {
		return 0, err
	}

	if index.NumShapes() != w.numShapes {
		return 0, w.toErr(fmtErr("index shape count %d does not match header shape count %d", index.NumShapes(), w.numShapes))
	}

	n, err = index.Marshal(w.w)
	if err != nil {
		err = w.toErr(wrapErr("failed to write index", err))
	}
	return
}

// Close marks the writer finished, and closes the underlying stream if
// it is an io.Closer. Closing before the index section has been
// written is an error.
func (w *Writer) Close() error {
	if w.err == nil && w.state != afterIndex {
		return w.toErr(textErr("close before index written"))
	}
	return w.close(w.w)
}

// Write frames and writes index as a complete BVH index file,
// returning the number of bytes written. The stream is not closed.
// Panics if w is nil or index is nil.
func Write(w io.Writer, index *bvh.BVH) (n int, err error) {
	if index == nil {
		textPanic("nil index")
	}
	fw := NewWriter(w)
	m, err := fw.Header(Header{NumShapes: index.NumShapes(), Bounds: index.Bounds()})
	n += m
	if err != nil {
		return
	}
	m, err = fw.Index(index)
	n += m
	return
}
