// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bvhfile

import (
	"io"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/gogama/bvh"
	"github.com/gogama/bvh/bvhfile/flat"
	"github.com/gogama/bvh/littleendian"
)

// A Reader reads a BVH index file from an underlying stream.
type Reader struct {
	stateful
	// r is the stream to read from.
	r io.Reader
	// version is the format version read from the magic number.
	version FormatVersion
	// header is the decoded file header.
	header Header
}

// NewReader creates a Reader that reads a BVH index file from r.
// Panics if r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		textPanic("nil reader")
	}
	return &Reader{r: r}
}

// Version returns the file's format version. It is valid only after a
// successful Header call.
func (r *Reader) Version() FormatVersion {
	return r.version
}

// Header reads the magic number and the file header. It must be the
// first read.
func (r *Reader) Header() (Header, error) {
	var err error
	if err = r.toState(uninitialized, afterHeader); err == errUnexpectedState {
		return Header{}, textErr("header already read")
	} else if err != nil {
		return Header{}, err
	}

	// Read and validate the magic number.
	v, err := Magic(r.r)
	if err != nil {
		return Header{}, r.toErr(wrapErr("failed to read magic number", err))
	}
	if v.Major < MinFormatMajorVersion || v.Major > MaxFormatMajorVersion {
		return Header{}, r.toErr(fmtErr("unsupported format version %d.%d", v.Major, v.Patch))
	}
	r.version = v

	// Read the header table's size prefix, then the table itself.
	buf := make([]byte, flatbuffers.SizeUint32)
	if _, err = io.ReadFull(r.r, buf); err != nil {
		return Header{}, r.toErr(wrapErr("failed to read header size", err))
	}
	size := littleendian.Uint32(buf)
	if size > headerMaxLen {
		return Header{}, r.toErr(fmtErr("header size %d exceeds maximum %d", size, headerMaxLen))
	}
	table := make([]byte, flatbuffers.SizeUint32+int(size))
	copy(table, buf)
	if _, err = io.ReadFull(r.r, table[flatbuffers.SizeUint32:]); err != nil {
		return Header{}, r.toErr(wrapErr("failed to read header", err))
	}

	// Decode the header fields, trapping FlatBuffers panics.
	var numShapes int64
	var bounds bvh.Box
	err = safeFlatBuffersInteraction(func() error {
		h := flat.GetSizePrefixedRootAsHeader(table, 0)
		numShapes = h.NumShapes()
		bounds = bvh.Box{XMin: h.XMin(), YMin: h.YMin(), XMax: h.XMax(), YMax: h.YMax()}
		return nil
	})
	if err != nil {
		return Header{}, r.toErr(wrapErr("failed to decode header", err))
	}
	if numShapes < 0 || uint64(numShapes) > math.MaxInt {
		return Header{}, r.toErr(fmtErr("invalid header shape count %d", numShapes))
	}

	r.header = Header{NumShapes: int(numShapes), Bounds: bounds}
	return r.header, nil
}

// Index reads the node arena and returns the in-memory index. If the
// header has not been read yet, Index reads it first.
func (r *Reader) Index() (*bvh.BVH, error) {
	if r.err == nil && r.state == uninitialized {
		if _, err := r.Header(); err != nil {
			return nil, err
		}
	}

	var err error
	if err = r.toState(afterHeader, afterIndex); err == errUnexpectedState {
		return nil, textErr("index already read")
	} else if err != nil {
		return nil, err
	}

	index, err := bvh.Unmarshal(r.r, r.header.NumShapes)
	if err != nil {
		return nil, r.toErr(wrapErr("failed to read index", err))
	}
	if index.Bounds() != r.header.Bounds {
		return nil, r.toErr(textErr("header bounds do not match index bounds"))
	}
	return index, nil
}

// Close closes the underlying stream if it is an io.Closer.
func (r *Reader) Close() error {
	return r.close(r.r)
}

// Read reads a complete BVH index file and returns the in-memory
// index. The stream is not closed. Panics if r is nil.
func Read(r io.Reader) (*bvh.BVH, error) {
	return NewReader(r).Index()
}
