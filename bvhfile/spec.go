// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package bvhfile reads and writes a persisted form of a bvh.BVH
// index: an 8-byte magic number, a size-prefixed FlatBuffers header
// recording the shape count and bounds, and the serialized node arena.
package bvhfile

import (
	"io"
)

const (
	// magicLen is the length of the BVH file magic number in bytes.
	magicLen = 8
	// MinFormatMajorVersion is the minimum major version of the file
	// format that this package can read.
	MinFormatMajorVersion = 0x01
	// MaxFormatMajorVersion is the maximum major version of the file
	// format that this package can read.
	MaxFormatMajorVersion = 0x01
	// headerMaxLen is an artificial limit, not inherent to the format,
	// on the maximum header size this package will read. It prevents a
	// corrupted or malicious size prefix from causing a huge and
	// pointless memory allocation.
	headerMaxLen = 64 * 1024
)

// magic contains the BVH file magic number.
//
// The fourth byte is the format major version of data written by this
// package, and the last byte is the format patch version of data
// written by this package.
var magic = [magicLen]byte{0x62, 0x76, 0x68, 0x01, 0x69, 0x64, 0x78, 0x00}

// FormatVersion is a version of the BVH file format.
type FormatVersion struct {
	// Major is the major version of the file format.
	Major uint8
	// Patch is the patch version of the file format.
	Patch uint8
}

// Magic reads the BVH file magic number from a stream and, if it is
// valid, returns the file's format version. This function can be used
// to test whether any file seems to be in the BVH index format.
// However, it does not read beyond the magic number.
//
// Calling this function consumes 8 bytes from the stream (or all
// available bytes, if fewer than 8 remain).
func Magic(r io.Reader) (FormatVersion, error) {
	m := make([]byte, magicLen)
	_, err := io.ReadFull(r, m)
	if err != nil {
		return FormatVersion{}, err
	}
	if m[0] == magic[0] &&
		m[1] == magic[1] &&
		m[2] == magic[2] &&
		m[4] == magic[4] &&
		m[5] == magic[5] &&
		m[6] == magic[6] {
		return FormatVersion{m[3], m[7]}, nil
	}
	return FormatVersion{}, textErr("invalid magic number")
}
