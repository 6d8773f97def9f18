// Copyright 2024 The bvh (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package littleendian provides minimal little-endian byte order
// primitives shared by the bvh serialization code.
package littleendian

// Uint32 decodes a little-endian uint32 from the first four bytes of b.
func Uint32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler: see golang.org/issue/14808
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// PutUint32 encodes v into the first four bytes of b in little-endian
// byte order.
func PutUint32(b []byte, v uint32) {
	_ = b[3] // Bounds check hint to compiler: see golang.org/issue/14808
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
