// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bytesutil provides small helpers for fixed-layout byte buffers.
package bytesutil

// Fill sets every byte of b to v.
func Fill(b []byte, v byte) {
	for i := 0; i < len(b); i++ {
		b[i] = v
	}
}

// Repeat returns a new slice of n bytes, all set to v.
func Repeat(v byte, n int) []byte {
	b := make([]byte, n)
	if v != 0 {
		Fill(b, v)
	}
	return b
}

// All reports whether every byte of b equals v.  An empty slice
// trivially satisfies the predicate.
func All(b []byte, v byte) bool {
	for i := 0; i < len(b); i++ {
		if b[i] != v {
			return false
		}
	}
	return true
}

// Resize returns a copy of b that is exactly n bytes long.  Bytes
// past n are dropped and missing bytes are zero; the prefix keeps
// its original offsets.
func Resize(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Clone returns a copy of b that shares no memory with it.  A nil
// input yields an empty, non-nil slice.
func Clone(b []byte) []byte {
	return Resize(b, len(b))
}
