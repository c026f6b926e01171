// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"sort"
)

// EncodeSet writes a variable sequence, sorting elements by their
// canonical encoding ascending before emission. This is the only
// "ordering guarantee" this package makes: two runs over equal logical
// sets, regardless of the order elements were supplied in, produce
// byte-identical output. Decoding back through a set that was originally
// out of order is deliberately lossy: the container never distinguishes
// "sorted because the encoder sorted it" from "happened to already be
// sorted".
func EncodeSet[T any](items []T, encode func(T) []byte) []byte {
	encoded := make([][]byte, len(items))
	for i, item := range items {
		encoded[i] = encode(item)
	}
	sort.Slice(encoded, func(i, j int) bool {
		return bytes.Compare(encoded[i], encoded[j]) < 0
	})
	out := EncodeNat(Nat(len(encoded)))
	for _, e := range encoded {
		out = append(out, e...)
	}
	return out
}

// DecodeSet reads a variable sequence of elements. The decoder accepts
// any order on the wire; callers that need the sorted invariant should
// re-encode, not assume the input was already sorted.
func DecodeSet[T any](b []byte, decode func([]byte) (T, []byte, error)) ([]T, []byte, error) {
	return DecodeSeq(b, decode)
}

