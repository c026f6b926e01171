// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// UnionDecoder maps a one-byte discriminator to a decoder for that
// variant's payload. Entity codecs build one of these per tagged union
// (e.g. WorkResult's result field, FuzzMessage's payload) and pass it to
// DecodeUnion.
type UnionDecoder[T any] map[byte]func([]byte) (T, []byte, error)

// EncodeUnion writes the one-byte discriminator followed by the payload.
func EncodeUnion(tag byte, payload []byte) []byte {
	out := make([]byte, 0, 1+len(payload))
	out = append(out, tag)
	return append(out, payload...)
}

// DecodeUnion reads the discriminator byte and dispatches to the matching
// decoder in table. An unregistered tag is UnknownVariant.
func DecodeUnion[T any](b []byte, table UnionDecoder[T]) (T, []byte, error) {
	var zero T
	if len(b) < 1 {
		return zero, nil, Errf(InsufficientData, "union: need 1 byte, have 0")
	}
	decode, ok := table[b[0]]
	if !ok {
		return zero, nil, Errf(UnknownVariant, "union: tag 0x%02x", b[0])
	}
	return decode(b[1:])
}
