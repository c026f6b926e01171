// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// EncodeSeq writes a variable (length-prefixed) homogeneous sequence: a
// natural length followed by each element's encoding in order.
func EncodeSeq[T any](items []T, encode func(T) []byte) []byte {
	out := EncodeNat(Nat(len(items)))
	for _, item := range items {
		out = append(out, encode(item)...)
	}
	return out
}

// DecodeSeq reads a natural length prefix, then that many elements.
func DecodeSeq[T any](b []byte, decode func([]byte) (T, []byte, error)) ([]T, []byte, error) {
	n, rest, err := DecodeNat(b)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, rest, nil
	}
	if n > Nat(len(rest)) {
		return nil, nil, Errf(InsufficientData, "sequence: length %d exceeds %d remaining bytes", n, len(rest))
	}
	items := make([]T, 0, n)
	for i := Nat(0); i < n; i++ {
		var item T
		item, rest, err = decode(rest)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	return items, rest, nil
}

// EncodeFixedSeq writes a fixed-count homogeneous sequence: no length
// prefix, because the element count is supplied by the caller (derived
// from configuration or context) rather than carried on the wire.
func EncodeFixedSeq[T any](items []T, encode func(T) []byte) []byte {
	var out []byte
	for _, item := range items {
		out = append(out, encode(item)...)
	}
	return out
}

// DecodeFixedSeq reads exactly count elements with no length prefix.
func DecodeFixedSeq[T any](b []byte, count int, decode func([]byte) (T, []byte, error)) ([]T, []byte, error) {
	if count == 0 {
		return nil, b, nil
	}
	items := make([]T, 0, count)
	rest := b
	var err error
	for i := 0; i < count; i++ {
		var item T
		item, rest, err = decode(rest)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	return items, rest, nil
}
