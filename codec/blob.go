// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// EncodeBlob writes a length-prefixed octet string: the natural-encoded
// length followed by the octets themselves.
func EncodeBlob(x []byte) []byte {
	out := EncodeNat(Nat(len(x)))
	return append(out, x...)
}

// DecodeBlob reads a natural length prefix and then exactly that many
// bytes.
func DecodeBlob(b []byte) ([]byte, []byte, error) {
	n, rest, err := DecodeNat(b)
	if err != nil {
		return nil, nil, err
	}
	if Nat(len(rest)) < n {
		return nil, nil, Errf(InsufficientData, "blob: need %d bytes, have %d", n, len(rest))
	}
	if n == 0 {
		return nil, rest, nil
	}
	out := make([]byte, n)
	copy(out, rest[:n])
	return out, rest[n:], nil
}
