// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// EncodeFixed writes x as length bytes, little-endian. It fails with
// OutOfRange if x does not fit in length bytes.
func EncodeFixed(length int, x uint64) ([]byte, error) {
	if length < 8 && x>>uint(8*length) != 0 {
		return nil, Errf(OutOfRange, "fixed[%d]: value %d does not fit", length, x)
	}
	out := make([]byte, length)
	putUintLE(out, x, length)
	return out, nil
}

// DecodeFixed reads length little-endian bytes from the front of b.
func DecodeFixed(length int, b []byte) (uint64, []byte, error) {
	if len(b) < length {
		return 0, nil, Errf(InsufficientData, "fixed[%d]: need %d bytes, have %d", length, length, len(b))
	}
	return getUintLE(b[:length]), b[length:], nil
}

// Convenience aliases for the fixed integer widths used by the entity
// codecs. Encode1/2/4/8 panic-free wrappers that callers use when the
// value is statically known to fit (e.g. a uint32 passed to Encode4);
// Decode1/2/4/8 are the matching readers.

func Encode1(x uint8) []byte {
	b, _ := EncodeFixed(1, uint64(x))
	return b
}

func Encode2(x uint16) []byte {
	b, _ := EncodeFixed(2, uint64(x))
	return b
}

func Encode4(x uint32) []byte {
	b, _ := EncodeFixed(4, uint64(x))
	return b
}

func Encode8(x uint64) []byte {
	b, _ := EncodeFixed(8, x)
	return b
}

func Decode1(b []byte) (uint8, []byte, error) {
	x, rest, err := DecodeFixed(1, b)
	return uint8(x), rest, err
}

func Decode2(b []byte) (uint16, []byte, error) {
	x, rest, err := DecodeFixed(2, b)
	return uint16(x), rest, err
}

func Decode4(b []byte) (uint32, []byte, error) {
	x, rest, err := DecodeFixed(4, b)
	return uint32(x), rest, err
}

func Decode8(b []byte) (uint64, []byte, error) {
	return DecodeFixed(8, b)
}

// EncodeIdentity and DecodeIdentity handle identity-encoded fields
// (hashes, ring roots, ed25519 keys) that carry no length prefix and are
// never truncated or padded.

func EncodeIdentity(length int, x []byte) ([]byte, error) {
	if len(x) != length {
		return nil, Errf(OutOfRange, "identity[%d]: got %d bytes", length, len(x))
	}
	out := make([]byte, length)
	copy(out, x)
	return out, nil
}

func DecodeIdentity(length int, b []byte) ([]byte, []byte, error) {
	if len(b) < length {
		return nil, nil, Errf(InsufficientData, "identity[%d]: need %d bytes, have %d", length, length, len(b))
	}
	out := make([]byte, length)
	copy(out, b[:length])
	return out, b[length:], nil
}
