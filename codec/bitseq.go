// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// EncodeBits packs bits LSB-first: bit i of bits goes to bit (i mod 8) of
// byte floor(i/8). The caller-supplied-count shape (no length prefix) is
// used when the bit count is implied by configuration (e.g. an Assurance
// bitfield sized to Ccorecount).
func EncodeBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// DecodeBits unpacks count bits from the front of b, LSB-first, with no
// length prefix.
func DecodeBits(b []byte, count int) ([]bool, []byte, error) {
	need := (count + 7) / 8
	if len(b) < need {
		return nil, nil, Errf(InsufficientData, "bitseq: need %d bytes, have %d", need, len(b))
	}
	bits := make([]bool, count)
	for i := 0; i < count; i++ {
		bits[i] = b[i/8]&(1<<uint(i%8)) != 0
	}
	return bits, b[need:], nil
}

// EncodeBitsPrefixed writes a natural bit-count prefix followed by the
// packed bits.
func EncodeBitsPrefixed(bits []bool) []byte {
	out := EncodeNat(Nat(len(bits)))
	return append(out, EncodeBits(bits)...)
}

// DecodeBitsPrefixed reads a natural bit-count prefix, then that many
// packed bits.
func DecodeBitsPrefixed(b []byte) ([]bool, []byte, error) {
	n, rest, err := DecodeNat(b)
	if err != nil {
		return nil, nil, err
	}
	if n > (1<<31 - 1) {
		return nil, nil, Errf(Unsupported, "bitseq: bit count %d outside safe range", n)
	}
	return DecodeBits(rest, int(n))
}
