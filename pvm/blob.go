// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pvm decodes the two PVM program blob formats used by the
// state-key classifier: the jump-table "Deblob" format and the
// preimage-embedded "Y-format". Neither decoder executes the program;
// both exist purely to validate that a byte string is a well-formed
// program header.
package pvm

import "github.com/luxfi/jamcodec/codec"

// Program is a decoded Deblob-format program: a jump table, the code
// section, and a bitmask over the code bytes.
type Program struct {
	JumpTableEntrySize uint8
	JumpTable          [][]byte
	Code               []byte
	Bitmask            []byte
}

// DecodeBlob decodes the Deblob format: encode(natural |j|) ∥
// encode[1](z) ∥ encode(natural |c|) ∥ j-table (|j|·z bytes, big-endian z
// bytes each) ∥ c (|c| bytes of code) ∥ bitmask (LSB-first, ceil(|c|/8)
// bytes).
func DecodeBlob(b []byte) (Program, []byte, error) {
	jlen, b, err := codec.DecodeNat(b)
	if err != nil {
		return Program{}, nil, err
	}
	if len(b) < 1 {
		return Program{}, nil, codec.Errf(codec.InsufficientData, "pvm: jump table entry size")
	}
	z := b[0]
	b = b[1:]

	clen, b, err := codec.DecodeNat(b)
	if err != nil {
		return Program{}, nil, err
	}

	// z==0 entries carry no byte cost, so the usual "bytes needed" bound
	// can't rule out an absurd jlen; cap the entry count against the
	// remaining input either way rather than trusting the Nat as-is.
	if z == 0 {
		if jlen > uint64(len(b)) {
			return Program{}, nil, codec.Errf(codec.InsufficientData, "pvm: jump table (%d zero-size entries)", jlen)
		}
	} else if jlen > uint64(len(b))/uint64(z) {
		return Program{}, nil, codec.Errf(codec.InsufficientData, "pvm: jump table (%d entries of %d bytes)", jlen, z)
	}
	jtableBytes := int(jlen) * int(z)
	if len(b) < jtableBytes {
		return Program{}, nil, codec.Errf(codec.InsufficientData, "pvm: jump table (%d bytes)", jtableBytes)
	}
	jtable := make([][]byte, jlen)
	for i := range jtable {
		jtable[i] = append([]byte(nil), b[i*int(z):(i+1)*int(z)]...)
	}
	b = b[jtableBytes:]

	if clen > uint64(len(b)) {
		return Program{}, nil, codec.Errf(codec.InsufficientData, "pvm: code (%d bytes)", clen)
	}
	code := append([]byte(nil), b[:clen]...)
	b = b[clen:]

	maskLen := int((clen + 7) / 8)
	if len(b) < maskLen {
		return Program{}, nil, codec.Errf(codec.InsufficientData, "pvm: bitmask (%d bytes)", maskLen)
	}
	mask := append([]byte(nil), b[:maskLen]...)
	b = b[maskLen:]

	return Program{
		JumpTableEntrySize: z,
		JumpTable:          jtable,
		Code:               code,
		Bitmask:            mask,
	}, b, nil
}
