// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pvm

import "github.com/luxfi/jamcodec/codec"

// YProgram is a decoded Y-format (preimage-embedded) program header.
type YProgram struct {
	Metadata  []byte
	ZoneSize  uint16
	StackSize uint64
	ReadOnly  []byte
	ReadWrite []byte
	Code      []byte
}

// DecodeProgram decodes the Y-format: encode(natural |m|) ∥ m ∥
// encode[3](|o|) ∥ encode[3](|w|) ∥ encode[2](z) ∥ encode[3](s) ∥ o ∥ w ∥
// encode[4](|c|) ∥ c. All inner fixed-length integers are little-endian.
func DecodeProgram(b []byte) (YProgram, []byte, error) {
	var p YProgram

	meta, b, err := codec.DecodeBlob(b)
	if err != nil {
		return YProgram{}, nil, err
	}
	p.Metadata = meta

	oLen, b, err := codec.DecodeFixed(3, b)
	if err != nil {
		return YProgram{}, nil, err
	}
	wLen, b, err := codec.DecodeFixed(3, b)
	if err != nil {
		return YProgram{}, nil, err
	}
	z, b, err := codec.Decode2(b)
	if err != nil {
		return YProgram{}, nil, err
	}
	p.ZoneSize = z
	s, b, err := codec.DecodeFixed(3, b)
	if err != nil {
		return YProgram{}, nil, err
	}
	p.StackSize = s

	if uint64(len(b)) < oLen {
		return YProgram{}, nil, codec.Errf(codec.InsufficientData, "pvm: read-only section (%d bytes)", oLen)
	}
	p.ReadOnly = append([]byte(nil), b[:oLen]...)
	b = b[oLen:]

	if uint64(len(b)) < wLen {
		return YProgram{}, nil, codec.Errf(codec.InsufficientData, "pvm: read-write section (%d bytes)", wLen)
	}
	p.ReadWrite = append([]byte(nil), b[:wLen]...)
	b = b[wLen:]

	cLen, b, err := codec.Decode4(b)
	if err != nil {
		return YProgram{}, nil, err
	}
	if uint64(len(b)) < uint64(cLen) {
		return YProgram{}, nil, codec.Errf(codec.InsufficientData, "pvm: code section (%d bytes)", cLen)
	}
	p.Code = append([]byte(nil), b[:cLen]...)
	b = b[cLen:]

	return p, b, nil
}

// IsValidProgram reports whether value parses as a well-formed Y-format
// program header. This is the single boolean the state-key classifier
// depends on; it never executes the program.
func IsValidProgram(value []byte) bool {
	_, _, err := DecodeProgram(value)
	return err == nil
}
