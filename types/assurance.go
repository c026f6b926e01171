// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"
	"sort"

	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// Assurance is one validator's bitfield of cores it holds availability
// data for, plus its signature over that claim. The bitfield carries no
// length prefix: its width is cfg.AssuranceBitfieldBytes(), derived from
// Ccorecount rather than hardcoded.
type Assurance struct {
	Anchor         Hash
	Availabilities []bool
	Assurer        uint16
	Signature      []byte
}

func EncodeAssurance(a Assurance) []byte {
	out := EncodeHash(a.Anchor)
	out = append(out, codec.EncodeBits(a.Availabilities)...)
	out = append(out, codec.Encode2(a.Assurer)...)
	out = append(out, codec.EncodeBlob(a.Signature)...)
	return out
}

func DecodeAssurance(b []byte, cfg config.Params) (Assurance, []byte, error) {
	var a Assurance
	var err error
	a.Anchor, b, err = DecodeHash(b)
	if err != nil {
		return Assurance{}, nil, err
	}
	bitCount := cfg.AssuranceBitfieldBytes() * 8
	a.Availabilities, b, err = codec.DecodeBits(b, bitCount)
	if err != nil {
		return Assurance{}, nil, err
	}
	a.Assurer, b, err = codec.Decode2(b)
	if err != nil {
		return Assurance{}, nil, err
	}
	a.Signature, b, err = codec.DecodeBlob(b)
	if err != nil {
		return Assurance{}, nil, err
	}
	return a, b, nil
}

// EncodeAssuranceSeq writes a variable sequence of assurances ordered by
// anchor ascending.
func EncodeAssuranceSeq(assurances []Assurance) []byte {
	sorted := make([]Assurance, len(assurances))
	copy(sorted, assurances)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Anchor[:], sorted[j].Anchor[:]) < 0
	})
	return codec.EncodeSeq(sorted, EncodeAssurance)
}

// DecodeAssuranceSeq reads a variable sequence of assurances. Input order
// is accepted as-is; re-encode to restore the anchor-ascending invariant.
func DecodeAssuranceSeq(b []byte, cfg config.Params) ([]Assurance, []byte, error) {
	return codec.DecodeSeq(b, func(in []byte) (Assurance, []byte, error) {
		return DecodeAssurance(in, cfg)
	})
}
