// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

// Entropy is the four-hash entropy chapter: the running accumulator plus
// the three epoch-boundary snapshots, in fixed order. Exactly 128 bytes
// on the wire.
type Entropy struct {
	Accumulator Hash
	E1          Hash
	E2          Hash
	E3          Hash
}

func EncodeEntropy(e Entropy) []byte {
	out := make([]byte, 0, 128)
	out = append(out, EncodeHash(e.Accumulator)...)
	out = append(out, EncodeHash(e.E1)...)
	out = append(out, EncodeHash(e.E2)...)
	out = append(out, EncodeHash(e.E3)...)
	return out
}

func DecodeEntropy(b []byte) (Entropy, []byte, error) {
	var e Entropy
	var err error
	e.Accumulator, b, err = DecodeHash(b)
	if err != nil {
		return Entropy{}, nil, err
	}
	e.E1, b, err = DecodeHash(b)
	if err != nil {
		return Entropy{}, nil, err
	}
	e.E2, b, err = DecodeHash(b)
	if err != nil {
		return Entropy{}, nil, err
	}
	e.E3, b, err = DecodeHash(b)
	if err != nil {
		return Entropy{}, nil, err
	}
	return e, b, nil
}
