// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/jamcodec/codec"

// ValidatorKey is the 336-byte concatenation of a validator's four public
// credentials. It never carries a length prefix; the four fields are
// fixed-size and simply concatenated.
type ValidatorKey struct {
	Bandersnatch [32]byte
	Ed25519      [32]byte
	BLS          [144]byte
	Metadata     [128]byte
}

func EncodeValidatorKey(v ValidatorKey) []byte {
	out := make([]byte, 0, 336)
	out = append(out, v.Bandersnatch[:]...)
	out = append(out, v.Ed25519[:]...)
	out = append(out, v.BLS[:]...)
	out = append(out, v.Metadata[:]...)
	return out
}

func DecodeValidatorKey(b []byte) (ValidatorKey, []byte, error) {
	var v ValidatorKey
	bandersnatch, rest, err := codec.DecodeIdentity(32, b)
	if err != nil {
		return ValidatorKey{}, nil, err
	}
	copy(v.Bandersnatch[:], bandersnatch)

	ed25519, rest, err := codec.DecodeIdentity(32, rest)
	if err != nil {
		return ValidatorKey{}, nil, err
	}
	copy(v.Ed25519[:], ed25519)

	bls, rest, err := codec.DecodeIdentity(144, rest)
	if err != nil {
		return ValidatorKey{}, nil, err
	}
	copy(v.BLS[:], bls)

	metadata, rest, err := codec.DecodeIdentity(128, rest)
	if err != nil {
		return ValidatorKey{}, nil, err
	}
	copy(v.Metadata[:], metadata)

	return v, rest, nil
}
