// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types implements the L2 entity codecs: per-protocol-entity
// encoders and decoders built by composition over the primitives in
// package codec. Field order within every entity is the order written in
// this file: no reflection, no field-name dependence.
package types

import (
	"github.com/luxfi/jamcodec/codec"
)

// ServiceId, Timeslot, and Gas are the narrow numeric domains used
// throughout the wire format.
type (
	ServiceId = uint32
	Timeslot  = uint32
	Gas       = uint64
)

// Hash is a 32-byte Blake2b digest, Ed25519 public key, or ring root
// reference. It is identity-encoded: no length prefix, never truncated.
type Hash [32]byte

func (h Hash) Bytes() []byte { return h[:] }

func EncodeHash(h Hash) []byte {
	out := make([]byte, 32)
	copy(out, h[:])
	return out
}

func DecodeHash(b []byte) (Hash, []byte, error) {
	raw, rest, err := codec.DecodeIdentity(32, b)
	if err != nil {
		return Hash{}, nil, err
	}
	var h Hash
	copy(h[:], raw)
	return h, rest, nil
}

// BandersnatchRingRoot is the 144-byte Bandersnatch ring root, a distinct
// identity-encoded blob from Hash despite also being hash-like.
type BandersnatchRingRoot [144]byte

func EncodeRingRoot(r BandersnatchRingRoot) []byte {
	out := make([]byte, 144)
	copy(out, r[:])
	return out
}

func DecodeRingRoot(b []byte) (BandersnatchRingRoot, []byte, error) {
	raw, rest, err := codec.DecodeIdentity(144, b)
	if err != nil {
		return BandersnatchRingRoot{}, nil, err
	}
	var r BandersnatchRingRoot
	copy(r[:], raw)
	return r, rest, nil
}

func encodeHashSeq(hashes []Hash) []byte {
	return codec.EncodeSeq(hashes, EncodeHash)
}

func decodeHashSeq(b []byte) ([]Hash, []byte, error) {
	return codec.DecodeSeq(b, DecodeHash)
}

func encodeHashSet(hashes []Hash) []byte {
	return codec.EncodeSet(hashes, EncodeHash)
}

func decodeHashSet(b []byte) ([]Hash, []byte, error) {
	return codec.DecodeSet(b, DecodeHash)
}
