// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// EpochMark carries the entropy and validator-set snapshot published at
// an epoch boundary, present on a Header only when Slot opens a new
// epoch.
type EpochMark struct {
	Entropy        Hash
	TicketsEntropy Hash
	Validators     [][32]byte // length Cvalcount, Bandersnatch keys
}

func encodeEpochMark(m EpochMark) []byte {
	out := EncodeHash(m.Entropy)
	out = append(out, EncodeHash(m.TicketsEntropy)...)
	out = append(out, codec.EncodeFixedSeq(m.Validators, func(k [32]byte) []byte {
		b, _ := codec.EncodeIdentity(32, k[:])
		return b
	})...)
	return out
}

func decodeEpochMark(b []byte, cfg config.Params) (EpochMark, []byte, error) {
	var m EpochMark
	var err error
	m.Entropy, b, err = DecodeHash(b)
	if err != nil {
		return EpochMark{}, nil, err
	}
	m.TicketsEntropy, b, err = DecodeHash(b)
	if err != nil {
		return EpochMark{}, nil, err
	}
	m.Validators, b, err = codec.DecodeFixedSeq(b, int(cfg.Cvalcount), func(in []byte) ([32]byte, []byte, error) {
		raw, rest, e := codec.DecodeIdentity(32, in)
		var k [32]byte
		if e == nil {
			copy(k[:], raw)
		}
		return k, rest, e
	})
	if err != nil {
		return EpochMark{}, nil, err
	}
	return m, b, nil
}

// Header is a block header. The entropy source and seal are treated as
// opaque octet strings by this codec: this module verifies no
// cryptographic proof beyond what the state-key classifier needs (a
// Blake2b invocation and a PVM program-format check), so a VRF
// signature's internal structure is out of scope.
type Header struct {
	Parent          Hash
	ParentStateRoot Hash
	ExtrinsicHash   Hash
	Slot            Timeslot
	EpochMark       *EpochMark
	TicketsMark     []SafroleTicket // present iff non-nil; length Cepochlen when present
	OffendersMark   []Hash          // ordered set of ed25519 keys
	AuthorIndex     uint16
	EntropySource   []byte
	Seal            []byte
}

func EncodeHeader(h Header, cfg config.Params) []byte {
	out := EncodeHash(h.Parent)
	out = append(out, EncodeHash(h.ParentStateRoot)...)
	out = append(out, EncodeHash(h.ExtrinsicHash)...)
	out = append(out, codec.Encode4(h.Slot)...)
	out = append(out, codec.EncodeOptional(h.EpochMark, encodeEpochMark)...)
	if h.TicketsMark == nil {
		out = append(out, 0x00)
	} else {
		out = append(out, 0x01)
		out = append(out, codec.EncodeFixedSeq(h.TicketsMark, EncodeSafroleTicket)...)
	}
	out = append(out, encodeHashSet(h.OffendersMark)...)
	out = append(out, codec.Encode2(h.AuthorIndex)...)
	out = append(out, codec.EncodeBlob(h.EntropySource)...)
	out = append(out, codec.EncodeBlob(h.Seal)...)
	return out
}

func DecodeHeader(b []byte, cfg config.Params) (Header, []byte, error) {
	var h Header
	var err error
	h.Parent, b, err = DecodeHash(b)
	if err != nil {
		return Header{}, nil, err
	}
	h.ParentStateRoot, b, err = DecodeHash(b)
	if err != nil {
		return Header{}, nil, err
	}
	h.ExtrinsicHash, b, err = DecodeHash(b)
	if err != nil {
		return Header{}, nil, err
	}
	h.Slot, b, err = codec.Decode4(b)
	if err != nil {
		return Header{}, nil, err
	}
	h.EpochMark, b, err = codec.DecodeOptional(b, func(in []byte) (EpochMark, []byte, error) {
		return decodeEpochMark(in, cfg)
	})
	if err != nil {
		return Header{}, nil, err
	}
	if len(b) < 1 {
		return Header{}, nil, codec.Errf(codec.InsufficientData, "header: ticketsMark tag")
	}
	switch b[0] {
	case 0x00:
		h.TicketsMark, b = nil, b[1:]
	case 0x01:
		h.TicketsMark, b, err = codec.DecodeFixedSeq(b[1:], int(cfg.Cepochlen), DecodeSafroleTicket)
		if err != nil {
			return Header{}, nil, err
		}
	default:
		return Header{}, nil, codec.Errf(codec.InvalidOptionalTag, "header: ticketsMark tag 0x%02x", b[0])
	}
	h.OffendersMark, b, err = decodeHashSet(b)
	if err != nil {
		return Header{}, nil, err
	}
	h.AuthorIndex, b, err = codec.Decode2(b)
	if err != nil {
		return Header{}, nil, err
	}
	h.EntropySource, b, err = codec.DecodeBlob(b)
	if err != nil {
		return Header{}, nil, err
	}
	h.Seal, b, err = codec.DecodeBlob(b)
	if err != nil {
		return Header{}, nil, err
	}
	return h, b, nil
}
