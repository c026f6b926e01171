// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// SafroleTicket is the two-field state-form ticket projection: an
// identifier and the slot index it was assigned. It is distinct from the
// proof-bearing ticket used in the tickets extrinsic: the proof field
// lives there, never in state.
type SafroleTicket struct {
	ID         Hash
	EntryIndex uint64
}

func EncodeSafroleTicket(t SafroleTicket) []byte {
	out := EncodeHash(t.ID)
	return append(out, codec.EncodeNat(t.EntryIndex)...)
}

func DecodeSafroleTicket(b []byte) (SafroleTicket, []byte, error) {
	var t SafroleTicket
	var err error
	t.ID, b, err = DecodeHash(b)
	if err != nil {
		return SafroleTicket{}, nil, err
	}
	t.EntryIndex, b, err = codec.DecodeNat(b)
	if err != nil {
		return SafroleTicket{}, nil, err
	}
	return t, b, nil
}

// SealTicketsKind selects whether SafroleState.SealTickets holds
// proof-accumulated tickets (0) or raw Bandersnatch keys carried over
// from a fallback epoch (1). Sealtickets must be homogeneous: every
// element is one type or the other, chosen by this single discriminator.
type SealTicketsKind uint64

const (
	SealTicketsAreTickets          SealTicketsKind = 0
	SealTicketsAreBandersnatchKeys SealTicketsKind = 1
)

// SafroleState is the safrole chapter of protocol state.
type SafroleState struct {
	PendingSet        []ValidatorKey // length Cvalcount
	EpochRoot         BandersnatchRingRoot
	SealTicketsKind   SealTicketsKind
	SealTickets       []SafroleTicket // used when SealTicketsKind == SealTicketsAreTickets, length Cepochlen
	SealKeys          [][32]byte      // used when SealTicketsKind == SealTicketsAreBandersnatchKeys, length Cepochlen
	TicketAccumulator []SafroleTicket
}

func EncodeSafroleState(s SafroleState) []byte {
	out := codec.EncodeFixedSeq(s.PendingSet, EncodeValidatorKey)
	out = append(out, EncodeRingRoot(s.EpochRoot)...)
	out = append(out, codec.EncodeNat(uint64(s.SealTicketsKind))...)

	switch s.SealTicketsKind {
	case SealTicketsAreTickets:
		out = append(out, codec.EncodeFixedSeq(s.SealTickets, EncodeSafroleTicket)...)
	default:
		out = append(out, codec.EncodeFixedSeq(s.SealKeys, func(k [32]byte) []byte {
			b, _ := codec.EncodeIdentity(32, k[:])
			return b
		})...)
	}
	out = append(out, codec.EncodeSeq(s.TicketAccumulator, EncodeSafroleTicket)...)
	return out
}

func DecodeSafroleState(b []byte, cfg config.Params) (SafroleState, []byte, error) {
	var s SafroleState
	var err error

	s.PendingSet, b, err = codec.DecodeFixedSeq(b, int(cfg.Cvalcount), DecodeValidatorKey)
	if err != nil {
		return SafroleState{}, nil, err
	}
	s.EpochRoot, b, err = DecodeRingRoot(b)
	if err != nil {
		return SafroleState{}, nil, err
	}
	var d uint64
	d, b, err = codec.DecodeNat(b)
	if err != nil {
		return SafroleState{}, nil, err
	}
	s.SealTicketsKind = SealTicketsKind(d)

	switch s.SealTicketsKind {
	case SealTicketsAreTickets:
		s.SealTickets, b, err = codec.DecodeFixedSeq(b, int(cfg.Cepochlen), DecodeSafroleTicket)
	case SealTicketsAreBandersnatchKeys:
		s.SealKeys, b, err = codec.DecodeFixedSeq(b, int(cfg.Cepochlen), func(in []byte) ([32]byte, []byte, error) {
			raw, rest, e := codec.DecodeIdentity(32, in)
			var k [32]byte
			if e == nil {
				copy(k[:], raw)
			}
			return k, rest, e
		})
	default:
		return SafroleState{}, nil, codec.Errf(codec.ShapeMismatch, "safrole: sealtickets discriminator %d", d)
	}
	if err != nil {
		return SafroleState{}, nil, err
	}

	s.TicketAccumulator, b, err = codec.DecodeSeq(b, DecodeSafroleTicket)
	if err != nil {
		return SafroleState{}, nil, err
	}
	return s, b, nil
}
