// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"
	"sort"

	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// TicketProof is a proof-bearing ticket submitted by a validator during an
// epoch's ticket submission window. It is distinct from the state-form
// SafroleTicket held inside SafroleState.
type TicketProof struct {
	Attempt uint8
	Proof   []byte
}

func encodeTicketProof(t TicketProof) []byte {
	out := []byte{t.Attempt}
	return append(out, codec.EncodeBlob(t.Proof)...)
}

func decodeTicketProof(b []byte) (TicketProof, []byte, error) {
	if len(b) < 1 {
		return TicketProof{}, nil, codec.Errf(codec.InsufficientData, "ticketProof: attempt")
	}
	t := TicketProof{Attempt: b[0]}
	proof, rest, err := codec.DecodeBlob(b[1:])
	if err != nil {
		return TicketProof{}, nil, err
	}
	t.Proof = proof
	return t, rest, nil
}

// TicketExtrinsic carries the tickets submitted in a block.
type TicketExtrinsic struct {
	Tickets []TicketProof
}

func EncodeTicketExtrinsic(e TicketExtrinsic) []byte {
	return codec.EncodeSeq(e.Tickets, encodeTicketProof)
}

func DecodeTicketExtrinsic(b []byte) (TicketExtrinsic, []byte, error) {
	tickets, rest, err := codec.DecodeSeq(b, decodeTicketProof)
	if err != nil {
		return TicketExtrinsic{}, nil, err
	}
	return TicketExtrinsic{Tickets: tickets}, rest, nil
}

// PreimageEntry is a service's requested preimage, submitted verbatim.
type PreimageEntry struct {
	Requester ServiceId
	Blob      []byte
}

func encodePreimageEntry(p PreimageEntry) []byte {
	out := codec.Encode4(p.Requester)
	return append(out, codec.EncodeBlob(p.Blob)...)
}

func decodePreimageEntry(b []byte) (PreimageEntry, []byte, error) {
	var p PreimageEntry
	var err error
	p.Requester, b, err = codec.Decode4(b)
	if err != nil {
		return PreimageEntry{}, nil, err
	}
	p.Blob, b, err = codec.DecodeBlob(b)
	if err != nil {
		return PreimageEntry{}, nil, err
	}
	return p, b, nil
}

// PreimageExtrinsic carries preimages submitted in a block, ordered by
// (requester, blob) ascending.
type PreimageExtrinsic struct {
	Preimages []PreimageEntry
}

func EncodePreimageExtrinsic(e PreimageExtrinsic) []byte {
	ordered := make([]PreimageEntry, len(e.Preimages))
	copy(ordered, e.Preimages)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Requester != ordered[j].Requester {
			return ordered[i].Requester < ordered[j].Requester
		}
		return bytes.Compare(ordered[i].Blob, ordered[j].Blob) < 0
	})
	return codec.EncodeSeq(ordered, encodePreimageEntry)
}

func DecodePreimageExtrinsic(b []byte) (PreimageExtrinsic, []byte, error) {
	entries, rest, err := codec.DecodeSeq(b, decodePreimageEntry)
	if err != nil {
		return PreimageExtrinsic{}, nil, err
	}
	return PreimageExtrinsic{Preimages: entries}, rest, nil
}

// Credential is a validator's attestation to a work report within a
// GuaranteeExtrinsic entry.
type Credential struct {
	ValidatorIndex uint16
	Signature      []byte
}

func encodeCredential(c Credential) []byte {
	out := codec.Encode2(c.ValidatorIndex)
	return append(out, codec.EncodeBlob(c.Signature)...)
}

func decodeCredential(b []byte) (Credential, []byte, error) {
	var c Credential
	var err error
	c.ValidatorIndex, b, err = codec.Decode2(b)
	if err != nil {
		return Credential{}, nil, err
	}
	c.Signature, b, err = codec.DecodeBlob(b)
	if err != nil {
		return Credential{}, nil, err
	}
	return c, b, nil
}

// Guarantee bundles a WorkReport with the slot it was guaranteed at and
// the validator credentials attesting to it.
type Guarantee struct {
	Report      WorkReport
	Slot        Timeslot
	Credentials []Credential
}

func encodeGuarantee(g Guarantee) []byte {
	out := EncodeWorkReport(g.Report)
	out = append(out, codec.Encode4(g.Slot)...)
	out = append(out, codec.EncodeSeq(g.Credentials, encodeCredential)...)
	return out
}

func decodeGuarantee(b []byte) (Guarantee, []byte, error) {
	var g Guarantee
	var err error
	g.Report, b, err = DecodeWorkReport(b)
	if err != nil {
		return Guarantee{}, nil, err
	}
	g.Slot, b, err = codec.Decode4(b)
	if err != nil {
		return Guarantee{}, nil, err
	}
	g.Credentials, b, err = codec.DecodeSeq(b, decodeCredential)
	if err != nil {
		return Guarantee{}, nil, err
	}
	return g, b, nil
}

// GuaranteeExtrinsic carries the work reports guaranteed in a block,
// ordered by core index.
type GuaranteeExtrinsic struct {
	Guarantees []Guarantee
}

func EncodeGuaranteeExtrinsic(e GuaranteeExtrinsic) []byte {
	ordered := make([]Guarantee, len(e.Guarantees))
	copy(ordered, e.Guarantees)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Report.CoreIndex < ordered[j].Report.CoreIndex
	})
	return codec.EncodeSeq(ordered, encodeGuarantee)
}

func DecodeGuaranteeExtrinsic(b []byte) (GuaranteeExtrinsic, []byte, error) {
	guarantees, rest, err := codec.DecodeSeq(b, decodeGuarantee)
	if err != nil {
		return GuaranteeExtrinsic{}, nil, err
	}
	return GuaranteeExtrinsic{Guarantees: guarantees}, rest, nil
}

// AssuranceExtrinsic carries the availability assurances in a block,
// ordered by anchor.
type AssuranceExtrinsic struct {
	Assurances []Assurance
}

func EncodeAssuranceExtrinsic(e AssuranceExtrinsic) []byte {
	return EncodeAssuranceSeq(e.Assurances)
}

func DecodeAssuranceExtrinsic(b []byte, cfg config.Params) (AssuranceExtrinsic, []byte, error) {
	assurances, rest, err := DecodeAssuranceSeq(b, cfg)
	if err != nil {
		return AssuranceExtrinsic{}, nil, err
	}
	return AssuranceExtrinsic{Assurances: assurances}, rest, nil
}

// DisputeExtrinsic reuses the Disputes entity directly: the dispute
// extrinsic and the disputes state chapter share one wire shape.
type DisputeExtrinsic = Disputes

// ExtrinsicBundle is the five extrinsics of a block, concatenated in a
// fixed order. No length prefix separates them: each is self-delimiting
// via its own variable sequence length.
type ExtrinsicBundle struct {
	Tickets    TicketExtrinsic
	Preimages  PreimageExtrinsic
	Guarantees GuaranteeExtrinsic
	Assurances AssuranceExtrinsic
	Disputes   DisputeExtrinsic
}

func EncodeExtrinsicBundle(e ExtrinsicBundle) []byte {
	out := EncodeTicketExtrinsic(e.Tickets)
	out = append(out, EncodePreimageExtrinsic(e.Preimages)...)
	out = append(out, EncodeGuaranteeExtrinsic(e.Guarantees)...)
	out = append(out, EncodeAssuranceExtrinsic(e.Assurances)...)
	out = append(out, EncodeDisputes(e.Disputes)...)
	return out
}

func DecodeExtrinsicBundle(b []byte, cfg config.Params) (ExtrinsicBundle, []byte, error) {
	var e ExtrinsicBundle
	var err error
	e.Tickets, b, err = DecodeTicketExtrinsic(b)
	if err != nil {
		return ExtrinsicBundle{}, nil, err
	}
	e.Preimages, b, err = DecodePreimageExtrinsic(b)
	if err != nil {
		return ExtrinsicBundle{}, nil, err
	}
	e.Guarantees, b, err = DecodeGuaranteeExtrinsic(b)
	if err != nil {
		return ExtrinsicBundle{}, nil, err
	}
	e.Assurances, b, err = DecodeAssuranceExtrinsic(b, cfg)
	if err != nil {
		return ExtrinsicBundle{}, nil, err
	}
	e.Disputes, b, err = DecodeDisputes(b)
	if err != nil {
		return ExtrinsicBundle{}, nil, err
	}
	return e, b, nil
}
