// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/jamcodec/codec"

// RefinementContext anchors a work package/report to a specific point in
// chain history.
type RefinementContext struct {
	Anchor           Hash
	StateRoot        Hash
	BeefyRoot        Hash
	LookupAnchor     Hash
	LookupAnchorSlot Timeslot
	Prerequisites    []Hash // ordered set
}

func encodeContext(c RefinementContext) []byte {
	out := EncodeHash(c.Anchor)
	out = append(out, EncodeHash(c.StateRoot)...)
	out = append(out, EncodeHash(c.BeefyRoot)...)
	out = append(out, EncodeHash(c.LookupAnchor)...)
	out = append(out, codec.Encode4(c.LookupAnchorSlot)...)
	out = append(out, encodeHashSet(c.Prerequisites)...)
	return out
}

func decodeContext(b []byte) (RefinementContext, []byte, error) {
	var c RefinementContext
	var err error
	c.Anchor, b, err = DecodeHash(b)
	if err != nil {
		return RefinementContext{}, nil, err
	}
	c.StateRoot, b, err = DecodeHash(b)
	if err != nil {
		return RefinementContext{}, nil, err
	}
	c.BeefyRoot, b, err = DecodeHash(b)
	if err != nil {
		return RefinementContext{}, nil, err
	}
	c.LookupAnchor, b, err = DecodeHash(b)
	if err != nil {
		return RefinementContext{}, nil, err
	}
	c.LookupAnchorSlot, b, err = codec.Decode4(b)
	if err != nil {
		return RefinementContext{}, nil, err
	}
	c.Prerequisites, b, err = decodeHashSet(b)
	if err != nil {
		return RefinementContext{}, nil, err
	}
	return c, b, nil
}

// SegmentRef is a reference into an import-segment or extrinsic table:
// the tree root it lives under plus its index.
type SegmentRef struct {
	Root  Hash
	Index uint64
}

func encodeSegmentRef(s SegmentRef) []byte {
	out := EncodeHash(s.Root)
	return append(out, codec.EncodeNat(s.Index)...)
}

func decodeSegmentRef(b []byte) (SegmentRef, []byte, error) {
	var s SegmentRef
	var err error
	s.Root, b, err = DecodeHash(b)
	if err != nil {
		return SegmentRef{}, nil, err
	}
	s.Index, b, err = codec.DecodeNat(b)
	if err != nil {
		return SegmentRef{}, nil, err
	}
	return s, b, nil
}

// WorkItem is one unit of refinement work inside a WorkPackage.
type WorkItem struct {
	Service            ServiceId
	CodeHash           Hash
	Payload            []byte
	RefineGasLimit     Gas
	AccumulateGasLimit Gas
	ExportCount        uint64
	ImportSegments     []SegmentRef
	Extrinsics         []SegmentRef
}

func encodeWorkItem(w WorkItem) []byte {
	out := codec.Encode4(w.Service)
	out = append(out, EncodeHash(w.CodeHash)...)
	out = append(out, codec.EncodeBlob(w.Payload)...)
	out = append(out, codec.Encode8(w.RefineGasLimit)...)
	out = append(out, codec.Encode8(w.AccumulateGasLimit)...)
	out = append(out, codec.EncodeNat(w.ExportCount)...)
	out = append(out, codec.EncodeSeq(w.ImportSegments, encodeSegmentRef)...)
	out = append(out, codec.EncodeSeq(w.Extrinsics, encodeSegmentRef)...)
	return out
}

func decodeWorkItem(b []byte) (WorkItem, []byte, error) {
	var w WorkItem
	var err error
	w.Service, b, err = codec.Decode4(b)
	if err != nil {
		return WorkItem{}, nil, err
	}
	w.CodeHash, b, err = DecodeHash(b)
	if err != nil {
		return WorkItem{}, nil, err
	}
	w.Payload, b, err = codec.DecodeBlob(b)
	if err != nil {
		return WorkItem{}, nil, err
	}
	w.RefineGasLimit, b, err = codec.Decode8(b)
	if err != nil {
		return WorkItem{}, nil, err
	}
	w.AccumulateGasLimit, b, err = codec.Decode8(b)
	if err != nil {
		return WorkItem{}, nil, err
	}
	w.ExportCount, b, err = codec.DecodeNat(b)
	if err != nil {
		return WorkItem{}, nil, err
	}
	w.ImportSegments, b, err = codec.DecodeSeq(b, decodeSegmentRef)
	if err != nil {
		return WorkItem{}, nil, err
	}
	w.Extrinsics, b, err = codec.DecodeSeq(b, decodeSegmentRef)
	if err != nil {
		return WorkItem{}, nil, err
	}
	return w, b, nil
}

// WorkPackage is the unit of refinement a guarantor submits to a core.
type WorkPackage struct {
	AuthorizationToken []byte
	AuthCodeHost       ServiceId
	Authorizer         Hash
	AuthConfig         []byte
	Context            RefinementContext
	Items              []WorkItem
}

func EncodeWorkPackage(w WorkPackage) []byte {
	out := codec.EncodeBlob(w.AuthorizationToken)
	out = append(out, codec.Encode4(w.AuthCodeHost)...)
	out = append(out, EncodeHash(w.Authorizer)...)
	out = append(out, codec.EncodeBlob(w.AuthConfig)...)
	out = append(out, encodeContext(w.Context)...)
	out = append(out, codec.EncodeSeq(w.Items, encodeWorkItem)...)
	return out
}

func DecodeWorkPackage(b []byte) (WorkPackage, []byte, error) {
	var w WorkPackage
	var err error
	w.AuthorizationToken, b, err = codec.DecodeBlob(b)
	if err != nil {
		return WorkPackage{}, nil, err
	}
	w.AuthCodeHost, b, err = codec.Decode4(b)
	if err != nil {
		return WorkPackage{}, nil, err
	}
	w.Authorizer, b, err = DecodeHash(b)
	if err != nil {
		return WorkPackage{}, nil, err
	}
	w.AuthConfig, b, err = codec.DecodeBlob(b)
	if err != nil {
		return WorkPackage{}, nil, err
	}
	w.Context, b, err = decodeContext(b)
	if err != nil {
		return WorkPackage{}, nil, err
	}
	w.Items, b, err = codec.DecodeSeq(b, decodeWorkItem)
	if err != nil {
		return WorkPackage{}, nil, err
	}
	return w, b, nil
}
