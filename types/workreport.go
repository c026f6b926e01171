// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
)

// PackageSpec identifies the work package a report was produced from and
// the erasure-coded bundle it was segmented into.
type PackageSpec struct {
	Hash         Hash
	Length       uint64
	ErasureRoot  Hash
	ExportsRoot  Hash
	ExportsCount uint64
}

func encodePackageSpec(p PackageSpec) []byte {
	out := EncodeHash(p.Hash)
	out = append(out, codec.EncodeNat(p.Length)...)
	out = append(out, EncodeHash(p.ErasureRoot)...)
	out = append(out, EncodeHash(p.ExportsRoot)...)
	out = append(out, codec.EncodeNat(p.ExportsCount)...)
	return out
}

func decodePackageSpec(b []byte) (PackageSpec, []byte, error) {
	var p PackageSpec
	var err error
	p.Hash, b, err = DecodeHash(b)
	if err != nil {
		return PackageSpec{}, nil, err
	}
	p.Length, b, err = codec.DecodeNat(b)
	if err != nil {
		return PackageSpec{}, nil, err
	}
	p.ErasureRoot, b, err = DecodeHash(b)
	if err != nil {
		return PackageSpec{}, nil, err
	}
	p.ExportsRoot, b, err = DecodeHash(b)
	if err != nil {
		return PackageSpec{}, nil, err
	}
	p.ExportsCount, b, err = codec.DecodeNat(b)
	if err != nil {
		return PackageSpec{}, nil, err
	}
	return p, b, nil
}

// SegmentRootEntry maps a prerequisite work package's hash to the
// erasure-coded exports-tree root it produced.
type SegmentRootEntry struct {
	WorkPackageHash Hash
	SegmentRoot     Hash
}

func encodeSegmentRootLookup(entries []SegmentRootEntry) []byte {
	de := make([]codec.DictEntry[Hash, Hash], len(entries))
	for i, e := range entries {
		de[i] = codec.DictEntry[Hash, Hash]{Key: e.WorkPackageHash, Value: e.SegmentRoot}
	}
	return codec.EncodeDict(de, EncodeHash, EncodeHash)
}

func decodeSegmentRootLookup(b []byte) ([]SegmentRootEntry, []byte, error) {
	de, rest, err := codec.DecodeDict(b, DecodeHash, DecodeHash)
	if err != nil {
		return nil, nil, err
	}
	if len(de) == 0 {
		return nil, rest, nil
	}
	out := make([]SegmentRootEntry, len(de))
	for i, e := range de {
		out[i] = SegmentRootEntry{WorkPackageHash: e.Key, SegmentRoot: e.Value}
	}
	return out, rest, nil
}

// WorkReport is what a guarantor assembles after refining a WorkPackage
// and what is bundled into a GuaranteeExtrinsic.
type WorkReport struct {
	Package           PackageSpec
	Context           RefinementContext
	CoreIndex         uint16
	AuthorizerHash    Hash
	AuthOutput        []byte
	SegmentRootLookup []SegmentRootEntry
	Results           []WorkDigest
}

func EncodeWorkReport(w WorkReport) []byte {
	out := encodePackageSpec(w.Package)
	out = append(out, encodeContext(w.Context)...)
	out = append(out, codec.Encode2(w.CoreIndex)...)
	out = append(out, EncodeHash(w.AuthorizerHash)...)
	out = append(out, codec.EncodeBlob(w.AuthOutput)...)
	out = append(out, encodeSegmentRootLookup(w.SegmentRootLookup)...)
	out = append(out, codec.EncodeSeq(w.Results, EncodeWorkDigest)...)
	return out
}

func DecodeWorkReport(b []byte) (WorkReport, []byte, error) {
	var w WorkReport
	var err error
	w.Package, b, err = decodePackageSpec(b)
	if err != nil {
		return WorkReport{}, nil, err
	}
	w.Context, b, err = decodeContext(b)
	if err != nil {
		return WorkReport{}, nil, err
	}
	w.CoreIndex, b, err = codec.Decode2(b)
	if err != nil {
		return WorkReport{}, nil, err
	}
	w.AuthorizerHash, b, err = DecodeHash(b)
	if err != nil {
		return WorkReport{}, nil, err
	}
	w.AuthOutput, b, err = codec.DecodeBlob(b)
	if err != nil {
		return WorkReport{}, nil, err
	}
	w.SegmentRootLookup, b, err = decodeSegmentRootLookup(b)
	if err != nil {
		return WorkReport{}, nil, err
	}
	w.Results, b, err = codec.DecodeSeq(b, DecodeWorkDigest)
	if err != nil {
		return WorkReport{}, nil, err
	}
	return w, b, nil
}
