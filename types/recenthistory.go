// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/jamcodec/codec"

// RecentBlock is one entry of the recent-history chapter: the block's
// header hash, the accumulation-output MMR peaks carried forward from it,
// its posterior state root, and the work packages it reported.
type RecentBlock struct {
	HeaderHash Hash
	MMRPeaks   []*Hash // one optional peak per MMR level
	StateRoot  Hash
	Reported   []SegmentRootEntry
}

func encodeRecentBlock(r RecentBlock) []byte {
	out := EncodeHash(r.HeaderHash)
	out = append(out, codec.EncodeSeq(r.MMRPeaks, func(p *Hash) []byte {
		return codec.EncodeOptional(p, EncodeHash)
	})...)
	out = append(out, EncodeHash(r.StateRoot)...)
	out = append(out, encodeSegmentRootLookup(r.Reported)...)
	return out
}

func decodeRecentBlock(b []byte) (RecentBlock, []byte, error) {
	var r RecentBlock
	var err error
	r.HeaderHash, b, err = DecodeHash(b)
	if err != nil {
		return RecentBlock{}, nil, err
	}
	r.MMRPeaks, b, err = codec.DecodeSeq(b, func(in []byte) (*Hash, []byte, error) {
		return codec.DecodeOptional(in, DecodeHash)
	})
	if err != nil {
		return RecentBlock{}, nil, err
	}
	r.StateRoot, b, err = DecodeHash(b)
	if err != nil {
		return RecentBlock{}, nil, err
	}
	r.Reported, b, err = decodeSegmentRootLookup(b)
	if err != nil {
		return RecentBlock{}, nil, err
	}
	return r, b, nil
}

// RecentHistory is the recent-history chapter: a variable sequence of the
// most recent blocks, oldest first.
type RecentHistory struct {
	Blocks []RecentBlock
}

func EncodeRecentHistory(h RecentHistory) []byte {
	return codec.EncodeSeq(h.Blocks, encodeRecentBlock)
}

func DecodeRecentHistory(b []byte) (RecentHistory, []byte, error) {
	blocks, rest, err := codec.DecodeSeq(b, decodeRecentBlock)
	if err != nil {
		return RecentHistory{}, nil, err
	}
	return RecentHistory{Blocks: blocks}, rest, nil
}
