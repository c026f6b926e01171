// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/jamcodec/config"

// Block is a header paired with its extrinsic bundle.
type Block struct {
	Header    Header
	Extrinsic ExtrinsicBundle
}

func EncodeBlock(blk Block, cfg config.Params) []byte {
	out := EncodeHeader(blk.Header, cfg)
	out = append(out, EncodeExtrinsicBundle(blk.Extrinsic)...)
	return out
}

func DecodeBlock(b []byte, cfg config.Params) (Block, []byte, error) {
	var blk Block
	var err error
	blk.Header, b, err = DecodeHeader(b, cfg)
	if err != nil {
		return Block{}, nil, err
	}
	blk.Extrinsic, b, err = DecodeExtrinsicBundle(b, cfg)
	if err != nil {
		return Block{}, nil, err
	}
	return blk, b, nil
}
