// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// AuthPool is the per-core authorizer-hash pool chapter: a fixed-count
// (Ccorecount) sequence of per-core variable sequences, each holding up
// to config.AuthPoolSize hashes. Empty slots are simply omitted on the
// wire; any zero-hash padding is a presentation concern for callers, not
// part of this codec.
type AuthPool struct {
	Cores [][]Hash
}

func EncodeAuthPool(a AuthPool) []byte {
	return codec.EncodeFixedSeq(a.Cores, encodeHashSeq)
}

func DecodeAuthPool(b []byte, cfg config.Params) (AuthPool, []byte, error) {
	cores, rest, err := codec.DecodeFixedSeq(b, int(cfg.Ccorecount), func(in []byte) ([]Hash, []byte, error) {
		hashes, tail, e := decodeHashSeq(in)
		if e != nil {
			return nil, nil, e
		}
		if len(hashes) > config.AuthPoolSize {
			return nil, nil, codec.Errf(codec.ShapeMismatch, "authpool: core list has %d hashes, max %d", len(hashes), config.AuthPoolSize)
		}
		return hashes, tail, nil
	})
	if err != nil {
		return AuthPool{}, nil, err
	}
	return AuthPool{Cores: cores}, rest, nil
}
