// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// AuthQueue is the per-core authorizer queue chapter. Unlike AuthPool's
// variable per-core lists, every core's queue is a fixed-count sequence of
// exactly config.AuthQueueSize hashes, so the whole chapter is a flat
// Ccorecount x AuthQueueSize x 32 bytes with no length prefixes anywhere.
type AuthQueue struct {
	Cores [][]Hash
}

func EncodeAuthQueue(q AuthQueue) []byte {
	return codec.EncodeFixedSeq(q.Cores, func(core []Hash) []byte {
		return codec.EncodeFixedSeq(core, EncodeHash)
	})
}

func DecodeAuthQueue(b []byte, cfg config.Params) (AuthQueue, []byte, error) {
	cores, rest, err := codec.DecodeFixedSeq(b, int(cfg.Ccorecount), func(in []byte) ([]Hash, []byte, error) {
		return codec.DecodeFixedSeq(in, config.AuthQueueSize, DecodeHash)
	})
	if err != nil {
		return AuthQueue{}, nil, err
	}
	return AuthQueue{Cores: cores}, rest, nil
}
