// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/luxfi/jamcodec/config"
	"github.com/stretchr/testify/require"
)

func TestAuthPoolRoundTrip(t *testing.T) {
	cfg := config.Tiny() // Ccorecount 2
	var h Hash
	h[0] = 0x09
	pool := AuthPool{Cores: [][]Hash{{h, h}, nil}}

	enc := EncodeAuthPool(pool)
	got, rest, err := DecodeAuthPool(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, pool.Cores, got.Cores)
}

func TestAuthPoolExceedsMax(t *testing.T) {
	cfg := config.Params{Ccorecount: 1}
	hashes := make([]Hash, config.AuthPoolSize+1)
	pool := AuthPool{Cores: [][]Hash{hashes}}

	enc := EncodeAuthPool(pool)
	_, _, err := DecodeAuthPool(enc, cfg)
	require.Error(t, err)
}
