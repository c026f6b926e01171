// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatorKeyRoundTrip(t *testing.T) {
	var v ValidatorKey
	v.Bandersnatch[0] = 1
	v.Ed25519[0] = 2
	v.BLS[0] = 3
	v.Metadata[0] = 4

	enc := EncodeValidatorKey(v)
	require.Len(t, enc, 336)

	got, rest, err := DecodeValidatorKey(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, v, got)
}

func TestValidatorKeyInsufficientData(t *testing.T) {
	_, _, err := DecodeValidatorKey(make([]byte, 10))
	require.Error(t, err)
}
