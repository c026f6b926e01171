// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeNatBoundaries(t *testing.T) {
	tests := []struct {
		name string
		x    Nat
		want string
	}{
		{"zero", 0, "00"},
		{"max single byte", 127, "7F"},
		{"min two byte", 128, "8080"},
		{"max two byte", 16383, "BFFF"},
		{"min three byte", 16384, "C00040"},
		{"max uint64", 1<<64 - 1, "FFFFFFFFFFFFFFFFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeNat(tt.x)
			require.Equal(t, tt.want, hex.EncodeToString(got))

			back, rest, err := DecodeNat(got)
			require.NoError(t, err)
			require.Empty(t, rest)
			require.Equal(t, tt.x, back)
		})
	}
}

func TestEncodeNatLength(t *testing.T) {
	for l := 0; l <= 7; l++ {
		lo := Nat(0)
		if l > 0 {
			lo = Nat(1) << uint(7*l)
		}
		hi := (Nat(1) << uint(7*(l+1))) - 1
		require.Len(t, EncodeNat(lo), 1+l)
		require.Len(t, EncodeNat(hi), 1+l)
	}
	require.Len(t, EncodeNat(1<<56), 9)
	require.Len(t, EncodeNat(1<<64-1), 9)
}

func TestDecodeNatInsufficientData(t *testing.T) {
	_, _, err := DecodeNat(nil)
	require.Error(t, err)
	var ce *Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, InsufficientData, ce.Kind)

	// a two-byte-prefix lead byte with no trailing byte.
	_, _, err = DecodeNat([]byte{0x80})
	require.Error(t, err)
	require.ErrorAs(t, err, &ce)
	require.Equal(t, InsufficientData, ce.Kind)
}

func TestNatRoundTripFuzzLike(t *testing.T) {
	values := []Nat{1, 2, 3, 63, 64, 65, 4095, 4096, 1 << 20, 1 << 30, 1 << 40, 1 << 55, 1<<56 - 1, 1 << 56, 1 << 63}
	for _, v := range values {
		enc := EncodeNat(v)
		got, rest, err := DecodeNat(enc)
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, v, got)
	}
}
