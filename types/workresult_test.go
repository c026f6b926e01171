// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultSuccessAndPanic(t *testing.T) {
	success := Result{Kind: ResultSuccess, Payload: []byte{0xAA, 0xBB, 0xCC}}
	enc := EncodeResult(success)
	require.Equal(t, "0003aabbcc", hex.EncodeToString(enc))

	got, rest, err := DecodeResult(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, success, got)

	panicResult := Result{Kind: ResultPanic}
	enc = EncodeResult(panicResult)
	require.Equal(t, "02", hex.EncodeToString(enc))

	got, rest, err = DecodeResult(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, panicResult, got)
}

func TestResultAllVariantsRoundTrip(t *testing.T) {
	kinds := []ResultKind{ResultSuccess, ResultOutOfGas, ResultPanic, ResultBadExports, ResultOversize, ResultBadCode, ResultCodeOversize}
	for _, k := range kinds {
		r := Result{Kind: k}
		if k == ResultSuccess {
			r.Payload = []byte("payload")
		}
		enc := EncodeResult(r)
		got, rest, err := DecodeResult(enc)
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, r, got)
	}
}

func TestResultUnknownVariant(t *testing.T) {
	_, _, err := DecodeResult([]byte{0x07})
	require.Error(t, err)
}

func TestWorkResultRoundTrip(t *testing.T) {
	w := WorkResult{
		ServiceId:     42,
		AccumulateGas: 1000,
		Result:        Result{Kind: ResultSuccess, Payload: []byte{1, 2, 3}},
		RefineLoad:    RefineLoad{GasUsed: 1, Imports: 2, ExtrinsicCount: 3, ExtrinsicSize: 4, Exports: 5},
	}
	enc := EncodeWorkResult(w)
	got, rest, err := DecodeWorkResult(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, w, got)
}

func TestWorkDigestRoundTrip(t *testing.T) {
	w := WorkDigest{
		ServiceId: 7,
		GasLimit:  5000,
		Result:    Result{Kind: ResultOutOfGas},
		Load:      RefineLoad{GasUsed: 9, Imports: 8, ExtrinsicCount: 7, ExtrinsicSize: 6, Exports: 5},
	}
	enc := EncodeWorkDigest(w)
	got, rest, err := DecodeWorkDigest(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, w, got)
}
