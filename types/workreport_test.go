// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkReportRoundTrip(t *testing.T) {
	w := WorkReport{
		Package: PackageSpec{
			Hash:         Hash{1},
			Length:       128,
			ErasureRoot:  Hash{2},
			ExportsRoot:  Hash{3},
			ExportsCount: 4,
		},
		Context: RefinementContext{
			Anchor:           Hash{4},
			StateRoot:        Hash{5},
			BeefyRoot:        Hash{6},
			LookupAnchor:     Hash{7},
			LookupAnchorSlot: 10,
		},
		CoreIndex:      3,
		AuthorizerHash: Hash{8},
		AuthOutput:     []byte{0xDE, 0xAD},
		SegmentRootLookup: []SegmentRootEntry{
			{WorkPackageHash: Hash{9}, SegmentRoot: Hash{10}},
			{WorkPackageHash: Hash{1}, SegmentRoot: Hash{11}},
		},
		Results: []WorkDigest{
			{
				ServiceId:   1,
				CodeHash:    Hash{12},
				PayloadHash: Hash{13},
				GasLimit:    500,
				Result:      Result{Kind: ResultSuccess, Payload: []byte("ok")},
				Load:        RefineLoad{GasUsed: 100, Imports: 1, ExtrinsicCount: 2, ExtrinsicSize: 3, Exports: 4},
			},
			{
				ServiceId: 2,
				CodeHash:  Hash{14},
				Result:    Result{Kind: ResultOutOfGas},
			},
		},
	}
	enc := EncodeWorkReport(w)
	got, rest, err := DecodeWorkReport(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	// SegmentRootLookup is an ordered dict: keys come back sorted.
	require.Equal(t, Hash{1}, got.SegmentRootLookup[0].WorkPackageHash)
	require.Equal(t, Hash{9}, got.SegmentRootLookup[1].WorkPackageHash)
	got.SegmentRootLookup = w.SegmentRootLookup
	require.Equal(t, w, got)
}

func TestWorkReportTruncatedFails(t *testing.T) {
	w := WorkReport{Package: PackageSpec{Hash: Hash{1}}}
	enc := EncodeWorkReport(w)
	_, _, err := DecodeWorkReport(enc[:len(enc)-1])
	require.Error(t, err)
}
