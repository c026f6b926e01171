// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
	"github.com/stretchr/testify/require"
)

func TestValidatorSetRoundTrip(t *testing.T) {
	cfg := config.Tiny()
	keys := make([]ValidatorKey, cfg.Cvalcount)
	for i := range keys {
		keys[i].Ed25519[0] = byte(i + 1)
	}
	enc := EncodeValidatorSet(keys)
	require.Len(t, enc, 336*int(cfg.Cvalcount))

	got, rest, err := DecodeValidatorSet(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, keys, got)
}

func TestAuthQueueRoundTrip(t *testing.T) {
	cfg := config.Tiny() // Ccorecount 2
	cores := make([][]Hash, cfg.Ccorecount)
	for i := range cores {
		cores[i] = make([]Hash, config.AuthQueueSize)
		cores[i][0][0] = byte(i + 1)
	}
	q := AuthQueue{Cores: cores}

	enc := EncodeAuthQueue(q)
	require.Len(t, enc, int(cfg.Ccorecount)*config.AuthQueueSize*32)

	got, rest, err := DecodeAuthQueue(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, q.Cores, got.Cores)
}

func TestRecentHistoryRoundTrip(t *testing.T) {
	peak := Hash{0x11}
	h := RecentHistory{Blocks: []RecentBlock{
		{
			HeaderHash: Hash{1},
			MMRPeaks:   []*Hash{nil, &peak},
			StateRoot:  Hash{2},
			Reported: []SegmentRootEntry{
				{WorkPackageHash: Hash{3}, SegmentRoot: Hash{4}},
			},
		},
		{HeaderHash: Hash{5}, StateRoot: Hash{6}},
	}}
	enc := EncodeRecentHistory(h)
	got, rest, err := DecodeRecentHistory(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, h, got)
}

func TestReportsPendingRoundTrip(t *testing.T) {
	cfg := config.Tiny() // Ccorecount 2
	assignment := AvailabilityAssignment{
		Report:  WorkReport{Package: PackageSpec{Hash: Hash{1}}, CoreIndex: 0},
		Timeout: 42,
	}
	r := ReportsPending{Cores: []*AvailabilityAssignment{&assignment, nil}}

	enc := EncodeReportsPending(r)
	got, rest, err := DecodeReportsPending(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, r.Cores, got.Cores)
}

func TestTimeslotChapterRoundTrip(t *testing.T) {
	enc := EncodeTimeslotChapter(0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, enc)
	got, rest, err := DecodeTimeslotChapter(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, Timeslot(0x01020304), got)
}

func TestReadyQueueRoundTrip(t *testing.T) {
	cfg := config.Tiny() // Cepochlen 12
	slots := make([][]ReadyRecord, cfg.Cepochlen)
	slots[0] = []ReadyRecord{
		{
			Report:       WorkReport{Package: PackageSpec{Hash: Hash{1}}},
			Dependencies: []Hash{{9}, {2}},
		},
	}
	q := ReadyQueue{Slots: slots}

	enc := EncodeReadyQueue(q)
	got, rest, err := DecodeReadyQueue(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	// Dependencies is an ordered set: it comes back sorted.
	require.Equal(t, []Hash{{2}, {9}}, got.Slots[0][0].Dependencies)
	require.Equal(t, q.Slots[0][0].Report, got.Slots[0][0].Report)
	for i := 1; i < len(got.Slots); i++ {
		require.Empty(t, got.Slots[i])
	}
}

func TestAccumulatedHistoryRoundTrip(t *testing.T) {
	cfg := config.Tiny()
	slots := make([][]Hash, cfg.Cepochlen)
	slots[3] = []Hash{{7}, {1}}
	h := AccumulatedHistory{Slots: slots}

	enc := EncodeAccumulatedHistory(h)
	got, rest, err := DecodeAccumulatedHistory(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, []Hash{{1}, {7}}, got.Slots[3])
}

func TestLastAccOutputsOrdered(t *testing.T) {
	o := LastAccOutputs{Outputs: []codec.DictEntry[ServiceId, Hash]{
		{Key: 9, Value: Hash{1}},
		{Key: 2, Value: Hash{2}},
	}}
	enc := EncodeLastAccOutputs(o)
	got, rest, err := DecodeLastAccOutputs(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, []codec.DictEntry[ServiceId, Hash]{
		{Key: 2, Value: Hash{2}},
		{Key: 9, Value: Hash{1}},
	}, got.Outputs)
}
