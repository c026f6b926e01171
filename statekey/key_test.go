// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statekey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChapterBoundsAndParse(t *testing.T) {
	k, err := Chapter(3)
	require.NoError(t, err)
	require.Equal(t, uint8(3), k[0])
	p := Parse(k)
	require.Equal(t, KindChapter, p.Kind)
	require.Equal(t, uint8(3), p.Chapter)

	_, err = Chapter(0)
	require.Error(t, err)
	_, err = Chapter(17)
	require.Error(t, err)
}

func TestChapterServiceRoundTrip(t *testing.T) {
	k, err := ChapterService(255, 0x01020304)
	require.NoError(t, err)
	p := Parse(k)
	require.Equal(t, KindChapterService, p.Kind)
	require.Equal(t, uint32(0x01020304), p.Service)

	_, err = ChapterService(1, 5)
	require.Error(t, err)
}

func TestChapterConstantsCoverChapterForm(t *testing.T) {
	for _, c := range []uint8{
		ChapterAuthPool, ChapterAuthQueue, ChapterRecentHistory,
		ChapterSafrole, ChapterDisputes, ChapterEntropy,
		ChapterNextValidators, ChapterCurrValidators, ChapterPrevValidators,
		ChapterReportsPending, ChapterTimeslot, ChapterPrivileges,
		ChapterActivity, ChapterReadyQueue, ChapterAccumulated,
		ChapterLastAccOutputs,
	} {
		k, err := Chapter(c)
		require.NoError(t, err)
		require.Equal(t, c, uint8(Parse(k).Chapter))
	}

	k, err := ChapterService(ChapterServiceAccount, 12)
	require.NoError(t, err)
	require.Equal(t, KindChapterService, Parse(k).Kind)
}

func TestServiceHashRoundTrip(t *testing.T) {
	var h [27]byte
	for i := range h {
		h[i] = byte(i + 1)
	}
	k := ServiceHash(42, h)
	p := Parse(k)
	require.Equal(t, KindServiceHash, p.Kind)
	require.Equal(t, uint32(42), p.Service)
	require.Equal(t, h, p.BlakeBytes)
}
