// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statekey

import (
	"testing"

	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/statekey/statekeymock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/blake2b"
)

// buildPreimageBlob returns a minimal well-formed Y-format program blob:
// empty metadata, no read-only/read-write sections, one byte of code.
func buildPreimageBlob() []byte {
	out := codec.EncodeBlob(nil)
	zero3, _ := codec.EncodeFixed(3, 0)
	out = append(out, zero3...)
	out = append(out, zero3...)
	out = append(out, codec.Encode2(0)...)
	out = append(out, zero3...)
	out = append(out, codec.Encode4(1)...)
	out = append(out, 0xAA)
	return out
}

func TestClassifyPreimageAndRequest(t *testing.T) {
	const service = 7
	hasher := Blake2bHasher{}

	p := buildPreimageBlob()
	hp := hasher.Sum256(p)

	preimageKeyInput := append(codec.Encode4(0xFFFFFFFE), hp[:]...)
	kp := hasher.Sum256(preimageKeyInput)
	var preimageA [27]byte
	copy(preimageA[:], kp[:27])
	preimageKey := ServiceHash(service, preimageA)

	requestKeyInput := append(codec.Encode4(uint32(len(p))), hp[:]...)
	kr := blake2b.Sum256(requestKeyInput)
	var requestA [27]byte
	copy(requestA[:], kr[:27])
	requestKey := ServiceHash(service, requestA)

	currentSlot := uint32(100)
	requestValue := append([]byte{0x01}, codec.Encode4(50)...)

	entries := []Entry{
		{Key: preimageKey, Value: p},
		{Key: requestKey, Value: requestValue},
	}

	result := Classify(service, entries, hasher, &currentSlot)
	require.Len(t, result.Entries, 2)
	require.Equal(t, uint64(2), result.Items)

	byKey := make(map[Key]Classified)
	for _, c := range result.Entries {
		byKey[c.Key] = c
	}
	require.Equal(t, LabelPreimage, byKey[preimageKey].Label)
	require.Equal(t, LabelRequest, byKey[requestKey].Label)
	require.Equal(t, hp, byKey[requestKey].PreimageHash)
}

func TestClassifyFallsBackToStorage(t *testing.T) {
	var a [27]byte
	a[0] = 0x99
	k := ServiceHash(3, a)
	entries := []Entry{{Key: k, Value: []byte("arbitrary state value")}}

	result := Classify(3, entries, Blake2bHasher{}, nil)
	require.Len(t, result.Entries, 1)
	require.Equal(t, LabelStorage, result.Entries[0].Label)
	require.Equal(t, uint64(1), result.Items)
}

// TestClassifyRejectsMalformedZeroCountRequestValue exercises a 5-byte
// value whose leading natural decodes to m=0 (a genuine nat(0) encoding is
// just 1 byte total, never 5): it must never be accepted as a pending
// request merely because its length happens to match nat(1)-plus-one-slot.
func TestClassifyRejectsMalformedZeroCountRequestValue(t *testing.T) {
	var a [27]byte
	a[0] = 0x55
	k := ServiceHash(4, a)
	malformed := append([]byte{0x00}, 0xDE, 0xAD, 0xBE, 0xEF)
	entries := []Entry{{Key: k, Value: malformed}}

	currentSlot := uint32(100)
	result := Classify(4, entries, Blake2bHasher{}, &currentSlot)
	require.Len(t, result.Entries, 1)
	require.Equal(t, LabelStorage, result.Entries[0].Label)
	require.Equal(t, uint64(1), result.Items)
}

// TestClassifyUsesInjectedHasher confirms Classify consults the Hasher seam
// for its preimage-pass digests (the request-key recomputation always uses
// Blake2bHasher), by routing the calls through a MockHasher that forwards
// to the real implementation and asserting it was actually invoked.
func TestClassifyUsesInjectedHasher(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := statekeymock.NewMockHasher(ctrl)
	mock.EXPECT().Sum256(gomock.Any()).DoAndReturn(func(data []byte) [32]byte {
		return blake2b.Sum256(data)
	}).MinTimes(1)

	var a [27]byte
	a[0] = 0x7A
	k := ServiceHash(11, a)
	entries := []Entry{{Key: k, Value: []byte("plain storage bytes")}}

	result := Classify(11, entries, mock, nil)
	require.Len(t, result.Entries, 1)
	require.Equal(t, LabelStorage, result.Entries[0].Label)
}
