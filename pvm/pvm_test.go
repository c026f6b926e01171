// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pvm

import (
	"testing"

	"github.com/luxfi/jamcodec/codec"
	"github.com/stretchr/testify/require"
)

func buildBlob(jtable [][]byte, z uint8, code []byte, mask []byte) []byte {
	out := codec.EncodeNat(uint64(len(jtable)))
	out = append(out, z)
	out = append(out, codec.EncodeNat(uint64(len(code)))...)
	for _, e := range jtable {
		out = append(out, e...)
	}
	out = append(out, code...)
	out = append(out, mask...)
	return out
}

func TestDecodeBlobRoundTrip(t *testing.T) {
	code := []byte{0x01, 0x02, 0x03}
	blob := buildBlob([][]byte{{0x00, 0x01}, {0x00, 0x02}}, 2, code, []byte{0x01})
	p, rest, err := DecodeBlob(blob)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, uint8(2), p.JumpTableEntrySize)
	require.Len(t, p.JumpTable, 2)
	require.Equal(t, code, p.Code)
}

func TestDecodeBlobInsufficientData(t *testing.T) {
	_, _, err := DecodeBlob([]byte{0x01})
	require.Error(t, err)
}

func TestDecodeBlobRejectsOversizedJumpTable(t *testing.T) {
	// encode(natural 2^63) ∥ z=255 ∥ no further bytes: jlen*z overflows a
	// plain int multiply, so the guard must use unsigned arithmetic before
	// ever allocating the jump table slice.
	blob := append(codec.EncodeNat(uint64(1)<<63), 0xFF)
	blob = append(blob, codec.EncodeNat(0)...)
	_, _, err := DecodeBlob(blob)
	require.Error(t, err)
	var ce *codec.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, codec.InsufficientData, ce.Kind)
}

func buildYFormat(meta, ro, rw, code []byte, zoneSize uint16, stackSize uint64) []byte {
	out := codec.EncodeBlob(meta)
	o, _ := codec.EncodeFixed(3, uint64(len(ro)))
	out = append(out, o...)
	w, _ := codec.EncodeFixed(3, uint64(len(rw)))
	out = append(out, w...)
	out = append(out, codec.Encode2(zoneSize)...)
	s, _ := codec.EncodeFixed(3, stackSize)
	out = append(out, s...)
	out = append(out, ro...)
	out = append(out, rw...)
	out = append(out, codec.Encode4(uint32(len(code)))...)
	out = append(out, code...)
	return out
}

func TestDecodeProgramRoundTrip(t *testing.T) {
	blob := buildYFormat([]byte("meta"), []byte{0x01}, []byte{0x02, 0x03}, []byte{0xAA, 0xBB}, 16, 8)
	p, rest, err := DecodeProgram(blob)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, []byte("meta"), p.Metadata)
	require.Equal(t, uint16(16), p.ZoneSize)
	require.Equal(t, uint64(8), p.StackSize)
	require.Equal(t, []byte{0x01}, p.ReadOnly)
	require.Equal(t, []byte{0x02, 0x03}, p.ReadWrite)
	require.Equal(t, []byte{0xAA, 0xBB}, p.Code)
}

func TestIsValidProgram(t *testing.T) {
	blob := buildYFormat(nil, nil, nil, []byte{0x01}, 0, 0)
	require.True(t, IsValidProgram(blob))
	require.False(t, IsValidProgram([]byte{0xFF}))
}
