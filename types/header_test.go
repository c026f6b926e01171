// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/luxfi/jamcodec/config"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTripMinimal(t *testing.T) {
	cfg := config.Tiny()
	h := Header{
		Slot:          7,
		AuthorIndex:   2,
		EntropySource: []byte{0xAA, 0xBB},
		Seal:          []byte{0xCC},
	}
	enc := EncodeHeader(h, cfg)
	got, rest, err := DecodeHeader(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, h, got)
}

func TestHeaderRoundTripWithEpochAndTickets(t *testing.T) {
	cfg := config.Tiny()
	mark := EpochMark{
		Validators: make([][32]byte, cfg.Cvalcount),
	}
	tickets := make([]SafroleTicket, cfg.Cepochlen)
	for i := range tickets {
		tickets[i] = SafroleTicket{EntryIndex: uint64(i)}
	}
	h := Header{
		Slot:          1,
		EpochMark:     &mark,
		TicketsMark:   tickets,
		OffendersMark: []Hash{{1}, {2}},
		AuthorIndex:   0,
	}
	enc := EncodeHeader(h, cfg)
	got, rest, err := DecodeHeader(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, h, got)
}

func TestHeaderInvalidTicketsMarkTag(t *testing.T) {
	cfg := config.Tiny()
	h := Header{Slot: 1}
	enc := EncodeHeader(h, cfg)
	// EpochMark tag (0x00) sits right before the ticketsMark tag; corrupt
	// the ticketsMark byte that follows it.
	ticketsTagOffset := 32 + 32 + 32 + 4 + 1
	enc[ticketsTagOffset] = 0x05
	_, _, err := DecodeHeader(enc, cfg)
	require.Error(t, err)
}
