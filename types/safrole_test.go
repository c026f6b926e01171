// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/luxfi/jamcodec/config"
	"github.com/stretchr/testify/require"
)

func TestSafroleStateRoundTripTickets(t *testing.T) {
	cfg := config.Tiny()
	pending := make([]ValidatorKey, cfg.Cvalcount)
	tickets := make([]SafroleTicket, cfg.Cepochlen)
	for i := range tickets {
		tickets[i] = SafroleTicket{EntryIndex: uint64(i)}
	}
	s := SafroleState{
		PendingSet:        pending,
		SealTicketsKind:   SealTicketsAreTickets,
		SealTickets:       tickets,
		TicketAccumulator: []SafroleTicket{{EntryIndex: 99}},
	}
	enc := EncodeSafroleState(s)
	got, rest, err := DecodeSafroleState(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, s, got)
}

func TestSafroleStateRoundTripBandersnatchKeys(t *testing.T) {
	cfg := config.Tiny()
	pending := make([]ValidatorKey, cfg.Cvalcount)
	keys := make([][32]byte, cfg.Cepochlen)
	keys[0][0] = 0xAB
	s := SafroleState{
		PendingSet:      pending,
		SealTicketsKind: SealTicketsAreBandersnatchKeys,
		SealKeys:        keys,
	}
	enc := EncodeSafroleState(s)
	got, rest, err := DecodeSafroleState(enc, cfg)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, s.SealKeys, got.SealKeys)
}

func TestSafroleStateUnknownDiscriminator(t *testing.T) {
	cfg := config.Params{Cvalcount: 0, Cepochlen: 0}
	enc := EncodeRingRoot(BandersnatchRingRoot{})
	enc = append(enc, 2) // invalid discriminator
	_, _, err := DecodeSafroleState(enc, cfg)
	require.Error(t, err)
}
