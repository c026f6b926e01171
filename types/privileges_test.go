// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/luxfi/jamcodec/codec"
	"github.com/stretchr/testify/require"
)

func TestPrivilegesRoundTrip(t *testing.T) {
	p := Privileges{
		Manager:       1,
		FirstAssigner: 2,
		Delegator:     3,
		Registrar:     4,
		AlwaysAccers: []codec.DictEntry[ServiceId, Gas]{
			{Key: 20, Value: 100},
			{Key: 10, Value: 200},
		},
	}
	enc := EncodePrivileges(p)
	got, rest, err := DecodePrivileges(enc)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, ServiceId(1), got.Manager)
	require.Equal(t, []codec.DictEntry[ServiceId, Gas]{
		{Key: 10, Value: 200},
		{Key: 20, Value: 100},
	}, got.AlwaysAccers)
}
