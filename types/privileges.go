// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/jamcodec/codec"

// Privileges is the chapter of always-privileged service ids, plus the
// ordered dictionary of services granted free accumulation gas.
type Privileges struct {
	Manager       ServiceId
	FirstAssigner ServiceId
	Delegator     ServiceId
	Registrar     ServiceId
	AlwaysAccers  []codec.DictEntry[ServiceId, Gas]
}

func EncodePrivileges(p Privileges) []byte {
	out := codec.Encode4(p.Manager)
	out = append(out, codec.Encode4(p.FirstAssigner)...)
	out = append(out, codec.Encode4(p.Delegator)...)
	out = append(out, codec.Encode4(p.Registrar)...)
	out = append(out, codec.EncodeDict(p.AlwaysAccers,
		func(k ServiceId) []byte { return codec.Encode4(k) },
		func(v Gas) []byte { return codec.Encode4(uint32(v)) },
	)...)
	return out
}

func DecodePrivileges(b []byte) (Privileges, []byte, error) {
	var p Privileges
	var err error
	p.Manager, b, err = codec.Decode4(b)
	if err != nil {
		return Privileges{}, nil, err
	}
	p.FirstAssigner, b, err = codec.Decode4(b)
	if err != nil {
		return Privileges{}, nil, err
	}
	p.Delegator, b, err = codec.Decode4(b)
	if err != nil {
		return Privileges{}, nil, err
	}
	p.Registrar, b, err = codec.Decode4(b)
	if err != nil {
		return Privileges{}, nil, err
	}
	p.AlwaysAccers, b, err = codec.DecodeDict(b,
		func(in []byte) (ServiceId, []byte, error) { return codec.Decode4(in) },
		func(in []byte) (Gas, []byte, error) {
			v, rest, e := codec.Decode4(in)
			return Gas(v), rest, e
		},
	)
	if err != nil {
		return Privileges{}, nil, err
	}
	return p, b, nil
}
