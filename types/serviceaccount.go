// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// ServiceAccountCore is the state-trie wire form of a service account
// (chapter 255 entries): 88 bytes, or 89 with the JAM >= 0.7.1
// discriminator byte. The discriminator is controlled entirely by
// cfg.ServiceAccountDiscriminator, never sniffed from the decoded bytes:
// a legitimate codehash can itself begin with 0x00.
type ServiceAccountCore struct {
	CodeHash   Hash
	Balance    uint64
	MinAccGas  uint64
	MinMemoGas uint64
	Octets     uint64
	Gratis     uint64
	Items      uint32
	Created    uint32
	LastAcc    uint32
	Parent     uint32
}

func EncodeServiceAccountCore(s ServiceAccountCore, cfg config.Params) []byte {
	var out []byte
	if cfg.ServiceAccountDiscriminator {
		out = append(out, 0x00)
	}
	out = append(out, EncodeHash(s.CodeHash)...)
	out = append(out, codec.Encode8(s.Balance)...)
	out = append(out, codec.Encode8(s.MinAccGas)...)
	out = append(out, codec.Encode8(s.MinMemoGas)...)
	out = append(out, codec.Encode8(s.Octets)...)
	out = append(out, codec.Encode8(s.Gratis)...)
	out = append(out, codec.Encode4(s.Items)...)
	out = append(out, codec.Encode4(s.Created)...)
	out = append(out, codec.Encode4(s.LastAcc)...)
	out = append(out, codec.Encode4(s.Parent)...)
	return out
}

func DecodeServiceAccountCore(b []byte, cfg config.Params) (ServiceAccountCore, []byte, error) {
	var s ServiceAccountCore
	var err error
	if cfg.ServiceAccountDiscriminator {
		if len(b) < 1 {
			return ServiceAccountCore{}, nil, codec.Errf(codec.InsufficientData, "serviceaccount: missing discriminator byte")
		}
		b = b[1:]
	}
	s.CodeHash, b, err = DecodeHash(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.Balance, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.MinAccGas, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.MinMemoGas, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.Octets, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.Gratis, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.Items, b, err = codec.Decode4(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.Created, b, err = codec.Decode4(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.LastAcc, b, err = codec.Decode4(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	s.Parent, b, err = codec.Decode4(b)
	if err != nil {
		return ServiceAccountCore{}, nil, err
	}
	return s, b, nil
}

// ServiceAccountHost is the 96-byte host-function form of a service
// account: a distinct field set and layout from ServiceAccountCore, never
// interchangeable with it; callers pick whichever form their call site
// needs.
type ServiceAccountHost struct {
	CodeHash   Hash
	Balance    uint64
	MinBalance uint64
	MinAccGas  uint64
	MinMemoGas uint64
	Octets     uint64
	Items      uint32
	Gratis     uint64
	Created    uint32
	LastAcc    uint32
	Parent     uint32
}

func EncodeServiceAccountHost(s ServiceAccountHost) []byte {
	out := EncodeHash(s.CodeHash)
	out = append(out, codec.Encode8(s.Balance)...)
	out = append(out, codec.Encode8(s.MinBalance)...)
	out = append(out, codec.Encode8(s.MinAccGas)...)
	out = append(out, codec.Encode8(s.MinMemoGas)...)
	out = append(out, codec.Encode8(s.Octets)...)
	out = append(out, codec.Encode4(s.Items)...)
	out = append(out, codec.Encode8(s.Gratis)...)
	out = append(out, codec.Encode4(s.Created)...)
	out = append(out, codec.Encode4(s.LastAcc)...)
	out = append(out, codec.Encode4(s.Parent)...)
	return out
}

func DecodeServiceAccountHost(b []byte) (ServiceAccountHost, []byte, error) {
	var s ServiceAccountHost
	var err error
	s.CodeHash, b, err = DecodeHash(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.Balance, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.MinBalance, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.MinAccGas, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.MinMemoGas, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.Octets, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.Items, b, err = codec.Decode4(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.Gratis, b, err = codec.Decode8(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.Created, b, err = codec.Decode4(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.LastAcc, b, err = codec.Decode4(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	s.Parent, b, err = codec.Decode4(b)
	if err != nil {
		return ServiceAccountHost{}, nil, err
	}
	return s, b, nil
}
