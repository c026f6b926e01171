// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fuzzwire implements the outer fuzz-protocol envelope: a
// one-byte discriminator followed by a typed payload.
// The envelope carries no outer length prefix; an outer transport (e.g.
// cmd/jamconform) is free to add one.
package fuzzwire

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
	"github.com/luxfi/jamcodec/statekey"
	"github.com/luxfi/jamcodec/types"
)

// Discriminator tags a FuzzMessage's payload shape.
type Discriminator byte

const (
	DiscPeerInfo    Discriminator = 0
	DiscInitialize  Discriminator = 1
	DiscStateRoot   Discriminator = 2
	DiscImportBlock Discriminator = 3
	DiscGetState    Discriminator = 4
	DiscState       Discriminator = 5
	DiscError       Discriminator = 0xFF
)

// KeyValue is one entry of a key/value state dump.
type KeyValue struct {
	Key   statekey.Key
	Value []byte
}

func encodeKeyValue(kv KeyValue) []byte {
	out, _ := codec.EncodeIdentity(31, kv.Key[:])
	return append(out, codec.EncodeBlob(kv.Value)...)
}

func decodeKeyValue(b []byte) (KeyValue, []byte, error) {
	raw, rest, err := codec.DecodeIdentity(31, b)
	if err != nil {
		return KeyValue{}, nil, err
	}
	var kv KeyValue
	copy(kv.Key[:], raw)
	kv.Value, rest, err = codec.DecodeBlob(rest)
	if err != nil {
		return KeyValue{}, nil, err
	}
	return kv, rest, nil
}

// AncestryItem is one (slot, header hash) pair in an Initialize message's
// ancestry list.
type AncestryItem struct {
	Slot       types.Timeslot
	HeaderHash types.Hash
}

func encodeAncestryItem(a AncestryItem) []byte {
	out := codec.Encode4(a.Slot)
	return append(out, types.EncodeHash(a.HeaderHash)...)
}

func decodeAncestryItem(b []byte) (AncestryItem, []byte, error) {
	var a AncestryItem
	var err error
	a.Slot, b, err = codec.Decode4(b)
	if err != nil {
		return AncestryItem{}, nil, err
	}
	a.HeaderHash, b, err = types.DecodeHash(b)
	if err != nil {
		return AncestryItem{}, nil, err
	}
	return a, b, nil
}

// PeerInfo is exchanged during fuzz-protocol handshaking.
type PeerInfo struct {
	FuzzVersion  uint8
	FuzzFeatures uint32
	JamVersion   [3]uint8
	AppVersion   [3]uint8
	AppName      string
}

func encodePeerInfo(p PeerInfo) []byte {
	out := []byte{p.FuzzVersion}
	out = append(out, codec.Encode4(p.FuzzFeatures)...)
	out = append(out, p.JamVersion[:]...)
	out = append(out, p.AppVersion[:]...)
	out = append(out, codec.EncodeBlob([]byte(p.AppName))...)
	return out
}

func decodePeerInfo(b []byte) (PeerInfo, []byte, error) {
	if len(b) < 1 {
		return PeerInfo{}, nil, codec.Errf(codec.InsufficientData, "fuzzwire: peerInfo fuzzVersion")
	}
	var p PeerInfo
	p.FuzzVersion, b = b[0], b[1:]
	var err error
	p.FuzzFeatures, b, err = codec.Decode4(b)
	if err != nil {
		return PeerInfo{}, nil, err
	}
	if len(b) < 6 {
		return PeerInfo{}, nil, codec.Errf(codec.InsufficientData, "fuzzwire: peerInfo version bytes")
	}
	copy(p.JamVersion[:], b[:3])
	copy(p.AppVersion[:], b[3:6])
	b = b[6:]
	name, rest, err := codec.DecodeBlob(b)
	if err != nil {
		return PeerInfo{}, nil, err
	}
	p.AppName = string(name)
	return p, rest, nil
}

// Initialize carries the genesis/checkpoint state a conformance target
// should start from.
type Initialize struct {
	Header   types.Header
	KeyVals  []KeyValue
	Ancestry []AncestryItem
}

func encodeInitialize(init Initialize, cfg config.Params) []byte {
	out := types.EncodeHeader(init.Header, cfg)
	out = append(out, codec.EncodeSeq(init.KeyVals, encodeKeyValue)...)
	out = append(out, codec.EncodeSeq(init.Ancestry, encodeAncestryItem)...)
	return out
}

// maxInitializePadding bounds the zero-byte padding skip below: a real
// producer artifact is a handful of stray bytes, not an unbounded scan.
const maxInitializePadding = 8

// decodeInitialize decodes an Initialize payload. A known producer
// artifact inserts a few zero bytes between the header and the
// key/value sequence; if the sequence fails to decode at the header's
// end, each leading zero byte is skipped and decoding is retried.
func decodeInitialize(b []byte, cfg config.Params) (Initialize, []byte, error) {
	var init Initialize
	var err error
	init.Header, b, err = types.DecodeHeader(b, cfg)
	if err != nil {
		return Initialize{}, nil, err
	}

	rest := b
	var kv []KeyValue
	var anc []AncestryItem
	var decErr error
	for skipped := 0; ; skipped++ {
		kv, rest, decErr = codec.DecodeSeq(b, decodeKeyValue)
		if decErr == nil {
			anc, rest, decErr = codec.DecodeSeq(rest, decodeAncestryItem)
		}
		if decErr == nil {
			break
		}
		if skipped >= maxInitializePadding || len(b) == 0 || b[0] != 0x00 {
			return Initialize{}, nil, decErr
		}
		b = b[1:]
	}
	init.KeyVals = kv
	init.Ancestry = anc
	return init, rest, nil
}

// Message is the outer fuzz-protocol envelope: a one-byte discriminator
// followed by its typed payload.
type Message struct {
	Disc        Discriminator
	PeerInfo    *PeerInfo
	Initialize  *Initialize
	StateRoot   *types.Hash
	ImportBlock *types.Block
	GetState    *types.Hash
	State       []KeyValue
	Error       string
}

func EncodeMessage(m Message, cfg config.Params) []byte {
	switch m.Disc {
	case DiscPeerInfo:
		return append([]byte{byte(DiscPeerInfo)}, encodePeerInfo(*m.PeerInfo)...)
	case DiscInitialize:
		return append([]byte{byte(DiscInitialize)}, encodeInitialize(*m.Initialize, cfg)...)
	case DiscStateRoot:
		return append([]byte{byte(DiscStateRoot)}, types.EncodeHash(*m.StateRoot)...)
	case DiscImportBlock:
		return append([]byte{byte(DiscImportBlock)}, types.EncodeBlock(*m.ImportBlock, cfg)...)
	case DiscGetState:
		return append([]byte{byte(DiscGetState)}, types.EncodeHash(*m.GetState)...)
	case DiscState:
		return append([]byte{byte(DiscState)}, codec.EncodeSeq(m.State, encodeKeyValue)...)
	case DiscError:
		return append([]byte{byte(DiscError)}, codec.EncodeBlob([]byte(m.Error))...)
	default:
		return nil
	}
}

func DecodeMessage(b []byte, cfg config.Params) (Message, []byte, error) {
	if len(b) < 1 {
		return Message{}, nil, codec.Errf(codec.InsufficientData, "fuzzwire: discriminator")
	}
	disc := Discriminator(b[0])
	b = b[1:]
	var m Message
	m.Disc = disc
	var err error
	switch disc {
	case DiscPeerInfo:
		var p PeerInfo
		p, b, err = decodePeerInfo(b)
		m.PeerInfo = &p
	case DiscInitialize:
		var init Initialize
		init, b, err = decodeInitialize(b, cfg)
		m.Initialize = &init
	case DiscStateRoot:
		var h types.Hash
		h, b, err = types.DecodeHash(b)
		m.StateRoot = &h
	case DiscImportBlock:
		var blk types.Block
		blk, b, err = types.DecodeBlock(b, cfg)
		m.ImportBlock = &blk
	case DiscGetState:
		var h types.Hash
		h, b, err = types.DecodeHash(b)
		m.GetState = &h
	case DiscState:
		m.State, b, err = codec.DecodeSeq(b, decodeKeyValue)
	case DiscError:
		var msg []byte
		msg, b, err = codec.DecodeBlob(b)
		m.Error = string(msg)
	default:
		return Message{}, nil, codec.Errf(codec.UnknownVariant, "fuzzwire: discriminator 0x%02x", byte(disc))
	}
	if err != nil {
		return Message{}, nil, err
	}
	return m, b, nil
}
