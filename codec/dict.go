// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"sort"
)

// DictEntry is one key/value pair of an ordered dictionary.
type DictEntry[K, V any] struct {
	Key   K
	Value V
}

// EncodeDict writes a variable sequence of (encode(k), encode(v)) pairs,
// ordered ascending by the key's canonical encoding. Both encodeKey and
// encodeValue must pin a fixed or length-prefixed shape per entry; this
// package exposes no unframed dictionary encoding, since a decoder could
// not tell where one pair ends and the next begins.
func EncodeDict[K, V any](entries []DictEntry[K, V], encodeKey func(K) []byte, encodeValue func(V) []byte) []byte {
	type packed struct {
		key   []byte
		value []byte
	}
	ps := make([]packed, len(entries))
	for i, e := range entries {
		ps[i] = packed{encodeKey(e.Key), encodeValue(e.Value)}
	}
	sort.Slice(ps, func(i, j int) bool {
		return bytes.Compare(ps[i].key, ps[j].key) < 0
	})
	out := EncodeNat(Nat(len(ps)))
	for _, p := range ps {
		out = append(out, p.key...)
		out = append(out, p.value...)
	}
	return out
}

// DecodeDict reads a variable sequence of (key, value) pairs. Decoders
// must tolerate duplicate keys on the wire (last one wins); encoders must
// never produce them.
func DecodeDict[K comparable, V any](b []byte, decodeKey func([]byte) (K, []byte, error), decodeValue func([]byte) (V, []byte, error)) ([]DictEntry[K, V], []byte, error) {
	n, rest, err := DecodeNat(b)
	if err != nil {
		return nil, nil, err
	}
	if n > Nat(len(rest)) {
		return nil, nil, Errf(InsufficientData, "dict: length %d exceeds %d remaining bytes", n, len(rest))
	}
	byKey := make(map[K]int, n)
	var entries []DictEntry[K, V]
	for i := Nat(0); i < n; i++ {
		var k K
		var v V
		k, rest, err = decodeKey(rest)
		if err != nil {
			return nil, nil, err
		}
		v, rest, err = decodeValue(rest)
		if err != nil {
			return nil, nil, err
		}
		if idx, ok := byKey[k]; ok {
			entries[idx].Value = v
			continue
		}
		byKey[k] = len(entries)
		entries = append(entries, DictEntry[K, V]{Key: k, Value: v})
	}
	return entries, rest, nil
}
