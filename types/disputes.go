// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

// Disputes is the judgement-set chapter: three ordered hash sets plus an
// ordered set of offending Ed25519 keys, in fixed order. Each set is
// serialized in ascending byte order of its canonical encoding.
type Disputes struct {
	GoodSet   []Hash
	BadSet    []Hash
	WonkySet  []Hash
	Offenders []Hash
}

func EncodeDisputes(d Disputes) []byte {
	out := encodeHashSet(d.GoodSet)
	out = append(out, encodeHashSet(d.BadSet)...)
	out = append(out, encodeHashSet(d.WonkySet)...)
	out = append(out, encodeHashSet(d.Offenders)...)
	return out
}

func DecodeDisputes(b []byte) (Disputes, []byte, error) {
	var d Disputes
	var err error
	d.GoodSet, b, err = decodeHashSet(b)
	if err != nil {
		return Disputes{}, nil, err
	}
	d.BadSet, b, err = decodeHashSet(b)
	if err != nil {
		return Disputes{}, nil, err
	}
	d.WonkySet, b, err = decodeHashSet(b)
	if err != nil {
		return Disputes{}, nil, err
	}
	d.Offenders, b, err = decodeHashSet(b)
	if err != nil {
		return Disputes{}, nil, err
	}
	return d, b, nil
}
