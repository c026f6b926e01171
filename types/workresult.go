// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/luxfi/jamcodec/codec"

// ResultKind is the tag of a WorkResult/WorkDigest's result union.
type ResultKind byte

const (
	ResultSuccess      ResultKind = 0
	ResultOutOfGas     ResultKind = 1
	ResultPanic        ResultKind = 2
	ResultBadExports   ResultKind = 3
	ResultOversize     ResultKind = 4
	ResultBadCode      ResultKind = 5
	ResultCodeOversize ResultKind = 6
)

// Result is the tagged union of a work item's outcome. Only Success
// carries a payload.
type Result struct {
	Kind    ResultKind
	Payload []byte // set iff Kind == ResultSuccess
}

func EncodeResult(r Result) []byte {
	if r.Kind == ResultSuccess {
		return codec.EncodeUnion(byte(r.Kind), codec.EncodeBlob(r.Payload))
	}
	return codec.EncodeUnion(byte(r.Kind), nil)
}

var resultDecoders = codec.UnionDecoder[Result]{
	byte(ResultSuccess): func(b []byte) (Result, []byte, error) {
		payload, rest, err := codec.DecodeBlob(b)
		if err != nil {
			return Result{}, nil, err
		}
		return Result{Kind: ResultSuccess, Payload: payload}, rest, nil
	},
	byte(ResultOutOfGas):     func(b []byte) (Result, []byte, error) { return Result{Kind: ResultOutOfGas}, b, nil },
	byte(ResultPanic):        func(b []byte) (Result, []byte, error) { return Result{Kind: ResultPanic}, b, nil },
	byte(ResultBadExports):   func(b []byte) (Result, []byte, error) { return Result{Kind: ResultBadExports}, b, nil },
	byte(ResultOversize):     func(b []byte) (Result, []byte, error) { return Result{Kind: ResultOversize}, b, nil },
	byte(ResultBadCode):      func(b []byte) (Result, []byte, error) { return Result{Kind: ResultBadCode}, b, nil },
	byte(ResultCodeOversize): func(b []byte) (Result, []byte, error) { return Result{Kind: ResultCodeOversize}, b, nil },
}

func DecodeResult(b []byte) (Result, []byte, error) {
	return codec.DecodeUnion(b, resultDecoders)
}

// RefineLoad is the five trailing natural-encoded load counters shared by
// WorkResult (as "refineLoad") and WorkDigest (as its trailing counters).
type RefineLoad struct {
	GasUsed        uint64
	Imports        uint64
	ExtrinsicCount uint64
	ExtrinsicSize  uint64
	Exports        uint64
}

func EncodeRefineLoad(r RefineLoad) []byte {
	out := codec.EncodeNat(r.GasUsed)
	out = append(out, codec.EncodeNat(r.Imports)...)
	out = append(out, codec.EncodeNat(r.ExtrinsicCount)...)
	out = append(out, codec.EncodeNat(r.ExtrinsicSize)...)
	out = append(out, codec.EncodeNat(r.Exports)...)
	return out
}

func DecodeRefineLoad(b []byte) (RefineLoad, []byte, error) {
	var r RefineLoad
	var err error
	r.GasUsed, b, err = codec.DecodeNat(b)
	if err != nil {
		return RefineLoad{}, nil, err
	}
	r.Imports, b, err = codec.DecodeNat(b)
	if err != nil {
		return RefineLoad{}, nil, err
	}
	r.ExtrinsicCount, b, err = codec.DecodeNat(b)
	if err != nil {
		return RefineLoad{}, nil, err
	}
	r.ExtrinsicSize, b, err = codec.DecodeNat(b)
	if err != nil {
		return RefineLoad{}, nil, err
	}
	r.Exports, b, err = codec.DecodeNat(b)
	if err != nil {
		return RefineLoad{}, nil, err
	}
	return r, b, nil
}

// WorkResult is one work item's outcome as carried in the accumulation
// path: it bills against a per-item accumulate-gas budget.
type WorkResult struct {
	ServiceId     ServiceId
	CodeHash      Hash
	PayloadHash   Hash
	AccumulateGas Gas
	Result        Result
	RefineLoad    RefineLoad
}

func EncodeWorkResult(w WorkResult) []byte {
	out := codec.Encode4(w.ServiceId)
	out = append(out, EncodeHash(w.CodeHash)...)
	out = append(out, EncodeHash(w.PayloadHash)...)
	out = append(out, codec.Encode8(w.AccumulateGas)...)
	out = append(out, EncodeResult(w.Result)...)
	out = append(out, EncodeRefineLoad(w.RefineLoad)...)
	return out
}

func DecodeWorkResult(b []byte) (WorkResult, []byte, error) {
	var w WorkResult
	var err error
	w.ServiceId, b, err = codec.Decode4(b)
	if err != nil {
		return WorkResult{}, nil, err
	}
	w.CodeHash, b, err = DecodeHash(b)
	if err != nil {
		return WorkResult{}, nil, err
	}
	w.PayloadHash, b, err = DecodeHash(b)
	if err != nil {
		return WorkResult{}, nil, err
	}
	w.AccumulateGas, b, err = codec.Decode8(b)
	if err != nil {
		return WorkResult{}, nil, err
	}
	w.Result, b, err = DecodeResult(b)
	if err != nil {
		return WorkResult{}, nil, err
	}
	w.RefineLoad, b, err = DecodeRefineLoad(b)
	if err != nil {
		return WorkResult{}, nil, err
	}
	return w, b, nil
}

// WorkDigest is WorkResult's sibling used inside a WorkReport: it carries
// a fixed refinement gas limit rather than an accumulate-gas spend,
// followed by the same five trailing natural-encoded load counters.
type WorkDigest struct {
	ServiceId   ServiceId
	CodeHash    Hash
	PayloadHash Hash
	GasLimit    Gas
	Result      Result
	Load        RefineLoad
}

func EncodeWorkDigest(w WorkDigest) []byte {
	out := codec.Encode4(w.ServiceId)
	out = append(out, EncodeHash(w.CodeHash)...)
	out = append(out, EncodeHash(w.PayloadHash)...)
	out = append(out, codec.Encode8(w.GasLimit)...)
	out = append(out, EncodeResult(w.Result)...)
	out = append(out, EncodeRefineLoad(w.Load)...)
	return out
}

func DecodeWorkDigest(b []byte) (WorkDigest, []byte, error) {
	var w WorkDigest
	var err error
	w.ServiceId, b, err = codec.Decode4(b)
	if err != nil {
		return WorkDigest{}, nil, err
	}
	w.CodeHash, b, err = DecodeHash(b)
	if err != nil {
		return WorkDigest{}, nil, err
	}
	w.PayloadHash, b, err = DecodeHash(b)
	if err != nil {
		return WorkDigest{}, nil, err
	}
	w.GasLimit, b, err = codec.Decode8(b)
	if err != nil {
		return WorkDigest{}, nil, err
	}
	w.Result, b, err = DecodeResult(b)
	if err != nil {
		return WorkDigest{}, nil, err
	}
	w.Load, b, err = DecodeRefineLoad(b)
	if err != nil {
		return WorkDigest{}, nil, err
	}
	return w, b, nil
}
