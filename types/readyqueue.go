// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// ReadyRecord is a work report queued for accumulation together with the
// work-package hashes it still depends on.
type ReadyRecord struct {
	Report       WorkReport
	Dependencies []Hash // ordered set
}

func encodeReadyRecord(r ReadyRecord) []byte {
	out := EncodeWorkReport(r.Report)
	return append(out, encodeHashSet(r.Dependencies)...)
}

func decodeReadyRecord(b []byte) (ReadyRecord, []byte, error) {
	var r ReadyRecord
	var err error
	r.Report, b, err = DecodeWorkReport(b)
	if err != nil {
		return ReadyRecord{}, nil, err
	}
	r.Dependencies, b, err = decodeHashSet(b)
	if err != nil {
		return ReadyRecord{}, nil, err
	}
	return r, b, nil
}

// ReadyQueue is the accumulation-ready chapter: one slot per epoch
// position (fixed count Cepochlen), each a variable sequence of
// ReadyRecords queued at that slot.
type ReadyQueue struct {
	Slots [][]ReadyRecord
}

func EncodeReadyQueue(q ReadyQueue) []byte {
	return codec.EncodeFixedSeq(q.Slots, func(slot []ReadyRecord) []byte {
		return codec.EncodeSeq(slot, encodeReadyRecord)
	})
}

func DecodeReadyQueue(b []byte, cfg config.Params) (ReadyQueue, []byte, error) {
	slots, rest, err := codec.DecodeFixedSeq(b, int(cfg.Cepochlen), func(in []byte) ([]ReadyRecord, []byte, error) {
		return codec.DecodeSeq(in, decodeReadyRecord)
	})
	if err != nil {
		return ReadyQueue{}, nil, err
	}
	return ReadyQueue{Slots: slots}, rest, nil
}

// AccumulatedHistory is the accumulated-set chapter: per epoch position
// (fixed count Cepochlen), the ordered set of work-package hashes
// accumulated at that slot.
type AccumulatedHistory struct {
	Slots [][]Hash
}

func EncodeAccumulatedHistory(h AccumulatedHistory) []byte {
	return codec.EncodeFixedSeq(h.Slots, encodeHashSet)
}

func DecodeAccumulatedHistory(b []byte, cfg config.Params) (AccumulatedHistory, []byte, error) {
	slots, rest, err := codec.DecodeFixedSeq(b, int(cfg.Cepochlen), decodeHashSet)
	if err != nil {
		return AccumulatedHistory{}, nil, err
	}
	return AccumulatedHistory{Slots: slots}, rest, nil
}

// LastAccOutputs is the last-accumulation-outputs chapter: an ordered
// dictionary from service id to the commitment hash its most recent
// accumulation produced.
type LastAccOutputs struct {
	Outputs []codec.DictEntry[ServiceId, Hash]
}

func EncodeLastAccOutputs(o LastAccOutputs) []byte {
	return codec.EncodeDict(o.Outputs,
		func(k ServiceId) []byte { return codec.Encode4(k) },
		EncodeHash,
	)
}

func DecodeLastAccOutputs(b []byte) (LastAccOutputs, []byte, error) {
	outputs, rest, err := codec.DecodeDict(b,
		func(in []byte) (ServiceId, []byte, error) { return codec.Decode4(in) },
		DecodeHash,
	)
	if err != nil {
		return LastAccOutputs{}, nil, err
	}
	return LastAccOutputs{Outputs: outputs}, rest, nil
}
