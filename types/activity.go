// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// ValidatorStats is one validator's six u32 activity counters: 24 bytes,
// no length prefix (the count is implied by Cvalcount).
type ValidatorStats struct {
	Blocks        uint32
	Tickets       uint32
	PreImages     uint32
	PreImagesSize uint32
	Guarantees    uint32
	Assurances    uint32
}

func EncodeValidatorStats(v ValidatorStats) []byte {
	out := codec.Encode4(v.Blocks)
	out = append(out, codec.Encode4(v.Tickets)...)
	out = append(out, codec.Encode4(v.PreImages)...)
	out = append(out, codec.Encode4(v.PreImagesSize)...)
	out = append(out, codec.Encode4(v.Guarantees)...)
	out = append(out, codec.Encode4(v.Assurances)...)
	return out
}

func DecodeValidatorStats(b []byte) (ValidatorStats, []byte, error) {
	var v ValidatorStats
	var err error
	fields := []*uint32{&v.Blocks, &v.Tickets, &v.PreImages, &v.PreImagesSize, &v.Guarantees, &v.Assurances}
	for _, f := range fields {
		*f, b, err = codec.Decode4(b)
		if err != nil {
			return ValidatorStats{}, nil, err
		}
	}
	return v, b, nil
}

// CoreStats is one core's eight natural-encoded activity counters, no
// length prefix.
type CoreStats struct {
	GasUsed        uint64
	Imports        uint64
	ExtrinsicCount uint64
	ExtrinsicSize  uint64
	Exports        uint64
	BundleSize     uint64
	DALoad         uint64
	Popularity     uint64
}

func EncodeCoreStats(c CoreStats) []byte {
	out := codec.EncodeNat(c.GasUsed)
	out = append(out, codec.EncodeNat(c.Imports)...)
	out = append(out, codec.EncodeNat(c.ExtrinsicCount)...)
	out = append(out, codec.EncodeNat(c.ExtrinsicSize)...)
	out = append(out, codec.EncodeNat(c.Exports)...)
	out = append(out, codec.EncodeNat(c.BundleSize)...)
	out = append(out, codec.EncodeNat(c.DALoad)...)
	out = append(out, codec.EncodeNat(c.Popularity)...)
	return out
}

func DecodeCoreStats(b []byte) (CoreStats, []byte, error) {
	var c CoreStats
	var err error
	fields := []*uint64{&c.GasUsed, &c.Imports, &c.ExtrinsicCount, &c.ExtrinsicSize, &c.Exports, &c.BundleSize, &c.DALoad, &c.Popularity}
	for _, f := range fields {
		*f, b, err = codec.DecodeNat(b)
		if err != nil {
			return CoreStats{}, nil, err
		}
	}
	return c, b, nil
}

// ServiceStats is one service's activity tuple, in fixed wire order:
// provision (count, size), refinement (count, gas), imports, extrinsic
// count and size, exports, accumulation (count, gas).
type ServiceStats struct {
	ProvisionCount      uint64
	ProvisionSize       uint64
	RefinementCount     uint64
	RefinementGasUsed   uint64
	Imports             uint64
	ExtrinsicCount      uint64
	ExtrinsicSize       uint64
	ExportCount         uint64
	AccumulationCount   uint64
	AccumulationGasUsed uint64
}

func EncodeServiceStats(s ServiceStats) []byte {
	out := codec.EncodeNat(s.ProvisionCount)
	out = append(out, codec.EncodeNat(s.ProvisionSize)...)
	out = append(out, codec.EncodeNat(s.RefinementCount)...)
	out = append(out, codec.EncodeNat(s.RefinementGasUsed)...)
	out = append(out, codec.EncodeNat(s.Imports)...)
	out = append(out, codec.EncodeNat(s.ExtrinsicCount)...)
	out = append(out, codec.EncodeNat(s.ExtrinsicSize)...)
	out = append(out, codec.EncodeNat(s.ExportCount)...)
	out = append(out, codec.EncodeNat(s.AccumulationCount)...)
	out = append(out, codec.EncodeNat(s.AccumulationGasUsed)...)
	return out
}

func DecodeServiceStats(b []byte) (ServiceStats, []byte, error) {
	var s ServiceStats
	var err error
	fields := []*uint64{
		&s.ProvisionCount, &s.ProvisionSize,
		&s.RefinementCount, &s.RefinementGasUsed,
		&s.Imports, &s.ExtrinsicCount, &s.ExtrinsicSize, &s.ExportCount,
		&s.AccumulationCount, &s.AccumulationGasUsed,
	}
	for _, f := range fields {
		*f, b, err = codec.DecodeNat(b)
		if err != nil {
			return ServiceStats{}, nil, err
		}
	}
	return s, b, nil
}

// Activity is the statistics chapter: two epochs of per-validator
// counters, one epoch of per-core counters, and an ordered dictionary of
// per-service counters.
type Activity struct {
	ValStatsAccumulator []ValidatorStats // length Cvalcount
	ValStatsPrevious    []ValidatorStats // length Cvalcount
	CoreStatsList       []CoreStats      // length Ccorecount
	ServiceStatsDict    []codec.DictEntry[ServiceId, ServiceStats]
}

func EncodeActivity(a Activity) []byte {
	out := codec.EncodeFixedSeq(a.ValStatsAccumulator, EncodeValidatorStats)
	out = append(out, codec.EncodeFixedSeq(a.ValStatsPrevious, EncodeValidatorStats)...)
	out = append(out, codec.EncodeFixedSeq(a.CoreStatsList, EncodeCoreStats)...)
	out = append(out, codec.EncodeDict(a.ServiceStatsDict,
		func(k ServiceId) []byte { return codec.Encode4(k) },
		EncodeServiceStats,
	)...)
	return out
}

func DecodeActivity(b []byte, cfg config.Params) (Activity, []byte, error) {
	var a Activity
	var err error
	a.ValStatsAccumulator, b, err = codec.DecodeFixedSeq(b, int(cfg.Cvalcount), DecodeValidatorStats)
	if err != nil {
		return Activity{}, nil, err
	}
	a.ValStatsPrevious, b, err = codec.DecodeFixedSeq(b, int(cfg.Cvalcount), DecodeValidatorStats)
	if err != nil {
		return Activity{}, nil, err
	}
	a.CoreStatsList, b, err = codec.DecodeFixedSeq(b, int(cfg.Ccorecount), DecodeCoreStats)
	if err != nil {
		return Activity{}, nil, err
	}
	a.ServiceStatsDict, b, err = codec.DecodeDict(b,
		func(in []byte) (ServiceId, []byte, error) { return codec.Decode4(in) },
		DecodeServiceStats,
	)
	if err != nil {
		return Activity{}, nil, err
	}
	return a, b, nil
}
