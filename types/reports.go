// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// AvailabilityAssignment is one core's pending work report awaiting
// availability assurances, with the slot at which it times out.
type AvailabilityAssignment struct {
	Report  WorkReport
	Timeout Timeslot
}

func encodeAvailabilityAssignment(a AvailabilityAssignment) []byte {
	out := EncodeWorkReport(a.Report)
	return append(out, codec.Encode4(a.Timeout)...)
}

func decodeAvailabilityAssignment(b []byte) (AvailabilityAssignment, []byte, error) {
	var a AvailabilityAssignment
	var err error
	a.Report, b, err = DecodeWorkReport(b)
	if err != nil {
		return AvailabilityAssignment{}, nil, err
	}
	a.Timeout, b, err = codec.Decode4(b)
	if err != nil {
		return AvailabilityAssignment{}, nil, err
	}
	return a, b, nil
}

// ReportsPending is the pending-reports chapter: per core, an optional
// AvailabilityAssignment (nil for a core with nothing pending). Fixed
// count Ccorecount, each slot a one-byte optional tag.
type ReportsPending struct {
	Cores []*AvailabilityAssignment
}

func EncodeReportsPending(r ReportsPending) []byte {
	return codec.EncodeFixedSeq(r.Cores, func(a *AvailabilityAssignment) []byte {
		return codec.EncodeOptional(a, encodeAvailabilityAssignment)
	})
}

func DecodeReportsPending(b []byte, cfg config.Params) (ReportsPending, []byte, error) {
	cores, rest, err := codec.DecodeFixedSeq(b, int(cfg.Ccorecount), func(in []byte) (*AvailabilityAssignment, []byte, error) {
		return codec.DecodeOptional(in, decodeAvailabilityAssignment)
	})
	if err != nil {
		return ReportsPending{}, nil, err
	}
	return ReportsPending{Cores: cores}, rest, nil
}

// EncodeTimeslotChapter writes the timeslot chapter: a bare encode[4] of
// the current slot.
func EncodeTimeslotChapter(t Timeslot) []byte {
	return codec.Encode4(t)
}

func DecodeTimeslotChapter(b []byte) (Timeslot, []byte, error) {
	return codec.Decode4(b)
}
