// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statekey

import (
	"bytes"
	"sort"

	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/pvm"
	"github.com/luxfi/jamcodec/types"
)

// Label is the outcome of classifying one C(s,h) entry.
type Label int

const (
	LabelStorage Label = iota
	LabelPreimage
	LabelRequest
)

// Entry is one raw C(s,h) key/value pair for a service, prior to
// classification.
type Entry struct {
	Key   Key
	Value []byte
}

// Classified is one classified entry: its label, and for preimage/request
// entries the digest the label pivots on.
type Classified struct {
	Key          Key
	Label        Label
	PreimageHash [32]byte // set for Preimage and matched Request entries
	StorageKey   [27]byte // set for Storage entries, the raw `a` component
	StorageValue []byte   // set for Storage entries
}

// Result is the output of Classify for a service: its classified entries
// and the derived items counter, items = 2*|requests| + |storage|
// (preimages do not contribute).
type Result struct {
	Entries []Classified
	Items   uint64
}

type preimageRecord struct {
	hash   [32]byte
	length uint64
}

// Classify implements the two-pass preimage/request/storage classifier
// for the C(s,h) entries belonging to service s. currentSlot is optional
// (nil means "no current timeslot supplied").
func Classify(service types.ServiceId, entries []Entry, hasher Hasher, currentSlot *uint32) Result {
	preimages := make(map[Key]preimageRecord)
	var preimageList []preimageRecord

	// Pass 1: preimage test.
	remaining := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if isPreimage(e, hasher) {
			hp := hasher.Sum256(e.Value)
			rec := preimageRecord{hash: hp, length: uint64(len(e.Value))}
			preimages[e.Key] = rec
			preimageList = append(preimageList, rec)
			continue
		}
		remaining = append(remaining, e)
	}

	var out []Classified
	var requestCount, storageCount uint64

	// Pass 2: request test, then storage fallback.
	for _, e := range remaining {
		if lbl, hash, ok := classifyRequest(service, e, preimageList, currentSlot); ok {
			out = append(out, Classified{Key: e.Key, Label: lbl, PreimageHash: hash})
			requestCount++
			continue
		}
		_, a := deinterleave(e.Key)
		out = append(out, Classified{Key: e.Key, Label: LabelStorage, StorageKey: a, StorageValue: e.Value})
		storageCount++
	}

	for k, rec := range preimages {
		out = append(out, Classified{Key: k, Label: LabelPreimage, PreimageHash: rec.hash})
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].Key[:], out[j].Key[:]) < 0
	})

	return Result{Entries: out, Items: 2*requestCount + storageCount}
}

// isPreimage implements step 2: k' = first 27 bytes of
// Blake2b(encode[4](0xFFFFFFFE) ∥ Blake2b(value)) must equal a, and value
// must parse as a valid PVM preimage-embedded program.
func isPreimage(e Entry, hasher Hasher) bool {
	_, a := deinterleave(e.Key)
	hp := hasher.Sum256(e.Value)
	p := append(codec.Encode4(0xFFFFFFFE), hp[:]...)
	kp := hasher.Sum256(p)
	if !bytes.Equal(kp[:27], a[:]) {
		return false
	}
	return pvm.IsValidProgram(e.Value)
}

// classifyRequest implements step 3: the value must be exactly 5 bytes
// (a natural-encoded count m <= 3 followed by m little-endian u32
// timeslots, weakly ascending and each <= currentSlot if supplied); then
// try to match a known preimage by recomputing its expected request key.
func classifyRequest(service types.ServiceId, e Entry, preimages []preimageRecord, currentSlot *uint32) (Label, [32]byte, bool) {
	if len(e.Value) != 5 {
		return 0, [32]byte{}, false
	}
	m, _, err := codec.DecodeNat(e.Value)
	if err != nil || m > 3 || 1+4*m != uint64(len(e.Value)) {
		return 0, [32]byte{}, false
	}
	slots := make([]uint32, 0, m)
	remaining := e.Value[1:]
	for i := uint64(0); i < m; i++ {
		var ts uint32
		ts, remaining, err = codec.Decode4(remaining)
		if err != nil {
			return 0, [32]byte{}, false
		}
		slots = append(slots, ts)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i] < slots[i-1] {
			return 0, [32]byte{}, false
		}
	}
	if currentSlot != nil {
		for _, ts := range slots {
			if ts > *currentSlot {
				return 0, [32]byte{}, false
			}
		}
	}

	for _, rec := range preimages {
		lengthKey := append(codec.Encode4(uint32(rec.length)), rec.hash[:]...)
		var h27 [27]byte
		digest := blake2bOf(lengthKey)
		copy(h27[:], digest[:27])
		expected := ServiceHash(service, h27)
		if expected == e.Key {
			return LabelRequest, rec.hash, true
		}
	}
	if currentSlot != nil {
		return LabelRequest, [32]byte{}, true
	}
	return 0, [32]byte{}, false
}

// blake2bOf is a thin indirection kept local to classify.go so the
// request-key recomputation always uses the production Blake2b, even if a
// custom Hasher was injected for the preimage pass.
func blake2bOf(b []byte) [32]byte {
	return Blake2bHasher{}.Sum256(b)
}
