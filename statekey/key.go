// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statekey

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/types"
)

// Key is a 31-byte state key.
type Key [31]byte

// Chapter indices for the chapter-only form, plus the service chapter.
const (
	ChapterAuthPool       = 1
	ChapterAuthQueue      = 2
	ChapterRecentHistory  = 3
	ChapterSafrole        = 4
	ChapterDisputes       = 5
	ChapterEntropy        = 6
	ChapterNextValidators = 7
	ChapterCurrValidators = 8
	ChapterPrevValidators = 9
	ChapterReportsPending = 10
	ChapterTimeslot       = 11
	ChapterPrivileges     = 12
	ChapterActivity       = 13
	ChapterReadyQueue     = 14
	ChapterAccumulated    = 15
	ChapterLastAccOutputs = 16
	ChapterServiceAccount = 255
)

// Chapter constructs the chapter-only form C(i), i in [1..16]: byte0 = i,
// all other bytes zero.
func Chapter(i uint8) (Key, error) {
	if i < 1 || i > 16 {
		return Key{}, codec.Errf(codec.OutOfRange, "statekey: chapter %d out of [1,16]", i)
	}
	var k Key
	k[0] = i
	return k, nil
}

// ChapterService constructs the chapter+service form C(i,s) for i=255:
// byte0 = 255, bytes 1,3,5,7 hold the little-endian bytes of s, all other
// bytes zero.
func ChapterService(i uint8, s types.ServiceId) (Key, error) {
	if i != 255 {
		return Key{}, codec.Errf(codec.OutOfRange, "statekey: chapter+service form requires i=255, got %d", i)
	}
	var k Key
	k[0] = 255
	sb := codec.Encode4(s)
	k[1], k[3], k[5], k[7] = sb[0], sb[1], sb[2], sb[3]
	return k, nil
}

// ServiceHash constructs the service+hash form C(s,h): n = encode[4](s),
// a = the first 27 bytes of h, interleaved as
// <n0,a0,n1,a1,n2,a2,n3,a3,a4,a5,...,a26>.
func ServiceHash(s types.ServiceId, h [27]byte) Key {
	var k Key
	n := codec.Encode4(s)
	for i := 0; i < 4; i++ {
		k[2*i] = n[i]
		k[2*i+1] = h[i]
	}
	copy(k[8:], h[4:])
	return k
}

// deinterleave recovers n (4 bytes) and a (27 bytes) from a service+hash
// form key, the inverse of ServiceHash's interleaving.
func deinterleave(k Key) (n [4]byte, a [27]byte) {
	for i := 0; i < 4; i++ {
		n[i] = k[2*i]
		a[i] = k[2*i+1]
	}
	copy(a[4:], k[8:])
	return n, a
}

// ParsedKind tags which of the three construction forms a key was built
// with.
type ParsedKind int

const (
	KindChapter ParsedKind = iota
	KindChapterService
	KindServiceHash
)

// ParsedKey is the tagged inverse of a state key.
type ParsedKey struct {
	Kind       ParsedKind
	Chapter    uint8
	Service    types.ServiceId
	BlakeBytes [27]byte
}

// Parse inverts a 31-byte key into its tagged construction form.
func Parse(k Key) ParsedKey {
	if k[0] >= 1 && k[0] <= 16 && allZero(k[1:]) {
		return ParsedKey{Kind: KindChapter, Chapter: k[0]}
	}
	if k[0] == 255 && k[2] == 0 && k[4] == 0 && k[6] == 0 {
		sb := [4]byte{k[1], k[3], k[5], k[7]}
		s, _, _ := codec.Decode4(sb[:])
		return ParsedKey{Kind: KindChapterService, Chapter: 255, Service: s}
	}
	n, a := deinterleave(k)
	s, _, _ := codec.Decode4(n[:])
	return ParsedKey{Kind: KindServiceHash, Service: s, BlakeBytes: a}
}

func allZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}
