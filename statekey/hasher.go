// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package statekey implements the 31-byte state-key construction and
// classification machinery: the three key forms, their inverse parser,
// and the two-pass preimage/request/storage classifier.
package statekey

import "golang.org/x/crypto/blake2b"

//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=statekeymock/hasher.go -package=statekeymock

// Hasher computes a Blake2b-256 digest. It is the one seam the classifier
// exposes to callers that want to substitute their own implementation in
// tests, rather than exercising the real blake2b.Sum256 on every case.
type Hasher interface {
	Sum256(data []byte) [32]byte
}

// Blake2bHasher is the production Hasher, backed directly by
// golang.org/x/crypto/blake2b.
type Blake2bHasher struct{}

func (Blake2bHasher) Sum256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}
