// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec implements the primitive binary encodings shared by every
// JAM entity codec: natural-number varints, fixed-length little-endian
// integers, length-prefixed blobs, optionals, discriminated unions,
// homogeneous sequences, bit sequences, and ordered sets/dictionaries.
//
// Every function here is pure: it reads or writes octet slices and never
// touches shared state. Decoders return the decoded value together with
// the unconsumed tail of the input so callers can compose decoders freely.
package codec

import (
	"errors"
	"fmt"
)

// Kind enumerates the closed set of ways a codec operation can fail.
type Kind int

const (
	// InsufficientData means fewer bytes remained than the field demanded.
	InsufficientData Kind = iota
	// OutOfRange means a value exceeded the capacity of its target
	// fixed-length integer, or a natural exceeded 2^64-1.
	OutOfRange
	// UnknownVariant means a union discriminator had no registered decoder.
	UnknownVariant
	// InvalidOptionalTag means an optional's leading byte was not 0 or 1.
	InvalidOptionalTag
	// ShapeMismatch means a structural predicate failed (e.g. a request
	// value was not exactly 5 bytes, or sealtickets mixed element types).
	ShapeMismatch
	// CryptoMismatch means a preimage's hash did not map back to its key
	// under the required Blake2b derivation.
	CryptoMismatch
	// ProgramMalformed means a preimage candidate did not parse as a PVM
	// program blob.
	ProgramMalformed
	// Unsupported means a caller-supplied size (e.g. a bit count) falls
	// outside the range this implementation can safely index with Go's
	// int, even though the wire value itself decoded cleanly.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case InsufficientData:
		return "insufficient data"
	case OutOfRange:
		return "out of range"
	case UnknownVariant:
		return "unknown variant"
	case InvalidOptionalTag:
		return "invalid optional tag"
	case ShapeMismatch:
		return "shape mismatch"
	case CryptoMismatch:
		return "crypto mismatch"
	case ProgramMalformed:
		return "program malformed"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned by every decoder and fallible encoder
// in this module. It carries the Kind so callers can branch on failure
// class with errors.As, plus a human-readable context string.
type Error struct {
	Kind    Kind
	Context string
}

func (e *Error) Error() string {
	if e.Context == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, codec.ErrOutOfRange) style checks via the sentinels
// below.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// Errf builds an *Error with a formatted context string.
func Errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Context: fmt.Sprintf(format, args...)}
}

// Sentinels usable with errors.Is against any *Error of the matching Kind.
var (
	ErrInsufficientData   = &Error{Kind: InsufficientData}
	ErrOutOfRange         = &Error{Kind: OutOfRange}
	ErrUnknownVariant     = &Error{Kind: UnknownVariant}
	ErrInvalidOptionalTag = &Error{Kind: InvalidOptionalTag}
	ErrShapeMismatch      = &Error{Kind: ShapeMismatch}
	ErrCryptoMismatch     = &Error{Kind: CryptoMismatch}
	ErrProgramMalformed   = &Error{Kind: ProgramMalformed}
	ErrUnsupported        = &Error{Kind: Unsupported}
)
