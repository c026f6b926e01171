// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the small, immutable parameter bag that codec
// operations depending on validator/core/epoch counts accept explicitly.
// Nothing in this module reads a global; every function that needs
// Cvalcount, Ccorecount, or Cepochlen takes a Params value.
package config

import "fmt"

// AuthPoolSize is C_AUTHPOOLSIZE, fixed by the protocol at 8.
const AuthPoolSize = 8

// AuthQueueSize is the fixed per-core length of the authorizer queue
// chapter.
const AuthQueueSize = 80

// Params is the configuration scalar bag the codec is injected with.
type Params struct {
	// Cvalcount is the validator count (tiny ~6, production ~1023).
	Cvalcount uint32
	// Ccorecount is the core count.
	Ccorecount uint32
	// Cepochlen is the number of slots per epoch (production 600).
	Cepochlen uint32

	// ServiceAccountDiscriminator selects whether the service-account
	// wire form carries the JAM >= 0.7.1 leading zero-discriminator byte.
	// This is an explicit switch rather than sniffed from the first byte
	// at decode time: some legitimate codehash values begin with 0x00,
	// which would otherwise be misread as the discriminator.
	ServiceAccountDiscriminator bool
}

// AssuranceBitfieldBytes returns the byte length of an Assurance's
// availabilities bitfield for this configuration: ceil(Ccorecount/8).
// The width follows Ccorecount; no parameter set hardcodes it.
func (p Params) AssuranceBitfieldBytes() int {
	return int((p.Ccorecount + 7) / 8)
}

// Tiny returns the parameter set used by JAM's "tiny" conformance test
// network.
func Tiny() Params {
	return Params{
		Cvalcount:                   6,
		Ccorecount:                  2,
		Cepochlen:                   12,
		ServiceAccountDiscriminator: true,
	}
}

// Production returns the parameter set used by JAM's full-size network.
func Production() Params {
	return Params{
		Cvalcount:                   1023,
		Ccorecount:                  341,
		Cepochlen:                   600,
		ServiceAccountDiscriminator: true,
	}
}

// ByName resolves a named preset.
func ByName(name string) (Params, error) {
	switch name {
	case "tiny":
		return Tiny(), nil
	case "production":
		return Production(), nil
	default:
		return Params{}, fmt.Errorf("config: unknown preset %q", name)
	}
}

// PresetNames returns all available preset names.
func PresetNames() []string {
	return []string{"tiny", "production"}
}
