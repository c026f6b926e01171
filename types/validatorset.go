// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
)

// EncodeValidatorSet writes a full validator set chapter (next, current,
// or previous epoch): a fixed-count sequence of Cvalcount ValidatorKeys
// with no length prefix.
func EncodeValidatorSet(keys []ValidatorKey) []byte {
	return codec.EncodeFixedSeq(keys, EncodeValidatorKey)
}

// DecodeValidatorSet reads Cvalcount ValidatorKeys.
func DecodeValidatorSet(b []byte, cfg config.Params) ([]ValidatorKey, []byte, error) {
	return codec.DecodeFixedSeq(b, int(cfg.Cvalcount), DecodeValidatorKey)
}
