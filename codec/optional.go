// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// EncodeOptional writes a one-byte tag (0x00 for none, 0x01 for some)
// followed by the payload when present.
func EncodeOptional[T any](value *T, encode func(T) []byte) []byte {
	if value == nil {
		return []byte{0x00}
	}
	out := []byte{0x01}
	return append(out, encode(*value)...)
}

// DecodeOptional reads the one-byte tag and, if set, the payload via
// decode. Any leading byte other than 0x00 or 0x01 is InvalidOptionalTag.
func DecodeOptional[T any](b []byte, decode func([]byte) (T, []byte, error)) (*T, []byte, error) {
	if len(b) < 1 {
		return nil, nil, Errf(InsufficientData, "optional: need 1 byte, have 0")
	}
	switch b[0] {
	case 0x00:
		return nil, b[1:], nil
	case 0x01:
		v, rest, err := decode(b[1:])
		if err != nil {
			return nil, nil, err
		}
		return &v, rest, nil
	default:
		return nil, nil, Errf(InvalidOptionalTag, "optional: tag 0x%02x", b[0])
	}
}
