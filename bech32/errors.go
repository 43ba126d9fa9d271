// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import "errors"

// Decode and Encode errors.
var (
	// ErrUpperCaseHRP is returned by Encode when the supplied HRP
	// contains an uppercase letter. An encoder is never expected to
	// normalize its input; an uppercase HRP is a programmer error.
	ErrUpperCaseHRP = errors.New("bech32: HRP must already be lowercase")

	// ErrInvalidHRPCharacter is returned when an HRP byte falls outside
	// the printable ASCII range 33..126.
	ErrInvalidHRPCharacter = errors.New("bech32: invalid character in human-readable part")

	// ErrStringTooLong is returned when a candidate string is longer
	// than 90 bytes.
	ErrStringTooLong = errors.New("bech32: string too long")

	// ErrInvalidCharacter is returned when a candidate string has a byte
	// outside the printable range, or mixes uppercase and lowercase
	// letters.
	ErrInvalidCharacter = errors.New("bech32: invalid character or mixed case")

	// ErrMissingSeparator is returned when a candidate string has no '1'
	// separator.
	ErrMissingSeparator = errors.New("bech32: missing separator")

	// ErrInvalidSeparatorIndex is returned when the last '1' is at index
	// 0, or too close to the end of the string to leave room for a
	// 6-symbol checksum.
	ErrInvalidSeparatorIndex = errors.New("bech32: invalid separator position")

	// ErrInvalidDataCharacter is returned when a byte after the
	// separator is not in the Bech32 alphabet.
	ErrInvalidDataCharacter = errors.New("bech32: invalid base32 character")

	// ErrInvalidChecksum is returned when the residue matches neither
	// the Bech32 nor the Bech32m constant.
	ErrInvalidChecksum = errors.New("bech32: invalid checksum")
)
