// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bech32 implements the Bech32 and Bech32m encoding, decoding and
// error location scheme: a human-readable prefix followed by a sequence of
// 5-bit values and a 6-symbol BCH checksum over GF(32). See BIP-173 and
// BIP-350.
package bech32

import (
	bversion "github.com/btcsuite/bech32core/address/bech32"
)

// charset is the Bech32 and Bech32m character set for encoding.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev is the Bech32 and Bech32m character set for decoding: the
// inverse of charset, with -1 for any byte in 0..127 that isn't in the
// alphabet. Bytes 128..255 never appear in a valid candidate string (the
// character check in Decode/LocateErrors rejects them first).
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

// maxLength is the longest a Bech32 string may be to decode successfully.
const maxLength = 90

// checksumLength is the number of symbols the BCH checksum occupies.
const checksumLength = 6

// encodingConstant returns the 30-bit value XORed into a zero-padded
// residue when creating a checksum, or compared against a verified residue
// when checking one.
func encodingConstant(v bversion.Version) uint32 {
	c, ok := bversion.VersionToConsts[v]
	if !ok {
		panic("bech32: encodingConstant called with an unrecognized variant")
	}
	return uint32(c)
}

// lowerCase returns the lowercase form of an ASCII letter, leaving every
// other byte unchanged.
func lowerCase(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// expandHRP expands hrp into the symbol sequence PolyMod expects it as:
// the high 3 bits of each byte, a zero separator, then the low 5 bits of
// each byte.
func expandHRP(hrp string) []byte {
	ret := make([]byte, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		ret[i] = c >> 5
		ret[i+len(hrp)+1] = c & 0x1f
	}
	ret[len(hrp)] = 0
	return ret
}

// checkCharacters reports whether every byte of s is in the printable
// ASCII range 33..126, and whether its letters are consistently cased
// (never both upper and lower).
func checkCharacters(s string) bool {
	lower, upper := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			if upper {
				return false
			}
			lower = true
		case c >= 'A' && c <= 'Z':
			if lower {
				return false
			}
			upper = true
		case c < 33 || c > 126:
			return false
		}
	}
	return true
}

// createChecksum computes the 6 checksum symbols for the given variant,
// HRP and data.
func createChecksum(v bversion.Version, hrp string, data []byte) []byte {
	enc := append(expandHRP(hrp), data...)
	enc = append(enc, 0, 0, 0, 0, 0, 0)
	mod := polyMod(enc) ^ encodingConstant(v)

	ret := make([]byte, checksumLength)
	for i := 0; i < checksumLength; i++ {
		ret[i] = byte(mod>>(5*(5-i))) & 31
	}
	return ret
}

// verifyChecksum returns the variant whose constant matches the residue
// of hrp and values, or VersionUnknown if neither does.
func verifyChecksum(hrp string, values []byte) bversion.Version {
	check := polyMod(append(expandHRP(hrp), values...))
	if v, ok := bversion.ConstsToVersion[bversion.ChecksumConst(check)]; ok {
		return v
	}
	return bversion.VersionUnknown
}

// Encode builds a Bech32 or Bech32m string from hrp and data. hrp must
// already be lowercase; Encode never normalizes it, since a caller that
// passes an uppercase HRP has a bug we'd rather surface than paper over.
func Encode(v bversion.Version, hrp string, data []byte) (string, error) {
	for i := 0; i < len(hrp); i++ {
		if hrp[i] >= 'A' && hrp[i] <= 'Z' {
			return "", ErrUpperCaseHRP
		}
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", ErrInvalidHRPCharacter
		}
	}

	checksum := createChecksum(v, hrp, data)
	combined := append(append([]byte{}, data...), checksum...)

	ret := make([]byte, 0, len(hrp)+1+len(combined))
	ret = append(ret, hrp...)
	ret = append(ret, '1')
	for _, c := range combined {
		ret = append(ret, charset[c])
	}
	return string(ret), nil
}

// DecodeResult is the successfully-decoded parts of a Bech32 or Bech32m
// string: its variant, its lowercased HRP, and its data payload with the
// trailing checksum symbols already stripped off.
type DecodeResult struct {
	Variant bversion.Version
	HRP     string
	Data    []byte
}

// Decode parses and verifies a candidate Bech32 or Bech32m string,
// returning its variant, lowercased HRP, and data (with the checksum
// removed). Mixed-case input is always rejected, even if the checksum
// would otherwise verify.
func Decode(s string) (DecodeResult, error) {
	if !checkCharacters(s) {
		return DecodeResult{}, ErrInvalidCharacter
	}
	if len(s) > maxLength {
		return DecodeResult{}, ErrStringTooLong
	}

	pos := lastIndexByte(s, '1')
	if pos == -1 {
		return DecodeResult{}, ErrMissingSeparator
	}
	if pos == 0 || pos+checksumLength+1 > len(s) {
		return DecodeResult{}, ErrInvalidSeparatorIndex
	}

	values := make([]byte, len(s)-1-pos)
	for i := range values {
		c := s[i+pos+1]
		rev := charsetRev[c]
		if rev == -1 {
			return DecodeResult{}, ErrInvalidDataCharacter
		}
		values[i] = byte(rev)
	}

	hrp := make([]byte, pos)
	for i := 0; i < pos; i++ {
		hrp[i] = lowerCase(s[i])
	}

	variant := verifyChecksum(string(hrp), values)
	if variant == bversion.VersionUnknown {
		return DecodeResult{}, ErrInvalidChecksum
	}
	return DecodeResult{
		Variant: variant,
		HRP:     string(hrp),
		Data:    values[:len(values)-checksumLength],
	}, nil
}

// lastIndexByte returns the index of the last occurrence of c in s, or -1
// if c is not present.
func lastIndexByte(s string, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}
