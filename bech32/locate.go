// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	bversion "github.com/btcsuite/bech32core/address/bech32"
)

// Diagnosis is the result of LocateErrors: a human-readable description of
// what's wrong with a string, and the positions (byte indices into the
// original string) most likely responsible. Message is empty and
// Positions is empty iff the string's checksum verifies cleanly.
type Diagnosis struct {
	Message   string
	Positions []int
}

// ok reports whether d represents a clean string: no message, no
// positions.
func (d Diagnosis) ok() bool {
	return d.Message == "" && len(d.Positions) == 0
}

// pushRange appends every integer in [from, to) to dst.
func pushRange(dst []int, from, to int) []int {
	for i := from; i < to; i++ {
		dst = append(dst, i)
	}
	return dst
}

// LocateErrors diagnoses a Bech32/Bech32m string that failed to decode. It
// never returns corrected symbol values, only the positions most likely
// responsible for the failure, since guessing a replacement character and
// presenting it to a user as "the fix" would be dangerous: the user should
// re-derive or re-check the string themselves.
func LocateErrors(s string) Diagnosis {
	if len(s) > maxLength {
		return Diagnosis{
			Message:   "Bech32 string too long",
			Positions: pushRange(nil, maxLength, len(s)),
		}
	}

	if !checkCharacters(s) {
		return Diagnosis{
			Message:   "Invalid character or mixed case",
			Positions: characterErrors(s),
		}
	}

	pos := lastIndexByte(s, '1')
	if pos == -1 {
		return Diagnosis{Message: "Missing separator"}
	}
	if pos == 0 || pos+checksumLength+1 > len(s) {
		return Diagnosis{
			Message:   "Invalid separator position",
			Positions: []int{pos},
		}
	}

	hrp := make([]byte, pos)
	for i := 0; i < pos; i++ {
		hrp[i] = lowerCase(s[i])
	}

	length := len(s) - 1 - pos
	values := make([]byte, length)
	for i := pos + 1; i < len(s); i++ {
		rev := charsetRev[s[i]]
		if rev == -1 {
			return Diagnosis{
				Message:   "Invalid Base 32 character",
				Positions: []int{i},
			}
		}
		values[i-pos-1] = byte(rev)
	}

	// Try both variants and keep whichever produces the shorter
	// non-empty position list; we can't simply trust a segwit-style
	// version nibble to tell us which variant was intended, because
	// that nibble might itself be one of the corrupted symbols.
	var errorLocations []int
	for _, v := range []bversion.Version{bversion.Version0, bversion.VersionM} {
		residue := polyMod(append(expandHRP(string(hrp)), values...)) ^ encodingConstant(v)
		if residue == 0 {
			// A clean residue under this variant means there are no
			// errors at all.
			return Diagnosis{}
		}

		possible := locateInVariant(residue, length, len(s))
		if len(errorLocations) == 0 ||
			(len(possible) > 0 && len(possible) < len(errorLocations)) {
			errorLocations = possible
		}
	}

	return Diagnosis{
		Message:   "Invalid checksum",
		Positions: errorLocations,
	}
}

// characterErrors returns every index of s that is out of the printable
// ASCII range 33..126 or that breaks consistent letter casing.
func characterErrors(s string) []int {
	var errs []int
	lower, upper := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			if upper {
				errs = append(errs, i)
			} else {
				lower = true
			}
		case c >= 'A' && c <= 'Z':
			if lower {
				errs = append(errs, i)
			} else {
				upper = true
			}
		case c < 33 || c > 126:
			errs = append(errs, i)
		}
	}
	return errs
}

// locateInVariant runs the GF(1024) syndrome decoder for one variant's
// residue, returning the positions (indices into the original string of
// length strLen) of the 0, 1 or 2 symbols it believes are in error.
func locateInVariant(residue uint32, length, strLen int) []int {
	syn := syndrome(residue)
	s0 := int(syn & 0x3ff)
	s1 := int((syn >> 10) & 0x3ff)
	s2 := int(syn >> 20)

	lS0 := int(logTable[s0])
	lS1 := int(logTable[s1])
	lS2 := int(logTable[s2])

	// Single-error case: E(x) = e1*x^p1. Then s0 = e1*e^(997*p1) and
	// s1 = e1*e^(998*p1), so s1/s0 = e^p1; by the same logic s2/s1 =
	// e^p1 too. Hence s1^2 == s0*s2, i.e. 2*l_s1 - l_s2 - l_s0 == 0 mod
	// 1023, which is exactly what's checked first.
	if lS0 != -1 && lS1 != -1 && lS2 != -1 && mod1023(2*lS1-lS2-lS0+2046) == 0 {
		p1 := mod1023(lS1 - lS0)
		lE1 := lS0 + (1023-997)*p1

		// p1 must be a real position, and e1 must lie in GF(32),
		// which holds iff e1 = e^(33k) for some k (the 31 non-zero
		// elements of GF(32) form the index-33 subgroup of the 1023
		// non-zero elements of GF(1024)).
		if p1 < length && lE1%33 == 0 {
			return []int{strLen - 1 - p1}
		}
		return nil
	}

	// Two-error case: E(x) = e1*x^p1 + e2*x^p2. Try every possible first
	// position and solve for the second algebraically.
	for p1 := 0; p1 < length; p1++ {
		a := s2
		if s1 != 0 {
			a ^= int(expTable[mod1023(lS1+p1)])
		}
		if a == 0 {
			continue
		}
		lA := int(logTable[a])

		b := s1
		if s0 != 0 {
			b ^= int(expTable[mod1023(lS0+p1)])
		}
		if b == 0 {
			continue
		}
		lB := int(logTable[b])

		p2 := mod1023(lA - lB)
		if p2 >= length || p2 == p1 {
			continue
		}

		d := s1
		if s0 != 0 {
			d ^= int(expTable[mod1023(lS0+p2)])
		}
		if d == 0 {
			continue
		}
		lD := int(logTable[d])

		inv := 1023 - int(logTable[int(expTable[p1])^int(expTable[p2])])

		if (lB+inv+(1023-997)*p2)%33 != 0 {
			continue
		}
		if (lD+inv+(1023-997)*p1)%33 != 0 {
			continue
		}

		if p1 > p2 {
			return []int{strLen - 1 - p1, strLen - 1 - p2}
		}
		return []int{strLen - 1 - p2, strLen - 1 - p1}
	}

	return nil
}

// mod1023 reduces x modulo 1023, always returning a value in [0, 1023).
func mod1023(x int) int {
	x %= 1023
	if x < 0 {
		x += 1023
	}
	return x
}
