// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"testing"

	bversion "github.com/btcsuite/bech32core/address/bech32"
	"github.com/stretchr/testify/require"
)

func TestLocateErrorsCleanString(t *testing.T) {
	encoded, err := Encode(bversion.Version0, "a", nil)
	require.NoError(t, err)

	d := LocateErrors(encoded)
	require.True(t, d.ok())
}

func TestLocateErrorsTooLong(t *testing.T) {
	s := "an84characterslonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs"
	require.Len(t, s, 91)

	d := LocateErrors(s)
	require.Equal(t, "Bech32 string too long", d.Message)
	require.Equal(t, []int{90}, d.Positions)
}

func TestLocateErrorsMixedCase(t *testing.T) {
	d := LocateErrors("a12uel5L")
	require.Equal(t, "Invalid character or mixed case", d.Message)
	require.NotEmpty(t, d.Positions)
}

func TestLocateErrorsMissingSeparator(t *testing.T) {
	d := LocateErrors("abcdefgh")
	require.Equal(t, "Missing separator", d.Message)
	require.Empty(t, d.Positions)
}

func TestLocateErrorsInvalidSeparatorPosition(t *testing.T) {
	// Separator at index 0: no room for an HRP.
	d := LocateErrors("1qpzry9")
	require.Equal(t, "Invalid separator position", d.Message)
	require.Equal(t, []int{0}, d.Positions)
}

func TestLocateErrorsInvalidDataCharacter(t *testing.T) {
	// 'b' and 'i' and 'o' are not in the Bech32 alphabet.
	d := LocateErrors("a1bcdefgh")
	require.Equal(t, "Invalid Base 32 character", d.Message)
	require.Len(t, d.Positions, 1)
}

func TestLocateErrorsSingleSubstitution(t *testing.T) {
	encoded, err := Encode(bversion.Version0, "a", nil)
	require.NoError(t, err)
	require.Equal(t, "a12uel5l", encoded)

	// Perturb the final checksum character.
	corrupted := encoded[:len(encoded)-1] + "x"
	d := LocateErrors(corrupted)
	require.Equal(t, "Invalid checksum", d.Message)
	require.Contains(t, d.Positions, len(corrupted)-1)
	require.LessOrEqual(t, len(d.Positions), 2)
}

func TestLocateErrorsSingleSubstitutionInData(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	encoded, err := Encode(bversion.Version0, "split", data)
	require.NoError(t, err)

	// Flip one data symbol (not the checksum) to a different valid
	// alphabet symbol.
	pos := len("split") + 1 // first data symbol
	origChar := string(encoded[pos])
	var replacement byte
	for i, c := range charset {
		if string(c) != origChar {
			replacement = byte(i)
			break
		}
	}
	corrupted := encoded[:pos] + string(charset[replacement]) + encoded[pos+1:]
	require.NotEqual(t, encoded, corrupted)

	d := LocateErrors(corrupted)
	require.Equal(t, "Invalid checksum", d.Message)
	require.LessOrEqual(t, len(d.Positions), 2)
	require.Contains(t, d.Positions, pos)
}

func TestLocateErrorsTwoSubstitutions(t *testing.T) {
	data := make([]byte, 30)
	for i := range data {
		data[i] = byte((i * 3) % 32)
	}
	encoded, err := Encode(bversion.Version0, "split", data)
	require.NoError(t, err)

	b := []byte(encoded)
	p1 := len("split") + 1
	p2 := len(b) - 2
	b[p1] = charset[(charsetRev[b[p1]]+1)%32]
	b[p2] = charset[(charsetRev[b[p2]]+1)%32]
	corrupted := string(b)
	require.NotEqual(t, encoded, corrupted)

	d := LocateErrors(corrupted)
	require.Equal(t, "Invalid checksum", d.Message)
	require.LessOrEqual(t, len(d.Positions), 2)
}
