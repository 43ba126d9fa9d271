// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"testing"

	bversion "github.com/btcsuite/bech32core/address/bech32"
	"github.com/stretchr/testify/require"
)

func TestTablesAreConsistent(t *testing.T) {
	require.Equal(t, int16(-1), logTable[0])
	for k := 0; k < 1023; k++ {
		v := expTable[k]
		require.Equal(t, int16(k), logTable[v], "logTable[expTable[%d]] mismatch", k)
	}
}

func TestEncodeKnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		variant bversion.Version
		hrp     string
		data    []byte
		want    string
	}{
		{
			name:    "empty data",
			variant: bversion.Version0,
			hrp:     "a",
			data:    nil,
			want:    "a12uel5l",
		},
		{
			name:    "whole alphabet",
			variant: bversion.Version0,
			hrp:     "abcdef",
			data: []byte{
				0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
				16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
			},
			want: "abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.variant, tt.hrp, tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRejectsUppercaseHRP(t *testing.T) {
	_, err := Encode(bversion.Version0, "A", nil)
	require.ErrorIs(t, err, ErrUpperCaseHRP)
}

func TestDecodeKnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		variant bversion.Version
		hrp     string
		data    []byte
	}{
		{
			name:    "lowercase",
			input:   "a12uel5l",
			variant: bversion.Version0,
			hrp:     "a",
			data:    []byte{},
		},
		{
			name:    "uppercase normalizes to lowercase hrp",
			input:   "A12UEL5L",
			variant: bversion.Version0,
			hrp:     "a",
			data:    []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Decode(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.variant, result.Variant)
			require.Equal(t, tt.hrp, result.HRP)
			require.Equal(t, tt.data, result.Data)
		})
	}
}

func TestDecodeRejectsMixedCase(t *testing.T) {
	_, err := Decode("a12uel5L")
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestDecodeRejectsTooLong(t *testing.T) {
	// 84-char HRP + separator + 6-char checksum = 91 > 90.
	s := "an84characterslonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs"
	_, err := Decode(s)
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestRoundTrip(t *testing.T) {
	variants := []bversion.Version{bversion.Version0, bversion.VersionM}
	hrps := []string{"a", "bc", "xyz123", "split"}

	for _, v := range variants {
		for _, hrp := range hrps {
			data := make([]byte, 20)
			for i := range data {
				data[i] = byte((i * 7) % 32)
			}

			encoded, err := Encode(v, hrp, data)
			require.NoError(t, err)

			result, err := Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, v, result.Variant)
			require.Equal(t, hrp, result.HRP)
			require.Equal(t, data, result.Data)
		}
	}
}

func TestVariantCrossCheck(t *testing.T) {
	// A string encoded as Bech32m must not verify as Bech32, and vice
	// versa, because the two variants differ only in the checksum
	// constant XORed in.
	bech32Str, err := Encode(bversion.Version0, "bc", []byte{0, 1, 2, 3})
	require.NoError(t, err)
	result, err := Decode(bech32Str)
	require.NoError(t, err)
	require.Equal(t, bversion.Version0, result.Variant)

	bech32mStr, err := Encode(bversion.VersionM, "bc", []byte{0, 1, 2, 3})
	require.NoError(t, err)
	result, err = Decode(bech32mStr)
	require.NoError(t, err)
	require.Equal(t, bversion.VersionM, result.Variant)

	require.NotEqual(t, bech32Str, bech32mStr)
}

func TestDecodePunctuationHRP(t *testing.T) {
	_, err := Decode("?1ezyfcl")
	// A non-letter HRP passes the structural checks, so the outcome rests
	// on the checksum alone: Decode must not panic, and any error it
	// returns must be ErrInvalidChecksum.
	if err != nil {
		require.ErrorIs(t, err, ErrInvalidChecksum)
	}
}
