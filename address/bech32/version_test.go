package bech32

import "testing"

func TestVersionConstRoundTrip(t *testing.T) {
	for v, c := range VersionToConsts {
		if got := ConstsToVersion[c]; got != v {
			t.Fatalf("ConstsToVersion[%v] = %v, want %v", c, got, v)
		}
	}
}

func TestVersionString(t *testing.T) {
	cases := map[Version]string{
		Version0:       "bech32",
		VersionM:       "bech32m",
		VersionUnknown: "invalid",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Fatalf("Version(%d).String() = %q, want %q", v, got, want)
		}
	}
}
