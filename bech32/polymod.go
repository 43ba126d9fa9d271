// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// polyMod computes what 6 5-bit values would need to be XORed into the
// final 6 input values to make the checksum 0. These 6 values are packed
// together in a single 30-bit integer. The higher bits correspond to
// earlier values.
//
// The input is interpreted as a list of coefficients of a polynomial over
// F = GF(32), with an implicit leading 1. If the input is
// [v0,v1,v2,v3,v4], that polynomial is
// v(x) = x^5 + v0*x^4 + v1*x^3 + v2*x^2 + v3*x + v4. The implicit leading
// term guarantees that [v0,v1,v2,...] has a distinct checksum from
// [0,v0,v1,v2,...].
//
// The output is a 30-bit integer whose 5-bit groups are the coefficients
// of the remainder of v(x) mod g(x), where g(x) is the Bech32 generator
//
//	x^6 + {29}x^5 + {22}x^4 + {20}x^3 + {21}x^2 + {29}x + {18}
//
// chosen so that the resulting code is a BCH code, guaranteeing detection
// of up to 3 errors within a window of 1023 characters (and, for the
// smaller 89-character window Bech32 strings actually use, up to 4).
//
// Coefficients are elements of GF(32): addition is XOR, multiplication
// treats each value's bits as coefficients of a polynomial over GF(2) and
// reduces modulo a^5 + a^3 + 1.
//
// During the loop, c holds the bit-packed coefficients of the polynomial
// built from the values of v processed so far, mod g(x); 1 mod g(x) = 1,
// which is the starting value.
func polyMod(v []byte) uint32 {
	var c uint32 = 1
	for _, vi := range v {
		// c corresponds to c(x) = f(x) mod g(x). We want
		// c'(x) = (f(x)*x + vi) mod g(x) = (c(x)*x + vi) mod g(x).
		// Writing c(x) = c0*x^5 + c1*x^4 + ... + c5, this is
		//
		//	c0*(x^6 mod g(x)) + c1*x^5 + c2*x^4 + c3*x^3 + c4*x^2 + c5*x + vi
		//
		// Calling (x^6 mod g(x)) = k(x), this is
		//
		//	(c1*x^5 + c2*x^4 + c3*x^3 + c4*x^2 + c5*x + vi) + c0*k(x)
		c0 := byte(c >> 25)
		c = ((c & 0x01ffffff) << 5) ^ uint32(vi)

		// For each set bit n in c0, conditionally add {2^n}*k(x). These
		// constants are {1,2,4,8,16}*k(x), reproducible via:
		//
		//	for i in [1,2,4,8,16]:
		//	    v = 0
		//	    for coef in reversed((F.fetch_int(i)*(G % x**6)).coefficients(sparse=True)):
		//	        v = v*32 + coef.integer_representation()
		//	    print("0x%x" % v)
		if c0&1 != 0 {
			c ^= 0x3b6a57b2 //     k(x) = {29}x^5+{22}x^4+{20}x^3+{21}x^2+{29}x+{18}
		}
		if c0&2 != 0 {
			c ^= 0x26508e6d //  {2}k(x) = {19}x^5+ {5}x^4+    x^3+ {3}x^2+{19}x+{13}
		}
		if c0&4 != 0 {
			c ^= 0x1ea119fa //  {4}k(x) = {15}x^5+{10}x^4+ {2}x^3+ {6}x^2+{15}x+{26}
		}
		if c0&8 != 0 {
			c ^= 0x3d4233dd //  {8}k(x) = {30}x^5+{20}x^4+ {4}x^3+{12}x^2+{30}x+{29}
		}
		if c0&16 != 0 {
			c ^= 0x2a1462b3 // {16}k(x) = {21}x^5+    x^4+ {8}x^3+{24}x^2+{21}x+{19}
		}
	}
	return c
}

// syndrome computes the values s_j = R(e^j) for j in {997, 998, 999},
// where R is the polynomial whose bit-packed coefficients are residue (the
// output of polyMod). The generator polynomial g(x) is the LCM of the
// minimal polynomials of e^997, e^998 and e^999, so these three powers of
// the primitive element e are exactly the roots of g(x).
//
// Given a received codeword with errors, R(x) = C(x) + E(x): because C(x)
// is always a multiple of g(x), residue is actually E(x) mod g(x). And
// since every e^j above is a root of g(x), R(e^j) = E(e^j).
//
// The three syndrome values are packed into a 30-bit integer, 10 bits
// each, lowest-j first.
func syndrome(residue uint32) uint32 {
	// Write R(x) = r1*x^5 + r2*x^4 + r3*x^3 + r4*x^2 + r5*x + r6. low is
	// r6, the constant term. R(e^j) is then
	//
	//	r1*e^(5j) + r2*e^(4j) + r3*e^(3j) + r4*e^(2j) + r5*e^j + r6
	//
	// Each e^(ij) is a constant; further, writing a coefficient r_i as
	// bits (b5,b4,b3,b2,b1), r_i*e^j = sum_k b_k*(2^(k-1)*e^j), where
	// each 2^(k-1)*e^j is itself a precomputed constant. The loop below
	// adds in the appropriate precomputed constant for each set bit of
	// residue, for all three values of j simultaneously.
	//
	// Every s_j starts at low = r6, since that term is unconditional.
	// The 25 constants below pack (e^(999k) << 20) | (e^(998k) << 10) |
	// e^(997k) for the bit-weight k implied by each residue bit position,
	// reproducible via:
	//
	//	for k in range(1, 6):
	//	    for b in [1,2,4,8,16]:
	//	        c0 = GF1024_EXP[(997*k + GF1024_LOG[b]) % 1023]
	//	        c1 = GF1024_EXP[(998*k + GF1024_LOG[b]) % 1023]
	//	        c2 = GF1024_EXP[(999*k + GF1024_LOG[b]) % 1023]
	//	        print("0x%x" % (c2 << 20 | c1 << 10 | c0))
	low := residue & 0x1f
	s := low ^ (low << 10) ^ (low << 20)

	if residue>>5&1 != 0 {
		s ^= 0x31edd3c4
	}
	if residue>>6&1 != 0 {
		s ^= 0x335f86a8
	}
	if residue>>7&1 != 0 {
		s ^= 0x363b8870
	}
	if residue>>8&1 != 0 {
		s ^= 0x3e6390c9
	}
	if residue>>9&1 != 0 {
		s ^= 0x2ec72192
	}
	if residue>>10&1 != 0 {
		s ^= 0x1046f79d
	}
	if residue>>11&1 != 0 {
		s ^= 0x208d4e33
	}
	if residue>>12&1 != 0 {
		s ^= 0x130ebd6f
	}
	if residue>>13&1 != 0 {
		s ^= 0x2499fade
	}
	if residue>>14&1 != 0 {
		s ^= 0x1b27d4b5
	}
	if residue>>15&1 != 0 {
		s ^= 0x04be1eb4
	}
	if residue>>16&1 != 0 {
		s ^= 0x0968b861
	}
	if residue>>17&1 != 0 {
		s ^= 0x1055f0c2
	}
	if residue>>18&1 != 0 {
		s ^= 0x20ab4584
	}
	if residue>>19&1 != 0 {
		s ^= 0x1342af08
	}
	if residue>>20&1 != 0 {
		s ^= 0x24f1f318
	}
	if residue>>21&1 != 0 {
		s ^= 0x1be34739
	}
	if residue>>22&1 != 0 {
		s ^= 0x35562f7b
	}
	if residue>>23&1 != 0 {
		s ^= 0x3a3c5bff
	}
	if residue>>24&1 != 0 {
		s ^= 0x266c96f7
	}
	if residue>>25&1 != 0 {
		s ^= 0x25c78b65
	}
	if residue>>26&1 != 0 {
		s ^= 0x1b1f13ea
	}
	if residue>>27&1 != 0 {
		s ^= 0x34baa2f4
	}
	if residue>>28&1 != 0 {
		s ^= 0x3b61c0e1
	}
	if residue>>29&1 != 0 {
		s ^= 0x265325c2
	}
	return s
}
