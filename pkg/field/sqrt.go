// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"math/big"
	"math/bits"
)

// sqrtTables holds the per-field square-root precomputation, derived once at
// definition time.
type sqrtTables struct {
	// euler is (p-1)/2, the Euler-criterion exponent.
	euler *big.Int
	// shortcut is (p+1)/4 for p ≡ 3 (mod 4), where a closed form applies;
	// nil selects the Tonelli–Shanks procedure.
	shortcut *big.Int
	// Tonelli–Shanks tables: p-1 = q·2^s with q odd, z a quadratic
	// non-residue raised to q (internal representation), and initial the
	// exponent (q+1)/2 of the first root candidate.
	q       *big.Int
	s       uint32
	z       uint32
	initial *big.Int
}

func newSqrtTables(c *Config) sqrtTables {
	tables := sqrtTables{
		euler: big.NewInt(int64((c.modulus - 1) / 2)),
	}

	if c.modulus%4 == 3 {
		tables.shortcut = big.NewInt(int64((c.modulus + 1) / 4))
		return tables
	}

	var (
		s = uint32(bits.TrailingZeros32(c.modulus - 1))
		q = (c.modulus - 1) >> s
	)

	tables.s = s
	tables.q = big.NewInt(int64(q))
	tables.initial = big.NewInt(int64((q + 1) / 2))

	// smallest quadratic non-residue; for odd primes one exists below p
	for n := uint32(2); ; n++ {
		ni := c.red.fromUint32(n)
		if c.exp(ni, tables.euler) != c.one {
			tables.z = c.exp(ni, tables.q)
			break
		}
	}

	return tables
}

// Sqrt returns the canonical square root of x, fixed deterministically as the
// numerically smaller of the two roots, or ErrNoSquareRoot if x is not a
// quadratic residue.  Sqrt(0) = 0.
func (x Element) Sqrt() (Element, error) {
	c := x.cfg

	if x.v == 0 {
		return x, nil
	}

	if c.exp(x.v, c.sqrt.euler) != c.one {
		return Element{cfg: c}, ErrNoSquareRoot
	}

	var root uint32
	if c.sqrt.shortcut != nil {
		root = c.exp(x.v, c.sqrt.shortcut)
	} else {
		root = c.tonelliShanks(x.v)
	}
	// fix the smaller of root and -root
	if canonical := c.red.toUint32(root); c.modulus-canonical < canonical {
		root = c.neg(root)
	}

	return Element{v: root, cfg: c}, nil
}

// tonelliShanks computes a square root of the quadratic residue x over
// internal representations.
func (c *Config) tonelliShanks(x uint32) uint32 {
	var (
		m = c.sqrt.s
		f = c.sqrt.z             // f = z^q
		t = c.exp(x, c.sqrt.q)   // t = x^q
		r = c.exp(x, c.sqrt.initial)
	)

	for t != c.one {
		// least i with t^(2^i) = 1; i < m since t is in the 2-Sylow subgroup
		var (
			i  uint32
			ti = t
		)

		for ti != c.one {
			ti = c.red.mul(ti, ti)
			i++
		}

		b := f
		for j := uint32(0); j < m-i-1; j++ {
			b = c.red.mul(b, b)
		}

		m = i
		f = c.red.mul(b, b)
		t = c.red.mul(t, f)
		r = c.red.mul(r, b)
	}

	return r
}
