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
	"math/rand/v2"
	"testing"

	"github.com/consensys/smallfp/pkg/util/assert"
)

// TestSqrt_Exhaustive101 checks every element of GF(101) against brute force:
// residues get their numerically smaller root, non-residues are rejected.
func TestSqrt_Exhaustive101(t *testing.T) {
	// roots[v] = smallest r with r² = v (mod 101), or 101 if none
	roots := make(map[uint32]uint32)

	for v := uint32(100); v >= 1; v-- {
		sq := v * v % 101
		if r, ok := roots[sq]; !ok || v < r {
			roots[sq] = v
		}
	}

	roots[0] = 0

	for v, e := range GF101.Elements() {
		x, err := e.Sqrt()

		if expected, ok := roots[uint32(v)]; ok {
			assert.NoError(t, err, "sqrt(%d)", v)
			assert.Equal(t, uint64(expected), uint64(x.Uint32()), "sqrt(%d)", v)
		} else {
			assert.IsError(t, err, ErrNoSquareRoot, "sqrt(%d)", v)
		}
	}
}

// M31 is 3 mod 4, exercising the closed-form exponent; BabyBear and KoalaBear
// are 1 mod 4, exercising Tonelli–Shanks.
func TestSqrt_Fuzz(t *testing.T) {
	for _, cfg := range []*Config{M31, BabyBear, KoalaBear} {
		for range 2000 {
			a := cfg.NewElement(rand.Uint32N(cfg.modulus))
			sq := a.Square()

			root, err := sq.Sqrt()

			assert.NoError(t, err, "sqrt(%s) in %s", sq, cfg.Name())
			assert.True(t, root.Square().Equals(sq), "sqrt(%s) = %s in %s", sq, root, cfg.Name())

			// the smaller of root and -root
			c := root.Uint32()
			assert.True(t, c <= cfg.modulus-c, "sqrt(%s) = %s is non-canonical in %s", sq, root, cfg.Name())
		}
	}
}

func TestSqrt_NonResidue(t *testing.T) {
	// a full-group generator has order p-1, so it cannot be a square
	for _, cfg := range Configs {
		_, err := cfg.Generator().Sqrt()
		assert.IsError(t, err, ErrNoSquareRoot, "field %s", cfg.Name())
	}
}

func TestSqrt_ZeroOne(t *testing.T) {
	for _, cfg := range Configs {
		x, err := cfg.Zero().Sqrt()
		assert.NoError(t, err)
		assert.True(t, x.IsZero())

		x, err = cfg.One().Sqrt()
		assert.NoError(t, err)
		assert.True(t, x.IsOne())
	}
}
