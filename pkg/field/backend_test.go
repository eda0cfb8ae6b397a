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
	"math/rand/v2"
	"testing"

	"github.com/consensys/smallfp/pkg/util/assert"
)

func TestMontgomery_Mul(t *testing.T) {
	cfg := MustNewConfig("m31.mont", 1<<31-1, 7, Montgomery)

	var i, j, m big.Int

	m.SetUint64(uint64(cfg.modulus))

	for range 10000 {
		a := rand.Uint32N(cfg.modulus)
		b := rand.Uint32N(cfg.modulus)

		i.SetUint64(uint64(a)).
			Mul(&i, j.SetUint64(uint64(b))).
			Mod(&i, &m)

		x := cfg.NewElement(a).Mul(cfg.NewElement(b))

		assert.Equal(t, i.Uint64(), uint64(x.Uint32()), "%d * %d", a, b)
	}
}

func TestMontgomery_Conversion(t *testing.T) {
	for _, p := range []uint32{3, 5, 7, 11, 101, 2013265921, 1<<31 - 1} {
		red := newMontgomeryReducer(p)

		// R mod p must be the representation of 1
		assert.Equal(t, uint64(1<<32%uint64(p)), uint64(red.fromUint32(1)), "modulus %d", p)

		for _, v := range []uint32{0, 1, 2, p - 1, p, p + 7} {
			assert.Equal(t, uint64(v%p), uint64(red.toUint32(red.fromUint32(v))), "value %d mod %d", v, p)
		}
	}
}

func TestBackend_AddSubBoundaries(t *testing.T) {
	for _, cfg := range []*Config{
		MustNewConfig("m31.std", 1<<31-1, 7, Standard),
		MustNewConfig("m31.mont", 1<<31-1, 7, Montgomery),
	} {
		var (
			p    = cfg.modulus
			zero = cfg.Zero()
			top  = cfg.NewElement(p - 1)
		)

		// doubling near the top of the range must still reduce correctly
		assert.Equal(t, uint64(p-2), uint64(top.Double().Uint32()))
		assert.Equal(t, uint64(p-1), uint64(top.Add(zero).Uint32()))
		assert.Equal(t, uint64(1), uint64(zero.Sub(top).Uint32()))
		assert.Equal(t, uint64(1), uint64(top.Neg().Uint32()))
		assert.True(t, zero.Neg().IsZero())
	}
}

func TestBackend_Sub(t *testing.T) {
	cfg := MustNewConfig("babybear.mont", 2013265921, 31, Montgomery)

	for range 10000 {
		a := rand.Uint32N(cfg.modulus)
		b := rand.Uint32N(cfg.modulus)

		expected := (uint64(cfg.modulus) + uint64(a) - uint64(b)) % uint64(cfg.modulus)
		x := cfg.NewElement(a).Sub(cfg.NewElement(b))

		assert.Equal(t, expected, uint64(x.Uint32()), "%d - %d", a, b)
	}
}

func TestBackend_CrossAgreement(t *testing.T) {
	var (
		std  = MustNewConfig("gf101.std", 101, 2, Standard)
		mont = MustNewConfig("gf101.mont", 101, 2, Montgomery)
	)

	for v := uint32(0); v < 101; v++ {
		for w := uint32(0); w < 101; w++ {
			assert.Equal(t,
				uint64(std.NewElement(v).Mul(std.NewElement(w)).Uint32()),
				uint64(mont.NewElement(v).Mul(mont.NewElement(w)).Uint32()),
				"%d * %d", v, w)
		}
	}
}
