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
package conformance

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/smallfp/pkg/field"
	"github.com/consensys/smallfp/pkg/util/assert"
)

func TestConformance_M31(t *testing.T) {
	Check(t, field.M31, SmallPrimeField(500))
}

func TestConformance_BabyBear(t *testing.T) {
	Check(t, field.BabyBear, SmallPrimeField(500))
}

func TestConformance_KoalaBear(t *testing.T) {
	Check(t, field.KoalaBear, SmallPrimeField(500))
}

func TestConformance_GF101(t *testing.T) {
	Check(t, field.GF101, SmallPrimeField(500))
}

// TestConformance_Bounded exercises the reduced-iteration variant used by
// constrained CI environments through the non-testing surface.
func TestConformance_Bounded(t *testing.T) {
	for _, cfg := range field.Configs {
		for _, res := range Run(cfg, SmallPrimeField(10), 42) {
			assert.NoError(t, res.Err, "%s: %s", cfg.Name(), res.Property)
		}
	}
}

// TestConformance_CrossBackend checks that a standard and a montgomery field
// over the same modulus agree on from(v)*from(v) for sampled v.
func TestConformance_CrossBackend(t *testing.T) {
	cases := []struct {
		modulus, generator uint32
	}{
		{101, 2},
		{1<<31 - 1, 7},
		{2013265921, 31},
	}

	for _, c := range cases {
		std, err := field.NewConfig("std", c.modulus, c.generator, field.Standard)
		assert.NoError(t, err)

		mont, err := field.NewConfig("mont", c.modulus, c.generator, field.Montgomery)
		assert.NoError(t, err)

		for range 5000 {
			v := rand.Uint32N(c.modulus)

			var (
				x = std.NewElement(v).Mul(std.NewElement(v))
				y = mont.NewElement(v).Mul(mont.NewElement(v))
			)

			assert.True(t, x.Equals(y), "from(%d)² = %s (standard) vs %s (montgomery) mod %d",
				v, x, y, c.modulus)
		}
	}
}

// TestConformance_BabyBearOracle cross-checks our BabyBear field against the
// gnark-crypto reference implementation.
func TestConformance_BabyBearOracle(t *testing.T) {
	var tmp big.Int

	for range 10000 {
		u := rand.Uint32N(field.BabyBear.Modulus())
		v := rand.Uint32N(field.BabyBear.Modulus())

		var x, y, z babybear.Element

		x.SetUint64(uint64(u))
		y.SetUint64(uint64(v))

		z.Mul(&x, &y)
		assert.Equal(t, z.BigInt(&tmp).Uint64(),
			uint64(field.BabyBear.NewElement(u).Mul(field.BabyBear.NewElement(v)).Uint32()),
			"%d * %d", u, v)

		z.Add(&x, &y)
		assert.Equal(t, z.BigInt(&tmp).Uint64(),
			uint64(field.BabyBear.NewElement(u).Add(field.BabyBear.NewElement(v)).Uint32()),
			"%d + %d", u, v)

		if u != 0 {
			inv, err := field.BabyBear.NewElement(u).Inverse()
			assert.NoError(t, err)

			z.Inverse(&x)
			assert.Equal(t, z.BigInt(&tmp).Uint64(), uint64(inv.Uint32()), "inverse of %d", u)
		}
	}
}

// TestConformance_KoalaBearOracle cross-checks our KoalaBear field against the
// gnark-crypto reference implementation.
func TestConformance_KoalaBearOracle(t *testing.T) {
	var tmp big.Int

	for range 10000 {
		u := rand.Uint32N(field.KoalaBear.Modulus())
		v := rand.Uint32N(field.KoalaBear.Modulus())

		var x, y, z koalabear.Element

		x.SetUint64(uint64(u))
		y.SetUint64(uint64(v))

		z.Mul(&x, &y)
		assert.Equal(t, z.BigInt(&tmp).Uint64(),
			uint64(field.KoalaBear.NewElement(u).Mul(field.KoalaBear.NewElement(v)).Uint32()),
			"%d * %d", u, v)

		z.Sub(&x, &y)
		assert.Equal(t, z.BigInt(&tmp).Uint64(),
			uint64(field.KoalaBear.NewElement(u).Sub(field.KoalaBear.NewElement(v)).Uint32()),
			"%d - %d", u, v)
	}
}
