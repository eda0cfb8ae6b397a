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
	"math/rand/v2"

	"github.com/consensys/smallfp/pkg/field"
)

// A Profile names the representative values and fuzz budget a battery run
// uses.  The same profile applies uniformly to every field instantiation, so
// declaring a new field requires no new test code.
type Profile struct {
	// Name of the profile, used in reporting.
	Name string
	// Iterations bounds the number of fuzz-sampled values per property.
	// CI environments run a reduced count.
	Iterations uint
}

// SmallPrimeField is the standard profile for word-sized prime fields: the
// named values 0, 1, generator and modulus-1, plus the given number of
// fuzz-sampled elements.
func SmallPrimeField(iterations uint) Profile {
	return Profile{Name: "small_prime_field", Iterations: iterations}
}

// values materialises the profile for a concrete field: the named boundary
// values first, then n fuzz samples.
func values(cfg *field.Config, rng *rand.Rand, n uint) []field.Element {
	vals := []field.Element{
		cfg.Zero(),
		cfg.One(),
		cfg.Generator(),
		cfg.NewElement(cfg.Modulus() - 1),
	}

	for range n {
		vals = append(vals, cfg.Random(rng))
	}

	return vals
}
