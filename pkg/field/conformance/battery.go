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

// Package conformance provides a reusable battery of algebraic property
// checks applicable to any field declared by the field package.  Each
// property reports its failing inputs, anchoring the field abstraction to
// ground-truth modular arithmetic on raw integers.
package conformance

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/smallfp/pkg/field"
)

// Result of one property check.  A nil Err means the property held for every
// input tried.
type Result struct {
	Property string
	Err      error
}

type property struct {
	name  string
	check func(cfg *field.Config, rng *rand.Rand, n uint) error
}

var battery = []property{
	{"add_commutativity", checkAddCommutativity},
	{"add_associativity", checkAddAssociativity},
	{"mul_commutativity", checkMulCommutativity},
	{"mul_associativity", checkMulAssociativity},
	{"distributivity", checkDistributivity},
	{"identities", checkIdentities},
	{"additive_inverse", checkAdditiveInverse},
	{"multiplicative_inverse", checkMultiplicativeInverse},
	{"double_square", checkDoubleSquare},
	{"exponentiation", checkExponentiation},
	{"sqrt", checkSqrt},
	{"serialization", checkSerialization},
	{"wraparound", checkWraparound},
	{"ground_truth", checkGroundTruth},
}

// Run executes the full battery against one field, deterministically seeded,
// and reports one Result per property.
func Run(cfg *field.Config, profile Profile, seed uint64) []Result {
	results := make([]Result, len(battery))

	for i, p := range battery {
		rng := rand.New(rand.NewPCG(seed, uint64(i)))
		results[i] = Result{Property: p.name, Err: p.check(cfg, rng, profile.Iterations)}
	}

	return results
}

// Check runs the battery as one subtest per property.
func Check(t *testing.T, cfg *field.Config, profile Profile) {
	for i, p := range battery {
		rng := rand.New(rand.NewPCG(rand.Uint64(), uint64(i)))

		t.Run(fmt.Sprintf("%s/%s/%s", profile.Name, cfg.Name(), p.name), func(t *testing.T) {
			if err := p.check(cfg, rng, profile.Iterations); err != nil {
				t.Error(err)
			}
		})
	}
}

// forPairs applies fn to every pair of named profile values, then to n
// fuzz-sampled pairs.
func forPairs(cfg *field.Config, rng *rand.Rand, n uint, fn func(a, b field.Element) error) error {
	vals := values(cfg, rng, n)

	for _, a := range vals[:4] {
		for _, b := range vals[:4] {
			if err := fn(a, b); err != nil {
				return err
			}
		}
	}

	for range n {
		a := vals[rng.IntN(len(vals))]
		b := vals[rng.IntN(len(vals))]

		if err := fn(a, b); err != nil {
			return err
		}
	}

	return nil
}

// forTriples applies fn to every triple of named profile values, then to n
// fuzz-sampled triples.
func forTriples(cfg *field.Config, rng *rand.Rand, n uint, fn func(a, b, c field.Element) error) error {
	vals := values(cfg, rng, n)

	for _, a := range vals[:4] {
		for _, b := range vals[:4] {
			for _, c := range vals[:4] {
				if err := fn(a, b, c); err != nil {
					return err
				}
			}
		}
	}

	for range n {
		a := vals[rng.IntN(len(vals))]
		b := vals[rng.IntN(len(vals))]
		c := vals[rng.IntN(len(vals))]

		if err := fn(a, b, c); err != nil {
			return err
		}
	}

	return nil
}

func checkAddCommutativity(cfg *field.Config, rng *rand.Rand, n uint) error {
	return forPairs(cfg, rng, n, func(a, b field.Element) error {
		if l, r := a.Add(b), b.Add(a); !l.Equals(r) {
			return fmt.Errorf("%s + %s = %s but %s + %s = %s", a, b, l, b, a, r)
		}

		return nil
	})
}

func checkAddAssociativity(cfg *field.Config, rng *rand.Rand, n uint) error {
	return forTriples(cfg, rng, n, func(a, b, c field.Element) error {
		if l, r := a.Add(b).Add(c), a.Add(b.Add(c)); !l.Equals(r) {
			return fmt.Errorf("(%s + %s) + %s = %s but %s + (%s + %s) = %s", a, b, c, l, a, b, c, r)
		}

		return nil
	})
}

func checkMulCommutativity(cfg *field.Config, rng *rand.Rand, n uint) error {
	return forPairs(cfg, rng, n, func(a, b field.Element) error {
		if l, r := a.Mul(b), b.Mul(a); !l.Equals(r) {
			return fmt.Errorf("%s * %s = %s but %s * %s = %s", a, b, l, b, a, r)
		}

		return nil
	})
}

func checkMulAssociativity(cfg *field.Config, rng *rand.Rand, n uint) error {
	return forTriples(cfg, rng, n, func(a, b, c field.Element) error {
		if l, r := a.Mul(b).Mul(c), a.Mul(b.Mul(c)); !l.Equals(r) {
			return fmt.Errorf("(%s * %s) * %s = %s but %s * (%s * %s) = %s", a, b, c, l, a, b, c, r)
		}

		return nil
	})
}

func checkDistributivity(cfg *field.Config, rng *rand.Rand, n uint) error {
	return forTriples(cfg, rng, n, func(a, b, c field.Element) error {
		if l, r := a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)); !l.Equals(r) {
			return fmt.Errorf("%s * (%s + %s) = %s but %s*%s + %s*%s = %s", a, b, c, l, a, b, a, c, r)
		}

		return nil
	})
}

func checkIdentities(cfg *field.Config, rng *rand.Rand, n uint) error {
	var (
		zero = cfg.Zero()
		one  = cfg.One()
	)

	if !zero.IsZero() || zero.Uint32() != 0 {
		return fmt.Errorf("zero is %s", zero)
	}

	if !one.IsOne() || one.Uint32() != 1 {
		return fmt.Errorf("one is %s", one)
	}

	for _, a := range values(cfg, rng, n) {
		if r := a.Add(zero); !r.Equals(a) {
			return fmt.Errorf("%s + 0 = %s", a, r)
		}

		if r := a.Mul(one); !r.Equals(a) {
			return fmt.Errorf("%s * 1 = %s", a, r)
		}

		if r := a.Mul(zero); !r.IsZero() {
			return fmt.Errorf("%s * 0 = %s", a, r)
		}
	}

	return nil
}

func checkAdditiveInverse(cfg *field.Config, rng *rand.Rand, n uint) error {
	for _, a := range values(cfg, rng, n) {
		if r := a.Add(a.Neg()); !r.IsZero() {
			return fmt.Errorf("%s + (-%s) = %s", a, a, r)
		}

		if r := a.Sub(a); !r.IsZero() {
			return fmt.Errorf("%s - %s = %s", a, a, r)
		}
	}

	return nil
}

func checkMultiplicativeInverse(cfg *field.Config, rng *rand.Rand, n uint) error {
	if _, err := cfg.Zero().Inverse(); err == nil {
		return fmt.Errorf("inverting zero succeeded")
	}

	for _, a := range values(cfg, rng, n) {
		if a.IsZero() {
			continue
		}

		inv, err := a.Inverse()
		if err != nil {
			return fmt.Errorf("inverting %s: %w", a, err)
		}

		if r := a.Mul(inv); !r.IsOne() {
			return fmt.Errorf("%s * %s⁻¹ = %s", a, a, r)
		}
	}

	return nil
}

func checkDoubleSquare(cfg *field.Config, rng *rand.Rand, n uint) error {
	for _, a := range values(cfg, rng, n) {
		if l, r := a.Double(), a.Add(a); !l.Equals(r) {
			return fmt.Errorf("double(%s) = %s but %s + %s = %s", a, l, a, a, r)
		}

		if l, r := a.Square(), a.Mul(a); !l.Equals(r) {
			return fmt.Errorf("square(%s) = %s but %s * %s = %s", a, l, a, a, r)
		}
	}

	return nil
}

func checkExponentiation(cfg *field.Config, rng *rand.Rand, n uint) error {
	modulus := cfg.ModulusBig()

	for _, a := range values(cfg, rng, n) {
		// exponent wider than the modulus, exercising the full ladder
		var e big.Int

		e.SetUint64(rng.Uint64()).Lsh(&e, 64).Or(&e, new(big.Int).SetUint64(rng.Uint64()))

		var expected big.Int

		expected.SetUint64(uint64(a.Uint32())).Exp(&expected, &e, modulus)

		if actual := a.Exp(&e); uint64(actual.Uint32()) != expected.Uint64() {
			return fmt.Errorf("%s^%s = %s, expected %s", a, e.String(), actual, expected.String())
		}
	}

	return nil
}

func checkSqrt(cfg *field.Config, rng *rand.Rand, n uint) error {
	for _, a := range values(cfg, rng, n) {
		sq := a.Square()

		root, err := sq.Sqrt()
		if err != nil {
			return fmt.Errorf("sqrt(%s): %w", sq, err)
		}

		if r := root.Square(); !r.Equals(sq) {
			return fmt.Errorf("sqrt(%s) = %s, but %s² = %s", sq, root, root, r)
		}
		// canonical choice is the numerically smaller root
		if c := root.Uint32(); c > cfg.Modulus()-c {
			return fmt.Errorf("sqrt(%s) = %s is the larger of the two roots", sq, root)
		}
	}
	// the generator of the full multiplicative group is never a residue
	if root, err := cfg.Generator().Sqrt(); err == nil {
		return fmt.Errorf("sqrt of non-residue %s returned %s", cfg.Generator(), root)
	}

	return nil
}

func checkSerialization(cfg *field.Config, rng *rand.Rand, n uint) error {
	for _, a := range values(cfg, rng, n) {
		buf := a.Bytes()

		if v := binary.LittleEndian.Uint32(buf[:]); v >= cfg.Modulus() {
			return fmt.Errorf("%s encoded as %d, at or above the modulus", a, v)
		}

		decoded, err := cfg.FromBytes(buf[:])
		if err != nil {
			return fmt.Errorf("decoding %v: %w", buf, err)
		}

		if !decoded.Equals(a) {
			return fmt.Errorf("%s round-tripped to %s", a, decoded)
		}
	}
	// an encoding of the modulus itself must be rejected
	var overflow [field.ByteWidth]byte
	for i := range overflow {
		overflow[i] = byte(cfg.Modulus() >> (8 * i))
	}

	if decoded, err := cfg.FromBytes(overflow[:]); err == nil {
		return fmt.Errorf("decoding the modulus succeeded, yielding %s", decoded)
	}

	return nil
}

func checkWraparound(cfg *field.Config, rng *rand.Rand, n uint) error {
	if r := cfg.NewElement(cfg.Modulus()); !r.IsZero() {
		return fmt.Errorf("from(%d) = %s, expected 0", cfg.Modulus(), r)
	}

	if r := cfg.NewElement(cfg.Modulus() + 1); !r.IsOne() {
		return fmt.Errorf("from(%d) = %s, expected 1", cfg.Modulus()+1, r)
	}

	if r := cfg.NewElement(cfg.Modulus() - 1); r.IsZero() {
		return fmt.Errorf("from(%d) = 0", cfg.Modulus()-1)
	}

	return nil
}

// checkGroundTruth compares field arithmetic against direct modular reduction
// of raw integers.
func checkGroundTruth(cfg *field.Config, rng *rand.Rand, n uint) error {
	modulus := uint64(cfg.Modulus())

	for range n + 1 {
		var (
			u = rng.Uint32N(cfg.Modulus())
			v = rng.Uint32N(cfg.Modulus())
			x = cfg.NewElement(u)
			y = cfg.NewElement(v)
		)

		if expected := (uint64(u) + uint64(v)) % modulus; uint64(x.Add(y).Uint32()) != expected {
			return fmt.Errorf("%d + %d = %s, expected %d", u, v, x.Add(y), expected)
		}

		if expected := uint64(u) * uint64(v) % modulus; uint64(x.Mul(y).Uint32()) != expected {
			return fmt.Errorf("%d * %d = %s, expected %d", u, v, x.Mul(y), expected)
		}

		if expected := (modulus + uint64(u) - uint64(v)) % modulus; uint64(x.Sub(y).Uint32()) != expected {
			return fmt.Errorf("%d - %d = %s, expected %d", u, v, x.Sub(y), expected)
		}
	}

	return nil
}
