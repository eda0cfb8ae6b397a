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

// Package field implements arithmetic over prime fields whose modulus fits a
// single machine word (strictly below 2³¹, leaving the bit of slack required
// by the reduction algorithms).  A field is described by a Config, fixed at
// definition time, which selects one of two reduction backends: standard
// remainder-based reduction, or Montgomery reduction over the radix 2³².
// Whatever the backend, every externally observable result (comparison,
// hashing, serialization, printing) is derived from the canonical residue in
// [0, modulus).
package field

import (
	"fmt"
	"math/big"
	"math/bits"

	log "github.com/sirupsen/logrus"
)

// A Config describes one prime field: its modulus, a generator of the
// multiplicative group, the reduction backend, and the constants those derive.
// Configs are immutable once constructed and safe for concurrent use.
type Config struct {
	name      string
	modulus   uint32
	bitLen    uint
	backend   Backend
	red       reducer
	generator uint32 // canonical residue
	one       uint32 // internal representation of 1
	sqrt      sqrtTables
}

// NewConfig derives a field configuration from the given modulus, generator
// and backend selection.  The modulus must be an odd prime below 2³¹ and the
// generator must generate the full multiplicative group; any violation is
// reported here, as ErrInvalidConfig, so that arithmetic never has to.
func NewConfig(name string, modulus, generator uint32, backend Backend) (*Config, error) {
	if modulus >= 1<<31 {
		return nil, fmt.Errorf("%w: modulus %d exceeds 2³¹", ErrInvalidConfig, modulus)
	}

	if modulus < 3 || modulus%2 == 0 {
		return nil, fmt.Errorf("%w: modulus %d is not an odd prime", ErrInvalidConfig, modulus)
	}

	if !big.NewInt(int64(modulus)).ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: modulus %d is composite", ErrInvalidConfig, modulus)
	}

	cfg := &Config{
		name:    name,
		modulus: modulus,
		bitLen:  uint(bits.Len32(modulus)),
		backend: backend,
	}

	switch backend {
	case Standard:
		cfg.red = standardReducer{modulus: modulus}
	case Montgomery:
		cfg.red = newMontgomeryReducer(modulus)
	default:
		return nil, fmt.Errorf("%w: unknown backend %d", ErrInvalidConfig, backend)
	}

	cfg.one = cfg.red.fromUint32(1)

	if err := cfg.checkGenerator(generator); err != nil {
		return nil, err
	}

	cfg.generator = generator % modulus
	cfg.sqrt = newSqrtTables(cfg)

	log.Debugf("field %s: modulus=%d generator=%d backend=%s", name, modulus, cfg.generator, backend)

	return cfg, nil
}

// MustNewConfig is NewConfig for statically declared fields, where a bad
// descriptor is a programmer error.
func MustNewConfig(name string, modulus, generator uint32, backend Backend) *Config {
	cfg, err := NewConfig(name, modulus, generator, backend)
	if err != nil {
		panic(err)
	}

	return cfg
}

// checkGenerator verifies that g generates the full multiplicative group,
// i.e. g^((p-1)/q) != 1 for every prime factor q of p-1.
func (c *Config) checkGenerator(g uint32) error {
	g %= c.modulus
	if g == 0 {
		return fmt.Errorf("%w: generator is zero mod %d", ErrInvalidConfig, c.modulus)
	}

	var (
		order = c.modulus - 1
		gi    = c.red.fromUint32(g)
	)

	for _, q := range primeFactors(order) {
		e := big.NewInt(int64(order / q))
		if c.exp(gi, e) == c.one {
			return fmt.Errorf("%w: %d does not generate the multiplicative group of order %d",
				ErrInvalidConfig, g, order)
		}
	}

	return nil
}

// primeFactors returns the distinct prime factors of n by trial division.
// For n < 2³¹ this needs at most ~46k divisions, fine for definition time.
func primeFactors(n uint32) []uint32 {
	var factors []uint32

	for d := uint32(2); uint64(d)*uint64(d) <= uint64(n); d++ {
		if n%d == 0 {
			factors = append(factors, d)

			for n%d == 0 {
				n /= d
			}
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// exp computes x^e over internal representations using a left-to-right
// square-and-multiply ladder.  Every bit of the exponent performs the same
// operations, with the multiply selected rather than skipped, so the shape of
// the computation depends only on the exponent's bit length.
func (c *Config) exp(x uint32, e *big.Int) uint32 {
	res := c.one

	for i := e.BitLen() - 1; i >= 0; i-- {
		res = c.red.mul(res, res)

		t := c.red.mul(res, x)
		if e.Bit(i) == 1 {
			res = t
		}
	}

	return res
}

// Name of the field, as used by declarations and the conformance runner.
func (c *Config) Name() string {
	return c.name
}

// Modulus of the field.
func (c *Config) Modulus() uint32 {
	return c.modulus
}

// ModulusBig returns the modulus as a big.Int.
func (c *Config) ModulusBig() *big.Int {
	return new(big.Int).SetUint64(uint64(c.modulus))
}

// BitLen returns the bit length of the modulus.
func (c *Config) BitLen() uint {
	return c.bitLen
}

// Backend returns the reduction strategy this field was configured with.
func (c *Config) Backend() Backend {
	return c.backend
}

// Zero returns the additive identity.
func (c *Config) Zero() Element {
	return Element{cfg: c}
}

// One returns the multiplicative identity.
func (c *Config) One() Element {
	return Element{v: c.one, cfg: c}
}

// Generator returns the configured generator of the multiplicative group.
func (c *Config) Generator() Element {
	return Element{v: c.red.fromUint32(c.generator), cfg: c}
}

// NewElement returns the field element corresponding to the natural number x,
// wrapping values at or above the modulus.  In particular NewElement(modulus)
// is the additive identity.
func (c *Config) NewElement(x uint32) Element {
	return Element{v: c.red.fromUint32(x), cfg: c}
}

// maxEnumerable bounds Elements to fields small enough to materialise.
const maxEnumerable = 1 << 16

// Elements returns every element of the field in ascending canonical order,
// so that Elements()[i] has canonical residue i.  It exists for exhaustive
// checks over tiny test fields and panics for moduli above 2¹⁶.
func (c *Config) Elements() []Element {
	if c.modulus > maxEnumerable {
		panic(fmt.Sprintf("field %s is too large to enumerate", c.name))
	}

	elements := make([]Element, c.modulus)
	for i := range elements {
		elements[i] = Element{v: c.red.fromUint32(uint32(i)), cfg: c}
	}

	return elements
}
