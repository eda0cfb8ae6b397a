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
	"fmt"
	"math/big"
)

// Backend selects the reduction strategy used internally by a field.  The
// choice never affects observable arithmetic results, only the internal
// representation of elements.
type Backend uint8

const (
	// Standard keeps elements as canonical residues and reduces products by
	// direct remainder against the modulus.
	Standard Backend = iota
	// Montgomery keeps elements multiplied by R = 2³² (mod p) and reduces
	// products with Montgomery's algorithm, avoiding a full division.
	Montgomery
)

// String implementation for the fmt.Stringer interface.
func (b Backend) String() string {
	switch b {
	case Standard:
		return "standard"
	case Montgomery:
		return "montgomery"
	default:
		return fmt.Sprintf("backend(%d)", uint8(b))
	}
}

// ParseBackend maps the textual backend names used by field declarations
// onto their selectors.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "standard":
		return Standard, nil
	case "montgomery":
		return Montgomery, nil
	default:
		return 0, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, name)
	}
}

// A reducer implements reduction for one internal representation.  Addition,
// subtraction and negation are representation agnostic (both representations
// live in [0, modulus)) and are implemented once on Config; only
// multiplication and the conversions differ between backends.
type reducer interface {
	// fromUint32 converts an arbitrary uint32 into internal representation,
	// wrapping values at or above the modulus.
	fromUint32(x uint32) uint32
	// toUint32 converts the internal representation back into the canonical
	// residue in [0, modulus).
	toUint32(x uint32) uint32
	// mul multiplies two internal representations, producing a result in the
	// same representation, strictly within [0, modulus).
	mul(x, y uint32) uint32
}

type standardReducer struct {
	modulus uint32
}

func (r standardReducer) fromUint32(x uint32) uint32 {
	if x >= r.modulus {
		x %= r.modulus
	}

	return x
}

func (r standardReducer) toUint32(x uint32) uint32 {
	return x
}

func (r standardReducer) mul(x, y uint32) uint32 {
	return uint32(uint64(x) * uint64(y) % uint64(r.modulus))
}

type montgomeryReducer struct {
	modulus uint32
	// negInvModR is -modulus⁻¹ (mod 2³²).
	negInvModR uint32
}

func newMontgomeryReducer(modulus uint32) montgomeryReducer {
	m := big.NewInt(int64(modulus))
	m.ModInverse(m, new(big.Int).Lsh(big.NewInt(1), 32))

	return montgomeryReducer{
		modulus:    modulus,
		negInvModR: uint32(1<<32 - m.Uint64()),
	}
}

// reduce maps x -> x.R⁻¹ (mod modulus) for any x < modulus.R.
func (r montgomeryReducer) reduce(x uint64) uint32 {
	// textbook Montgomery reduction
	const R = 1 << 32

	m := (x * uint64(r.negInvModR)) % R // m = x * (-modulus⁻¹) (mod R)
	res := uint32((x + m*uint64(r.modulus)) / R)

	if res >= r.modulus {
		res -= r.modulus
	}

	return res
}

func (r montgomeryReducer) fromUint32(x uint32) uint32 {
	if x >= r.modulus {
		x %= r.modulus
	}
	// x.R (mod modulus); safe since x, modulus < 2³¹
	return uint32(uint64(x) << 32 % uint64(r.modulus))
}

func (r montgomeryReducer) toUint32(x uint32) uint32 {
	// multiplying by 1 strips the radix factor
	return r.reduce(uint64(x))
}

func (r montgomeryReducer) mul(x, y uint32) uint32 {
	return r.reduce(uint64(x) * uint64(y))
}

// add computes x + y over internal representations.  Both operands are below
// the modulus, which itself is below 2³¹, so the sum cannot overflow.
func (c *Config) add(x, y uint32) uint32 {
	res := x + y
	if res >= c.modulus {
		res -= c.modulus
	}

	return res
}

// sub computes x - y over internal representations, adding the modulus back
// on borrow.
func (c *Config) sub(x, y uint32) uint32 {
	const negMask uint32 = 1 << 31

	res := x - y
	if res&negMask != 0 {
		res += c.modulus
	}

	return res
}

// neg computes -x over internal representations, with -0 = 0.
func (c *Config) neg(x uint32) uint32 {
	if x == 0 {
		return 0
	}

	return c.modulus - x
}
