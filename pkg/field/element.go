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
	"cmp"
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
)

// ByteWidth is the fixed width of the serialized form of an element.  All
// supported moduli fit 32 bits, so elements encode as exactly four bytes in
// little-endian order.
const ByteWidth = 4

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// An Element of a prime field, represented internally in whichever form the
// field's backend uses.  Elements are immutable values; every operation
// returns a new one.  Operands of arithmetic operations must belong to the
// same Config, which is a programmer error to violate.
type Element struct {
	v   uint32
	cfg *Config
}

func (x Element) compat(y Element) {
	if x.cfg != y.cfg {
		panic(fmt.Sprintf("mixing elements of fields %q and %q", x.cfg.name, y.cfg.name))
	}
}

// Config returns the field this element belongs to.
func (x Element) Config() *Config {
	return x.cfg
}

// Add x + y
func (x Element) Add(y Element) Element {
	x.compat(y)
	return Element{v: x.cfg.add(x.v, y.v), cfg: x.cfg}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	x.compat(y)
	return Element{v: x.cfg.sub(x.v, y.v), cfg: x.cfg}
}

// Neg -x
func (x Element) Neg() Element {
	return Element{v: x.cfg.neg(x.v), cfg: x.cfg}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	x.compat(y)
	return Element{v: x.cfg.red.mul(x.v, y.v), cfg: x.cfg}
}

// Double 2x
func (x Element) Double() Element {
	return Element{v: x.cfg.add(x.v, x.v), cfg: x.cfg}
}

// Square x²
func (x Element) Square() Element {
	return Element{v: x.cfg.red.mul(x.v, x.v), cfg: x.cfg}
}

// Inverse computes x⁻¹ as x^(p-2), or ErrDivisionByZero for the additive
// identity.
func (x Element) Inverse() (Element, error) {
	if x.v == 0 {
		return Element{cfg: x.cfg}, ErrDivisionByZero
	}

	e := big.NewInt(int64(x.cfg.modulus - 2))

	return Element{v: x.cfg.exp(x.v, e), cfg: x.cfg}, nil
}

// Exp computes x^e for an arbitrary-width non-negative exponent.  The ladder
// visits every exponent bit with an identical operation sequence; there is no
// early exit on the exponent's value.
func (x Element) Exp(e *big.Int) Element {
	if e.Sign() < 0 {
		panic("negative exponent")
	}

	return Element{v: x.cfg.exp(x.v, e), cfg: x.cfg}
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.v == 0
}

// IsOne reports whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.v == x.cfg.one
}

// Uint32 returns the canonical residue of x in [0, modulus).
func (x Element) Uint32() uint32 {
	return x.cfg.red.toUint32(x.v)
}

// Cmp orders x and y by canonical residue, returning 1 if x > y, 0 if x = y,
// and -1 if x < y.
func (x Element) Cmp(y Element) int {
	x.compat(y)
	return cmp.Compare(x.Uint32(), y.Uint32())
}

// Equals reports whether x and y denote the same residue of the same modulus.
// Unlike the arithmetic operations it tolerates elements of distinct configs,
// so values produced by different backends remain indistinguishable.
func (x Element) Equals(y Element) bool {
	return x.cfg.modulus == y.cfg.modulus && x.Uint32() == y.Uint32()
}

// Hash implementation for the hash.Hasher interface, over the canonical
// residue so that both backends hash equal elements identically.
func (x Element) Hash() uint64 {
	// FNV1a hash implementation (unrolled)
	hash := offset64
	//
	return (hash ^ uint64(x.Uint32())) * prime64
}

// Bytes returns the fixed-width little-endian encoding of the canonical
// residue.
func (x Element) Bytes() [ByteWidth]byte {
	var buf [ByteWidth]byte

	binary.LittleEndian.PutUint32(buf[:], x.Uint32())

	return buf
}

// FromBytes decodes a fixed-width little-endian canonical residue, rejecting
// byte strings of the wrong length or encoding a value at or above the
// modulus.
func (c *Config) FromBytes(buf []byte) (Element, error) {
	if len(buf) != ByteWidth {
		return Element{cfg: c}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, ByteWidth, len(buf))
	}

	v := binary.LittleEndian.Uint32(buf)
	if v >= c.modulus {
		return Element{cfg: c}, fmt.Errorf("%w: %d is not a canonical residue mod %d", ErrInvalidEncoding, v, c.modulus)
	}

	return Element{v: c.red.fromUint32(v), cfg: c}, nil
}

// String implementation for the fmt.Stringer interface.
func (x Element) String() string {
	return x.Text(10)
}

// Text returns the canonical residue of x in the given base.
func (x Element) Text(base int) string {
	return strconv.FormatUint(uint64(x.Uint32()), base)
}
