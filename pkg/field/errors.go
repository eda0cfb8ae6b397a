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

import "errors"

// ErrInvalidConfig indicates a field configuration whose modulus or generator
// is unusable (even, composite, too wide, or a generator of the wrong order).
// It is only ever returned at definition time, never during arithmetic.
var ErrInvalidConfig = errors.New("invalid field config")

// ErrDivisionByZero indicates an attempt to invert the additive identity.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNoSquareRoot indicates that the element is not a quadratic residue.
// This is a correct negative answer rather than a fault.
var ErrNoSquareRoot = errors.New("no square root")

// ErrInvalidEncoding indicates a byte string which does not encode a
// canonical residue (wrong length, or a value at or above the modulus).
var ErrInvalidEncoding = errors.New("invalid encoding")
