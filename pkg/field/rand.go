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

// A Source of uniform random words, injected by the caller.  *math/rand/v2.Rand
// satisfies it; so does any CSPRNG exposing 32-bit draws.
type Source interface {
	Uint32() uint32
}

// Random samples a uniformly distributed field element from src by rejection:
// draws are masked to the modulus bit length and retried until one lands below
// the modulus, avoiding modulo bias.  At least half of all draws are accepted,
// so the expected number of draws is below two.
func (c *Config) Random(src Source) Element {
	mask := uint32(1)<<c.bitLen - 1

	for {
		if v := src.Uint32() & mask; v < c.modulus {
			return Element{v: c.red.fromUint32(v), cfg: c}
		}
	}
}
