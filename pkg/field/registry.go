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

// Configs determines the set of statically declared fields.  To add a field,
// extend the spec list in internal/generator and regenerate; no other code
// changes are needed.
var Configs = []*Config{
	M31,
	BabyBear,
	KoalaBear,
	GF101,
}

// Lookup returns the field configuration with the given name, or nil if no
// such field is declared.
func Lookup(name string) *Config {
	for _, cfg := range Configs {
		if cfg.name == name {
			return cfg
		}
	}
	//
	return nil
}
