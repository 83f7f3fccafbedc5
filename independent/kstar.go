/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package independent

import "github.com/popsynth/binpop/data"

// kstarMassCut [Msun] separates deeply convective low-mass
// main sequence stars (kstar 0) from the rest (kstar 1).
const kstarMassCut = 0.7

// SetKstar returns the initial BSE stellar type of every mass.
func SetKstar(masses data.Vector) []int {
	kstar := make([]int, len(masses))
	for i, m := range masses {
		if m >= kstarMassCut {
			kstar[i] = 1
		}
	}

	return kstar
}
