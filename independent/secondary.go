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

import (
	"github.com/popsynth/binpop/data"
	"github.com/popsynth/binpop/sample"
)

// minMassRatio is the smallest secondary to primary mass ratio drawn.
const minMassRatio = 0.001

// SampleSecondary draws one secondary mass per primary from a mass
// ratio uniform on [0.001, 1) (Mazeh et al. 1992; Goldberg & Mazeh 1994).
func (s *Sampler) SampleSecondary(primary data.Vector) data.Vector {
	q := data.NewRandomVector(len(primary), s.r, sample.NewUniformRange(minMassRatio, 1))

	// q has the length of primary, so Mul cannot fail
	secondary, _ := primary.Mul(q)

	return secondary
}
