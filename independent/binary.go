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
	"math"

	"github.com/popsynth/binpop/data"
	"github.com/popsynth/binpop/sample"
)

// BinarySelect splits primaries into those that get a companion and
// those that stay single, with one independent unit draw u per star.
//
// With Half a star is paired when u >= 0.5. With VanHaaften the binary
// fraction f = 1/2 + log10(m)/4 is compared to u: the star is paired
// when f > u and single when f < u. A star with f == u is in neither
// result.
func (s *Sampler) BinarySelect(masses data.Vector, model BinaryModel) (paired, single data.Vector, err error) {
	var pairedIdx, singleIdx []int

	switch model {
	case Half:
		u := data.NewRandomVector(len(masses), s.r, sample.NewUnit())
		pairedIdx = u.Where(func(x float64) bool { return x >= 0.5 })
		singleIdx = u.Where(func(x float64) bool { return x < 0.5 })
	case VanHaaften:
		fraction := masses.Apply(func(m float64) float64 { return 0.5 + 0.25*math.Log10(m) })
		u := data.NewRandomVector(len(masses), s.r, sample.NewUnit())
		for i, f := range fraction {
			switch {
			case f > u[i]:
				pairedIdx = append(pairedIdx, i)
			case f < u[i]:
				singleIdx = append(singleIdx, i)
			}
		}
	default:
		return nil, nil, unknownModel("binary fraction", model)
	}

	return masses.Select(pairedIdx), masses.Select(singleIdx), nil
}
