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

	"github.com/pkg/errors"
	"github.com/popsynth/binpop/data"
	"github.com/popsynth/binpop/sample"
)

// SampleEcc draws size eccentricities in [0, 1).
func (s *Sampler) SampleEcc(model EccModel, size int) (data.Vector, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "size must not be negative, got %d", size)
	}

	switch model {
	case Thermal:
		return data.NewRandomVector(size, s.r, sample.NewUnit()).Apply(math.Sqrt), nil
	case Uniform:
		return data.NewRandomVector(size, s.r, sample.NewUnit()), nil
	default:
		return nil, unknownModel("eccentricity", model)
	}
}
