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

// burstDuration is the length of the Burst star formation episode [Myr].
const burstDuration = 1000.0

// SampleSFH draws size evolution times [Myr], the time each binary has
// evolved until today, for a Galactic component of the given age [Myr].
// The metallicity is the same for every binary.
//
// A Burst in a component younger than burstDuration is cut short at
// the component's formation, so evolution times are never negative.
func (s *Sampler) SampleSFH(model SFHModel, componentAge, met float64, size int) (tphysf, metallicity data.Vector, err error) {
	if size < 0 {
		return nil, nil, errors.Wrapf(ErrInvalidInput, "size must not be negative, got %d", size)
	}
	if !(componentAge >= 0) || math.IsInf(componentAge, 1) {
		return nil, nil, errors.Wrapf(ErrInvalidInput, "component age must be finite and non-negative, got %g", componentAge)
	}

	switch model {
	case Const:
		tphysf = data.NewRandomVector(size, s.r, sample.NewUniform(componentAge))
	case Burst:
		span := math.Min(burstDuration, componentAge)
		tphysf = data.NewRandomVector(size, s.r, sample.NewUniform(span)).Apply(func(t float64) float64 {
			return componentAge - t
		})
	case DeltaBurst:
		tphysf = data.NewConstantVector(size, componentAge)
	default:
		return nil, nil, unknownModel("star formation history", model)
	}

	return tphysf, data.NewConstantVector(size, met), nil
}
