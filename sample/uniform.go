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

package sample

import "math/rand/v2"

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	min float64
	max float64
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformRange(min, max float64) *UniformRange {
	return &UniformRange{
		min: min,
		max: max,
	}
}

// Sample samples a random value from the interval [min, max).
func (u *UniformRange) Sample(r *rand.Rand) float64 {
	return u.min + (u.max-u.min)*r.Float64()
}

// NewUniform returns an instance of the UniformRange sampler
// over [0, max).
func NewUniform(max float64) *UniformRange {
	return NewUniformRange(0, max)
}

// NewUnit returns a sampler over [0, 1).
func NewUnit() *UniformRange {
	return NewUniform(1)
}
