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

package data

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/popsynth/binpop/internal"
	"github.com/popsynth/binpop/sample"
	"gonum.org/v1/gonum/floats"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler
// from the stream r.
func NewRandomVector(len int, r *rand.Rand, sampler sample.Sampler) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample(r)
	}

	return NewVector(vec)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)

	return res
}

// Mul multiplies vectors v and other element-wise.
// The result is returned in a new Vector.
func (v Vector) Mul(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrap(internal.MalformedInput, "vectors should be of same length")
	}
	res := v.Copy()
	floats.Mul(res, other)

	return res, nil
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrap(internal.MalformedInput, "vectors should be of same length")
	}
	res := v.Copy()
	floats.Add(res, other)

	return res, nil
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Sum returns the sum of all elements; 0 for an empty vector.
func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// Max returns the largest element. It returns an error
// for an empty vector.
func (v Vector) Max() (float64, error) {
	if len(v) == 0 {
		return 0, errors.Wrap(internal.MalformedInput, "empty vector has no maximum")
	}
	return floats.Max(v), nil
}

// Where returns the indices of the elements satisfying pred,
// in increasing order.
func (v Vector) Where(pred func(float64) bool) []int {
	idx := make([]int, 0, len(v))
	for i, vi := range v {
		if pred(vi) {
			idx = append(idx, i)
		}
	}

	return idx
}

// Select returns the elements at the given indices in a new Vector.
func (v Vector) Select(idx []int) Vector {
	res := make(Vector, len(idx))
	for i, j := range idx {
		res[i] = v[j]
	}

	return res
}

// Filter returns the elements lying in the closed interval [min, max],
// preserving their order.
func (v Vector) Filter(min, max float64) Vector {
	return v.Select(v.Where(func(x float64) bool {
		return x >= min && x <= max
	}))
}

// Clamp returns a new Vector with every element limited
// to the closed interval [min, max].
func (v Vector) Clamp(min, max float64) Vector {
	return v.Apply(func(x float64) float64 {
		return math.Min(math.Max(x, min), max)
	})
}

// CheckBound checks whether all vector elements lie
// in the closed interval [min, max].
// It returns error if at least one element is outside of it.
func (v Vector) CheckBound(min, max float64) error {
	for i, c := range v {
		if !(c >= min && c <= max) {
			return errors.Wrapf(internal.MalformedInput,
				"coordinate %d = %g is outside of [%g, %g]", i, c, min, max)
		}
	}

	return nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, vi := range v {
		parts[i] = strconv.FormatFloat(vi, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
