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

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// PowerLaw samples values x from the density p(x) ∝ x^G truncated
// to the support [A, B], using the inverse of the cumulative
// distribution function. G = -1 is the log-uniform distribution
// and is handled separately.
type PowerLaw struct {
	A float64
	B float64
	G float64
}

// NewPowerLaw returns an instance of the PowerLaw sampler.
// It returns an error if the support is not a non-empty
// interval of positive numbers.
func NewPowerLaw(a, b, g float64) (*PowerLaw, error) {
	if !(a > 0) || !(b > a) || math.IsInf(b, 1) || math.IsNaN(g) {
		return nil, errors.Errorf("power law support must satisfy 0 < a < b < inf, got [%g, %g]", a, b)
	}
	return &PowerLaw{A: a, B: b, G: g}, nil
}

// Sample draws a single value from the power law.
func (p *PowerLaw) Sample(r *rand.Rand) float64 {
	return p.invCDF(r.Float64())
}

// Fill draws n independent values from the power law.
func (p *PowerLaw) Fill(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p.invCDF(r.Float64())
	}
	return out
}

// invCDF maps u in [0, 1) onto [A, B).
func (p *PowerLaw) invCDF(u float64) float64 {
	if p.G == -1 {
		return p.A * math.Exp(u*math.Log(p.B/p.A))
	}
	g1 := p.G + 1
	ag := math.Pow(p.A, g1)
	bg := math.Pow(p.B, g1)
	return math.Pow(ag+(bg-ag)*u, 1/g1)
}
