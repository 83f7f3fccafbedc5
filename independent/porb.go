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

const (
	// radiusBreak [Msun] separates the two mass-radius power laws.
	radiusBreak = 1.66
	// maxSeparation is the widest semi-major axis drawn [Rsun].
	maxSeparation = 1e5

	rsunAU   = 0.00465047
	yearDays = 365.24
)

// RocheLobeFactor returns the Eggleton (1983) ratio of Roche-lobe
// radius to orbital separation for mass ratio q.
func RocheLobeFactor(q float64) float64 {
	q13 := math.Cbrt(q)
	q23 := q13 * q13
	return 0.49 * q23 / (0.6*q23 + math.Log1p(q13))
}

// Radius returns the zero-age main sequence radius [Rsun]
// of every mass [Msun]. A single star is a one element vector.
func Radius(mass data.Vector) data.Vector {
	return mass.Apply(func(m float64) float64 {
		if m < radiusBreak {
			return 1.06 * math.Pow(m, 0.945)
		}
		return 1.33 * math.Pow(m, 0.555)
	})
}

// MinSeparation returns the smallest semi-major axis [Rsun] for which
// neither star fills half of its Roche lobe at periastron.
func MinSeparation(mass1, mass2, ecc data.Vector) (data.Vector, error) {
	if len(mass2) != len(mass1) || len(ecc) != len(mass1) {
		return nil, errors.Wrapf(ErrInvalidInput,
			"mass1, mass2 and ecc should be of same length, got %d, %d and %d", len(mass1), len(mass2), len(ecc))
	}
	for _, m := range []data.Vector{mass1, mass2} {
		if err := m.CheckBound(math.SmallestNonzeroFloat64, math.MaxFloat64); err != nil {
			return nil, errors.Wrap(err, "masses must be positive")
		}
	}
	if err := ecc.CheckBound(0, 1); err != nil {
		return nil, errors.Wrap(err, "eccentricities must lie in [0, 1]")
	}

	rad1 := Radius(mass1)
	rad2 := Radius(mass2)

	aMin := make(data.Vector, len(mass1))
	for i := range aMin {
		rl1 := 2 * rad1[i] / RocheLobeFactor(mass2[i]/mass1[i])
		rl2 := 2 * rad2[i] / RocheLobeFactor(mass1[i]/mass2[i])
		aMin[i] = math.Max(rl1, rl2) * (1 + ecc[i])
	}

	return aMin, nil
}

// SamplePorb draws orbital periods [days]. The semi-major axis is flat
// in log space (Abt 1983) between MinSeparation and 1e5 Rsun and is
// converted to a period with Kepler's third law.
func (s *Sampler) SamplePorb(mass1, mass2, ecc data.Vector) (data.Vector, error) {
	aMin, err := MinSeparation(mass1, mass2, ecc)
	if err != nil {
		return nil, err
	}
	totalMass, err := mass1.Add(mass2)
	if err != nil {
		return nil, err
	}

	sep := make(data.Vector, len(aMin))
	for i, lo := range aMin {
		law, err := sample.NewPowerLaw(lo, maxSeparation, -1)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "binary %d: %v", i, err)
		}
		sep[i] = law.Sample(s.r)
	}

	cubed := sep.MulScalar(rsunAU).Apply(func(a float64) float64 { return a * a * a })
	porb := make(data.Vector, len(cubed))
	for i, a3 := range cubed {
		porb[i] = math.Sqrt(a3/totalMass[i]) * yearDays
	}

	return porb, nil
}
