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

// Package table holds the initial conditions of a sampled binary
// population as parallel columns.
package table

import (
	"github.com/pkg/errors"
	"github.com/popsynth/binpop/data"
	"github.com/popsynth/binpop/internal"
)

// InitialBinaryTable stores one row per binary. All columns have
// the same length.
type InitialBinaryTable struct {
	// Mass1 and Mass2 are the zero-age masses [Msun], Mass2 <= Mass1.
	Mass1 data.Vector
	Mass2 data.Vector
	// Porb is the orbital period [days].
	Porb data.Vector
	Ecc  data.Vector
	// TPhysf is the evolution time [Myr].
	TPhysf data.Vector
	Kstar1 []int
	Kstar2 []int
	// Metallicity is Z, with Z_sun = 0.02.
	Metallicity data.Vector
}

// Binary is a single row of an InitialBinaryTable.
type Binary struct {
	Mass1       float64
	Mass2       float64
	Porb        float64
	Ecc         float64
	TPhysf      float64
	Kstar1      int
	Kstar2      int
	Metallicity float64
}

// MultipleBinary assembles a table from its columns.
// It returns an error if the columns differ in length.
func MultipleBinary(mass1, mass2, porb, ecc, tphysf data.Vector,
	kstar1, kstar2 []int, metallicity data.Vector) (*InitialBinaryTable, error) {
	n := len(mass1)
	lens := []int{len(mass2), len(porb), len(ecc), len(tphysf), len(kstar1), len(kstar2), len(metallicity)}
	for _, l := range lens {
		if l != n {
			return nil, errors.Wrapf(internal.MalformedInput,
				"columns should be of same length, got %d and %d", n, l)
		}
	}

	return &InitialBinaryTable{
		Mass1:       mass1,
		Mass2:       mass2,
		Porb:        porb,
		Ecc:         ecc,
		TPhysf:      tphysf,
		Kstar1:      kstar1,
		Kstar2:      kstar2,
		Metallicity: metallicity,
	}, nil
}

// Len returns the number of binaries.
func (t *InitialBinaryTable) Len() int {
	return len(t.Mass1)
}

// Row returns the i-th binary.
func (t *InitialBinaryTable) Row(i int) Binary {
	return Binary{
		Mass1:       t.Mass1[i],
		Mass2:       t.Mass2[i],
		Porb:        t.Porb[i],
		Ecc:         t.Ecc[i],
		TPhysf:      t.TPhysf[i],
		Kstar1:      t.Kstar1[i],
		Kstar2:      t.Kstar2[i],
		Metallicity: t.Metallicity[i],
	}
}

// Population is the outcome of one sampler call.
type Population struct {
	Binaries *InitialBinaryTable
	// SampledMass is the total mass drawn while building the population,
	// including rejected primaries and stars left single. It is meant
	// for normalising the population to a star formation rate.
	SampledMass float64
	// Size is the number of primaries that was asked for.
	Size int
}
