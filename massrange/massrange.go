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

// Package massrange maps the stellar types a binary should end up with
// onto the ranges of zero-age masses worth sampling.
//
// Stellar types follow the BSE kstar codes: 0-9 are non-degenerate
// stars, 10-12 white dwarfs, 13 neutron stars, 14 black holes and 15
// massless remnants. The floors below are the lightest zero-age masses
// that can reach a type within a Hubble time including binary
// stripping, so they are deliberately permissive.
package massrange

import (
	"github.com/pkg/errors"
	"github.com/popsynth/binpop/internal"
)

const (
	// MinMass and MaxMass bound the initial mass function support [Msun].
	MinMass = 0.08
	MaxMass = 150.0

	maxKstar = 15
)

// kstarFloor returns the lightest initial mass [Msun] able to end as kstar.
func kstarFloor(kstar int) float64 {
	switch {
	case kstar == 13:
		return 6.0
	case kstar == 14:
		return 15.0
	case kstar >= 10 && kstar <= 12:
		return 0.5
	default:
		return MinMass
	}
}

// Bounds holds the sampling window for both binary members [Msun].
type Bounds struct {
	PrimaryMin   float64
	PrimaryMax   float64
	SecondaryMin float64
	SecondaryMax float64
}

// Select returns the mass windows for binaries whose members should
// finish as one of kstar1 and one of kstar2 respectively.
//
// The primary is the heavier star, so its floor is never below the
// secondary's.
func Select(kstar1, kstar2 []int) (Bounds, error) {
	min1, err := floor(kstar1)
	if err != nil {
		return Bounds{}, errors.Wrap(err, "final kstar1")
	}
	min2, err := floor(kstar2)
	if err != nil {
		return Bounds{}, errors.Wrap(err, "final kstar2")
	}
	if min2 > min1 {
		min1 = min2
	}

	return Bounds{
		PrimaryMin:   min1,
		PrimaryMax:   MaxMass,
		SecondaryMin: min2,
		SecondaryMax: MaxMass,
	}, nil
}

// floor returns the smallest floor among the requested types.
func floor(kstars []int) (float64, error) {
	if len(kstars) == 0 {
		return 0, errors.Wrap(internal.MalformedInput, "at least one kstar must be given")
	}
	min := MaxMass
	for _, k := range kstars {
		if k < 0 || k > maxKstar {
			return 0, errors.Wrapf(internal.MalformedInput, "kstar %d is outside of [0, %d]", k, maxKstar)
		}
		if f := kstarFloor(k); f < min {
			min = f
		}
	}
	return min, nil
}
