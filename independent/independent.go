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
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/popsynth/binpop/massrange"
	"github.com/popsynth/binpop/registry"
	"github.com/popsynth/binpop/table"
	"go.uber.org/zap"
)

const (
	// Name is the name the sampler is registered under.
	Name = "independent"
	// Usage lists the parameters of the sampler in order.
	Usage = "final_kstar1, final_kstar2, primary_model, ecc_model, SFH_model, component_age, metallicity, size"
)

// Metallicities outside of [MinMetallicity, MaxMetallicity] are clamped.
const (
	MinMetallicity = 1e-4
	MaxMetallicity = 0.03
)

// Params describes the population to draw.
type Params struct {
	// FinalKstar1 and FinalKstar2 are the stellar types the primary and
	// the secondary should be able to end as. They select the primary
	// mass window through massrange.Select.
	FinalKstar1 []int
	FinalKstar2 []int

	PrimaryModel MassModel
	EccModel     EccModel
	SFHModel     SFHModel

	// ComponentAge is the age of the Galactic component [Myr].
	ComponentAge float64
	Metallicity  float64
	// Size is the number of primaries to draw.
	Size int

	// BinaryModel defaults to Half when zero.
	BinaryModel BinaryModel
}

// Validate checks that every model is a supported one and that the
// numbers can be sampled from.
func (p Params) Validate() error {
	switch {
	case p.PrimaryModel != Kroupa93 && p.PrimaryModel != Salpeter55:
		return unknownModel("primary mass", p.PrimaryModel)
	case p.EccModel != Thermal && p.EccModel != Uniform:
		return unknownModel("eccentricity", p.EccModel)
	case p.SFHModel != Const && p.SFHModel != Burst && p.SFHModel != DeltaBurst:
		return unknownModel("star formation history", p.SFHModel)
	case p.BinaryModel != 0 && p.BinaryModel != Half && p.BinaryModel != VanHaaften:
		return unknownModel("binary fraction", p.BinaryModel)
	case p.Size <= 0:
		return errors.Wrapf(ErrInvalidInput, "size must be positive, got %d", p.Size)
	case !(p.ComponentAge >= 0):
		return errors.Wrapf(ErrInvalidInput, "component age must not be negative, got %g", p.ComponentAge)
	}
	return nil
}

// Sample draws a whole population.
//
// SampledMass of the result adds up every primary candidate drawn and
// every secondary kept, while Binaries holds only the stars that were
// paired.
func (s *Sampler) Sample(p Params) (*table.Population, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	binaryModel := p.BinaryModel
	if binaryModel == 0 {
		binaryModel = Half
	}

	bounds, err := massrange.Select(p.FinalKstar1, p.FinalKstar2)
	if err != nil {
		return nil, errors.Wrap(err, "select mass range")
	}

	mass1, sampledMass, err := s.SamplePrimary(bounds.PrimaryMin, bounds.PrimaryMax, p.PrimaryModel, p.Size)
	if err != nil {
		return nil, errors.Wrap(err, "sample primary masses")
	}

	mass1Binary, singles, err := s.BinarySelect(mass1, binaryModel)
	if err != nil {
		return nil, err
	}
	mass2Binary := s.SampleSecondary(mass1Binary)
	sampledMass += mass2Binary.Sum()

	n := len(mass1Binary)
	ecc, err := s.SampleEcc(p.EccModel, n)
	if err != nil {
		return nil, err
	}
	porb, err := s.SamplePorb(mass1Binary, mass2Binary, ecc)
	if err != nil {
		return nil, errors.Wrap(err, "sample orbital periods")
	}
	tphysf, metallicity, err := s.SampleSFH(p.SFHModel, p.ComponentAge, p.Metallicity, n)
	if err != nil {
		return nil, err
	}
	metallicity = metallicity.Clamp(MinMetallicity, MaxMetallicity)

	kstar1 := SetKstar(mass1Binary)
	kstar2 := SetKstar(mass2Binary)

	binaries, err := table.MultipleBinary(mass1Binary, mass2Binary, porb, ecc, tphysf, kstar1, kstar2, metallicity)
	if err != nil {
		return nil, err
	}

	heaviest, err := mass1.Max()
	if err != nil {
		return nil, err
	}
	s.log.Debug("sampled population",
		zap.Int("size", p.Size),
		zap.Float64("heaviestPrimary", heaviest),
		zap.Int("primaries", len(mass1)),
		zap.Int("binaries", n),
		zap.Int("singles", len(singles)),
		zap.Float64("sampledMass", sampledMass))

	return &table.Population{
		Binaries:    binaries,
		SampledMass: sampledMass,
		Size:        p.Size,
	}, nil
}

// Independent draws a population described by p from r.
func Independent(r *rand.Rand, p Params, opts ...Option) (*table.Population, error) {
	return New(r, opts...).Sample(p)
}

// Job pairs Params with the retry policy to sample them under. The
// registered sampler accepts a Job as well as bare Params.
type Job struct {
	Params Params
	Retry  RetryPolicy
}

func init() {
	registry.Register(Name, func(r *rand.Rand, log *zap.Logger, params any) (*table.Population, error) {
		switch p := params.(type) {
		case Params:
			return Independent(r, p, WithLogger(log))
		case Job:
			return Independent(r, p.Params, WithLogger(log), WithRetryPolicy(p.Retry))
		default:
			return nil, errors.Wrapf(ErrInvalidInput, "%s sampler expects independent.Params, got %T", Name, params)
		}
	}, Usage)
}
