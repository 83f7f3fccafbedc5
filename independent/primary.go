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
	"go.uber.org/zap"
)

// Segments of the Kroupa (1993) IMF. A unit uniform draw u picks the
// segment: u <= kroupaLowCut is the low segment, u >= kroupaHighCut
// the high one, and anything in between the middle one.
var (
	kroupaLow  = &sample.PowerLaw{A: 0.1, B: 0.5, G: -1.3}
	kroupaMid  = &sample.PowerLaw{A: 0.5, B: 1.0, G: -2.2}
	kroupaHigh = &sample.PowerLaw{A: 1.0, B: 150.0, G: -2.7}

	salpeter = &sample.PowerLaw{A: 0.08, B: 150.0, G: -2.35}
)

const (
	kroupaLowCut  = 0.925
	kroupaHighCut = 0.986
)

// SamplePrimary draws at least size primary masses [Msun] within
// [min, max] from the given initial mass function.
//
// Candidates are drawn in rounds of size*multiplier and filtered to the
// window; a round without survivors raises the multiplier tenfold, as
// long as the retry policy allows it. The result is not truncated, so
// it may hold more than size masses. The returned total is the sum of
// every candidate drawn, including the ones outside of the window, and
// is meant for normalisation.
//
// If the largest allowed round still finds nothing in the window,
// ErrUnsatisfiableMassRange is returned.
func (s *Sampler) SamplePrimary(min, max float64, model MassModel, size int) (data.Vector, float64, error) {
	if size <= 0 || size > s.retry.MaxDraws {
		return nil, 0, errors.Wrapf(ErrInvalidInput, "size must be in [1, %d], got %d", s.retry.MaxDraws, size)
	}
	if !(min > 0) || !(max >= min) || math.IsInf(max, 1) {
		return nil, 0, errors.Wrapf(ErrInvalidInput, "mass window [%g, %g] is not a finite positive interval", min, max)
	}

	var draw func(n int) data.Vector
	switch model {
	case Kroupa93:
		draw = s.kroupa93
	case Salpeter55:
		draw = s.salpeter55
	default:
		return nil, 0, unknownModel("primary mass", model)
	}

	masses := make(data.Vector, 0, size)
	total := 0.0
	multiplier := 1
	for len(masses) < size {
		candidates := draw(size * multiplier)
		total += candidates.Sum()

		kept := candidates.Filter(min, max)
		if len(kept) == 0 {
			switch {
			case s.retry.allows(size, multiplier*10):
				multiplier *= 10
				s.log.Debug("no primaries in mass window, oversampling",
					zap.Stringer("model", model),
					zap.Float64("min", min),
					zap.Float64("max", max),
					zap.Int("multiplier", multiplier))
			case len(masses) == 0:
				return nil, total, errors.Wrapf(ErrUnsatisfiableMassRange,
					"no %s primaries in [%g, %g] among %d draws", model, min, max, size*multiplier)
			}
		}
		masses = append(masses, kept...)
	}

	return masses, total, nil
}

func (s *Sampler) kroupa93(n int) data.Vector {
	u := data.NewRandomVector(n, s.r, sample.NewUnit())

	low := u.Where(func(x float64) bool { return x <= kroupaLowCut })
	mid := u.Where(func(x float64) bool { return x > kroupaLowCut && x < kroupaHighCut })
	high := u.Where(func(x float64) bool { return x >= kroupaHighCut })

	for _, seg := range []struct {
		idx []int
		law *sample.PowerLaw
	}{
		{low, kroupaLow},
		{mid, kroupaMid},
		{high, kroupaHigh},
	} {
		for i, m := range seg.law.Fill(s.r, len(seg.idx)) {
			u[seg.idx[i]] = m
		}
	}

	return u
}

func (s *Sampler) salpeter55(n int) data.Vector {
	return data.NewVector(salpeter.Fill(s.r, n))
}
