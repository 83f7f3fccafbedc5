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

package independent_test

import (
	"math"
	"testing"

	"github.com/popsynth/binpop/data"
	"github.com/popsynth/binpop/independent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSFH(t *testing.T) {
	var tests = []struct {
		name   string
		model  independent.SFHModel
		age    float64
		lo, hi float64
	}{
		{name: "const", model: independent.Const, age: 10000, lo: 0, hi: 10000},
		{name: "burst", model: independent.Burst, age: 10000, lo: 9000, hi: 10000},
		{name: "young burst", model: independent.Burst, age: 400, lo: 0, hi: 400},
		{name: "delta burst", model: independent.DeltaBurst, age: 13700, lo: 13700, hi: 13700},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := independent.New(newStream(t))
			tphysf, met, err := s.SampleSFH(test.model, test.age, 0.02, 1000)
			require.NoError(t, err)

			assert.Len(t, tphysf, 1000)
			assert.NoError(t, tphysf.CheckBound(test.lo, test.hi))
			assert.Equal(t, data.NewConstantVector(1000, 0.02), met)
		})
	}
}

func TestSampleSFH_DeltaBurstIsExact(t *testing.T) {
	s := independent.New(newStream(t))
	tphysf, met, err := s.SampleSFH(independent.DeltaBurst, 5000, 0.014, 3)
	require.NoError(t, err)

	assert.Equal(t, data.Vector{5000, 5000, 5000}, tphysf)
	assert.Equal(t, data.Vector{0.014, 0.014, 0.014}, met)
}

func TestSampleSFH_Errors(t *testing.T) {
	s := independent.New(newStream(t))

	_, _, err := s.SampleSFH(independent.SFHModel(0), 100, 0.02, 3)
	assert.ErrorIs(t, err, independent.ErrUnknownModel)
	_, _, err = s.SampleSFH(independent.Const, -1, 0.02, 3)
	assert.ErrorIs(t, err, independent.ErrInvalidInput)
	_, _, err = s.SampleSFH(independent.Const, math.NaN(), 0.02, 3)
	assert.ErrorIs(t, err, independent.ErrInvalidInput)
	_, _, err = s.SampleSFH(independent.Const, 100, 0.02, -3)
	assert.ErrorIs(t, err, independent.ErrInvalidInput)
}
