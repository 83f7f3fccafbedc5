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
	"testing"

	"github.com/popsynth/binpop/independent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSampleEcc_Thermal(t *testing.T) {
	s := independent.New(newStream(t))
	ecc, err := s.SampleEcc(independent.Thermal, 10000)
	require.NoError(t, err)
	require.Len(t, ecc, 10000)
	assert.NoError(t, ecc.CheckBound(0, 1))

	// e^2 is uniform on [0, 1): mean 1/2, variance 1/12
	squared := ecc.Apply(func(e float64) float64 { return e * e })
	me, v := stat.MeanVariance(squared, nil)
	assert.True(t, me > 0.49, "mean of e^2 is too small")
	assert.True(t, me < 0.51, "mean of e^2 is too big")
	assert.True(t, v > 0.078, "variance of e^2 is too small")
	assert.True(t, v < 0.088, "variance of e^2 is too big")
}

func TestSampleEcc_Uniform(t *testing.T) {
	s := independent.New(newStream(t))
	ecc, err := s.SampleEcc(independent.Uniform, 10000)
	require.NoError(t, err)
	assert.NoError(t, ecc.CheckBound(0, 1))
	assert.InDelta(t, 0.5, stat.Mean(ecc, nil), 0.01)
}

func TestSampleEcc_Errors(t *testing.T) {
	s := independent.New(newStream(t))

	ecc, err := s.SampleEcc(independent.Thermal, 0)
	require.NoError(t, err)
	assert.Empty(t, ecc)

	_, err = s.SampleEcc(independent.EccModel(7), 10)
	assert.ErrorIs(t, err, independent.ErrUnknownModel)
	_, err = s.SampleEcc(independent.Uniform, -1)
	assert.ErrorIs(t, err, independent.ErrInvalidInput)
}
