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

package population_test

import (
	"context"
	"testing"

	"github.com/popsynth/binpop/independent"
	"github.com/popsynth/binpop/population"
	"github.com/popsynth/binpop/registry"
	"github.com/popsynth/binpop/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func params() independent.Params {
	return independent.Params{
		FinalKstar1:  []int{1},
		FinalKstar2:  []int{1},
		PrimaryModel: independent.Kroupa93,
		EccModel:     independent.Thermal,
		SFHModel:     independent.Const,
		ComponentAge: 10000,
		Metallicity:  0.02,
		Size:         200,
	}
}

func TestRun(t *testing.T) {
	req := population.Request{
		Sampler: independent.Name,
		Params:  params(),
		Count:   6,
		Seed:    11,
		Workers: 2,
	}
	pops, err := population.Run(context.Background(), req, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, pops, 6)

	for i, pop := range pops {
		want, err := independent.Independent(sample.NewSeededStream(11, population.StreamLabel(i)), params())
		require.NoError(t, err)
		assert.Equal(t, want, pop, "population %d should only depend on the seed and its index", i)
	}
	assert.NotEqual(t, pops[0].Binaries.Mass1, pops[1].Binaries.Mass1)
}

func TestRun_SchedulingDoesNotMatter(t *testing.T) {
	req := population.Request{Sampler: independent.Name, Params: params(), Count: 4, Seed: 3, Workers: 1}
	serial, err := population.Run(context.Background(), req, nil)
	require.NoError(t, err)

	req.Workers = 0
	parallel, err := population.Run(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestRun_Errors(t *testing.T) {
	_, err := population.Run(context.Background(), population.Request{Sampler: "nope", Count: 1}, nil)
	assert.ErrorIs(t, err, registry.ErrUnknownSampler)

	_, err = population.Run(context.Background(), population.Request{Sampler: independent.Name, Count: 0}, nil)
	assert.Error(t, err)

	bad := params()
	bad.EccModel = 0
	_, err = population.Run(context.Background(),
		population.Request{Sampler: independent.Name, Params: bad, Count: 3, Workers: 1}, nil)
	assert.ErrorIs(t, err, independent.ErrUnknownModel)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := population.Run(ctx,
		population.Request{Sampler: independent.Name, Params: params(), Count: 3}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
