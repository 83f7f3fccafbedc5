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

// Package population draws several independent populations in parallel.
//
// Population i is drawn from the stream sample.NewSeededStream(seed,
// "population/i"), so the results only depend on the seed and never on
// how the work is scheduled.
package population

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/popsynth/binpop/registry"
	"github.com/popsynth/binpop/sample"
	"github.com/popsynth/binpop/table"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Request describes a batch of populations.
type Request struct {
	// Sampler is the registry name of the sampler to use.
	Sampler string
	// Params is handed to the sampler unchanged.
	Params any
	// Count is the number of populations.
	Count int
	Seed  int64
	// Workers limits the populations drawn at the same time.
	// Zero or less means one worker per population.
	Workers int
}

// StreamLabel returns the label of the stream population i is drawn from.
func StreamLabel(i int) string {
	return fmt.Sprintf("population/%d", i)
}

// Run draws req.Count populations and returns them in index order.
// The first failing population cancels the others.
func Run(ctx context.Context, req Request, log *zap.Logger) ([]*table.Population, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if req.Count <= 0 {
		return nil, errors.Errorf("population count must be positive, got %d", req.Count)
	}
	entry, err := registry.Get(req.Sampler)
	if err != nil {
		return nil, err
	}

	pops := make([]*table.Population, req.Count)
	g, ctx := errgroup.WithContext(ctx)
	if req.Workers > 0 {
		g.SetLimit(req.Workers)
	}

	for i := 0; i < req.Count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plog := log.With(zap.String("sampler", entry.Name), zap.Int("population", i))
			r := sample.NewSeededStream(req.Seed, StreamLabel(i))

			pop, err := entry.Sample(r, plog, req.Params)
			if err != nil {
				return errors.Wrapf(err, "population %d", i)
			}
			plog.Info("population drawn",
				zap.Int("binaries", pop.Binaries.Len()),
				zap.Float64("sampledMass", pop.SampledMass))
			pops[i] = pop
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pops, nil
}
