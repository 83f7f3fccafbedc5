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

	"go.uber.org/zap"
)

// RetryPolicy bounds the oversampling of primary masses.
type RetryPolicy struct {
	// MaxMultiplier is the largest oversampling factor. Once a round at
	// this factor finds nothing in an empty window, the window is
	// declared unsatisfiable.
	MaxMultiplier int
	// MaxDraws caps the number of candidates drawn in a single round.
	MaxDraws int
}

// allows reports whether rounds of size*multiplier draws are permitted.
func (p RetryPolicy) allows(size, multiplier int) bool {
	return multiplier <= p.MaxMultiplier && size*multiplier <= p.MaxDraws
}

// DefaultRetryPolicy allows four escalations of the oversampling
// factor (up to 10^4).
var DefaultRetryPolicy = RetryPolicy{
	MaxMultiplier: 10000,
	MaxDraws:      50000000,
}

// Sampler draws the pieces of a binary population from one stream.
type Sampler struct {
	r     *rand.Rand
	retry RetryPolicy
	log   *zap.Logger
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Sampler) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRetryPolicy replaces DefaultRetryPolicy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(s *Sampler) {
		s.retry = p
	}
}

// New returns a Sampler drawing from r.
func New(r *rand.Rand, opts ...Option) *Sampler {
	s := &Sampler{
		r:     r,
		retry: DefaultRetryPolicy,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
