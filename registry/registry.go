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

// Package registry exposes population samplers under a name, so that
// drivers can select one from configuration.
package registry

import (
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/popsynth/binpop/table"
	"go.uber.org/zap"
)

// ErrUnknownSampler is returned by Get for names nobody registered.
var ErrUnknownSampler = errors.New("unknown sampler")

// Func draws one population from r. params is the parameter struct
// of the particular sampler.
type Func func(r *rand.Rand, log *zap.Logger, params any) (*table.Population, error)

// Entry describes a registered sampler.
type Entry struct {
	Name string
	// Usage lists the parameters the sampler expects, in order.
	Usage  string
	Sample Func
}

var (
	mu       sync.RWMutex
	samplers = make(map[string]Entry)
)

// Register makes a sampler available under name.
// It panics if name is empty, f is nil or name is already taken.
func Register(name string, f Func, usage string) {
	mu.Lock()
	defer mu.Unlock()

	if name == "" || f == nil {
		panic("registry: Register needs a name and a sampler")
	}
	if _, dup := samplers[name]; dup {
		panic("registry: Register called twice for sampler " + name)
	}
	samplers[name] = Entry{Name: name, Usage: usage, Sample: f}
}

// Get returns the sampler registered under name.
func Get(name string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := samplers[name]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownSampler, "%q", name)
	}
	return e, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(samplers))
	for name := range samplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
