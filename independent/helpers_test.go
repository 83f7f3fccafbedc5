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
	"math/rand/v2"
	"testing"

	"github.com/popsynth/binpop/sample"
)

// fixedSource always yields the same value, so rand.Float64
// returns float64(f) / 2^53.
type fixedSource uint64

func (f fixedSource) Uint64() uint64 { return uint64(f) }

// halfSource makes rand.Float64 return exactly 0.5.
const halfSource = fixedSource(1 << 52)

func newStream(t *testing.T) *rand.Rand {
	return sample.NewSeededStream(1, t.Name())
}
