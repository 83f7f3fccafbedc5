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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface
// along with different implementations of this interface.
// Its primary purpose is support drawing float64 values
// from the distributions used to set up initial stellar populations:
// uniform ranges and truncated power laws.
//
// Samplers never hold a random source of their own. Every draw takes
// an explicit *rand.Rand, so that independent populations can be given
// independent streams. KeyStream provides such a stream, deterministic
// for a given key.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill data.Vector structures with
// the desired random data.
package sample
