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

// Package independent draws initial conditions for binary populations
// in which every orbital parameter is sampled from its own distribution.
//
// The population is built in a fixed order, since later quantities
// depend on earlier ones: primary masses, the split into binaries and
// single stars, secondary masses, eccentricities, orbital periods (which
// need both masses and the eccentricity), evolution times and
// metallicities, and finally the initial stellar types.
//
// A Sampler owns one random stream and is not safe for concurrent use.
// Populations that should be drawn in parallel need a Sampler each,
// built on independent streams (see sample.NewSeededStream).
//
// The sampler registers itself in package registry under Name.
package independent
