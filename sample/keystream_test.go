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

package sample_test

import (
	"testing"

	"github.com/popsynth/binpop/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStream_Deterministic(t *testing.T) {
	key := sample.DeriveKey(42, "population/0")
	s1 := sample.NewKeyStream(key)
	s2 := sample.NewKeyStream(key)

	// cross several salsa20 blocks
	for i := 0; i < 200; i++ {
		assert.Equal(t, s1.Uint64(), s2.Uint64(), "streams with equal keys should agree")
	}
}

func TestKeyStream_LabelsAreIndependent(t *testing.T) {
	r1 := sample.NewSeededStream(42, "population/0")
	r2 := sample.NewSeededStream(42, "population/1")
	r3 := sample.NewSeededStream(43, "population/0")

	same12, same13 := 0, 0
	for i := 0; i < 100; i++ {
		a, b, c := r1.Uint64(), r2.Uint64(), r3.Uint64()
		if a == b {
			same12++
		}
		if a == c {
			same13++
		}
	}
	assert.Zero(t, same12)
	assert.Zero(t, same13)
}

func TestKeyStream_KeyIsCopied(t *testing.T) {
	key := sample.DeriveKey(7, "x")
	s := sample.NewKeyStream(key)
	key[0] ^= 0xff

	s2 := sample.NewKeyStream(sample.DeriveKey(7, "x"))
	assert.Equal(t, s2.Uint64(), s.Uint64())
}

func TestNewSeed(t *testing.T) {
	a, err := sample.NewSeed()
	require.NoError(t, err)
	b, err := sample.NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
