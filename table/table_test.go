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

package table_test

import (
	"testing"

	"github.com/popsynth/binpop/data"
	"github.com/popsynth/binpop/internal"
	"github.com/popsynth/binpop/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipleBinary(t *testing.T) {
	tb, err := table.MultipleBinary(
		data.Vector{10, 1},
		data.Vector{5, 0.5},
		data.Vector{100, 2000},
		data.Vector{0.1, 0.9},
		data.Vector{13700, 10},
		[]int{1, 1},
		[]int{1, 0},
		data.Vector{0.02, 0.02},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, table.Binary{
		Mass1: 1, Mass2: 0.5, Porb: 2000, Ecc: 0.9, TPhysf: 10,
		Kstar1: 1, Kstar2: 0, Metallicity: 0.02,
	}, tb.Row(1))
}

func TestMultipleBinary_LengthMismatch(t *testing.T) {
	_, err := table.MultipleBinary(
		data.Vector{10, 1},
		data.Vector{5},
		data.Vector{100, 2000},
		data.Vector{0.1, 0.9},
		data.Vector{13700, 10},
		[]int{1, 1},
		[]int{1, 0},
		data.Vector{0.02, 0.02},
	)
	assert.ErrorIs(t, err, internal.MalformedInput)
}

func TestMultipleBinary_Empty(t *testing.T) {
	tb, err := table.MultipleBinary(nil, nil, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, tb.Len())
}
