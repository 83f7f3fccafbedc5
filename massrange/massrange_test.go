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

package massrange_test

import (
	"testing"

	"github.com/popsynth/binpop/internal"
	"github.com/popsynth/binpop/massrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		kstar1 []int
		kstar2 []int
		want   massrange.Bounds
	}{
		{
			name:   "any star",
			kstar1: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
			kstar2: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
			want:   massrange.Bounds{PrimaryMin: 0.08, PrimaryMax: 150, SecondaryMin: 0.08, SecondaryMax: 150},
		},
		{
			name:   "double white dwarf",
			kstar1: []int{10, 11, 12},
			kstar2: []int{10, 11, 12},
			want:   massrange.Bounds{PrimaryMin: 0.5, PrimaryMax: 150, SecondaryMin: 0.5, SecondaryMax: 150},
		},
		{
			name:   "black hole with anything",
			kstar1: []int{14},
			kstar2: []int{0, 1},
			want:   massrange.Bounds{PrimaryMin: 15, PrimaryMax: 150, SecondaryMin: 0.08, SecondaryMax: 150},
		},
		{
			name:   "secondary floor lifts primary",
			kstar1: []int{10},
			kstar2: []int{13},
			want:   massrange.Bounds{PrimaryMin: 6, PrimaryMax: 150, SecondaryMin: 6, SecondaryMax: 150},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := massrange.Select(test.kstar1, test.kstar2)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestSelect_Invalid(t *testing.T) {
	_, err := massrange.Select(nil, []int{1})
	assert.ErrorIs(t, err, internal.MalformedInput)

	_, err = massrange.Select([]int{1}, []int{16})
	assert.ErrorIs(t, err, internal.MalformedInput)

	_, err = massrange.Select([]int{-1}, []int{1})
	assert.ErrorIs(t, err, internal.MalformedInput)
}
