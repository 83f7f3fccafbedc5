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
	"gonum.org/v1/gonum/stat"
)

func TestUniformRange(t *testing.T) {
	r := sample.NewSeededStream(5, t.Name())
	u := sample.NewUniformRange(0.001, 1)

	vec := make([]float64, 10000)
	for i := range vec {
		vec[i] = u.Sample(r)
		assert.GreaterOrEqual(t, vec[i], 0.001)
		assert.Less(t, vec[i], 1.0)
	}
	me, v := stat.MeanVariance(vec, nil)
	// mean should be around 0.5005 and variance around 0.0832
	assert.True(t, me > 0.49, "mean value of the uniform distribution is too small")
	assert.True(t, me < 0.51, "mean value of the uniform distribution is too big")
	assert.True(t, v > 0.078, "variance of the uniform distribution is too small")
	assert.True(t, v < 0.088, "variance of the uniform distribution is too big")
}

func TestUnit(t *testing.T) {
	r := sample.NewSeededStream(6, t.Name())
	u := sample.NewUnit()
	for i := 0; i < 1000; i++ {
		x := u.Sample(r)
		assert.True(t, x >= 0 && x < 1)
	}
}
