/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasNaN(t *testing.T) {
	assert.False(t, HasNaN(nil))
	assert.False(t, HasNaN([]float64{1, math.Inf(1), math.Inf(-1)}))
	assert.True(t, HasNaN([]float64{1, math.NaN(), 3}))
}

func TestMidpoint(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{name: "integers", a: 8, b: 9, expected: 8.5},
		{name: "equal", a: 3, b: 3, expected: 3},
		{name: "opposite signs", a: -2, b: 4, expected: 1},
		{name: "opposite extremes", a: -math.MaxFloat64, b: math.MaxFloat64, expected: 0},
		{name: "infinities", a: math.Inf(1), b: math.Inf(1), expected: math.Inf(1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Midpoint(tc.a, tc.b))
		})
	}
	assert.False(t, math.IsInf(Midpoint(math.MaxFloat64, math.MaxFloat64/2), 0))
}

func TestIota(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, Iota(4))
	assert.Empty(t, Iota(0))
}

func TestBoolToInt(t *testing.T) {
	assert.Equal(t, 1, BoolToInt(true))
	assert.Equal(t, 0, BoolToInt(false))
}
