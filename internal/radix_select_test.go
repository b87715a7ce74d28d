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
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/datasketches-medians-go/random"
)

func TestRadixSelect(t *testing.T) {
	testCases := []struct {
		name     string
		arr      []uint64
		need     int
		expected uint64
	}{
		{name: "single", arr: []uint64{7}, need: 0, expected: 7},
		{name: "minimum", arr: []uint64{9, 3, 7, 1, 5}, need: 0, expected: 1},
		{name: "maximum", arr: []uint64{9, 3, 7, 1, 5}, need: 4, expected: 9},
		{name: "median", arr: []uint64{9, 3, 7, 1, 5}, need: 2, expected: 5},
		{name: "all equal", arr: []uint64{4, 4, 4, 4, 4}, need: 3, expected: 4},
		{name: "top bit", arr: []uint64{1 << 63, 1, 1<<63 | 1, 2, 1 << 62}, need: 3, expected: 1 << 63},
		{name: "max values", arr: []uint64{^uint64(0), ^uint64(0) - 1, 0}, need: 1, expected: ^uint64(0) - 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := RadixSelect(slices.Clone(tc.arr), tc.need)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestRadixSelectPair(t *testing.T) {
	arr := []uint64{16, 1, 15, 2, 14, 3, 13, 4, 12, 5, 11, 6, 10, 7, 9, 8}
	m1, m2 := RadixSelectPair(arr, len(arr)/2-1)
	assert.Equal(t, uint64(8), m1)
	assert.Equal(t, uint64(9), m2)

	m1, m2 = RadixSelectPair([]uint64{5, 5}, 0)
	assert.Equal(t, uint64(5), m1)
	assert.Equal(t, uint64(5), m2)
}

func TestRadixSelectExhaustive(t *testing.T) {
	values := []uint8{0, 1, 0x80, 0xFF}
	for n := 1; n <= 6; n++ {
		total := 1
		for i := 0; i < n; i++ {
			total *= len(values)
		}
		for code := 0; code < total; code++ {
			arr := make([]uint8, n)
			c := code
			for i := range arr {
				arr[i] = values[c%len(values)]
				c /= len(values)
			}
			sorted := slices.Clone(arr)
			slices.Sort(sorted)
			for need := 0; need < n; need++ {
				require.Equal(t, sorted[need], RadixSelect(slices.Clone(arr), need), "arr %v need %d", arr, need)
			}
			for need := 0; need+1 < n; need++ {
				m1, m2 := RadixSelectPair(slices.Clone(arr), need)
				require.Equal(t, sorted[need], m1, "arr %v need %d", arr, need)
				require.Equal(t, sorted[need+1], m2, "arr %v need %d", arr, need+1)
			}
		}
	}
}

func TestRadixSelectRandom(t *testing.T) {
	gen := random.NewGenerator(random.WithLabel("TestRadixSelectRandom"))
	for _, n := range []int{2, 3, 17, 1000, 10000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			arr, err := gen.Uint64s(n)
			require.NoError(t, err)
			sorted := slices.Clone(arr)
			slices.Sort(sorted)
			for _, need := range []int{0, n / 2, n - 1} {
				assert.Equal(t, sorted[need], RadixSelect(slices.Clone(arr), need), "need %d", need)
			}
			if n >= 2 {
				m1, m2 := RadixSelectPair(slices.Clone(arr), n/2-1)
				assert.Equal(t, sorted[n/2-1], m1)
				assert.Equal(t, sorted[n/2], m2)
			}
		})
	}
}

func TestRadixSelectFewDistinct(t *testing.T) {
	gen := random.NewGenerator(random.WithLabel("TestRadixSelectFewDistinct"))
	ints, err := gen.Ints(5000, 0, 4)
	require.NoError(t, err)
	arr := make([]uint32, len(ints))
	for i, v := range ints {
		arr[i] = uint32(v) << 20
	}
	sorted := slices.Clone(arr)
	slices.Sort(sorted)
	for need := 0; need < len(arr); need += 499 {
		assert.Equal(t, sorted[need], RadixSelect(slices.Clone(arr), need), "need %d", need)
	}
}
