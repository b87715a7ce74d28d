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
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxFunc(t *testing.T) {
	arr := []int{5, 2, 8, 2, 9, 1, 7, 9}
	compare := cmp.Compare[int]

	assert.Equal(t, 1, arr[MinFunc(arr, 0, len(arr), compare)])
	assert.Equal(t, 9, arr[MaxFunc(arr, 0, len(arr), compare)])
	assert.Equal(t, 2, arr[MinFunc(arr, 0, 4, compare)])
	assert.Equal(t, 8, arr[MaxFunc(arr, 0, 4, compare)])
	assert.Equal(t, 7, arr[MinFunc(arr, 6, 7, compare)])

	m1, m2 := Min2Func(arr, 0, len(arr), compare)
	assert.Equal(t, 1, arr[m1])
	assert.Equal(t, 2, arr[m2])

	m1, m2 = Max2Func(arr, 0, len(arr), compare)
	assert.Equal(t, 9, arr[m1])
	assert.Equal(t, 9, arr[m2])
	assert.NotEqual(t, m1, m2)

	m1, m2 = Max2Func(arr, 0, 3, compare)
	assert.Equal(t, 5, arr[m1])
	assert.Equal(t, 8, arr[m2])
}

func TestMin2FuncTwoItems(t *testing.T) {
	testCases := []struct {
		name     string
		arr      []string
		expected [2]string
	}{
		{name: "ascending", arr: []string{"a", "b"}, expected: [2]string{"a", "b"}},
		{name: "descending", arr: []string{"b", "a"}, expected: [2]string{"a", "b"}},
		{name: "equal", arr: []string{"a", "a"}, expected: [2]string{"a", "a"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m1, m2 := Min2Func(tc.arr, 0, 2, cmp.Compare[string])
			assert.Equal(t, tc.expected, [2]string{tc.arr[m1], tc.arr[m2]})
			assert.NotEqual(t, m1, m2)
		})
	}
}

func TestMinMaxValues(t *testing.T) {
	arr := []uint64{40, 10, 30, 10, 50, 20}

	assert.Equal(t, uint64(10), Min(arr, 0, len(arr)))
	assert.Equal(t, uint64(50), Max(arr, 0, len(arr)))
	assert.Equal(t, uint64(40), Max(arr, 0, 2))

	m1, m2 := Min2(arr, 0, len(arr))
	assert.Equal(t, uint64(10), m1)
	assert.Equal(t, uint64(10), m2)

	m1, m2 = Max2(arr, 0, len(arr))
	assert.Equal(t, uint64(40), m1)
	assert.Equal(t, uint64(50), m2)

	m1, m2 = Min2(arr, 4, 6)
	assert.Equal(t, uint64(20), m1)
	assert.Equal(t, uint64(50), m2)

	m1, m2 = Max2(arr, 1, 3)
	assert.Equal(t, uint64(10), m1)
	assert.Equal(t, uint64(30), m2)
}
