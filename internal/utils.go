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

import "math"

// HasNaN reports whether any item of arr is a NaN.
func HasNaN(arr []float64) bool {
	for _, f := range arr {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

// Midpoint returns the average of a and b without overflowing for large
// operands of the same sign.
func Midpoint(a, b float64) float64 {
	if a == b {
		return a
	}
	return a/2 + b/2
}

// Iota returns the positions 0..n-1, used to select over positions of a
// read-only slice instead of over its items.
func Iota(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
