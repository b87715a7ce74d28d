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

// Histogram counts the occurrences of every possible value of T in arr.
// The result has 256 buckets for uint8 and 65536 for uint16.
func Histogram[T ~uint8 | ~uint16](arr []T) []int {
	histogram := make([]int, int(^T(0))+1)
	for _, v := range arr {
		histogram[v]++
	}
	return histogram
}

// HistogramSelect returns the value at sorted position need in arr by walking
// the cumulative counts of a full histogram. arr is not modified.
// Requires 0 <= need < len(arr).
func HistogramSelect[T ~uint8 | ~uint16](arr []T, need int) T {
	cumulative := 0
	for i, count := range Histogram(arr) {
		cumulative += count
		if cumulative > need {
			return T(i)
		}
	}
	return ^T(0)
}

// HistogramSelectPair returns the values at sorted positions need and need+1.
// When both positions fall into one bucket its value is returned twice.
// Requires 0 <= need and need+1 < len(arr).
func HistogramSelectPair[T ~uint8 | ~uint16](arr []T, need int) (T, T) {
	cumulative := 0
	first, found := ^T(0), false
	for i, count := range Histogram(arr) {
		if count == 0 {
			continue
		}
		if found {
			// the upper value is the next occupied bucket
			return first, T(i)
		}
		cumulative += count
		if cumulative > need+1 {
			return T(i), T(i)
		}
		if cumulative == need+1 {
			first, found = T(i), true
		}
	}
	return first, ^T(0)
}
