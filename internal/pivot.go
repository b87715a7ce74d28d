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

// midOf3Func returns whichever of the positions a, b and c holds the middle
// value, using at most three comparisons.
func midOf3Func[T any](arr []T, a int, b int, c int, compare func(a, b T) int) int {
	lo, hi := a, b
	if compare(arr[b], arr[a]) < 0 {
		lo, hi = b, a
	}
	if compare(arr[c], arr[lo]) <= 0 {
		return lo
	}
	if compare(arr[hi], arr[c]) <= 0 {
		return hi
	}
	return c
}

// nintherFunc estimates a pivot for arr[lo:hi] as the median of three
// medians of three. The triples are disjoint and each one spans the range;
// the middle member of each sits next to need. The range must hold at least
// nine items.
func nintherFunc[T any](arr []T, lo int, hi int, need int, compare func(a, b T) int) int {
	mid := min(max(need, lo+4), hi-5)
	p1 := midOf3Func(arr, lo, mid-1, hi-3, compare)
	p2 := midOf3Func(arr, lo+1, mid, hi-2, compare)
	p3 := midOf3Func(arr, lo+2, mid+1, hi-1, compare)
	return midOf3Func(arr, p1, p2, p3, compare)
}

// choosePivotFunc picks the pivot position for arr[lo:hi]. Ranges longer than
// threshold are sampled with the ninther, shorter ones with a single
// median of three touching the target rank.
func choosePivotFunc[T any](arr []T, lo int, hi int, need int, threshold int, compare func(a, b T) int) int {
	if hi-lo > threshold && hi-lo >= minNintherLength {
		return nintherFunc(arr, lo, hi, need, compare)
	}
	return midOf3Func(arr, lo, need, hi-1, compare)
}
