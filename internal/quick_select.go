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

import "cmp"

const (
	// DefaultNintherThreshold is the range length above which pivots are
	// estimated from nine samples instead of three.
	DefaultNintherThreshold = 100

	minNintherLength = 9
)

// QuickSelect returns the item of arr[lo:hi] that would sit at position need
// if the range were sorted. The range is reordered in place.
func QuickSelect[T cmp.Ordered](arr []T, lo int, hi int, need int) T {
	return arr[QuickSelectFunc(arr, lo, hi, need, DefaultNintherThreshold, cmp.Compare[T])]
}

// QuickSelectPair returns the items of arr[lo:hi] at sorted positions need
// and need+1.
func QuickSelectPair[T cmp.Ordered](arr []T, lo int, hi int, need int) (T, T) {
	i, j := QuickSelectPairFunc(arr, lo, hi, need, DefaultNintherThreshold, cmp.Compare[T])
	return arr[i], arr[j]
}

// QuickSelectFunc finds the item at sorted position need within arr[lo:hi]
// and returns its position. It partitions three ways around a sampled pivot,
// narrowing the range until need lands in the equals region or next to a
// region boundary, where a single extremum scan finishes the job.
// The range is reordered in place; the returned position stays valid until
// arr is modified again. Requires lo <= need < hi.
func QuickSelectFunc[T any](arr []T, lo int, hi int, need int, threshold int, compare func(a, b T) int) int {
	for {
		if hi-lo == 1 {
			return lo
		}
		if hi-lo == 3 && need == lo+1 {
			return midOf3Func(arr, lo, lo+1, lo+2, compare)
		}
		p := choosePivotFunc(arr, lo, hi, need, threshold, compare)
		arr[lo], arr[p] = arr[p], arr[lo]
		eq, gt := PartitionFunc(arr, lo, hi, compare)
		switch {
		case need+2 < eq:
			hi = eq
		case need+2 == eq:
			second, _ := Max2Func(arr, lo, eq, compare)
			return second
		case need+1 == eq:
			return MaxFunc(arr, lo, eq, compare)
		case need < gt:
			return need
		case need == gt:
			return MinFunc(arr, gt, hi, compare)
		case need == gt+1:
			_, second := Min2Func(arr, gt, hi, compare)
			return second
		default:
			lo = gt
		}
	}
}

// QuickSelectPairFunc finds the items at sorted positions need and need+1
// within arr[lo:hi] and returns their positions in ascending order.
// Requires lo <= need and need+1 < hi.
func QuickSelectPairFunc[T any](arr []T, lo int, hi int, need int, threshold int, compare func(a, b T) int) (int, int) {
	for {
		if hi-lo == 2 {
			if compare(arr[lo+1], arr[lo]) < 0 {
				return lo + 1, lo
			}
			return lo, lo + 1
		}
		p := choosePivotFunc(arr, lo, hi, need, threshold, compare)
		arr[lo], arr[p] = arr[p], arr[lo]
		eq, gt := PartitionFunc(arr, lo, hi, compare)
		switch {
		case need+2 < eq:
			hi = eq
		case need+2 == eq:
			return Max2Func(arr, lo, eq, compare)
		case need+1 == eq:
			return MaxFunc(arr, lo, eq, compare), eq
		case need+1 < gt:
			return need, need + 1
		case need+1 == gt:
			return need, MinFunc(arr, gt, hi, compare)
		case need == gt:
			return Min2Func(arr, gt, hi, compare)
		default:
			lo = gt
		}
	}
}
