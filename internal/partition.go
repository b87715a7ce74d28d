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

import "golang.org/x/exp/constraints"

// PartitionFunc rearranges arr[lo:hi] into items less than, equal to and
// greater than the pivot, which must already sit at arr[lo]. It returns
// (eqStart, gtStart) such that arr[lo:eqStart] < pivot,
// arr[eqStart:gtStart] == pivot and arr[gtStart:hi] > pivot. The equals
// region always holds the pivot itself. The range must not be empty.
func PartitionFunc[T any](arr []T, lo int, hi int, compare func(a, b T) int) (int, int) {
	pivot := arr[lo]
	lt := lo
	gt := lo + 1
	for i := lo + 1; i < hi; i++ {
		c := compare(arr[i], pivot)
		if c > 0 {
			continue
		}
		arr[i], arr[gt] = arr[gt], arr[i]
		if c < 0 {
			arr[gt], arr[lt] = arr[lt], arr[gt]
			lt++
		}
		gt++
	}
	return lt, gt
}

// PartitionBits splits arr[lo:hi] by the bits selected by mask. Items with
// no masked bit set are moved to the front. It returns the start of the items
// with a masked bit set. No value comparisons are made.
func PartitionBits[T constraints.Unsigned](arr []T, lo int, hi int, mask T) int {
	gt := lo
	for gt < hi && arr[gt]&mask == 0 {
		gt++
	}
	for i := gt + 1; i < hi; i++ {
		if arr[i]&mask == 0 {
			arr[gt], arr[i] = arr[i], arr[gt]
			gt++
		}
	}
	return gt
}
