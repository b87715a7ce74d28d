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

// Reverse flips the arguments of compare, turning minimum searches into maximum searches.
func Reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// MinFunc returns the position of the smallest item in arr[lo:hi].
// The range must not be empty.
func MinFunc[T any](arr []T, lo int, hi int, compare func(a, b T) int) int {
	m := lo
	for i := lo + 1; i < hi; i++ {
		if compare(arr[i], arr[m]) < 0 {
			m = i
		}
	}
	return m
}

// MaxFunc returns the position of the largest item in arr[lo:hi].
func MaxFunc[T any](arr []T, lo int, hi int, compare func(a, b T) int) int {
	return MinFunc(arr, lo, hi, Reverse(compare))
}

// Min2Func returns the positions of the smallest and the second smallest items
// in arr[lo:hi], in that order. The range must hold at least two items.
func Min2Func[T any](arr []T, lo int, hi int, compare func(a, b T) int) (int, int) {
	m1, m2 := lo, lo+1
	if compare(arr[m2], arr[m1]) < 0 {
		m1, m2 = m2, m1
	}
	for i := lo + 2; i < hi; i++ {
		if compare(arr[i], arr[m1]) < 0 {
			m2 = m1
			m1 = i
		} else if compare(arr[i], arr[m2]) < 0 {
			m2 = i
		}
	}
	return m1, m2
}

// Max2Func returns the positions of the second largest and the largest items
// in arr[lo:hi], so that the pair reads in ascending order.
func Max2Func[T any](arr []T, lo int, hi int, compare func(a, b T) int) (int, int) {
	m1, m2 := Min2Func(arr, lo, hi, Reverse(compare))
	return m2, m1
}

// Min returns the smallest value in arr[lo:hi].
func Min[T cmp.Ordered](arr []T, lo int, hi int) T {
	m := arr[lo]
	for _, v := range arr[lo+1 : hi] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value in arr[lo:hi].
func Max[T cmp.Ordered](arr []T, lo int, hi int) T {
	m := arr[lo]
	for _, v := range arr[lo+1 : hi] {
		if v > m {
			m = v
		}
	}
	return m
}

// Min2 returns the two smallest values in arr[lo:hi] in ascending order.
func Min2[T cmp.Ordered](arr []T, lo int, hi int) (T, T) {
	m1, m2 := arr[lo], arr[lo+1]
	if m2 < m1 {
		m1, m2 = m2, m1
	}
	for _, v := range arr[lo+2 : hi] {
		if v < m1 {
			m2 = m1
			m1 = v
		} else if v < m2 {
			m2 = v
		}
	}
	return m1, m2
}

// Max2 returns the two largest values in arr[lo:hi] in ascending order.
func Max2[T cmp.Ordered](arr []T, lo int, hi int) (T, T) {
	m1, m2 := arr[lo], arr[lo+1]
	if m1 > m2 {
		m1, m2 = m2, m1
	}
	for _, v := range arr[lo+2 : hi] {
		if v > m2 {
			m1 = m2
			m2 = v
		} else if v > m1 {
			m1 = v
		}
	}
	return m1, m2
}
