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

package common

import (
	"cmp"
	"math"
	"strings"
)

var Int64Comparator = func(reverseOrder bool) CompareFn[int64] {
	return func(a, b int64) int {
		if reverseOrder {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	}
}

var StringComparator = func(reverseOrder bool) CompareFn[string] {
	return func(a, b string) int {
		if reverseOrder {
			return strings.Compare(b, a)
		}
		return strings.Compare(a, b)
	}
}

// Float64Comparator orders floats by the IEEE-754 total order, the same
// order produced by ToOrderedUint64. Negative NaNs sort first, positive NaNs
// last, and -0 sorts before +0.
var Float64Comparator = func(reverseOrder bool) CompareFn[float64] {
	return func(a, b float64) int {
		if reverseOrder {
			a, b = b, a
		}
		return TotalCompare(a, b)
	}
}

// TotalCompare compares a and b by the IEEE-754 total order.
func TotalCompare(a, b float64) int {
	return cmp.Compare(ToOrderedUint64(a), ToOrderedUint64(b))
}

// Quantify returns the QuantifyFn of a numeric type.
func Quantify[N Number]() QuantifyFn[N] {
	return func(n N) float64 {
		return float64(n)
	}
}

// IsFinite reports whether f is neither infinite nor NaN.
func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
