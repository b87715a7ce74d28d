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

// Package median computes exact medians and order statistics without fully
// sorting the data.
//
// Entry points that take a mutable slice reorder it in place: the slice is
// borrowed for the duration of the call and handed back with the same items
// in a different order. Callers that need the original order must copy
// first. Entry points documented as leaving data untouched work on a copy
// or on positions into the data.
package median

import (
	"github.com/apache/datasketches-medians-go/common"
	"github.com/apache/datasketches-medians-go/internal"
)

// Medians holds the central value of an odd sized collection, or the two
// central values of an even sized one in ascending order.
type Medians[T any] struct {
	lower T
	upper T
	even  bool
}

// Odd returns the result for an odd sized collection.
func Odd[T any](m T) Medians[T] {
	return Medians[T]{lower: m, upper: m}
}

// Even returns the result for an even sized collection. m1 must not sort after m2.
func Even[T any](m1, m2 T) Medians[T] {
	return Medians[T]{lower: m1, upper: m2, even: true}
}

func (m Medians[T]) IsEven() bool {
	return m.even
}

// Len returns the number of central values: 1 or 2.
func (m Medians[T]) Len() int {
	return 1 + internal.BoolToInt(m.even)
}

// Lower returns the lower central value, or the median itself when odd.
func (m Medians[T]) Lower() T {
	return m.lower
}

// Upper returns the upper central value, or the median itself when odd.
func (m Medians[T]) Upper() T {
	return m.upper
}

// Values returns both central values. For an odd result the median is
// returned twice.
func (m Medians[T]) Values() (T, T) {
	return m.lower, m.upper
}

// Mean reduces m to a single float: the quantified median when odd, the
// average of the quantified central values when even.
func Mean[T any](m Medians[T], quantify common.QuantifyFn[T]) float64 {
	if !m.even {
		return quantify(m.lower)
	}
	return internal.Midpoint(quantify(m.lower), quantify(m.upper))
}
