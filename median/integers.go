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

package median

import (
	"golang.org/x/exp/constraints"

	"github.com/apache/datasketches-medians-go/internal"
)

// Uint8 returns the median(s) of data from a 256 bucket histogram.
// data is not modified.
func Uint8(data []uint8) (Medians[uint8], error) {
	return histogramMedians(data, "Uint8")
}

// Uint16 returns the median(s) of data from a 65536 bucket histogram.
// data is not modified.
func Uint16(data []uint16) (Medians[uint16], error) {
	return histogramMedians(data, "Uint16")
}

// Uint32 returns the median(s) of data by binary radix selection.
// data is reordered in place.
func Uint32(data []uint32) (Medians[uint32], error) {
	return radixMedians(data, "Uint32")
}

// Uint64 returns the median(s) of data by binary radix selection.
// data is reordered in place.
func Uint64(data []uint64) (Medians[uint64], error) {
	return radixMedians(data, "Uint64")
}

// RankUint64 returns the k-th smallest item of data by binary radix
// selection. data is reordered in place.
func RankUint64(data []uint64, k int) (uint64, error) {
	if len(data) == 0 {
		return 0, errEmpty("RankUint64")
	}
	if k < 0 || k >= len(data) {
		return 0, errRank("RankUint64", k, len(data))
	}
	return internal.RadixSelect(data, k), nil
}

func histogramMedians[T uint8 | uint16](data []T, op string) (Medians[T], error) {
	n := len(data)
	if n == 0 {
		return Medians[T]{}, errEmpty(op)
	}
	if n&1 == 1 {
		return Odd(internal.HistogramSelect(data, n/2)), nil
	}
	m1, m2 := internal.HistogramSelectPair(data, n/2-1)
	return Even(m1, m2), nil
}

func radixMedians[T constraints.Unsigned](data []T, op string) (Medians[T], error) {
	n := len(data)
	switch n {
	case 0:
		return Medians[T]{}, errEmpty(op)
	case 1:
		return Odd(data[0]), nil
	case 2:
		return Even(min(data[0], data[1]), max(data[0], data[1])), nil
	}
	if n&1 == 1 {
		return Odd(internal.RadixSelect(data, n/2)), nil
	}
	m1, m2 := internal.RadixSelectPair(data, n/2-1)
	return Even(m1, m2), nil
}
