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
	"fmt"
	"slices"

	"github.com/apache/datasketches-medians-go/common"
	"github.com/apache/datasketches-medians-go/internal"
)

// Float64Checked returns the median of data, averaging the central values
// when the length is even. It returns common.ErrNaN when data holds a NaN.
// data is not modified.
func Float64Checked(data []float64, opts ...Option) (float64, error) {
	if len(data) == 0 {
		return 0, errEmpty("Float64Checked")
	}
	if internal.HasNaN(data) {
		return 0, fmt.Errorf("%w: Float64Checked: NaN in input", common.ErrNaN)
	}
	return Float64Unchecked(data, opts...)
}

// Float64Unchecked returns the median of data like Float64Checked but
// accepts NaNs, which take part in the IEEE-754 total order: positive NaNs
// sort above +Inf, negative NaNs below -Inf. Only an empty input fails.
// data is not modified.
func Float64Unchecked(data []float64, opts ...Option) (float64, error) {
	m, err := Float64s(data, opts...)
	if err != nil {
		return 0, err
	}
	return Mean(m, func(f float64) float64 { return f }), nil
}

// Float64s returns the central value(s) of data under the IEEE-754 total
// order. data is not modified.
func Float64s(data []float64, opts ...Option) (Medians[float64], error) {
	n := len(data)
	switch n {
	case 0:
		return Medians[float64]{}, errEmpty("Float64s")
	case 1:
		return Odd(data[0]), nil
	case 2:
		if common.TotalCompare(data[1], data[0]) < 0 {
			return Even(data[1], data[0]), nil
		}
		return Even(data[0], data[1]), nil
	}
	o := newOptions(opts)
	if o.backend == BackendComparator {
		return SelectFunc(slices.Clone(data), common.TotalCompare, opts...)
	}
	us := common.ToOrderedUint64s(data)
	if n&1 == 1 {
		return Odd(common.FromOrderedUint64(internal.RadixSelect(us, n/2))), nil
	}
	u1, u2 := internal.RadixSelectPair(us, n/2-1)
	return Even(common.FromOrderedUint64(u1), common.FromOrderedUint64(u2)), nil
}

// RankFloat64 returns the k-th smallest item of data under the IEEE-754
// total order. data is not modified.
func RankFloat64(data []float64, k int, opts ...Option) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, errEmpty("RankFloat64")
	}
	if k < 0 || k >= n {
		return 0, errRank("RankFloat64", k, n)
	}
	o := newOptions(opts)
	if o.backend == BackendComparator {
		return RankFunc(slices.Clone(data), k, common.TotalCompare, opts...)
	}
	return common.FromOrderedUint64(internal.RadixSelect(common.ToOrderedUint64s(data), k)), nil
}
