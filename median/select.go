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
	"cmp"
	"fmt"

	"github.com/apache/datasketches-medians-go/common"
	"github.com/apache/datasketches-medians-go/internal"
)

func errEmpty(op string) error {
	return fmt.Errorf("%w: %s: zero length data", common.ErrSize, op)
}

func errRank(op string, k, n int) error {
	return fmt.Errorf("%w: %s: rank %d outside [0, %d)", common.ErrSize, op, k, n)
}

// SelectFunc returns the median(s) of data under compare, which must define
// a total order. data is reordered in place.
func SelectFunc[T any](data []T, compare common.CompareFn[T], opts ...Option) (Medians[T], error) {
	n := len(data)
	switch n {
	case 0:
		return Medians[T]{}, errEmpty("SelectFunc")
	case 1:
		return Odd(data[0]), nil
	case 2:
		if compare(data[1], data[0]) < 0 {
			return Even(data[1], data[0]), nil
		}
		return Even(data[0], data[1]), nil
	}
	o := newOptions(opts)
	if n&1 == 1 {
		return Odd(data[internal.QuickSelectFunc(data, 0, n, n/2, o.nintherThreshold, compare)]), nil
	}
	i, j := internal.QuickSelectPairFunc(data, 0, n, n/2-1, o.nintherThreshold, compare)
	return Even(data[i], data[j]), nil
}

// Select returns the median(s) of data in its natural order. data is
// reordered in place. NaNs, if any, sort before every other float.
func Select[T cmp.Ordered](data []T, opts ...Option) (Medians[T], error) {
	return SelectFunc(data, cmp.Compare[T], opts...)
}

// SelectIndexFunc returns the positions in data of its median(s) under
// compare. data is not modified; the engine reorders a slice of positions
// instead, which avoids moving large items.
func SelectIndexFunc[T any](data []T, compare common.CompareFn[T], opts ...Option) (Medians[int], error) {
	if len(data) == 0 {
		return Medians[int]{}, errEmpty("SelectIndexFunc")
	}
	return SelectFunc(internal.Iota(len(data)), byPosition(data, compare), opts...)
}

// RankFunc returns the item that would sit at position k if data were
// sorted by compare. data is reordered in place.
func RankFunc[T any](data []T, k int, compare common.CompareFn[T], opts ...Option) (T, error) {
	n := len(data)
	if n == 0 {
		return *new(T), errEmpty("RankFunc")
	}
	if k < 0 || k >= n {
		return *new(T), errRank("RankFunc", k, n)
	}
	o := newOptions(opts)
	return data[internal.QuickSelectFunc(data, 0, n, k, o.nintherThreshold, compare)], nil
}

// Rank returns the k-th smallest item of data, counting from zero. data is
// reordered in place.
func Rank[T cmp.Ordered](data []T, k int, opts ...Option) (T, error) {
	return RankFunc(data, k, cmp.Compare[T], opts...)
}

// QuantifiedFunc returns the median of data under compare as a float: the
// quantified central value, or the average of the two quantified central
// values. data is not modified.
func QuantifiedFunc[T any](data []T, compare common.CompareFn[T], quantify common.QuantifyFn[T], opts ...Option) (float64, error) {
	m, err := SelectIndexFunc(data, compare, opts...)
	if err != nil {
		return 0, err
	}
	return Mean(m, func(i int) float64 {
		return quantify(data[i])
	}), nil
}

// Quantified returns the median of numeric data as a float. data is not modified.
func Quantified[N common.Number](data []N, opts ...Option) (float64, error) {
	return QuantifiedFunc(data, cmp.Compare[N], common.Quantify[N](), opts...)
}

func byPosition[T any](data []T, compare common.CompareFn[T]) common.CompareFn[int] {
	return func(i, j int) int {
		return compare(data[i], data[j])
	}
}
