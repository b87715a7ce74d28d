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

	"github.com/apache/datasketches-medians-go/common"
	"github.com/apache/datasketches-medians-go/internal"
)

// Selector is anything that can order-select over a collection of T.
// The implementations in this package are ComparatorSelector (any total
// order), ByteSelector and WordSelector (histograms), RadixSelector
// (binary radix) and FloatSelector (order-preserving float mapping).
type Selector[T any] interface {
	// Median returns the central value(s) of data.
	Median(data []T) (Medians[T], error)
	// Rank returns the item at sorted position k of data.
	Rank(data []T, k int) (T, error)
}

var (
	_ Selector[string]  = ComparatorSelector[string]{}
	_ Selector[uint8]   = ByteSelector{}
	_ Selector[uint16]  = WordSelector{}
	_ Selector[uint64]  = RadixSelector{}
	_ Selector[float64] = FloatSelector{}
)

// ComparatorSelector runs the generic quickselect engine. It reorders data in place.
type ComparatorSelector[T any] struct {
	Compare common.CompareFn[T]
	Options []Option
}

func (s ComparatorSelector[T]) Median(data []T) (Medians[T], error) {
	return SelectFunc(data, s.Compare, s.Options...)
}

func (s ComparatorSelector[T]) Rank(data []T, k int) (T, error) {
	return RankFunc(data, k, s.Compare, s.Options...)
}

// ByteSelector selects over uint8 with a histogram. It does not modify data.
type ByteSelector struct{}

func (ByteSelector) Median(data []uint8) (Medians[uint8], error) {
	return Uint8(data)
}

func (ByteSelector) Rank(data []uint8, k int) (uint8, error) {
	return histogramRank(data, k, "ByteSelector.Rank")
}

// WordSelector selects over uint16 with a histogram. It does not modify data.
type WordSelector struct{}

func (WordSelector) Median(data []uint16) (Medians[uint16], error) {
	return Uint16(data)
}

func (WordSelector) Rank(data []uint16, k int) (uint16, error) {
	return histogramRank(data, k, "WordSelector.Rank")
}

// RadixSelector selects over uint64 by binary radix partitioning. It
// reorders data in place.
type RadixSelector struct{}

func (RadixSelector) Median(data []uint64) (Medians[uint64], error) {
	return Uint64(data)
}

func (RadixSelector) Rank(data []uint64, k int) (uint64, error) {
	return RankUint64(data, k)
}

// FloatSelector selects over float64 under the IEEE-754 total order. When
// Checked is set, data holding a NaN is rejected with common.ErrNaN. It does
// not modify data.
type FloatSelector struct {
	Checked bool
	Options []Option
}

func (s FloatSelector) Median(data []float64) (Medians[float64], error) {
	if err := s.check(data, "FloatSelector.Median"); err != nil {
		return Medians[float64]{}, err
	}
	return Float64s(data, s.Options...)
}

func (s FloatSelector) Rank(data []float64, k int) (float64, error) {
	if err := s.check(data, "FloatSelector.Rank"); err != nil {
		return 0, err
	}
	return RankFloat64(data, k, s.Options...)
}

func (s FloatSelector) check(data []float64, op string) error {
	if s.Checked && internal.HasNaN(data) {
		return fmt.Errorf("%w: %s: NaN in input", common.ErrNaN, op)
	}
	return nil
}

func histogramRank[T uint8 | uint16](data []T, k int, op string) (T, error) {
	if len(data) == 0 {
		return 0, errEmpty(op)
	}
	if k < 0 || k >= len(data) {
		return 0, errRank(op, k, len(data))
	}
	return internal.HistogramSelect(data, k), nil
}
