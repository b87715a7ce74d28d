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

package stats

import (
	"fmt"
	"math"

	"github.com/apache/datasketches-medians-go/common"
	"github.com/apache/datasketches-medians-go/internal"
	"github.com/apache/datasketches-medians-go/median"
)

// Correlation returns the median correlation of x and y: the cosine of the
// angle between the two zero median vectors, analogous to Pearson's
// correlation of zero mean vectors.
func Correlation[N common.Number](x []N, y []N) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: Correlation: lengths %d and %d differ", common.ErrSize, len(x), len(y))
	}
	zx, err := ZeroMedian(x)
	if err != nil {
		return 0, err
	}
	zy, err := ZeroMedian(y)
	if err != nil {
		return 0, err
	}
	var sxy, sx2, sy2 float64
	for i := range zx {
		sxy += zx[i] * zy[i]
		sx2 += zx[i] * zx[i]
		sy2 += zy[i] * zy[i]
	}
	res := sxy / math.Sqrt(sx2*sy2)
	if math.IsNaN(res) {
		return 0, fmt.Errorf("%w: Correlation: NaN result", common.ErrNaN)
	}
	return res, nil
}

// CorrelationFunc is Correlation for items that are ordered by compare and
// reduced to floats by quantify.
func CorrelationFunc[T any](x []T, y []T, compare common.CompareFn[T], quantify common.QuantifyFn[T]) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: CorrelationFunc: lengths %d and %d differ", common.ErrSize, len(x), len(y))
	}
	mx, err := median.QuantifiedFunc(x, compare, quantify)
	if err != nil {
		return 0, err
	}
	my, err := median.QuantifiedFunc(y, compare, quantify)
	if err != nil {
		return 0, err
	}
	var sxy, sx2, sy2 float64
	for i := range x {
		dx := quantify(x[i]) - mx
		dy := quantify(y[i]) - my
		sxy += dx * dy
		sx2 += dx * dx
		sy2 += dy * dy
	}
	res := sxy / math.Sqrt(sx2*sy2)
	if math.IsNaN(res) {
		return 0, fmt.Errorf("%w: CorrelationFunc: NaN result", common.ErrNaN)
	}
	return res, nil
}

// WeightedMedian returns the weighted median of data by Weiszfeld iteration,
// starting from the weighted mean and stopping once consecutive estimates
// differ by less than eps.
func WeightedMedian(data []float64, weights []float64, eps float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: WeightedMedian: zero length data", common.ErrSize)
	}
	if len(data) != len(weights) {
		return 0, fmt.Errorf("%w: WeightedMedian: %d items and %d weights", common.ErrSize, len(data), len(weights))
	}
	if internal.HasNaN(data) || internal.HasNaN(weights) {
		return 0, fmt.Errorf("%w: WeightedMedian: NaN in input", common.ErrNaN)
	}
	var sum, weightsSum float64
	for i, x := range data {
		sum += weights[i] * x
		weightsSum += weights[i]
	}
	last := sum / weightsSum
	if !common.IsFinite(last) {
		return 0, fmt.Errorf("%w: WeightedMedian: weights sum to %g", common.ErrNaN, weightsSum)
	}
	for i := 0; i < maxWeightedIterations; i++ {
		var num, den float64
		for j, x := range data {
			dist := math.Abs(x - last)
			if dist == 0 {
				continue
			}
			num += weights[j] * x / dist
			den += weights[j] / dist
		}
		if den == 0 {
			return last, nil
		}
		next := num / den
		if math.Abs(next-last) < eps {
			return next, nil
		}
		last = next
	}
	return last, nil
}

// Balance returns the number of items above centre minus the number below it.
func Balance[N common.Number](data []N, centre float64) int {
	bal := 0
	for _, v := range data {
		f := float64(v)
		if f > centre {
			bal++
		} else if f < centre {
			bal--
		}
	}
	return bal
}

// IsBalanced reports whether centre is a median of data: the imbalance
// between items above and below it is covered by items equal to it.
func IsBalanced[N common.Number](data []N, centre float64) bool {
	equals := 0
	for _, v := range data {
		if float64(v) == centre {
			equals++
		}
	}
	bal := Balance(data, centre)
	return bal == 0 || max(bal, -bal) <= equals
}
