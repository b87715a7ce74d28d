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
	"cmp"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/datasketches-medians-go/common"
)

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := make([]float64, len(x))
	neg := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
		neg[i] = -v
	}

	c, err := Correlation(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-12)

	c, err = Correlation(x, neg)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, c, 1e-12)

	c, err = Correlation([]int{1, 2, 3}, []int{2, 0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c, 1e-12)

	_, err = Correlation(x, y[1:])
	assert.True(t, errors.Is(err, common.ErrSize))
	_, err = Correlation([]int{4, 4, 4}, []int{1, 2, 3})
	assert.True(t, errors.Is(err, common.ErrNaN))
}

type reading struct {
	sensor string
	value  float64
}

func TestCorrelationFunc(t *testing.T) {
	x := []reading{{"a", 3}, {"b", 1}, {"c", 2}, {"d", 5}}
	y := []reading{{"a", 30}, {"b", 10}, {"c", 20}, {"d", 50}}
	byValue := func(a, b reading) int { return cmp.Compare(a.value, b.value) }
	value := func(r reading) float64 { return r.value }

	c, err := CorrelationFunc(x, y, byValue, value)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-12)
	assert.Equal(t, "a", x[0].sensor)

	_, err = CorrelationFunc(x, y[:3], byValue, value)
	assert.True(t, errors.Is(err, common.ErrSize))
}

func TestWeightedMedian(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	weights := make([]float64, len(data))
	for i := range weights {
		weights[i] = 1
	}
	got, err := WeightedMedian(data, weights, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, 1e-9)

	got, err = WeightedMedian([]float64{1, 2, 3, 10}, []float64{1, 1, 1, 10}, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-6)

	got, err = WeightedMedian([]float64{4}, []float64{2}, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}

func TestWeightedMedianErrors(t *testing.T) {
	_, err := WeightedMedian(nil, nil, 1e-6)
	assert.True(t, errors.Is(err, common.ErrSize))
	_, err = WeightedMedian([]float64{1, 2}, []float64{1}, 1e-6)
	assert.True(t, errors.Is(err, common.ErrSize))
	_, err = WeightedMedian([]float64{1, math.NaN()}, []float64{1, 1}, 1e-6)
	assert.True(t, errors.Is(err, common.ErrNaN))
	_, err = WeightedMedian([]float64{1, 2}, []float64{0, 0}, 1e-6)
	assert.True(t, errors.Is(err, common.ErrNaN))
}
