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

// Package stats provides robust statistics built on exact medians: median
// absolute deviation, quartiles, median correlation and a weighted median.
package stats

import (
	"fmt"
	"math"

	"github.com/apache/datasketches-medians-go/common"
	"github.com/apache/datasketches-medians-go/internal"
	"github.com/apache/datasketches-medians-go/median"
)

const maxWeightedIterations = 1000

// MStats holds a centre and a dispersion around it, here the median and the MAD.
type MStats struct {
	Centre     float64
	Dispersion float64
}

// Med holds the median, the quartiles and the MAD of a sample.
type Med struct {
	Median float64
	// LowerQ is the median minus the median of the negative differences.
	LowerQ float64
	// UpperQ is the median plus the median of the positive differences.
	UpperQ float64
	MAD    float64
	// StdErr is MAD divided by the median.
	StdErr float64
}

func toFloats[N common.Number](data []N) []float64 {
	fs := make([]float64, len(data))
	for i, v := range data {
		fs[i] = float64(v)
	}
	return fs
}

func checkedFloats[N common.Number](data []N, op string) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: zero length data", common.ErrSize, op)
	}
	fs := toFloats(data)
	if internal.HasNaN(fs) {
		return nil, fmt.Errorf("%w: %s: NaN in input", common.ErrNaN, op)
	}
	return fs, nil
}

// ScrubNaNs returns a copy of data without its NaNs.
func ScrubNaNs(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, f := range data {
		if !math.IsNaN(f) {
			out = append(out, f)
		}
	}
	return out
}

// Zeroed subtracts centre from every item, typically the median or the mean.
func Zeroed[N common.Number](data []N, centre float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v) - centre
	}
	return out
}

// ZeroMedian subtracts the median from every item.
func ZeroMedian[N common.Number](data []N) ([]float64, error) {
	fs, err := checkedFloats(data, "ZeroMedian")
	if err != nil {
		return nil, err
	}
	m, err := median.Float64Unchecked(fs)
	if err != nil {
		return nil, err
	}
	return Zeroed(fs, m), nil
}

// MAD returns the median of the absolute differences between data and centre.
// With the median as centre it is the most stable measure of dispersion.
func MAD[N common.Number](data []N, centre float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: MAD: zero length data", common.ErrSize)
	}
	diffs := make([]float64, len(data))
	for i, v := range data {
		diffs[i] = math.Abs(float64(v) - centre)
	}
	return median.Float64Unchecked(diffs)
}

// MedStats returns the median of data and the MAD around it.
func MedStats[N common.Number](data []N) (MStats, error) {
	fs, err := checkedFloats(data, "MedStats")
	if err != nil {
		return MStats{}, err
	}
	centre, err := median.Float64Unchecked(fs)
	if err != nil {
		return MStats{}, err
	}
	dispersion, err := MAD(fs, centre)
	if err != nil {
		return MStats{}, err
	}
	return MStats{Centre: centre, Dispersion: dispersion}, nil
}

// MedInfo returns the median, quartiles, MAD and standard error of data.
// The quartiles are the medians of the differences below and above the
// median; items equal to the median are split evenly between both sides.
// data needs items on both sides of its median.
func MedInfo[N common.Number](data []N) (Med, error) {
	fs, err := checkedFloats(data, "MedInfo")
	if err != nil {
		return Med{}, err
	}
	med, err := median.Float64Unchecked(fs)
	if err != nil {
		return Med{}, err
	}
	var negDiffs, posDiffs []float64
	equals := 0
	for _, f := range fs {
		switch {
		case f > med:
			posDiffs = append(posDiffs, f-med)
		case f < med:
			negDiffs = append(negDiffs, med-f)
		default:
			equals++
		}
	}
	// repeated median values count as zero differences: all toward the MAD, half toward each quartile
	var zeros []float64
	if equals > 1 {
		zeros = make([]float64, equals)
	}
	half := zeros[:len(zeros)/2]
	lq, err := median.Float64Unchecked(append(append([]float64{}, negDiffs...), half...))
	if err != nil {
		return Med{}, fmt.Errorf("MedInfo: lower quartile: %w", err)
	}
	uq, err := median.Float64Unchecked(append(append([]float64{}, half...), posDiffs...))
	if err != nil {
		return Med{}, fmt.Errorf("MedInfo: upper quartile: %w", err)
	}
	all := make([]float64, 0, len(negDiffs)+len(zeros)+len(posDiffs))
	all = append(append(append(all, negDiffs...), zeros...), posDiffs...)
	mad, err := median.Float64Unchecked(all)
	if err != nil {
		return Med{}, err
	}
	return Med{
		Median: med,
		LowerQ: med - lq,
		UpperQ: med + uq,
		MAD:    mad,
		StdErr: mad / med,
	}, nil
}
