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

import "math"

const signBit = uint64(1) << 63

// ToOrderedUint64 maps the bit pattern of f to an unsigned integer whose
// natural order matches the IEEE-754 total order of floats. Negative values
// are complemented so that larger magnitudes map lower; non-negative values
// get the sign bit set so that they map above every negative value.
func ToOrderedUint64(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&signBit != 0 {
		return ^bits
	}
	return bits | signBit
}

// FromOrderedUint64 is the exact inverse of ToOrderedUint64.
func FromOrderedUint64(u uint64) float64 {
	if u&signBit != 0 {
		return math.Float64frombits(u &^ signBit)
	}
	return math.Float64frombits(^u)
}

// ToOrderedUint64s maps every item of fs into a new slice.
func ToOrderedUint64s(fs []float64) []uint64 {
	us := make([]uint64, len(fs))
	for i, f := range fs {
		us[i] = ToOrderedUint64(f)
	}
	return us
}
