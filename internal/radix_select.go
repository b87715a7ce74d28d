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

package internal

import "golang.org/x/exp/constraints"

func topBit[T constraints.Unsigned]() T {
	return ^T(0) ^ (^T(0) >> 1)
}

// RadixSelect returns the value at sorted position need in arr by binary
// radix partitioning from the most significant bit down. No value
// comparisons are used for pivoting, so the number of passes is bounded by
// the bit width of T. arr is reordered in place. Requires 0 <= need < len(arr).
func RadixSelect[T constraints.Unsigned](arr []T, need int) T {
	lo, hi := 0, len(arr)
	for mask := topBit[T](); ; mask >>= 1 {
		gt := PartitionBits(arr, lo, hi, mask)
		if mask == 1 {
			// all remaining items agree on every higher bit
			if need < gt {
				return arr[gt-1]
			}
			return arr[gt]
		}
		switch {
		case need+2 < gt:
			hi = gt
		case need > gt+1:
			lo = gt
		case need+2 == gt:
			second, _ := Max2(arr, lo, gt)
			return second
		case need+1 == gt:
			return Max(arr, lo, gt)
		case need == gt:
			return Min(arr, gt, hi)
		default:
			_, second := Min2(arr, gt, hi)
			return second
		}
	}
}

// RadixSelectPair returns the values at sorted positions need and need+1 in
// arr. Requires 0 <= need and need+1 < len(arr).
func RadixSelectPair[T constraints.Unsigned](arr []T, need int) (T, T) {
	lo, hi := 0, len(arr)
	for mask := topBit[T](); ; mask >>= 1 {
		gt := PartitionBits(arr, lo, hi, mask)
		if mask == 1 {
			switch {
			case need+1 < gt:
				return arr[gt-2], arr[gt-1]
			case need+1 == gt:
				return arr[gt-1], arr[gt]
			default:
				return arr[gt], arr[gt+1]
			}
		}
		switch {
		case need+2 < gt:
			hi = gt
		case need > gt:
			lo = gt
		case need+2 == gt:
			return Max2(arr, lo, gt)
		case need+1 == gt:
			return Max(arr, lo, gt), Min(arr, gt, hi)
		default:
			return Min2(arr, gt, hi)
		}
	}
}
