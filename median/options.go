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

import "github.com/apache/datasketches-medians-go/internal"

// DefaultNintherThreshold is the default range length above which the
// generic engine estimates pivots from nine samples.
const DefaultNintherThreshold = internal.DefaultNintherThreshold

// Backend selects the engine behind the float64 entry points.
type Backend int

const (
	// BackendRadix maps floats to order-preserving integers and runs the
	// binary radix engine. It has no adversarial worst case.
	BackendRadix Backend = iota
	// BackendComparator runs the generic quickselect engine with the
	// IEEE-754 total order.
	BackendComparator
)

type options struct {
	nintherThreshold int
	backend          Backend
}

// Option is a functional option for configuring a selection.
type Option func(*options)

// WithNintherThreshold sets the range length above which pivots are
// estimated as the median of three medians of three.
func WithNintherThreshold(n int) Option {
	return func(opts *options) {
		opts.nintherThreshold = n
	}
}

// WithBackend sets the engine used by the float64 entry points.
func WithBackend(b Backend) Option {
	return func(opts *options) {
		opts.backend = b
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		nintherThreshold: DefaultNintherThreshold,
		backend:          BackendRadix,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
