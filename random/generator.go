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

// Package random generates reproducible test data. Values are drawn from a
// counter-mode stream: the n-th value is the murmur3 hash of n under the
// generator's seed, so a seed fully determines every value independently of
// how many values were asked for before.
package random

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
	"pgregory.net/rand"

	"github.com/apache/datasketches-medians-go/common"
)

// DefaultSeed is the seed used when no option overrides it.
const DefaultSeed = uint64(9001)

type generatorOptions struct {
	seed uint64
}

// Option is a functional option for configuring a Generator.
type Option func(*generatorOptions)

// WithSeed sets the seed of the stream.
func WithSeed(seed uint64) Option {
	return func(opts *generatorOptions) {
		opts.seed = seed
	}
}

// WithLabel derives the seed from a label, so that tests can name their
// streams instead of picking numbers.
func WithLabel(label string) Option {
	return func(opts *generatorOptions) {
		opts.seed = xxhash.Sum64String(label)
	}
}

// Generator is a seeded source of test data. It is not safe for concurrent use.
type Generator struct {
	seed    uint64
	counter uint64
	scratch [8]byte
	rnd     *rand.Rand
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	options := &generatorOptions{
		seed: DefaultSeed,
	}
	for _, opt := range opts {
		opt(options)
	}
	return &Generator{
		seed: options.seed,
		rnd:  rand.New(options.seed),
	}
}

// Seed returns the seed of the stream.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Uint64 returns the next value of the stream.
func (g *Generator) Uint64() uint64 {
	binary.LittleEndian.PutUint64(g.scratch[:], g.counter)
	g.counter++
	return murmur3.SeedSum64(g.seed, g.scratch[:])
}

// Float64 returns a float in [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) * (1.0 / (1 << 53))
}

// Uint8s returns n bytes.
func (g *Generator) Uint8s(n int) ([]uint8, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(g.Uint64())
	}
	return out, nil
}

// Uint16s returns n 16-bit values.
func (g *Generator) Uint16s(n int) ([]uint16, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(g.Uint64())
	}
	return out, nil
}

// Uint32s returns n 32-bit values.
func (g *Generator) Uint32s(n int) ([]uint32, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(g.Uint64())
	}
	return out, nil
}

// Uint64s returns n 64-bit values.
func (g *Generator) Uint64s(n int) ([]uint64, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = g.Uint64()
	}
	return out, nil
}

// Ints returns n ints uniformly distributed in [lo, hi).
func (g *Generator) Ints(n int, lo int, hi int) ([]int, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if hi <= lo {
		return nil, fmt.Errorf("%w: random: empty interval [%d, %d)", common.ErrOther, lo, hi)
	}
	span := uint64(hi - lo)
	out := make([]int, n)
	for i := range out {
		out[i] = lo + int(g.Uint64()%span)
	}
	return out, nil
}

// Float64s returns n floats uniformly distributed in [lo, hi).
func (g *Generator) Float64s(n int, lo float64, hi float64) ([]float64, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if !(lo < hi) || math.IsInf(hi-lo, 0) {
		return nil, fmt.Errorf("%w: random: invalid interval [%g, %g)", common.ErrOther, lo, hi)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + g.Float64()*(hi-lo)
	}
	return out, nil
}

// Shuffle permutes n items by calling swap, as math/rand.Shuffle does.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.rnd.Shuffle(n, swap)
}

// Perm returns a random permutation of 0..n-1.
func (g *Generator) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	g.Shuffle(n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

func checkLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: random: negative length %d", common.ErrOther, n)
	}
	return nil
}
