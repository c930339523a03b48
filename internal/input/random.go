// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package input

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
)

// MaxRandomCount is the exclusive upper bound of a generated array length.
const MaxRandomCount = 3_000_000

// RandomParams is the raw user input of random generation.
type RandomParams struct {
	Count string
	Min   string
	Max   string
}

// RandomBounds is a validated generation request.
type RandomBounds struct {
	Count int
	Min   int64
	Max   int64
}

// Validate checks p in the order the user sees the errors: numeric fields,
// then count bounds, then the range.
func (p RandomParams) Validate() (RandomBounds, error) {
	count, errCount := strconv.Atoi(strings.TrimSpace(p.Count))
	lo, errMin := strconv.ParseInt(strings.TrimSpace(p.Min), 10, 64)
	hi, errMax := strconv.ParseInt(strings.TrimSpace(p.Max), 10, 64)
	if errCount != nil || errMin != nil || errMax != nil {
		return RandomBounds{}, ErrRandomNotNumeric
	}

	if count <= 0 {
		return RandomBounds{}, ErrRandomCountNotPositive
	}
	if count >= MaxRandomCount {
		return RandomBounds{}, ErrRandomCountTooLarge
	}
	if lo >= hi {
		return RandomBounds{}, ErrRandomRangeInverted
	}

	return RandomBounds{Count: count, Min: lo, Max: hi}, nil
}

// Generator draws random arrays. The source is injected so tests can seed it.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a Generator over rng, or over a randomly seeded PCG
// source when rng is nil.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate validates p and returns Count integers drawn independently and
// uniformly from [Min, Max]. On error nothing is generated.
func (g *Generator) Generate(p RandomParams) ([]int64, error) {
	bounds, err := p.Validate()
	if err != nil {
		return nil, err
	}

	// span wraps to 0 only for the full int64 range
	span := uint64(bounds.Max-bounds.Min) + 1
	data := make([]int64, bounds.Count)

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range data {
		if span == 0 {
			data[i] = int64(g.rng.Uint64())
			continue
		}
		data[i] = bounds.Min + int64(g.rng.Uint64N(span))
	}
	return data, nil
}
