// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketSort(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{name: "empty", in: []int64{}, want: []int64{}},
		{name: "single", in: []int64{7}, want: []int64{7}},
		{name: "all equal", in: []int64{4, 4, 4}, want: []int64{4, 4, 4}},
		{name: "small", in: []int64{5, 3, 9}, want: []int64{3, 5, 9}},
		{name: "negatives", in: []int64{0, -1, 10, -100, 3}, want: []int64{-100, -1, 0, 3, 10}},
		{name: "duplicates", in: []int64{2, 1, 2, 1, 3}, want: []int64{1, 1, 2, 2, 3}},
		{
			name: "extremes",
			in:   []int64{math.MaxInt64, 0, math.MinInt64, -1, 1},
			want: []int64{math.MinInt64, -1, 0, 1, math.MaxInt64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketSort(tt.in, DefaultBucketCount))
		})
	}
}

func TestBucketSort_LargeRandomMatchesSlicesSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for _, size := range []int{33, 100, 1000, 20000} {
		data := make([]int64, size)
		for i := range data {
			data[i] = rng.Int64N(2000) - 1000
		}
		want := slices.Clone(data)
		slices.Sort(want)

		assert.Equal(t, want, BucketSort(data, DefaultBucketCount), "size %d", size)
	}
}

func TestBucketSort_FullRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	data := make([]int64, 500)
	for i := range data {
		data[i] = int64(rng.Uint64())
	}
	data[0], data[1] = math.MinInt64, math.MaxInt64
	want := slices.Clone(data)
	slices.Sort(want)

	assert.Equal(t, want, BucketSort(data, DefaultBucketCount))
}

func TestBucketIndex(t *testing.T) {
	assert.Equal(t, 0, bucketIndex(0, 0, 9, 5))
	assert.Equal(t, 4, bucketIndex(9, 0, 9, 5))
	assert.Equal(t, 2, bucketIndex(5, 0, 9, 5))
	assert.Equal(t, 0, bucketIndex(math.MinInt64, math.MinInt64, math.MaxInt64, 5))
	assert.Equal(t, 4, bucketIndex(math.MaxInt64, math.MinInt64, math.MaxInt64, 5))
}
