// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "math/bits"

const (
	// DefaultBucketCount is the number of buckets used per level.
	DefaultBucketCount = 5

	// insertionSortThreshold is the largest bucket sorted by insertion sort;
	// larger buckets are bucket-sorted recursively.
	insertionSortThreshold = 32
)

// BucketSort sorts data in place in ascending order using n buckets per
// level and returns it. An empty slice or a slice of equal values is
// returned as is.
func BucketSort(data []int64, n int) []int64 {
	if len(data) == 0 {
		return data
	}
	if n < 2 {
		n = 2
	}

	lo, hi := minMax(data)
	if lo == hi {
		return data
	}

	buckets := make([][]int64, n)
	for _, item := range data {
		idx := bucketIndex(item, lo, hi, n)
		buckets[idx] = append(buckets[idx], item)
	}

	pos := 0
	for _, bucket := range buckets {
		if len(bucket) <= insertionSortThreshold {
			insertionSort(bucket)
		} else {
			BucketSort(bucket, n)
		}
		pos += copy(data[pos:], bucket)
	}

	return data
}

// bucketIndex computes n*(item-lo) / (hi-lo+1) without overflowing int64.
// Differences are taken in uint64, and the full int64 range (span 2^64) wraps
// span to 0, where the quotient is the high word of the product.
func bucketIndex(item, lo, hi int64, n int) int {
	offset := uint64(item) - uint64(lo)
	span := uint64(hi) - uint64(lo) + 1

	prodHi, prodLo := bits.Mul64(uint64(n), offset)
	if span == 0 {
		return int(prodHi)
	}

	quo, _ := bits.Div64(prodHi, prodLo, span)
	return int(quo)
}

func insertionSort(data []int64) {
	for i := 1; i < len(data); i++ {
		element := data[i]
		pos := i - 1
		for pos >= 0 && data[pos] > element {
			data[pos+1] = data[pos]
			pos--
		}
		data[pos+1] = element
	}
}

func minMax(data []int64) (lo, hi int64) {
	lo, hi = data[0], data[0]
	for _, item := range data[1:] {
		if item < lo {
			lo = item
		} else if item > hi {
			hi = item
		}
	}
	return lo, hi
}
