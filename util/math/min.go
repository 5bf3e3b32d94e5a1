package math

import "sort"

// MinInt returns the smaller of x or y.
func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// MinUint64 returns the smaller of x or y.
func MinUint64(x, y uint64) uint64 {
	if x < y {
		return x
	}
	return y
}

// MaxUint64 returns the bigger of x or y.
func MaxUint64(x, y uint64) uint64 {
	if x > y {
		return x
	}
	return y
}

// MedianUint64 returns the median of values, or 0 for an empty slice. For
// an even number of values it returns the mean of the two middle ones,
// rounded down. values is not modified.
func MedianUint64(values []uint64) uint64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]uint64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	middle := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[middle]
	}
	low, high := sorted[middle-1], sorted[middle]
	return low + (high-low)/2
}
