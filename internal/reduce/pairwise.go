package reduce

import (
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
)

// blockSum sums n elements (stride bytes apart) using numAccumulators
// independent running totals, combined at the end (§4.3: "within a
// block use 8 independent accumulators summed at the end").
func blockSum[T dtype.Float](data unsafe.Pointer, n, stride int) T {
	var acc [numAccumulators]T
	p := data
	i := 0
	for ; i+numAccumulators <= n; i += numAccumulators {
		for k := 0; k < numAccumulators; k++ {
			acc[k] += *(*T)(unsafe.Add(p, k*stride))
		}
		p = unsafe.Add(p, stride*numAccumulators)
	}

	var sum T
	for _, a := range acc {
		sum += a
	}
	for ; i < n; i++ {
		sum += *(*T)(p)
		p = unsafe.Add(p, stride)
	}

	return sum
}

// pairwiseSum recursively splits the range until it is small enough for
// blockSum, bounding worst-case rounding error at O(eps*log(n)*||a||)
// instead of O(eps*n*||a||) for a serial accumulator (§4.3, non-
// negotiable per the spec's own framing).
func pairwiseSum[T dtype.Float](data unsafe.Pointer, n, stride int) T {
	if n <= pairwiseBlock {
		return blockSum[T](data, n, stride)
	}
	half := n / 2
	left := pairwiseSum[T](data, half, stride)
	right := pairwiseSum[T](unsafe.Add(data, half*stride), n-half, stride)
	return left + right
}

// multiAccExtreme combines n elements via combine (max or min) using
// numAccumulators independent running extremes, combined pairwise at the
// end (§4.3 "Multi-accumulator": "8 independent running extremes,
// combined pairwise at the end").
func multiAccExtreme[T dtype.Float](data unsafe.Pointer, n, stride int, combine func(a, b T) T, identity T) T {
	if n == 0 {
		return identity
	}

	var acc [numAccumulators]T
	for k := range acc {
		acc[k] = identity
	}

	p := data
	i := 0
	for ; i+numAccumulators <= n; i += numAccumulators {
		for k := 0; k < numAccumulators; k++ {
			acc[k] = combine(acc[k], *(*T)(unsafe.Add(p, k*stride)))
		}
		p = unsafe.Add(p, stride*numAccumulators)
	}

	result := acc[0]
	for k := 1; k < numAccumulators; k++ {
		result = combine(result, acc[k])
	}
	for ; i < n; i++ {
		result = combine(result, *(*T)(p))
		p = unsafe.Add(p, stride)
	}

	return result
}
