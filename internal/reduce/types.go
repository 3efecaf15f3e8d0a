// Package reduce implements the reduction engine of §4.3: full and
// per-axis reductions (sum, mean, max, min, argmax, argmin) with
// dtype-specific algorithms — pairwise summation and multi-accumulator
// min/max for floating types, promoted accumulators for narrow integers
// — strided iteration, and index-returning reductions done as a single
// forward scan that keeps the lowest index of the extreme value (there
// is no separate value-finding pass). The style (dtype-indexed dispatch tables,
// a flat-buffer fast path with a strided fallback) is adapted from
// matrix/impl_statistics.go, generalized from fixed row/column
// reductions to an arbitrary reduction axis.
package reduce

import "unsafe"

// SumFn computes the reduction fold over n elements spaced stride bytes
// apart starting at data, writing the result to out (§4.3: "The kernel
// receives data, out, n... and stride").
type SumFn func(data, out unsafe.Pointer, n, stride int)

// ExtremeFn is Max/Min's kernel signature. It is an alias, not a distinct
// defined type, so that the same wrapSum-produced values populate both
// SumTable and MaxTable/MinTable without a conversion at every call site.
type ExtremeFn = SumFn

// ArgFn is Argmax/Argmin's kernel signature: it returns the winning
// index directly, since the output dtype is always a fixed int64
// regardless of the input dtype (§3, §4.3).
type ArgFn func(data unsafe.Pointer, n, stride int) int64

// pairwiseBlock is the block size below which pairwise summation stops
// splitting and sums directly with 8 independent accumulators (§4.3:
// "recursive split until block size <= 128 elements, within a block use
// 8 independent accumulators summed at the end").
const pairwiseBlock = 128

// numAccumulators is the unrolling width used by both pairwise summation
// and the multi-accumulator max/min reduction (§4.3, GLOSSARY
// "Multi-accumulator").
const numAccumulators = 8
