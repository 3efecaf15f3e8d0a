package reduce

import (
	"math"
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
)

type FullTable [dtype.NumDtypes]SumFn
type ExtremeTable [dtype.NumDtypes]ExtremeFn

func wrapSum[T dtype.Numeric](f func(data unsafe.Pointer, n, stride int) T) SumFn {
	return func(data, out unsafe.Pointer, n, stride int) {
		*(*T)(out) = f(data, n, stride)
	}
}

func sequentialSum[T dtype.Numeric](data unsafe.Pointer, n, stride int) T {
	var acc T
	p := data
	for i := 0; i < n; i++ {
		acc += *(*T)(p)
		p = unsafe.Add(p, stride)
	}
	return acc
}

// promotedSum is the "small integer" sum path (§4.3 Overview: "promoted
// accumulators for small integers"): 8/16-bit dtypes accumulate in a
// wider native-width accumulator to push overflow further out, then
// truncate back to the storage type.
func promotedSumSigned[T ~int8 | ~int16](data unsafe.Pointer, n, stride int) T {
	var acc int64
	p := data
	for i := 0; i < n; i++ {
		acc += int64(*(*T)(p))
		p = unsafe.Add(p, stride)
	}
	return T(acc)
}

func promotedSumUnsigned[T ~uint8 | ~uint16](data unsafe.Pointer, n, stride int) T {
	var acc uint64
	p := data
	for i := 0; i < n; i++ {
		acc += uint64(*(*T)(p))
		p = unsafe.Add(p, stride)
	}
	return T(acc)
}

var SumTable = FullTable{
	dtype.Int8.Index():    wrapSum(promotedSumSigned[int8]),
	dtype.Int16.Index():   wrapSum(promotedSumSigned[int16]),
	dtype.Int32.Index():   wrapSum(sequentialSum[int32]),
	dtype.Int64.Index():   wrapSum(sequentialSum[int64]),
	dtype.Uint8.Index():   wrapSum(promotedSumUnsigned[uint8]),
	dtype.Uint16.Index():  wrapSum(promotedSumUnsigned[uint16]),
	dtype.Uint32.Index():  wrapSum(sequentialSum[uint32]),
	dtype.Uint64.Index():  wrapSum(sequentialSum[uint64]),
	dtype.Float32.Index(): wrapSum(pairwiseSum[float32]),
	dtype.Float64.Index(): wrapSum(pairwiseSum[float64]),
}

// MeanTable computes the full-reduction mean in the *input* dtype
// (§4.3 full-reduction table: "sum/n computed in the input dtype
// (integer truncation on integers)" for ints, "pairwise sum divided by
// n" for floats). This is deliberately different from the axis-reduction
// Mean, which always produces float64 (§4.3 "Output-dtype rules for
// axis reductions"); the two are implemented separately for that reason.
func meanInt[T dtype.Numeric](sum func(unsafe.Pointer, int, int) T) func(unsafe.Pointer, int, int) T {
	return func(data unsafe.Pointer, n, stride int) T {
		if n == 0 {
			return 0
		}
		return sum(data, n, stride) / T(n)
	}
}

func meanFloat[T dtype.Float](data unsafe.Pointer, n, stride int) T {
	if n == 0 {
		return 0
	}
	return pairwiseSum[T](data, n, stride) / T(n)
}

var MeanTable = FullTable{
	dtype.Int8.Index():    wrapSum(meanInt(promotedSumSigned[int8])),
	dtype.Int16.Index():   wrapSum(meanInt(promotedSumSigned[int16])),
	dtype.Int32.Index():   wrapSum(meanInt(sequentialSum[int32])),
	dtype.Int64.Index():   wrapSum(meanInt(sequentialSum[int64])),
	dtype.Uint8.Index():   wrapSum(meanInt(promotedSumUnsigned[uint8])),
	dtype.Uint16.Index():  wrapSum(meanInt(promotedSumUnsigned[uint16])),
	dtype.Uint32.Index():  wrapSum(meanInt(sequentialSum[uint32])),
	dtype.Uint64.Index():  wrapSum(meanInt(sequentialSum[uint64])),
	dtype.Float32.Index(): wrapSum(meanFloat[float32]),
	dtype.Float64.Index(): wrapSum(meanFloat[float64]),
}

func sequentialExtreme[T dtype.Numeric](combine func(a, b T) T) func(unsafe.Pointer, int, int) T {
	return func(data unsafe.Pointer, n, stride int) T {
		p := data
		result := *(*T)(p)
		p = unsafe.Add(p, stride)
		for i := 1; i < n; i++ {
			result = combine(result, *(*T)(p))
			p = unsafe.Add(p, stride)
		}
		return result
	}
}

func maxCombine[T dtype.Numeric](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minCombine[T dtype.Numeric](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func floatMax[T dtype.Float](identity T) func(unsafe.Pointer, int, int) T {
	return func(data unsafe.Pointer, n, stride int) T {
		return multiAccExtreme(data, n, stride, maxCombine[T], identity)
	}
}

func floatMin[T dtype.Float](identity T) func(unsafe.Pointer, int, int) T {
	return func(data unsafe.Pointer, n, stride int) T {
		return multiAccExtreme(data, n, stride, minCombine[T], identity)
	}
}

var MaxTable = ExtremeTable{
	dtype.Int8.Index():    wrapSum(sequentialExtreme(maxCombine[int8])),
	dtype.Int16.Index():   wrapSum(sequentialExtreme(maxCombine[int16])),
	dtype.Int32.Index():   wrapSum(sequentialExtreme(maxCombine[int32])),
	dtype.Int64.Index():   wrapSum(sequentialExtreme(maxCombine[int64])),
	dtype.Uint8.Index():   wrapSum(sequentialExtreme(maxCombine[uint8])),
	dtype.Uint16.Index():  wrapSum(sequentialExtreme(maxCombine[uint16])),
	dtype.Uint32.Index():  wrapSum(sequentialExtreme(maxCombine[uint32])),
	dtype.Uint64.Index():  wrapSum(sequentialExtreme(maxCombine[uint64])),
	dtype.Float32.Index(): wrapSum(floatMax[float32](float32(math.Inf(-1)))),
	dtype.Float64.Index(): wrapSum(floatMax[float64](math.Inf(-1))),
}

var MinTable = ExtremeTable{
	dtype.Int8.Index():    wrapSum(sequentialExtreme(minCombine[int8])),
	dtype.Int16.Index():   wrapSum(sequentialExtreme(minCombine[int16])),
	dtype.Int32.Index():   wrapSum(sequentialExtreme(minCombine[int32])),
	dtype.Int64.Index():   wrapSum(sequentialExtreme(minCombine[int64])),
	dtype.Uint8.Index():   wrapSum(sequentialExtreme(minCombine[uint8])),
	dtype.Uint16.Index():  wrapSum(sequentialExtreme(minCombine[uint16])),
	dtype.Uint32.Index():  wrapSum(sequentialExtreme(minCombine[uint32])),
	dtype.Uint64.Index():  wrapSum(sequentialExtreme(minCombine[uint64])),
	dtype.Float32.Index(): wrapSum(floatMin[float32](float32(math.Inf(1)))),
	dtype.Float64.Index(): wrapSum(floatMin[float64](math.Inf(1))),
}
