package reduce

import (
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
)

// AxisMeanTable is Mean's axis-reduction dispatch: unlike MeanTable
// (full reduction, same dtype as input, integer truncation), the
// per-axis mean always produces a float64 output regardless of the
// input dtype, since averaging a strided slice of integers generally
// isn't itself an integer.
var AxisMeanTable = FullTable{
	dtype.Int8.Index():    axisMeanInt(promotedSumSigned[int8]),
	dtype.Int16.Index():   axisMeanInt(promotedSumSigned[int16]),
	dtype.Int32.Index():   axisMeanInt(sequentialSum[int32]),
	dtype.Int64.Index():   axisMeanInt(sequentialSum[int64]),
	dtype.Uint8.Index():   axisMeanUint(promotedSumUnsigned[uint8]),
	dtype.Uint16.Index():  axisMeanUint(promotedSumUnsigned[uint16]),
	dtype.Uint32.Index():  axisMeanUint(sequentialSum[uint32]),
	dtype.Uint64.Index():  axisMeanUint(sequentialSum[uint64]),
	dtype.Float32.Index(): axisMeanFloat32,
	dtype.Float64.Index(): axisMeanFloat64,
}

func axisMeanInt[T ~int8 | ~int16 | ~int32 | ~int64](sum func(unsafe.Pointer, int, int) T) SumFn {
	return func(data, out unsafe.Pointer, n, stride int) {
		var result float64
		if n > 0 {
			result = float64(sum(data, n, stride)) / float64(n)
		}
		*(*float64)(out) = result
	}
}

func axisMeanUint[T ~uint8 | ~uint16 | ~uint32 | ~uint64](sum func(unsafe.Pointer, int, int) T) SumFn {
	return func(data, out unsafe.Pointer, n, stride int) {
		var result float64
		if n > 0 {
			result = float64(sum(data, n, stride)) / float64(n)
		}
		*(*float64)(out) = result
	}
}

func axisMeanFloat32(data, out unsafe.Pointer, n, stride int) {
	var result float64
	if n > 0 {
		result = float64(pairwiseSum[float32](data, n, stride)) / float64(n)
	}
	*(*float64)(out) = result
}

func axisMeanFloat64(data, out unsafe.Pointer, n, stride int) {
	var result float64
	if n > 0 {
		result = pairwiseSum[float64](data, n, stride) / float64(n)
	}
	*(*float64)(out) = result
}
