package reduce

import "unsafe"

// AxisReduce folds the axis dimension (axisLen elements, axisStride bytes
// apart) at every coordinate of outerShape, writing one result per
// coordinate through out. outerShape/dataStrides/outStrides all describe
// the array with the reduced axis already removed; the caller (which
// knows about keepdim and dtype) is responsible for building them and
// for supplying a dataStrides/outStrides pair of equal length to
// outerShape.
//
// Integer Max/Min/ArgMax/ArgMin kernels assume axisLen >= 1: callers must
// reject a zero-length reduction axis before reaching this function (the
// empty-reduction policy lives in the validators, not here, since Sum and
// Mean are well-defined on an empty axis and Max/Min/ArgMax/ArgMin are
// not).
func AxisReduce(fn SumFn, outerShape, dataStrides, outStrides []int, axisLen, axisStride int, data, out unsafe.Pointer) {
	d := len(outerShape)
	if d == 0 {
		fn(data, out, axisLen, axisStride)
		return
	}

	n := outerShape[0]
	dp, op := data, out
	for i := 0; i < n; i++ {
		AxisReduce(fn, outerShape[1:], dataStrides[1:], outStrides[1:], axisLen, axisStride, dp, op)
		dp = unsafe.Add(dp, dataStrides[0])
		op = unsafe.Add(op, outStrides[0])
	}
}

// ArgReduce mirrors AxisReduce for the index-returning reductions, always
// writing a plain int64 at each output coordinate.
func ArgReduce(fn ArgFn, outerShape, dataStrides, outStrides []int, axisLen, axisStride int, data, out unsafe.Pointer) {
	d := len(outerShape)
	if d == 0 {
		*(*int64)(out) = fn(data, axisLen, axisStride)
		return
	}

	n := outerShape[0]
	dp, op := data, out
	for i := 0; i < n; i++ {
		ArgReduce(fn, outerShape[1:], dataStrides[1:], outStrides[1:], axisLen, axisStride, dp, op)
		dp = unsafe.Add(dp, dataStrides[0])
		op = unsafe.Add(op, outStrides[0])
	}
}
