package kernel

import (
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
)

// makeUnaryKernel builds the per-dtype kernel for a unary operation.
// Unary kernels only ever see two of §4.2's four paths: fully contiguous
// (a single operand, so there is no scalar-broadcast counterpart) and
// the generic strided tiled fallback.
func makeUnaryKernel[T dtype.Numeric](op func(T) T) UnaryFn {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))

	return func(a, out unsafe.Pointer, n, sa, so int) {
		if n == 0 {
			return
		}
		if sa == elemSize && so == elemSize {
			aSl := unsafe.Slice((*T)(a), n)
			oSl := unsafe.Slice((*T)(out), n)
			for i := 0; i < n; i++ {
				oSl[i] = op(aSl[i])
			}
			return
		}
		unaryTiled(op, a, out, n, sa, so)
	}
}

func unaryTiled[T dtype.Numeric](op func(T) T, a, out unsafe.Pointer, n, sa, so int) {
	var ta, to [tileSize]T

	ap, op_ := a, out
	remaining := n
	for remaining > 0 {
		cnt := tileSize
		if remaining < cnt {
			cnt = remaining
		}

		p := ap
		for i := 0; i < cnt; i++ {
			ta[i] = *(*T)(p)
			p = unsafe.Add(p, sa)
		}

		for i := 0; i < cnt; i++ {
			to[i] = op(ta[i])
		}

		p = op_
		for i := 0; i < cnt; i++ {
			*(*T)(p) = to[i]
			p = unsafe.Add(p, so)
		}

		ap = unsafe.Add(ap, sa*cnt)
		op_ = unsafe.Add(op_, so*cnt)
		remaining -= cnt
	}
}

type UnaryTable [dtype.NumDtypes]UnaryFn

func negT[T dtype.Numeric](x T) T { return -x }

var NegTable = UnaryTable{
	dtype.Int8.Index():    makeUnaryKernel(negT[int8]),
	dtype.Int16.Index():   makeUnaryKernel(negT[int16]),
	dtype.Int32.Index():   makeUnaryKernel(negT[int32]),
	dtype.Int64.Index():   makeUnaryKernel(negT[int64]),
	dtype.Uint8.Index():   makeUnaryKernel(negT[uint8]),
	dtype.Uint16.Index():  makeUnaryKernel(negT[uint16]),
	dtype.Uint32.Index():  makeUnaryKernel(negT[uint32]),
	dtype.Uint64.Index():  makeUnaryKernel(negT[uint64]),
	dtype.Float32.Index(): makeUnaryKernel(negT[float32]),
	dtype.Float64.Index(): makeUnaryKernel(negT[float64]),
}

// absSigned is the branchless-select form §4.2 calls for ("expressed as
// a conditional select so narrow-integer vector absolute-value
// instructions are used where available").
func absSigned[T dtype.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func identity[T dtype.Numeric](x T) T { return x }

var AbsTable = UnaryTable{
	dtype.Int8.Index():    makeUnaryKernel(absSigned[int8]),
	dtype.Int16.Index():   makeUnaryKernel(absSigned[int16]),
	dtype.Int32.Index():   makeUnaryKernel(absSigned[int32]),
	dtype.Int64.Index():   makeUnaryKernel(absSigned[int64]),
	dtype.Uint8.Index():   makeUnaryKernel(identity[uint8]),
	dtype.Uint16.Index():  makeUnaryKernel(identity[uint16]),
	dtype.Uint32.Index():  makeUnaryKernel(identity[uint32]),
	dtype.Uint64.Index():  makeUnaryKernel(identity[uint64]),
	dtype.Float32.Index(): makeUnaryKernel(absSigned[float32]),
	dtype.Float64.Index(): makeUnaryKernel(absSigned[float64]),
}
