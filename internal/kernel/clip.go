package kernel

import (
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
)

// ClipTable dispatches Clip(a, out, min, max): an unary-shaped operation
// with two extra scalar bounds, sharing the same contiguous/tiled path
// split as every other kernel in this package.
type ClipTable [dtype.NumDtypes]ClipFn

func makeClipKernel[T dtype.Numeric]() ClipFn {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))

	return func(a, out, lo, hi unsafe.Pointer, n, sa, so int) {
		if n == 0 {
			return
		}
		lov, hiv := *(*T)(lo), *(*T)(hi)
		clamp := func(x T) T {
			if x < lov {
				return lov
			}
			if x > hiv {
				return hiv
			}
			return x
		}

		if sa == elemSize && so == elemSize {
			aSl := unsafe.Slice((*T)(a), n)
			oSl := unsafe.Slice((*T)(out), n)
			for i := 0; i < n; i++ {
				oSl[i] = clamp(aSl[i])
			}
			return
		}
		unaryTiled(clamp, a, out, n, sa, so)
	}
}

var Clip = ClipTable{
	dtype.Int8.Index():    makeClipKernel[int8](),
	dtype.Int16.Index():   makeClipKernel[int16](),
	dtype.Int32.Index():   makeClipKernel[int32](),
	dtype.Int64.Index():   makeClipKernel[int64](),
	dtype.Uint8.Index():   makeClipKernel[uint8](),
	dtype.Uint16.Index():  makeClipKernel[uint16](),
	dtype.Uint32.Index():  makeClipKernel[uint32](),
	dtype.Uint64.Index():  makeClipKernel[uint64](),
	dtype.Float32.Index(): makeClipKernel[float32](),
	dtype.Float64.Index(): makeClipKernel[float64](),
}
