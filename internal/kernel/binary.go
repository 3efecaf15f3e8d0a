package kernel

import (
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
)

// tileSize is the chunk size Path 3 gathers into scratch before
// computing and scattering back (§4.2: "Tile of 256 elements... This
// restores vectorizable inner loops for arbitrary stride patterns").
const tileSize = 256

// makeBinaryKernel builds the per-dtype kernel for a binary operation
// whose element formula is op(a, b). It selects among the four paths of
// §4.2's dispatch table at call time, based on the strides it's handed:
//
//	Path 1   — sa == sb == so == elemSize         (fully contiguous)
//	Path 2   — sb == 0, sa == so == elemSize       (right scalar broadcast)
//	Path 2.5 — sa == 0, sb == so == elemSize       (left scalar broadcast)
//	Path 3   — anything else                       (tiled gather/compute/scatter)
//
// Go's memory model has no aliasing-restriction keyword for the compiler
// to violate, so paths 1/2/2.5 need no separate a==out branch the way a
// C kernel would: reading a[i] and writing out[i] at the same logical
// index is always safe for an element-wise formula with no
// cross-element dependency, in-place or not.
func makeBinaryKernel[T dtype.Numeric](op func(a, b T) T) BinaryFn {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))

	return func(a, b, out unsafe.Pointer, n, sa, sb, so int) {
		if n == 0 {
			return
		}

		switch {
		case sa == elemSize && sb == elemSize && so == elemSize:
			aSl := unsafe.Slice((*T)(a), n)
			bSl := unsafe.Slice((*T)(b), n)
			oSl := unsafe.Slice((*T)(out), n)
			for i := 0; i < n; i++ {
				oSl[i] = op(aSl[i], bSl[i])
			}

		case sb == 0 && sa == elemSize && so == elemSize:
			bv := *(*T)(b)
			aSl := unsafe.Slice((*T)(a), n)
			oSl := unsafe.Slice((*T)(out), n)
			for i := 0; i < n; i++ {
				oSl[i] = op(aSl[i], bv)
			}

		case sa == 0 && sb == elemSize && so == elemSize:
			av := *(*T)(a)
			bSl := unsafe.Slice((*T)(b), n)
			oSl := unsafe.Slice((*T)(out), n)
			for i := 0; i < n; i++ {
				oSl[i] = op(av, bSl[i])
			}

		default:
			binaryTiled(op, a, b, out, n, sa, sb, so)
		}
	}
}

// binaryTiled implements Path 3: gather a and b into contiguous scratch
// tiles, compute into a scratch output tile, scatter back (§4.2).
func binaryTiled[T dtype.Numeric](op func(a, b T) T, a, b, out unsafe.Pointer, n, sa, sb, so int) {
	var ta, tb, to [tileSize]T

	ap, bp, op_ := a, b, out
	remaining := n
	for remaining > 0 {
		cnt := tileSize
		if remaining < cnt {
			cnt = remaining
		}

		pa, pb := ap, bp
		for i := 0; i < cnt; i++ {
			ta[i] = *(*T)(pa)
			tb[i] = *(*T)(pb)
			pa = unsafe.Add(pa, sa)
			pb = unsafe.Add(pb, sb)
		}

		for i := 0; i < cnt; i++ {
			to[i] = op(ta[i], tb[i])
		}

		po := op_
		for i := 0; i < cnt; i++ {
			*(*T)(po) = to[i]
			po = unsafe.Add(po, so)
		}

		ap = unsafe.Add(ap, sa*cnt)
		bp = unsafe.Add(bp, sb*cnt)
		op_ = unsafe.Add(op_, so*cnt)
		remaining -= cnt
	}
}

// BinaryTable names the dtype-indexed dispatch tables this file and its
// siblings (div.go, pow.go) build.
type BinaryTable [dtype.NumDtypes]BinaryFn

func addT[T dtype.Numeric](a, b T) T { return a + b }
func subT[T dtype.Numeric](a, b T) T { return a - b }
func mulT[T dtype.Numeric](a, b T) T { return a * b }

// AddTable, SubTable, and MulTable are built once and looked up by
// dtype.Index() at every call site (§4.2 "Dispatch": "A 10-entry table
// per operation maps dtype to kernel").
var AddTable = BinaryTable{
	dtype.Int8.Index():    makeBinaryKernel(addT[int8]),
	dtype.Int16.Index():   makeBinaryKernel(addT[int16]),
	dtype.Int32.Index():   makeBinaryKernel(addT[int32]),
	dtype.Int64.Index():   makeBinaryKernel(addT[int64]),
	dtype.Uint8.Index():   makeBinaryKernel(addT[uint8]),
	dtype.Uint16.Index():  makeBinaryKernel(addT[uint16]),
	dtype.Uint32.Index():  makeBinaryKernel(addT[uint32]),
	dtype.Uint64.Index():  makeBinaryKernel(addT[uint64]),
	dtype.Float32.Index(): makeBinaryKernel(addT[float32]),
	dtype.Float64.Index(): makeBinaryKernel(addT[float64]),
}

var SubTable = BinaryTable{
	dtype.Int8.Index():    makeBinaryKernel(subT[int8]),
	dtype.Int16.Index():   makeBinaryKernel(subT[int16]),
	dtype.Int32.Index():   makeBinaryKernel(subT[int32]),
	dtype.Int64.Index():   makeBinaryKernel(subT[int64]),
	dtype.Uint8.Index():   makeBinaryKernel(subT[uint8]),
	dtype.Uint16.Index():  makeBinaryKernel(subT[uint16]),
	dtype.Uint32.Index():  makeBinaryKernel(subT[uint32]),
	dtype.Uint64.Index():  makeBinaryKernel(subT[uint64]),
	dtype.Float32.Index(): makeBinaryKernel(subT[float32]),
	dtype.Float64.Index(): makeBinaryKernel(subT[float64]),
}

var MulTable = BinaryTable{
	dtype.Int8.Index():    makeBinaryKernel(mulT[int8]),
	dtype.Int16.Index():   makeBinaryKernel(mulT[int16]),
	dtype.Int32.Index():   makeBinaryKernel(mulT[int32]),
	dtype.Int64.Index():   makeBinaryKernel(mulT[int64]),
	dtype.Uint8.Index():   makeBinaryKernel(mulT[uint8]),
	dtype.Uint16.Index():  makeBinaryKernel(mulT[uint16]),
	dtype.Uint32.Index():  makeBinaryKernel(mulT[uint32]),
	dtype.Uint64.Index():  makeBinaryKernel(mulT[uint64]),
	dtype.Float32.Index(): makeBinaryKernel(mulT[float32]),
	dtype.Float64.Index(): makeBinaryKernel(mulT[float64]),
}

func maxT[T dtype.Numeric](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minT[T dtype.Numeric](a, b T) T {
	if a < b {
		return a
	}
	return b
}

var MaximumTable = BinaryTable{
	dtype.Int8.Index():    makeBinaryKernel(maxT[int8]),
	dtype.Int16.Index():   makeBinaryKernel(maxT[int16]),
	dtype.Int32.Index():   makeBinaryKernel(maxT[int32]),
	dtype.Int64.Index():   makeBinaryKernel(maxT[int64]),
	dtype.Uint8.Index():   makeBinaryKernel(maxT[uint8]),
	dtype.Uint16.Index():  makeBinaryKernel(maxT[uint16]),
	dtype.Uint32.Index():  makeBinaryKernel(maxT[uint32]),
	dtype.Uint64.Index():  makeBinaryKernel(maxT[uint64]),
	dtype.Float32.Index(): makeBinaryKernel(maxT[float32]),
	dtype.Float64.Index(): makeBinaryKernel(maxT[float64]),
}

var MinimumTable = BinaryTable{
	dtype.Int8.Index():    makeBinaryKernel(minT[int8]),
	dtype.Int16.Index():   makeBinaryKernel(minT[int16]),
	dtype.Int32.Index():   makeBinaryKernel(minT[int32]),
	dtype.Int64.Index():   makeBinaryKernel(minT[int64]),
	dtype.Uint8.Index():   makeBinaryKernel(minT[uint8]),
	dtype.Uint16.Index():  makeBinaryKernel(minT[uint16]),
	dtype.Uint32.Index():  makeBinaryKernel(minT[uint32]),
	dtype.Uint64.Index():  makeBinaryKernel(minT[uint64]),
	dtype.Float32.Index(): makeBinaryKernel(minT[float32]),
	dtype.Float64.Index(): makeBinaryKernel(minT[float64]),
}
