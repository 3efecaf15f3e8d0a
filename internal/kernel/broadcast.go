package kernel

import "errors"

// ErrIncompatibleShapes is returned when two operand shapes cannot be
// aligned by §4.2's broadcasting rule (both extents > 1 and unequal).
var ErrIncompatibleShapes = errors.New("kernel: incompatible broadcast shapes")

// AlignRight left-pads shape and strides with length-1, stride-0
// dimensions until they have ndimOut entries (§4.2 "Broadcasting": align
// shapes to the right, pad the shorter with leading length-1 dims).
func AlignRight(ndimOut int, shape, strides []int) (alignedShape, alignedStrides []int) {
	n := len(shape)
	alignedShape = make([]int, ndimOut)
	alignedStrides = make([]int, ndimOut)
	pad := ndimOut - n
	for i := 0; i < ndimOut; i++ {
		if i < pad {
			alignedShape[i] = 1
			alignedStrides[i] = 0
		} else {
			alignedShape[i] = shape[i-pad]
			alignedStrides[i] = strides[i-pad]
		}
	}
	return alignedShape, alignedStrides
}

// Broadcast aligns a and b to a common rank and synthesizes virtual
// zero-strides on any axis where one operand has extent 1 and the other
// has extent > 1 (§4.2 "Broadcasting"; §4.2 "Broadcast validation
// rules"). It returns the broadcast output shape and the (possibly
// padded, possibly zero-strided) per-operand stride arrays the outer
// iterator walks.
func Broadcast(aShape, aStrides, bShape, bStrides []int) (outShape, outAStrides, outBStrides []int, err error) {
	ndimOut := len(aShape)
	if len(bShape) > ndimOut {
		ndimOut = len(bShape)
	}

	as, astr := AlignRight(ndimOut, aShape, aStrides)
	bs, bstr := AlignRight(ndimOut, bShape, bStrides)

	outShape = make([]int, ndimOut)
	for i := 0; i < ndimOut; i++ {
		da, db := as[i], bs[i]
		switch {
		case da == db:
			outShape[i] = da
		case da == 1:
			astr[i] = 0
			outShape[i] = db
		case db == 1:
			bstr[i] = 0
			outShape[i] = da
		default:
			return nil, nil, nil, ErrIncompatibleShapes
		}
	}

	return outShape, astr, bstr, nil
}

// AxisSort permutes shape and the given per-operand stride arrays by
// descending sum of strides, putting the smallest-stride axis innermost
// for locality (§4.2 "Axis sorting"). A stable insertion sort is used,
// which is more than fast enough since ndim rarely exceeds 8.
func AxisSort(shape []int, strideSets ...[]int) {
	n := len(shape)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	weight := func(axis int) int {
		w := 0
		for _, s := range strideSets {
			w += s[axis]
		}
		return w
	}

	// Insertion sort by descending weight, stable on ties.
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && weight(order[j-1]) < weight(order[j]) {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}

	applyPermutation(shape, order)
	for _, s := range strideSets {
		applyPermutation(s, order)
	}
}

func applyPermutation(s []int, order []int) {
	out := make([]int, len(s))
	for i, idx := range order {
		out[i] = s[idx]
	}
	copy(s, out)
}
