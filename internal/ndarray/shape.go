package ndarray

import (
	"unsafe"

	"github.com/katalvlaran/numc/internal/arena"
)

// Reshape rewrites d's shape and strides in place to newShape, requiring
// Π newShape == d.Size (§4.1 "Reshape in place"). It succeeds only when
// d is already contiguous; the spec allows either rejecting or silently
// rematerializing non-contiguous inputs and states the preferred
// behavior is to reject, which is what this does — callers wanting a
// rematerializing reshape call Contiguous first (reshape_copy at the
// facade layer).
func (d *Descriptor) Reshape(newShape []int) error {
	size, overflow := product(newShape)
	if overflow {
		return ErrOverflow
	}
	if size != d.Size {
		return ErrShape
	}
	if !d.IsContig {
		return ErrNotContig
	}

	d.setShape(newShape)
	d.setStrides(cStrides(newShape, d.ElemSize))
	d.recomputeContiguity()

	return nil
}

// Transpose permutes d's shape and stride arrays in place according to
// axes, a permutation of [0, ndim). Duplicate or out-of-range axes are
// rejected (§4.1 "Transpose").
func (d *Descriptor) Transpose(axes []int) error {
	n := d.ndim
	if len(axes) != n {
		return ErrRank
	}
	seen := make([]bool, n)
	for _, ax := range axes {
		if ax < 0 || ax >= n || seen[ax] {
			return ErrShape
		}
		seen[ax] = true
	}

	oldShape := append([]int(nil), d.Shape()...)
	oldStrides := append([]int(nil), d.Strides()...)
	newShape := make([]int, n)
	newStrides := make([]int, n)
	for i, ax := range axes {
		newShape[i] = oldShape[ax]
		newStrides[i] = oldStrides[ax]
	}

	d.setShape(newShape)
	d.setStrides(newStrides)
	d.recomputeContiguity()

	return nil
}

// InversePermutation returns the permutation p such that applying p to
// the result of axes undoes it: Transpose(axes) then
// Transpose(InversePermutation(axes)) restores the original layout
// (§8 invariant 6, "Transpose is self-inverse").
func InversePermutation(axes []int) []int {
	inv := make([]int, len(axes))
	for i, ax := range axes {
		inv[ax] = i
	}
	return inv
}

// Slice produces a new Descriptor that is a view over d's buffer along
// one axis (§4.1 "Slice along one axis"). start/stop/step are normalized
// per the spec's rules before the view is constructed.
func (d *Descriptor) Slice(axis, start, stop, step int) (*Descriptor, error) {
	n := d.ndim
	if axis < 0 || axis >= n {
		return nil, ErrAxis
	}

	shape := d.Shape()
	strides := d.Strides()
	extent := shape[axis]

	if step == 0 {
		step = 1
	}
	if stop == 0 || stop > extent {
		stop = extent
	}
	if start >= extent {
		start = extent - 1
		if start < 0 {
			start = 0
		}
	}
	if start < 0 {
		start = 0
	}
	if start >= stop {
		return nil, ErrRange
	}

	newLen := (stop - start + step - 1) / step

	newShape := append([]int(nil), shape...)
	newStrides := append([]int(nil), strides...)
	newShape[axis] = newLen
	newStrides[axis] = strides[axis] * step

	offset := start * strides[axis]
	view := &Descriptor{
		Dtype:    d.Dtype,
		ElemSize: d.ElemSize,
		Capacity: d.Capacity - offset,
		Data:     d.Data[offset:],
	}
	size, overflow := product(newShape)
	if overflow {
		return nil, ErrOverflow
	}
	view.Size = size
	view.setShape(newShape)
	view.setStrides(newStrides)
	view.recomputeContiguity()

	return view, nil
}

// collapse merges adjacent dimensions whose strides admit merging
// (c_stride[k-1] == a_stride[i] * a_shape[i]) into a single dimension,
// yielding a minimal-rank iteration shape that still visits every
// element exactly once (§4.1 step 1 of Rematerialize).
func collapse(shape, strides []int) (cShape, cStrides []int) {
	n := len(shape)
	if n == 0 {
		return nil, nil
	}
	cShape = make([]int, 0, n)
	cStrides = make([]int, 0, n)
	cShape = append(cShape, shape[n-1])
	cStrides = append(cStrides, strides[n-1])

	for i := n - 2; i >= 0; i-- {
		last := len(cShape) - 1
		if shape[i] == 1 {
			continue
		}
		if strides[i] == cStrides[last]*cShape[last] {
			cShape[last] *= shape[i]
			continue
		}
		cShape = append(cShape, shape[i])
		cStrides = append(cStrides, strides[i])
	}

	// cShape/cStrides were built innermost-first; reverse to outermost-first.
	for l, r := 0, len(cShape)-1; l < r; l, r = l+1, r-1 {
		cShape[l], cShape[r] = cShape[r], cShape[l]
		cStrides[l], cStrides[r] = cStrides[r], cStrides[l]
	}

	return cShape, cStrides
}

// Contiguous rematerializes d into contiguous form in place, allocating
// a fresh buffer from a (§4.1 "Rematerialize to contiguous"). It is a
// no-op when d.IsContig is already true.
func (d *Descriptor) Contiguous(a *arena.Arena) error {
	if d.IsContig {
		return nil
	}

	shape := d.Shape()
	collapsedShape, collapsedSrcStrides := collapse(shape, d.Strides())
	// The destination is a brand-new canonical buffer for `shape`; the
	// same collapsedShape grouping applied to canonical strides reaches
	// the same bytes a full-rank walk over `shape` would, since both are
	// just different groupings of one contiguous linear run.
	collapsedDstStrides := cStrides(collapsedShape, d.ElemSize)

	fresh, err := New(a, d.Dtype, shape)
	if err != nil {
		return err
	}

	copyCollapsed(fresh.Ptr(), collapsedDstStrides, d.Ptr(), collapsedSrcStrides, collapsedShape, d.ElemSize)

	d.Data = fresh.Data
	d.Capacity = fresh.Capacity
	d.setStrides(cStrides(shape, d.ElemSize))
	d.recomputeContiguity()

	return nil
}

// copyCollapsed copies src (iterated with srcStrides over cShape) into
// dst (iterated with dstStrides over the same cShape), element by
// element, using elemSize-byte moves. When the innermost collapsed
// dimension is itself contiguous on both sides, whole rows are copied
// with a single runtime copy instead of a per-element loop (§4.1 step 2).
func copyCollapsed(dst unsafe.Pointer, dstStrides []int, src unsafe.Pointer, srcStrides []int, cShape []int, elemSize int) {
	n := len(cShape)
	if n == 0 {
		return
	}
	innerContig := cShape[n-1] > 0 &&
		dstStrides[n-1] == elemSize && srcStrides[n-1] == elemSize

	var walk func(dim int, dp, sp unsafe.Pointer)
	walk = func(dim int, dp, sp unsafe.Pointer) {
		if dim == n-1 {
			if innerContig {
				dstSlice := unsafe.Slice((*byte)(dp), cShape[dim]*elemSize)
				srcSlice := unsafe.Slice((*byte)(sp), cShape[dim]*elemSize)
				copy(dstSlice, srcSlice)
				return
			}
			d, s := dp, sp
			for i := 0; i < cShape[dim]; i++ {
				dstSlice := unsafe.Slice((*byte)(d), elemSize)
				srcSlice := unsafe.Slice((*byte)(s), elemSize)
				copy(dstSlice, srcSlice)
				d = unsafe.Add(d, dstStrides[dim])
				s = unsafe.Add(s, srcStrides[dim])
			}
			return
		}
		d, s := dp, sp
		for i := 0; i < cShape[dim]; i++ {
			walk(dim+1, d, s)
			d = unsafe.Add(d, dstStrides[dim])
			s = unsafe.Add(s, srcStrides[dim])
		}
	}
	walk(0, dst, src)
}

// WriteRaw overwrites d's data buffer with size*elemSize bytes copied
// verbatim from src, assuming C-order layout on the caller's side
// (§4.1 "Write raw bytes"). d must be contiguous; callers needing to
// bulk-load into a view should Contiguous first.
func (d *Descriptor) WriteRaw(src []byte) error {
	want := d.Size * d.ElemSize
	if len(src) != want {
		return ErrShape
	}
	if !d.IsContig {
		return ErrNotContig
	}
	copy(d.Data[:want], src)

	return nil
}

// CopyInto copies every logical element of d (read through its own
// strides) into dst, which must already have matching shape/dtype. Used
// to implement array_copy and reshape_copy's underlying rematerialize.
func (d *Descriptor) CopyInto(dst *Descriptor) {
	walkAllZip(d.Shape(), d.Strides(), d.Ptr(), dst.Strides(), dst.Ptr(), d.ElemSize)
}

func walkAllZip(shape, srcStrides []int, src unsafe.Pointer, dstStrides []int, dst unsafe.Pointer, elemSize int) {
	n := len(shape)
	if n == 0 {
		copy(unsafe.Slice((*byte)(dst), elemSize), unsafe.Slice((*byte)(src), elemSize))
		return
	}
	if n == 1 {
		s, dd := src, dst
		for i := 0; i < shape[0]; i++ {
			copy(unsafe.Slice((*byte)(dd), elemSize), unsafe.Slice((*byte)(s), elemSize))
			s = unsafe.Add(s, srcStrides[0])
			dd = unsafe.Add(dd, dstStrides[0])
		}
		return
	}
	s, dd := src, dst
	for i := 0; i < shape[0]; i++ {
		walkAllZip(shape[1:], srcStrides[1:], s, dstStrides[1:], dd, elemSize)
		s = unsafe.Add(s, srcStrides[0])
		dd = unsafe.Add(dd, dstStrides[0])
	}
}
