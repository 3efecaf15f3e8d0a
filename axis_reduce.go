// SPDX-License-Identifier: MIT
package numc

import (
	"github.com/katalvlaran/numc/dtype"
	"github.com/katalvlaran/numc/internal/reduce"
)

// removeAxis returns a copy of s with index axis deleted.
func removeAxis(s []int, axis int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:axis]...)
	return append(out, s[axis+1:]...)
}

// axisOutShape builds the expected output shape for reducing axis out of
// shape, per §4.3's keepdim rule: with keepdim the reduced axis survives
// at length 1; without it the axis is dropped and rank falls by one.
func axisOutShape(shape []int, axis int, keepdim bool) []int {
	if keepdim {
		out := append([]int(nil), shape...)
		out[axis] = 1
		return out
	}
	return removeAxis(shape, axis)
}

// axisOutStrides strips the reduced axis's entry from out's own strides
// when keepdim is set, since that axis has length 1 in out and
// contributes nothing to the walk over the remaining (outer) coordinates;
// without keepdim out's strides already have the right length.
func axisOutStrides(out *Array, axis int, keepdim bool) []int {
	strides := out.desc.Strides()
	if keepdim {
		return removeAxis(strides, axis)
	}
	return strides
}

// runAxisReduce validates a/out/axis, checks out already has the keepdim-
// adjusted shape, and walks fn over every outer coordinate via
// reduce.AxisReduce.
func runAxisReduce(tag string, fn reduce.SumFn, a, out *Array, axis int, keepdim bool, requireNonEmptyAxis bool) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateAxis(axis, a.desc.Ndim()); err != nil {
		return numcErrorf(tag, err)
	}

	shape := a.desc.Shape()
	axisLen := shape[axis]
	if requireNonEmptyAxis && axisLen == 0 {
		return numcErrorf(tag, ErrInvalid)
	}
	if err := validateShapeEquals(out, axisOutShape(shape, axis, keepdim)); err != nil {
		return numcErrorf(tag, err)
	}

	strides := a.desc.Strides()
	outerShape := removeAxis(shape, axis)
	dataStrides := removeAxis(strides, axis)
	outStrides := axisOutStrides(out, axis, keepdim)

	reduce.AxisReduce(fn, outerShape, dataStrides, outStrides, axisLen, strides[axis], a.desc.Ptr(), out.desc.Ptr())
	return nil
}

// SumAxis folds axis out of a, writing one sum per remaining coordinate
// into out, in a's own dtype. An empty axis yields 0.
func SumAxis(a *Array, axis int, keepdim bool, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("SumAxis", err)
	}
	if err := validateSameDtype(a, out); err != nil {
		return numcErrorf("SumAxis", err)
	}
	return runAxisReduce("SumAxis", reduce.SumTable[a.desc.Dtype.Index()], a, out, axis, keepdim, false)
}

// MeanAxis folds axis out of a, always producing float64 regardless of
// a's dtype (§4.3). out must already be a float64 array.
func MeanAxis(a *Array, axis int, keepdim bool, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("MeanAxis", err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf("MeanAxis", err)
	}
	if out.desc.Dtype != dtype.Float64 {
		return numcErrorf("MeanAxis", ErrType)
	}
	return runAxisReduce("MeanAxis", reduce.AxisMeanTable[a.desc.Dtype.Index()], a, out, axis, keepdim, false)
}

// MaxAxis folds axis out of a by maximum. A zero-length axis returns
// ErrInvalid (§9 Open Questions resolution, same policy as Max).
func MaxAxis(a *Array, axis int, keepdim bool, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("MaxAxis", err)
	}
	if err := validateSameDtype(a, out); err != nil {
		return numcErrorf("MaxAxis", err)
	}
	fn := reduce.SumFn(reduce.MaxTable[a.desc.Dtype.Index()])
	return runAxisReduce("MaxAxis", fn, a, out, axis, keepdim, true)
}

// MinAxis folds axis out of a by minimum. A zero-length axis returns
// ErrInvalid.
func MinAxis(a *Array, axis int, keepdim bool, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("MinAxis", err)
	}
	if err := validateSameDtype(a, out); err != nil {
		return numcErrorf("MinAxis", err)
	}
	fn := reduce.SumFn(reduce.MinTable[a.desc.Dtype.Index()])
	return runAxisReduce("MinAxis", fn, a, out, axis, keepdim, true)
}

// runArgAxisReduce mirrors runAxisReduce for the index-returning
// reductions: out must be int64 and the reduced axis must be non-empty.
func runArgAxisReduce(tag string, fn reduce.ArgFn, a, out *Array, axis int, keepdim bool) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf(tag, err)
	}
	if out.desc.Dtype != dtype.Int64 {
		return numcErrorf(tag, ErrType)
	}
	if err := validateAxis(axis, a.desc.Ndim()); err != nil {
		return numcErrorf(tag, err)
	}

	shape := a.desc.Shape()
	axisLen := shape[axis]
	if axisLen == 0 {
		return numcErrorf(tag, ErrInvalid)
	}
	if err := validateShapeEquals(out, axisOutShape(shape, axis, keepdim)); err != nil {
		return numcErrorf(tag, err)
	}

	strides := a.desc.Strides()
	outerShape := removeAxis(shape, axis)
	dataStrides := removeAxis(strides, axis)
	outStrides := axisOutStrides(out, axis, keepdim)

	reduce.ArgReduce(fn, outerShape, dataStrides, outStrides, axisLen, strides[axis], a.desc.Ptr(), out.desc.Ptr())
	return nil
}

// ArgmaxAxis writes, for every coordinate with axis removed, the index
// within axis of a's first maximal element there.
func ArgmaxAxis(a *Array, axis int, keepdim bool, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("ArgmaxAxis", err)
	}
	return runArgAxisReduce("ArgmaxAxis", reduce.ArgMaxTable[a.desc.Dtype.Index()], a, out, axis, keepdim)
}

// ArgminAxis writes, for every coordinate with axis removed, the index
// within axis of a's first minimal element there.
func ArgminAxis(a *Array, axis int, keepdim bool, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("ArgminAxis", err)
	}
	return runArgAxisReduce("ArgminAxis", reduce.ArgMinTable[a.desc.Dtype.Index()], a, out, axis, keepdim)
}
