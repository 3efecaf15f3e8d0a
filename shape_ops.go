// SPDX-License-Identifier: MIT
package numc

// Reshape rewrites a's shape in place, requiring Π newShape == a.Size()
// (§4.1 "Reshape in place"). It fails with ErrContiguous if a is not
// already contiguous; callers wanting a rematerializing reshape should
// call ReshapeCopy instead.
func (a *Array) Reshape(newShape []int) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Reshape", err)
	}
	if err := validateContiguous(a); err != nil {
		return numcErrorf("Reshape", err)
	}
	if err := a.desc.Reshape(newShape); err != nil {
		return numcErrorf("Reshape", translateNdarrayErr(err))
	}
	return nil
}

// ReshapeCopy returns a new, independent array with newShape, built by
// copying a into contiguous form first (so it succeeds regardless of
// a's current contiguity) and reshaping the copy.
func (a *Array) ReshapeCopy(newShape []int) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, numcErrorf("ReshapeCopy", err)
	}
	cp, err := a.Copy()
	if err != nil {
		return nil, numcErrorf("ReshapeCopy", err)
	}
	if err := cp.Reshape(newShape); err != nil {
		return nil, numcErrorf("ReshapeCopy", err)
	}
	return cp, nil
}

// Transpose permutes a's shape and stride arrays in place according to
// axes, a permutation of [0, ndim) (§4.1 "Transpose").
func (a *Array) Transpose(axes []int) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Transpose", err)
	}
	if err := a.desc.Transpose(axes); err != nil {
		return numcErrorf("Transpose", translateNdarrayErr(err))
	}
	return nil
}

// TransposeCopy returns a new array permuted by axes, leaving a
// untouched. Transpose never touches data, only metadata, so the
// returned array shares a's backing bytes (a view, not a byte copy) —
// consistent with Slice, the other view-returning shape operation.
func (a *Array) TransposeCopy(axes []int) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, numcErrorf("TransposeCopy", err)
	}
	clone := a.desc.Clone()
	if err := clone.Transpose(axes); err != nil {
		return nil, numcErrorf("TransposeCopy", translateNdarrayErr(err))
	}
	return &Array{ctx: a.ctx, desc: clone}, nil
}

// Slice produces a new array that is a view over a's buffer along one
// axis (§4.1 "Slice along one axis"). start/stop/step are normalized per
// the spec's rules before the view is constructed.
func (a *Array) Slice(axis, start, stop, step int) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, numcErrorf("Slice", err)
	}
	view, err := a.desc.Slice(axis, start, stop, step)
	if err != nil {
		return nil, numcErrorf("Slice", translateNdarrayErr(err))
	}
	return &Array{ctx: a.ctx, desc: view}, nil
}
