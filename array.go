// SPDX-License-Identifier: MIT
package numc

import (
	"github.com/katalvlaran/numc/dtype"
	"github.com/katalvlaran/numc/internal/ndarray"
)

// Array is a view over context-owned storage: a dtype, a shape, and the
// byte strides that map a logical index to an address in that storage
// (§3 "Array descriptor"). Arrays never outlive the Context that
// allocated them; the Context is the sole owner of the backing bytes.
type Array struct {
	ctx  *Context
	desc *ndarray.Descriptor
}

// Ndim returns the array's rank.
func (a *Array) Ndim() int { return a.desc.Ndim() }

// Size returns the array's total element count (Π shape).
func (a *Array) Size() int { return a.desc.Size }

// ElemSize returns the array's per-element byte size.
func (a *Array) ElemSize() int { return a.desc.ElemSize }

// Shape returns a copy of the array's current shape; mutating the
// returned slice does not affect the array.
func (a *Array) Shape() []int {
	return append([]int(nil), a.desc.Shape()...)
}

// Strides returns a copy of the array's current byte strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.desc.Strides()...)
}

// Dtype returns the array's element type.
func (a *Array) Dtype() dtype.Dtype { return a.desc.Dtype }

// IsContiguous reports whether the array's strides currently encode
// C-order for its shape (§3 "is_contiguous": "a cached boolean").
func (a *Array) IsContiguous() bool { return a.desc.IsContig }

// Data returns the array's raw backing bytes, from the first logical
// element onward. The returned slice aliases context-owned storage and
// is invalid once the Context is freed.
func (a *Array) Data() []byte { return a.desc.Data }

// Contiguous rematerializes the array into contiguous form in place,
// allocating a fresh buffer from its context's arena if it is not
// already contiguous (§4.1 "Rematerialize to contiguous"). No-op if the
// array is already contiguous.
func (a *Array) Contiguous() error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Contiguous", err)
	}
	if err := a.desc.Contiguous(a.ctx.arena); err != nil {
		return numcErrorf("Contiguous", translateNdarrayErr(err))
	}
	return nil
}
