// SPDX-License-Identifier: MIT
package numc

import (
	"github.com/katalvlaran/numc/dtype"
	"github.com/katalvlaran/numc/internal/ndarray"
)

// Create allocates a new array of shape and dtype from c's arena. Its
// bytes are left as the arena returns them (§3 "Lifecycle": "create
// leaves them uninitialized") — callers that need a guaranteed-zero
// array should call Zeros instead.
func (c *Context) Create(dt dtype.Dtype, shape []int, opts ...ArrayOption) (*Array, error) {
	if !dt.Valid() {
		return nil, numcErrorf("Create", ErrType)
	}
	o := gatherArrayOptions(c.defaultArrayOptionsFor(), opts...)
	d, err := ndarray.NewAligned(c.arena, dt, shape, o.alignment)
	if err != nil {
		return nil, numcErrorf("Create", translateNdarrayErr(err))
	}
	return &Array{ctx: c, desc: d}, nil
}

// Zeros allocates a new array and writes the dtype's zero value to every
// logical element (§3 "Lifecycle": "zeros" is the only constructor that
// guarantees zero-initialized data).
func (c *Context) Zeros(dt dtype.Dtype, shape []int, opts ...ArrayOption) (*Array, error) {
	a, err := c.Create(dt, shape, opts...)
	if err != nil {
		return nil, err
	}
	if err := a.Fill(0); err != nil {
		return nil, numcErrorf("Zeros", err)
	}
	return a, nil
}

// Fill writes value, converted to a's dtype (truncating toward zero for
// integer targets, via the normal IEEE conversion for float targets —
// §4.2 "Scalar conversion"), to every logical element through a's
// stride pattern.
func (a *Array) Fill(value float64) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Fill", err)
	}
	write := fillWriter(a.desc.Dtype, value)
	a.desc.Fill(write)
	return nil
}

// Copy allocates a fresh, contiguous array from a's context with a's
// shape and dtype, and copies every logical element of a into it
// (§8 invariant: "copy(a) is element-wise equal to a and always
// contiguous").
func (a *Array) Copy() (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, numcErrorf("Copy", err)
	}
	dst, err := a.ctx.Create(a.desc.Dtype, a.desc.Shape())
	if err != nil {
		return nil, numcErrorf("Copy", err)
	}
	a.desc.CopyInto(dst.desc)
	return dst, nil
}

// Write overwrites a's data buffer with data, interpreted as
// size*elem_size bytes in C-order (§4.1 "Write raw bytes"). a must be
// contiguous.
func (a *Array) Write(data []byte) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Write", err)
	}
	if err := a.desc.WriteRaw(data); err != nil {
		return numcErrorf("Write", translateNdarrayErr(err))
	}
	return nil
}
