// SPDX-License-Identifier: MIT
package numc

import "github.com/katalvlaran/numc/internal/kernel"

// runUnary validates a and out share dtype and shape, then dispatches fn
// across the outer iteration.
func runUnary(tag string, table kernel.UnaryTable, a, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateSameDtype(a, out); err != nil {
		return numcErrorf(tag, err)
	}
	shape := a.desc.Shape()
	if err := validateShapeEquals(out, shape); err != nil {
		return numcErrorf(tag, err)
	}

	fn := table[a.desc.Dtype.Index()]
	kernel.RunUnary(fn, shape, a.desc.Ptr(), out.desc.Ptr(), a.desc.Strides(), out.desc.Strides(),
		a.desc.ElemSize, a.ctx.parallelThreshold())
	return nil
}

// Neg writes out = -a.
func Neg(a, out *Array) error { return runUnary("Neg", kernel.NegTable, a, out) }

// Abs writes out = |a|.
func Abs(a, out *Array) error { return runUnary("Abs", kernel.AbsTable, a, out) }

// Log writes out = ln(a), computed by this library's own Remez-
// polynomial log kernel rather than the standard math package (§4.2).
func Log(a, out *Array) error { return runUnary("Log", kernel.LogTable, a, out) }

// Exp writes out = e**a, computed by this library's own range-reduced
// exp kernel (§4.2).
func Exp(a, out *Array) error { return runUnary("Exp", kernel.ExpTable, a, out) }

// Sqrt writes out = sqrt(a). Signed integer inputs are clamped to 0
// before the float round-trip (§4.2).
func Sqrt(a, out *Array) error { return runUnary("Sqrt", kernel.SqrtTable, a, out) }

// NegInPlace computes a = -a.
func NegInPlace(a *Array) error { return runUnary("NegInPlace", kernel.NegTable, a, a) }

// AbsInPlace computes a = |a|.
func AbsInPlace(a *Array) error { return runUnary("AbsInPlace", kernel.AbsTable, a, a) }

// Clip writes out[i] = clamp(a[i], min, max) for every element
// (§4.2 unary family: "clip takes two scalar bounds").
func Clip(a *Array, min, max float64, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Clip", err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf("Clip", err)
	}
	if err := validateSameDtype(a, out); err != nil {
		return numcErrorf("Clip", err)
	}
	shape := a.desc.Shape()
	if err := validateShapeEquals(out, shape); err != nil {
		return numcErrorf("Clip", err)
	}

	lo := scalarPointer(a.desc.Dtype, min)
	hi := scalarPointer(a.desc.Dtype, max)
	fn := kernel.Clip[a.desc.Dtype.Index()]
	kernel.RunClip(fn, shape, a.desc.Ptr(), out.desc.Ptr(), lo, hi, a.desc.Strides(), out.desc.Strides(),
		a.desc.ElemSize, a.ctx.parallelThreshold())
	return nil
}

// ClipInPlace computes a = clamp(a, min, max).
func ClipInPlace(a *Array, min, max float64) error {
	return Clip(a, min, max, a)
}
