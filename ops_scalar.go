// SPDX-License-Identifier: MIT
package numc

import "github.com/katalvlaran/numc/internal/kernel"

// runScalar validates a and out, encodes scalar into a's dtype, and
// dispatches fn with the scalar's address as the "b" operand at stride 0
// (§4.2 "Scalar-right variants": "out = op(a, scalar)"), which lands on
// Path 2 ("right scalar broadcast") inside the shared BinaryFn kernel.
func runScalar(tag string, table kernel.BinaryTable, a *Array, scalar float64, out *Array) error {
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

	bPtr := scalarPointer(a.desc.Dtype, scalar)
	bStrides := make([]int, len(shape)) // zero strides: the scalar broadcasts across every axis

	fn := table[a.desc.Dtype.Index()]
	kernel.RunBinary(fn, shape, a.desc.Ptr(), bPtr, out.desc.Ptr(),
		a.desc.Strides(), bStrides, out.desc.Strides(), a.desc.ElemSize, a.ctx.parallelThreshold())
	return nil
}

// AddScalar writes out = a + scalar.
func AddScalar(a *Array, scalar float64, out *Array) error {
	return runScalar("AddScalar", kernel.AddTable, a, scalar, out)
}

// SubScalar writes out = a - scalar.
func SubScalar(a *Array, scalar float64, out *Array) error {
	return runScalar("SubScalar", kernel.SubTable, a, scalar, out)
}

// MulScalar writes out = a * scalar.
func MulScalar(a *Array, scalar float64, out *Array) error {
	return runScalar("MulScalar", kernel.MulTable, a, scalar, out)
}

// DivScalar writes out = a / scalar.
func DivScalar(a *Array, scalar float64, out *Array) error {
	return runScalar("DivScalar", kernel.DivTable, a, scalar, out)
}

// AddScalarInPlace computes a += scalar.
func AddScalarInPlace(a *Array, scalar float64) error {
	return runScalar("AddScalarInPlace", kernel.AddTable, a, scalar, a)
}

// SubScalarInPlace computes a -= scalar.
func SubScalarInPlace(a *Array, scalar float64) error {
	return runScalar("SubScalarInPlace", kernel.SubTable, a, scalar, a)
}

// MulScalarInPlace computes a *= scalar.
func MulScalarInPlace(a *Array, scalar float64) error {
	return runScalar("MulScalarInPlace", kernel.MulTable, a, scalar, a)
}

// DivScalarInPlace computes a /= scalar.
func DivScalarInPlace(a *Array, scalar float64) error {
	return runScalar("DivScalarInPlace", kernel.DivTable, a, scalar, a)
}
