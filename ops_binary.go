// SPDX-License-Identifier: MIT
package numc

import "github.com/katalvlaran/numc/internal/kernel"

// runBinary validates a, b, and out, broadcasts a and b's shapes
// (§4.2 "Broadcasting" and its validation rules), checks out already
// matches the broadcast shape, and dispatches fn across the outer
// iteration, parallelizing per the context's byte-volume threshold.
func runBinary(tag string, table kernel.BinaryTable, a, b, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateNotNil(b); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateSameDtype(a, b, out); err != nil {
		return numcErrorf(tag, err)
	}

	outShape, aStrides, bStrides, err := kernel.Broadcast(a.desc.Shape(), a.desc.Strides(), b.desc.Shape(), b.desc.Strides())
	if err != nil {
		return numcErrorf(tag, ErrShape)
	}
	if err := validateShapeEquals(out, outShape); err != nil {
		return numcErrorf(tag, err)
	}

	fn := table[a.desc.Dtype.Index()]
	kernel.RunBinary(fn, outShape, a.desc.Ptr(), b.desc.Ptr(), out.desc.Ptr(),
		aStrides, bStrides, out.desc.Strides(), a.desc.ElemSize, a.ctx.parallelThreshold())
	return nil
}

// Add writes out = a + b, broadcasting a and b per §4.2.
func Add(a, b, out *Array) error { return runBinary("Add", kernel.AddTable, a, b, out) }

// Sub writes out = a - b.
func Sub(a, b, out *Array) error { return runBinary("Sub", kernel.SubTable, a, b, out) }

// Mul writes out = a * b.
func Mul(a, b, out *Array) error { return runBinary("Mul", kernel.MulTable, a, b, out) }

// Div writes out = a / b. See internal/kernel/div.go for the narrow-
// integer casting rule that avoids UB on INT_MIN / -1 (§4.2).
func Div(a, b, out *Array) error { return runBinary("Div", kernel.DivTable, a, b, out) }

// Pow writes out = a ** b. Float pow is exp(b*log(a)) using this
// library's own log/exp (§4.2); 8- and 16-bit integer pow uses a
// branchless fixed-iteration square-and-multiply, 32- and 64-bit integer
// pow an ordinary one, and signed integer pow returns 0 for a negative
// exponent.
func Pow(a, b, out *Array) error { return runBinary("Pow", kernel.PowTable, a, b, out) }

// Maximum writes out = max(a, b) element-wise.
func Maximum(a, b, out *Array) error { return runBinary("Maximum", kernel.MaximumTable, a, b, out) }

// Minimum writes out = min(a, b) element-wise.
func Minimum(a, b, out *Array) error { return runBinary("Minimum", kernel.MinimumTable, a, b, out) }

// AddInPlace computes a += b.
func AddInPlace(a, b *Array) error { return runBinary("AddInPlace", kernel.AddTable, a, b, a) }

// SubInPlace computes a -= b.
func SubInPlace(a, b *Array) error { return runBinary("SubInPlace", kernel.SubTable, a, b, a) }

// MulInPlace computes a *= b.
func MulInPlace(a, b *Array) error { return runBinary("MulInPlace", kernel.MulTable, a, b, a) }

// DivInPlace computes a /= b.
func DivInPlace(a, b *Array) error { return runBinary("DivInPlace", kernel.DivTable, a, b, a) }
