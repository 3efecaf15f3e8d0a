// SPDX-License-Identifier: MIT
package numc

import "github.com/katalvlaran/numc/internal/matmul"

// Matmul computes out = a @ b for two-dimensional a and b (§4.4 "Dense
// matrix product"): a is (M,K), b is (K,N), out is (M,N), all sharing one
// dtype. a and b may be arbitrary views (including a transposed one) —
// the kernel walks both by row/column byte stride rather than assuming
// row-major layout, so no copy is forced before multiplying.
func Matmul(a, b, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Matmul", err)
	}
	if err := validateNotNil(b); err != nil {
		return numcErrorf("Matmul", err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf("Matmul", err)
	}
	if err := validateSameDtype(a, b, out); err != nil {
		return numcErrorf("Matmul", err)
	}
	if err := validateRank(a, 2); err != nil {
		return numcErrorf("Matmul", err)
	}
	if err := validateRank(b, 2); err != nil {
		return numcErrorf("Matmul", err)
	}
	if err := validateRank(out, 2); err != nil {
		return numcErrorf("Matmul", err)
	}

	aShape, bShape := a.desc.Shape(), b.desc.Shape()
	m, k, k2, n := aShape[0], aShape[1], bShape[0], bShape[1]
	if k != k2 {
		return numcErrorf("Matmul", ErrShape)
	}
	if err := validateShapeEquals(out, []int{m, n}); err != nil {
		return numcErrorf("Matmul", err)
	}

	// Accumulate into zeroed output: Dense's kernels do out[i,j] += ...,
	// so a stale out buffer would corrupt the product (§4.4).
	if err := out.Fill(0); err != nil {
		return numcErrorf("Matmul", err)
	}

	aStrides, bStrides, outStrides := a.desc.Strides(), b.desc.Strides(), out.desc.Strides()
	sa := matmul.Strides2D{Row: aStrides[0], Col: aStrides[1]}
	sb := matmul.Strides2D{Row: bStrides[0], Col: bStrides[1]}
	so := matmul.Strides2D{Row: outStrides[0], Col: outStrides[1]}

	fn := matmul.DenseTable[a.desc.Dtype.Index()]
	matmul.Dense(fn, m, k, n, a.desc.Ptr(), b.desc.Ptr(), out.desc.Ptr(), sa, sb, so, a.desc.ElemSize, a.ctx.parallelThreshold())
	return nil
}
