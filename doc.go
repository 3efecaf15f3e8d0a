// Package numc is an in-process, N-dimensional numeric array library in
// the NumPy tradition: strided array descriptors over arena-owned
// buffers, an element-wise kernel engine with broadcasting, a reduction
// engine (full and per-axis sum/mean/max/min/argmax/argmin), and a dense
// matrix product.
//
// A Context owns one arena; every Array allocated through it lives
// exactly as long as the Context that created it:
//
//	ctx := numc.NewContext()
//	defer ctx.Free()
//
//	a, err := ctx.Zeros(dtype.Float64, []int{3, 4})
//	b, err := ctx.Zeros(dtype.Float64, []int{3, 4})
//	out, err := ctx.Create(dtype.Float64, []int{3, 4})
//	err = numc.Add(a, b, out)
//
// Reshape, Transpose and Slice mutate or view an array's descriptor
// without touching its bytes; Copy and ReshapeCopy produce independent
// arrays, while TransposeCopy returns a view with its own shape and
// strides that shares the original's bytes. Every operation returns one of the
// sentinel errors declared in errors.go, checkable with errors.Is.
//
// There is no package-level logging: callers that want to observe what
// an operation did should inspect its returned error, in keeping with
// this being a computation library rather than a service.
package numc
