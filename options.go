// SPDX-License-Identifier: MIT
package numc

import "github.com/katalvlaran/numc/internal/arena"

// Documented defaults (single source of truth), the way
// matrix/options.go's Default* constants back defaultOptions.
const (
	// DefaultBlockBytes is the arena's block growth size.
	DefaultBlockBytes = arena.DefaultBlockBytes

	// DefaultAlignment is the byte alignment guaranteed for array data
	// allocated by this library (§3: "aligned to at least 32 bytes...
	// to enable wide SIMD loads").
	DefaultAlignment = arena.DefaultAlignment

	// DefaultParallelThreshold is the byte-volume gate (§4.2) above which
	// the element-wise and matmul engines parallelize their outer loop.
	// Full and axis reductions always run on the calling goroutine.
	DefaultParallelThreshold = 1 << 20
)

const (
	panicBlockBytesInvalid = "numc: WithBlockBytes: blockBytes must be positive"
	panicAlignmentInvalid  = "numc: WithAlignment: alignment must be a positive power of two"
	panicThresholdInvalid  = "numc: WithParallelThreshold: threshold must be non-negative"
)

// ContextOption configures a Context at creation time.
type ContextOption func(*contextOptions)

type contextOptions struct {
	blockBytes        int
	parallelThreshold int
}

func defaultContextOptions() contextOptions {
	return contextOptions{
		blockBytes:        DefaultBlockBytes,
		parallelThreshold: DefaultParallelThreshold,
	}
}

func gatherContextOptions(user ...ContextOption) contextOptions {
	o := defaultContextOptions()
	for _, set := range user {
		set(&o)
	}
	return o
}

// WithBlockBytes overrides the arena's block growth size. Panics if
// blockBytes is not positive.
func WithBlockBytes(blockBytes int) ContextOption {
	if blockBytes <= 0 {
		panic(panicBlockBytesInvalid)
	}
	return func(o *contextOptions) { o.blockBytes = blockBytes }
}

// WithParallelThreshold overrides the byte-volume gate (§4.2) above which
// the element-wise and matmul engines spawn worker goroutines for the
// outer loop; reductions do not consult it. A threshold of 0 disables the gate
// entirely, parallelizing every call whose outer dimension has more than
// one element.
func WithParallelThreshold(threshold int) ContextOption {
	if threshold < 0 {
		panic(panicThresholdInvalid)
	}
	return func(o *contextOptions) { o.parallelThreshold = threshold }
}

// ArrayOption configures a single array at creation time.
type ArrayOption func(*arrayOptions)

type arrayOptions struct {
	alignment int
}

func defaultArrayOptions() arrayOptions {
	return arrayOptions{alignment: DefaultAlignment}
}

func gatherArrayOptions(base arrayOptions, user ...ArrayOption) arrayOptions {
	o := base
	for _, set := range user {
		set(&o)
	}
	return o
}

// WithAlignment requests a stronger byte alignment than DefaultAlignment
// for one array's backing storage. alignment must be a positive power of
// two.
func WithAlignment(alignment int) ArrayOption {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		panic(panicAlignmentInvalid)
	}
	return func(o *arrayOptions) { o.alignment = alignment }
}
