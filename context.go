// SPDX-License-Identifier: MIT
package numc

import "github.com/katalvlaran/numc/internal/arena"

// Context owns a single arena. Every array allocated through a Context
// lives exactly as long as that Context; destroying it (Free) invalidates
// every array and view derived from it (§3 "Context"). Contexts are not
// safe for concurrent mutation (§5): callers that want to allocate
// concurrently should hold one Context per goroutine.
type Context struct {
	arena   *arena.Arena
	opts    contextOptions
	arrOpts arrayOptions
}

// NewContext creates a Context backed by a fresh arena. Options configure
// the arena's block growth size and the byte-volume threshold the
// element-wise and matmul engines gate their parallelism on (reductions
// run sequentially).
func NewContext(opts ...ContextOption) *Context {
	o := gatherContextOptions(opts...)
	return &Context{
		arena:   arena.New(o.blockBytes),
		opts:    o,
		arrOpts: defaultArrayOptions(),
	}
}

// Free releases every byte the Context's arena holds. Arrays and views
// derived from this Context must not be used afterward (§3 "Lifecycle":
// "No individual free: a descriptor cannot outlive its context").
func (c *Context) Free() {
	c.arena.Free()
}

// Reset invalidates every array allocated so far while retaining the
// arena's block capacity for reuse, the bulk-deallocation primitive a
// caller running many short-lived computations in a loop can use instead
// of repeatedly creating and freeing Contexts.
func (c *Context) Reset() {
	c.arena.Reset()
}

func (c *Context) parallelThreshold() int {
	return c.opts.parallelThreshold
}

// defaultArrayOptionsFor returns this Context's per-context default array
// options (currently just alignment), the base gatherArrayOptions starts
// from before applying a Create/Zeros call's own ArrayOptions.
func (c *Context) defaultArrayOptionsFor() arrayOptions {
	return c.arrOpts
}
