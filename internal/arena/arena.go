// Package arena implements the bump allocator numc.Context uses for every
// array it owns. It is the one external collaborator the spec describes
// only by interface (§6 "Allocator contract (consumed)"); since no
// library in the retrieval pack offers an aligned bump arena, this is a
// small first-party implementation written in the teacher's Stage-
// commented idiom rather than borrowed from any one file.
//
// Design:
//   - Memory is grown in blocks; a block is never moved or resized, so
//     pointers handed out by Alloc stay valid for the arena's lifetime.
//   - Alloc bumps an offset within the current block, padding for
//     alignment; when the current block cannot satisfy a request, a new
//     block is appended (sized to fit the request if it exceeds the
//     default block size).
//   - Reset and Free both invalidate every prior allocation. Reset keeps
//     the blocks (and their capacity) around for reuse; Free releases
//     everything.
//   - Checkpoint/Restore support scratch-scoped lifetimes (rematerialize
//     buffers, broadcast stride arrays) without giving up the rest of the
//     arena's contents.
package arena

import (
	"fmt"
)

// DefaultBlockBytes is the block size used when a Context does not
// override it via an arena option.
const DefaultBlockBytes = 1 << 20 // 1 MiB

// DefaultAlignment is the alignment numc guarantees for library-allocated
// array data, sufficient for wide SIMD loads per §3.
const DefaultAlignment = 32

type block struct {
	buf    []byte
	offset int
}

// Arena is a bump allocator over a growing list of blocks. It is not
// safe for concurrent use; a Context holds exactly one Arena and numc
// Contexts are documented as not shared across goroutines without
// external synchronization (§5).
type Arena struct {
	blockBytes int
	blocks     []*block
}

// Checkpoint is an opaque snapshot of an Arena's allocation frontier,
// returned by Checkpoint and consumed by Restore.
type Checkpoint struct {
	blockIndex int
	offset     int
}

// New creates an Arena that grows in blocks of blockBytes. A
// non-positive blockBytes falls back to DefaultBlockBytes.
func New(blockBytes int) *Arena {
	if blockBytes <= 0 {
		blockBytes = DefaultBlockBytes
	}
	a := &Arena{blockBytes: blockBytes}
	a.blocks = append(a.blocks, newBlock(blockBytes))

	return a
}

func newBlock(size int) *block {
	return &block{buf: make([]byte, size)}
}

func alignUp(offset, alignment int) int {
	if alignment <= 1 {
		return offset
	}
	return (offset + alignment - 1) &^ (alignment - 1)
}

// Alloc returns a size-byte slice aligned to alignment, backed by arena
// storage. It never returns an error through the return value per se:
// callers that need the §7 ErrAlloc semantics check for a nil result.
// Alignment must be a power of two; 0 or 1 mean "no alignment required".
func (a *Arena) Alloc(size, alignment int) []byte {
	if size < 0 {
		return nil
	}
	if size == 0 {
		return []byte{}
	}
	if alignment <= 0 {
		alignment = 1
	}

	// Stage 1: try the current (last) block.
	b := a.blocks[len(a.blocks)-1]
	start := alignUp(b.offset, alignment)
	if start+size <= len(b.buf) {
		b.offset = start + size
		return b.buf[start : start+size : start+size]
	}

	// Stage 2: current block can't fit this request; append a fresh one,
	// sized to the larger of the default block size and the request
	// itself (plus alignment slack) so a single oversized allocation
	// doesn't fragment the arena into many half-empty blocks.
	need := size + alignment
	blockSize := a.blockBytes
	if need > blockSize {
		blockSize = need
	}
	nb := newBlock(blockSize)
	start = alignUp(0, alignment)
	nb.offset = start + size
	a.blocks = append(a.blocks, nb)

	return nb.buf[start : start+size : start+size]
}

// Reset invalidates every allocation made so far but keeps the
// underlying blocks for reuse, collapsing them back to a single block
// to bound long-run memory growth.
func (a *Arena) Reset() {
	if len(a.blocks) == 0 {
		a.blocks = append(a.blocks, newBlock(a.blockBytes))
		return
	}
	first := a.blocks[0]
	first.offset = 0
	a.blocks = a.blocks[:1]
}

// Free releases all memory held by the arena. The Arena must not be used
// afterward except through a fresh call to New.
func (a *Arena) Free() {
	a.blocks = nil
}

// Checkpoint captures the arena's current allocation frontier.
func (a *Arena) Checkpoint() Checkpoint {
	last := len(a.blocks) - 1
	return Checkpoint{blockIndex: last, offset: a.blocks[last].offset}
}

// Restore rewinds the arena to a previously captured Checkpoint,
// invalidating every allocation made since. It panics if cp was taken
// from a different arena lifetime (e.g. after Free), which is a
// programmer error, not a runtime condition callers should recover from.
func (a *Arena) Restore(cp Checkpoint) {
	if cp.blockIndex >= len(a.blocks) {
		panic(fmt.Sprintf("arena: checkpoint from a block index %d beyond current %d blocks", cp.blockIndex, len(a.blocks)))
	}
	a.blocks = a.blocks[:cp.blockIndex+1]
	a.blocks[cp.blockIndex].offset = cp.offset
}
