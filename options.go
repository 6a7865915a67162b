// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

import "log/slog"

// Defaults for the table geometry and handle layout.
const (
	DefaultMaxQueues        = 1024   // slots per table
	DefaultMaxElements      = 1024   // elements per queue
	DefaultIndexBits        = 15     // keeps the handle a non-negative int32
	DefaultGenerationBits   = 16     // low half of the handle
	DefaultIndexOffset      = 0x1221 // added to the slot index
	DefaultGenerationOffset = 0x0502 // added to the generation counter
)

// Options configures table creation.
type Options struct {
	// Geometry
	maxQueues int
	elements  int

	// Handle layout
	indexBits   uint
	genBits     uint
	indexOffset uint32
	genOffset   uint32

	logger *slog.Logger
}

// Builder creates tables with fluent configuration.
//
// Everything a Builder sets is part of the handle contract and is fixed
// once the table is built: there is no resizing and no re-layout.
//
// Example:
//
//	// Default layout, 1024 queues of 1024 elements
//	t := ticketq.New(ticketq.DefaultMaxQueues).Build()
//
//	// 16 small queues behind a lock, shared by several goroutines
//	s := ticketq.New(16).Elements(64).BuildSync()
//
//	// Narrow generation field (handles wear out after 15 creates)
//	t := ticketq.New(4).Fields(15, 4).Offsets(0x1221, 0).Build()
type Builder struct {
	opts Options
}

// New creates a table builder for maxQueues concurrently live queues.
//
// Panics if maxQueues < 1.
func New(maxQueues int) *Builder {
	if maxQueues < 1 {
		panic("ticketq: maxQueues must be >= 1")
	}
	return &Builder{opts: Options{
		maxQueues:   maxQueues,
		elements:    DefaultMaxElements,
		indexBits:   DefaultIndexBits,
		genBits:     DefaultGenerationBits,
		indexOffset: DefaultIndexOffset,
		genOffset:   DefaultGenerationOffset,
	}}
}

// Elements sets the maximum number of elements per queue.
// Create uses it as the queue capacity; CreateCap accepts anything up to it.
//
// Panics if n < 1.
func (b *Builder) Elements(n int) *Builder {
	if n < 1 {
		panic("ticketq: elements must be >= 1")
	}
	b.opts.elements = n
	return b
}

// Fields sets the bit widths of the index and generation fields.
// The generation field occupies the low bits.
//
// Panics if either width is zero or their sum exceeds 32.
func (b *Builder) Fields(indexBits, generationBits uint) *Builder {
	if indexBits == 0 || generationBits == 0 {
		panic("ticketq: field widths must be >= 1")
	}
	if indexBits+generationBits > 32 {
		panic("ticketq: field widths exceed 32 bits")
	}
	b.opts.indexBits = indexBits
	b.opts.genBits = generationBits
	return b
}

// Offsets sets the values added to the slot index and the generation
// counter before they are packed.
//
// Whether every slot index still fits its field after the offset is
// checked when a handle is minted, not here: a table whose upper slots
// cannot be addressed reports ErrInconsistentState from Create once the
// scan reaches them.
func (b *Builder) Offsets(indexOffset, generationOffset uint32) *Builder {
	b.opts.indexOffset = indexOffset
	b.opts.genOffset = generationOffset
	return b
}

// Logger sets a structured logger for table events.
// Internal inconsistencies are logged at Error, everything else at Debug.
// A nil logger discards.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates a Table for single-goroutine use.
//
// Panics if an offset does not fit its field.
func (b *Builder) Build() *Table {
	o := b.opts
	if uint64(o.indexOffset) > 1<<o.indexBits-1 {
		panic("ticketq: index offset exceeds index field")
	}
	if uint64(o.genOffset) >= 1<<o.genBits-1 {
		panic("ticketq: generation offset leaves no generations")
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return newTable(&o)
}

// BuildSync creates a SyncTable, safe for use by multiple goroutines.
func (b *Builder) BuildSync() *SyncTable {
	return &SyncTable{t: b.Build()}
}
