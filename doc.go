// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ticketq provides a fixed-size table of bounded integer queues
// addressed by generational handles ("tickets").
//
// A table holds at most Cap() live queues. Creating a queue takes the
// lowest free slot and returns a [Handle] that encodes the slot index and
// a generation number. Destroying the queue frees the slot; the next
// Create may reuse it, but the old handle carries the old generation and
// is rejected from then on instead of silently reaching the new queue.
//
// # Quick Start
//
//	t := ticketq.New(ticketq.DefaultMaxQueues).Build()
//
//	h, err := t.Create()
//	if err != nil {
//	    // ErrTableFull: destroy something first
//	}
//
//	t.Enqueue(h, 11)
//	t.Enqueue(h, 12)
//
//	v, _ := t.Dequeue(h) // 11
//	v, _ = t.Dequeue(h)  // 12
//
//	t.Destroy(h)
//	_, err = t.Dequeue(h) // ErrInvalidHandle
//
// # Handles
//
// A handle is a single uint32:
//
//	bits  31 .. 16            15 .. 0
//	      index+IndexOffset   generation+GenerationOffset
//
// with the default 15-bit index field (top bit clear) and 16-bit
// generation field. Widths and offsets are set with [Builder.Fields] and
// [Builder.Offsets] and are fixed for the life of the table.
//
// The generation counter is global to the table and only moves forward.
// Every mint consumes one value, even a mint whose generation turned out
// not to fit the field. When the field is exhausted, Create reports
// [ErrInconsistentState] from then on; generations are never reused.
//
// # Validation
//
// Every operation resolves its handle first:
//
//  1. decode the index field; out of range → ErrInvalidHandle
//  2. slot empty → ErrInvalidHandle
//  3. stored handle differs (stale or forged) → ErrInvalidHandle
//  4. head/count out of bounds, or stored generation zero → ErrInconsistentState
//
// Only then is the queue read or modified. No operation fails halfway.
//
// # Error Handling
//
// Failures are returned as [*Error] values carrying an operation name, a
// [Kind] and a description. Match them with errors.Is against the
// sentinels, or use [KindOf].
//
// [ErrTableFull], [ErrQueueFull] and [ErrQueueEmpty] wrap
// [code.hybscloud.com/iox.ErrWouldBlock]: they are backpressure, not
// failures.
//
//	ticketq.IsWouldBlock(err)  // true if table full, queue full or empty
//	ticketq.IsSemantic(err)    // true if control flow signal
//	ticketq.IsNonFailure(err)  // true if nil or would-block
//
// [ErrInconsistentState] means an invariant the table maintains itself was
// broken. Treat it as fatal to the operation, not to the process.
//
// The description of the latest failure is also kept in [Table.LastError];
// it is not cleared by later successes.
//
// # Thread Safety
//
// [Table] is for one goroutine. [SyncTable] serializes every call behind
// a single table-wide spin lock and may be shared:
//
//	s := ticketq.New(64).Elements(256).BuildSync()
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for the lock word and
// [code.hybscloud.com/spin] for CPU pause instructions.
package ticketq
