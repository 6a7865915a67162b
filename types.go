// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

// Manager is the full handle-based queue interface.
//
// Both *Table (single goroutine) and *SyncTable (shared) implement it.
//
// Example:
//
//	var m ticketq.Manager = ticketq.New(8).Build()
//
//	h, err := m.Create()
//	if err != nil {
//	    // ErrTableFull or ErrInconsistentState
//	}
//	defer m.Destroy(h)
//
//	m.Enqueue(h, 42)
//	v, _ := m.Dequeue(h) // 42
type Manager interface {
	Producer
	Consumer

	// Create allocates the lowest free slot and returns a fresh handle.
	Create() (Handle, error)

	// Destroy frees the slot named by h. Any copy of h is dead afterwards.
	Destroy(h Handle) error

	// Inspect returns a read-only textual dump of the queue.
	Inspect(h Handle) (string, error)

	// Cap returns the number of slots.
	Cap() int
}

// Producer is the interface for appending to handle-addressed queues.
type Producer interface {
	// Enqueue appends v to the queue named by h.
	// Returns ErrQueueFull if the queue is at capacity,
	// ErrInvalidHandle if h is not live.
	Enqueue(h Handle, v int) error
}

// Consumer is the interface for taking from handle-addressed queues.
type Consumer interface {
	// Dequeue removes and returns the oldest element of the queue named by h.
	// Returns (0, ErrQueueEmpty) if the queue is empty,
	// ErrInvalidHandle if h is not live.
	Dequeue(h Handle) (int, error)
}

var (
	_ Manager = (*Table)(nil)
	_ Manager = (*SyncTable)(nil)
)
