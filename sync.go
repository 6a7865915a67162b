// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

// SyncTable is a Table shared by multiple goroutines.
//
// Every call holds one table-wide lock for its whole duration, so handle
// validation and the mutation that follows are atomic with respect to
// other callers. A handle may be used from any goroutine; holding it does
// not confer exclusive access to its queue.
//
// Backpressure errors (ErrQueueFull, ErrQueueEmpty, ErrTableFull) are
// returned immediately; retry with [iox.Backoff]:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := s.Dequeue(h)
//	    if err == nil {
//	        backoff.Reset()
//	        process(v)
//	        continue
//	    }
//	    if !ticketq.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// LastError is shared by all callers and therefore only meaningful when
// a single goroutine is active; prefer the returned error values.
type SyncTable struct {
	mu spinLock
	t  *Table
}

// NewSyncTable wraps t. The caller must not use t directly afterwards.
func NewSyncTable(t *Table) *SyncTable {
	return &SyncTable{t: t}
}

// Create creates a queue of the table's default element capacity.
func (s *SyncTable) Create() (Handle, error) {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.Create()
}

// CreateCap creates a queue holding at most capacity elements.
func (s *SyncTable) CreateCap(capacity int) (Handle, error) {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.CreateCap(capacity)
}

// Destroy deletes the queue named by h.
func (s *SyncTable) Destroy(h Handle) error {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.Destroy(h)
}

// Enqueue appends v to the queue named by h.
func (s *SyncTable) Enqueue(h Handle, v int) error {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.Enqueue(h, v)
}

// Dequeue removes and returns the oldest element of the queue named by h.
func (s *SyncTable) Dequeue(h Handle) (int, error) {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.Dequeue(h)
}

// Len returns the number of elements in the queue named by h.
func (s *SyncTable) Len(h Handle) (int, error) {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.Len(h)
}

// Inspect returns a one-line dump of the queue named by h.
func (s *SyncTable) Inspect(h Handle) (string, error) {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.Inspect(h)
}

// Cap returns the number of slots.
func (s *SyncTable) Cap() int {
	return s.t.Cap()
}

// Live returns the number of occupied slots.
func (s *SyncTable) Live() int {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.Live()
}

// LastError returns the description of the most recent failure by any caller.
func (s *SyncTable) LastError() string {
	s.mu.lock()
	defer s.mu.unlock()
	return s.t.LastError()
}
