// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// slot is one table position. An empty slot has used == false and holds
// nothing worth reading.
type slot struct {
	used   bool
	handle Handle // last handle issued for this slot; carries the live generation
	q      ring
}

// Table is a fixed-size table of integer queues addressed by Handle.
//
// Queues are created lowest-free-slot first. Every operation validates the
// handle (range, occupancy, generation, slot invariants) before it touches
// anything, so a failing call never leaves a queue half-modified.
//
// Table is not safe for concurrent use. Wrap it in a SyncTable (or build
// one with Builder.BuildSync) when several goroutines share it.
type Table struct {
	slots    []slot
	codec    codec
	elements int
	live     int
	lastErr  string
	logger   *slog.Logger
}

func newTable(o *Options) *Table {
	return &Table{
		slots:    make([]slot, o.maxQueues),
		codec:    newCodec(o),
		elements: o.elements,
		lastErr:  "no error",
		logger:   o.logger,
	}
}

// Create creates a queue of the table's default element capacity.
// Returns ErrTableFull if every slot is occupied.
func (t *Table) Create() (Handle, error) {
	return t.create("create", t.elements)
}

// CreateCap creates a queue holding at most capacity elements.
// The capacity must be in [1, Elements()] and never changes afterwards.
func (t *Table) CreateCap(capacity int) (Handle, error) {
	if capacity < 1 || capacity > t.elements {
		return 0, t.fail("create", KindInvalidArgument,
			"capacity %d outside [1, %d]", capacity, t.elements)
	}
	return t.create("create", capacity)
}

func (t *Table) create(op string, capacity int) (Handle, error) {
	cur := -1
	for i := range t.slots {
		if !t.slots[i].used {
			cur = i
			break
		}
	}
	if cur < 0 {
		return 0, t.fail(op, KindTableFull, "too many queues (max %d)", len(t.slots))
	}

	h, err := t.codec.mint(cur)
	if err != nil {
		return 0, t.fail(op, KindInconsistentState, "%v", err)
	}

	t.slots[cur] = slot{used: true, handle: h, q: newRing(capacity)}
	t.live++
	t.logger.Debug("ticketq: queue created",
		slog.Int("slot", cur),
		slog.String("handle", h.String()),
		slog.Uint64("generation", t.codec.nonce(h)),
		slog.Int("capacity", capacity))
	return h, nil
}

// Destroy deletes the queue named by h and discards its contents.
// The slot becomes available to Create; h is dead from now on.
func (t *Table) Destroy(h Handle) error {
	s, err := t.resolve("destroy", h)
	if err != nil {
		return err
	}
	*s = slot{}
	t.live--
	t.logger.Debug("ticketq: queue destroyed", slog.String("handle", h.String()))
	return nil
}

// Enqueue appends v to the queue named by h.
// Returns ErrQueueFull if the queue is at capacity.
func (t *Table) Enqueue(h Handle, v int) error {
	s, err := t.resolve("enqueue", h)
	if err != nil {
		return err
	}
	if err := s.q.push(v); err != nil {
		return t.fail("enqueue", KindQueueFull, "queue full (max %d elts)", s.q.capacity())
	}
	return nil
}

// Dequeue removes and returns the oldest element of the queue named by h.
// Returns (0, ErrQueueEmpty) if the queue is empty.
func (t *Table) Dequeue(h Handle) (int, error) {
	s, err := t.resolve("dequeue", h)
	if err != nil {
		return 0, err
	}
	v, err := s.q.pop()
	if err != nil {
		return 0, t.fail("dequeue", KindQueueEmpty, "queue empty")
	}
	return v, nil
}

// Len returns the number of elements in the queue named by h.
func (t *Table) Len(h Handle) (int, error) {
	s, err := t.resolve("len", h)
	if err != nil {
		return 0, err
	}
	return s.q.size(), nil
}

// QueueCap returns the capacity of the queue named by h.
func (t *Table) QueueCap(h Handle) (int, error) {
	s, err := t.resolve("cap", h)
	if err != nil {
		return 0, err
	}
	return s.q.capacity(), nil
}

// Inspect returns a one-line dump of the queue named by h, for debugging:
//
//	queue (index=0, nonce=1, count=2, start=0): 11 12
//
// Inspect does not modify the queue.
func (t *Table) Inspect(h Handle) (string, error) {
	s, err := t.resolve("inspect", h)
	if err != nil {
		return "", err
	}
	idx, _ := t.codec.decode(h)

	var sb strings.Builder
	fmt.Fprintf(&sb, "queue (index=%d, nonce=%d, count=%d, start=%d):",
		idx, t.codec.nonce(h), s.q.size(), s.q.head)
	for _, v := range s.q.appendTo(make([]int, 0, s.q.size())) {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String(), nil
}

// Cap returns the number of slots.
func (t *Table) Cap() int {
	return len(t.slots)
}

// Elements returns the default (and maximum) queue capacity.
func (t *Table) Elements() int {
	return t.elements
}

// Live returns the number of occupied slots.
func (t *Table) Live() int {
	return t.live
}

// LastError returns the description of the most recent failure.
// It is "no error" until something fails and is not cleared on success.
func (t *Table) LastError() string {
	return t.lastErr
}

// resolve validates h and returns its slot.
//
// Checks, in order: index in range, slot occupied, generation current,
// slot invariants intact.
func (t *Table) resolve(op string, h Handle) (*slot, error) {
	idx, err := t.codec.decode(h)
	if err != nil {
		return nil, t.fail(op, KindInvalidHandle, "%v", err)
	}
	s := &t.slots[idx]
	if !s.used {
		return nil, t.fail(op, KindInvalidHandle, "handle refers to unused queue index %d", idx)
	}
	if s.handle != h {
		return nil, t.fail(op, KindInvalidHandle,
			"handle refers to old queue (live generation=%d, presented=%d)",
			t.codec.generation(s.handle), t.codec.generation(h))
	}
	if err := s.q.check(); err != nil {
		return nil, t.fail(op, KindInconsistentState, "slot %d: %v", idx, err)
	}
	if t.codec.generation(s.handle) == 0 {
		return nil, t.fail(op, KindInconsistentState, "slot %d: internal inconsistency: generation=0", idx)
	}
	return s, nil
}

// fail records and returns an *Error.
func (t *Table) fail(op string, kind Kind, format string, args ...any) error {
	e := &Error{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
	t.lastErr = e.Error()
	if kind == KindInconsistentState {
		t.logger.Error("ticketq: internal inconsistency", slog.String("op", op), slog.String("detail", e.Detail))
	} else {
		t.logger.Debug("ticketq: operation failed", slog.String("op", op),
			slog.String("kind", kind.String()), slog.String("detail", e.Detail))
	}
	return e
}
