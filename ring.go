// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

import "fmt"

// ring is a fixed-capacity FIFO of ints.
//
// Elements live in buf[head], buf[(head+1)%cap], ... for count entries.
// Capacity does not have to be a power of 2.
type ring struct {
	buf   []int
	head  int
	count int
}

func newRing(capacity int) ring {
	return ring{buf: make([]int, capacity)}
}

// push appends v at the tail.
// Returns ErrQueueFull without touching state if the ring is full.
func (r *ring) push(v int) error {
	if r.count == len(r.buf) {
		return ErrQueueFull
	}
	r.buf[(r.head+r.count)%len(r.buf)] = v
	r.count++
	return nil
}

// pop removes and returns the head element.
// Returns (0, ErrQueueEmpty) without touching state if the ring is empty.
func (r *ring) pop() (int, error) {
	if r.count == 0 {
		return 0, ErrQueueEmpty
	}
	v := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return v, nil
}

func (r *ring) size() int { return r.count }

func (r *ring) capacity() int { return len(r.buf) }

// appendTo appends the elements in FIFO order to dst.
func (r *ring) appendTo(dst []int) []int {
	for i := range r.count {
		dst = append(dst, r.buf[(r.head+i)%len(r.buf)])
	}
	return dst
}

// check validates head and count against the capacity.
func (r *ring) check() error {
	n := len(r.buf)
	if n == 0 || r.head < 0 || r.head >= n || r.count < 0 || r.count > n {
		return fmt.Errorf("internal inconsistency: head=%d, count=%d, cap=%d", r.head, r.count, n)
	}
	return nil
}
