// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// Kind classifies a table error.
type Kind uint8

const (
	// KindNone is reported by KindOf for nil and foreign errors.
	KindNone Kind = iota

	// KindInvalidHandle: the handle decodes out of range, names an empty
	// slot, or carries a generation that is no longer live.
	KindInvalidHandle

	// KindTableFull: every slot is occupied.
	KindTableFull

	// KindQueueFull: the queue holds as many elements as its capacity.
	KindQueueFull

	// KindQueueEmpty: the queue holds no elements.
	KindQueueEmpty

	// KindInconsistentState: an invariant the table maintains itself was
	// found violated, or the generation space is exhausted.
	KindInconsistentState

	// KindInvalidArgument: a caller-supplied parameter is out of range.
	KindInvalidArgument
)

var kindNames = [...]string{
	KindNone:              "none",
	KindInvalidHandle:     "invalid handle",
	KindTableFull:         "table full",
	KindQueueFull:         "queue full",
	KindQueueEmpty:        "queue empty",
	KindInconsistentState: "inconsistent state",
	KindInvalidArgument:   "invalid argument",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sentinel errors, one per Kind. Match them with [errors.Is].
//
// ErrTableFull, ErrQueueFull and ErrQueueEmpty wrap [iox.ErrWouldBlock]:
// they are backpressure signals, not failures. The caller decides whether
// to retry (with backoff), destroy something, or give up.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := t.Enqueue(h, v)
//	    if err == nil {
//	        break
//	    }
//	    if !ticketq.IsWouldBlock(err) {
//	        return err // stale handle or internal inconsistency
//	    }
//	    backoff.Wait()
//	}
var (
	ErrInvalidHandle     = errors.New("ticketq: invalid handle")
	ErrTableFull         = fmt.Errorf("ticketq: table full: %w", iox.ErrWouldBlock)
	ErrQueueFull         = fmt.Errorf("ticketq: queue full: %w", iox.ErrWouldBlock)
	ErrQueueEmpty        = fmt.Errorf("ticketq: queue empty: %w", iox.ErrWouldBlock)
	ErrInconsistentState = errors.New("ticketq: internal inconsistency")
	ErrInvalidArgument   = errors.New("ticketq: invalid argument")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidHandle:
		return ErrInvalidHandle
	case KindTableFull:
		return ErrTableFull
	case KindQueueFull:
		return ErrQueueFull
	case KindQueueEmpty:
		return ErrQueueEmpty
	case KindInconsistentState:
		return ErrInconsistentState
	case KindInvalidArgument:
		return ErrInvalidArgument
	}
	return nil
}

// Error is the value returned by every failing table operation.
//
// Op names the operation that failed, Detail is the human-readable
// description. The same text is recorded as the table's LastError.
type Error struct {
	Op     string
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return "ticketq: " + e.Op + ": " + e.Detail
}

// Unwrap returns the sentinel for e.Kind, so errors.Is(err, ErrQueueFull)
// and iox.IsWouldBlock(err) both see through an *Error.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf returns the Kind carried by err, or KindNone.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// IsWouldBlock reports whether err is a backpressure signal
// (table full, queue full, queue empty).
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil and the would-block errors.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
