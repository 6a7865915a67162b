// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"code.hybscloud.com/ticketq"
)

// =============================================================================
// Builder API Tests
// =============================================================================

// TestBuilderDefaults tests the geometry of a default table.
func TestBuilderDefaults(t *testing.T) {
	tb := ticketq.New(ticketq.DefaultMaxQueues).Build()
	if tb.Cap() != ticketq.DefaultMaxQueues {
		t.Fatalf("Cap: got %d, want %d", tb.Cap(), ticketq.DefaultMaxQueues)
	}
	if tb.Elements() != ticketq.DefaultMaxElements {
		t.Fatalf("Elements: got %d, want %d", tb.Elements(), ticketq.DefaultMaxElements)
	}
	h, err := tb.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if h != 0x12210503 {
		t.Fatalf("first handle: got %v, want 0x12210503", h)
	}

	// Every slot of a default table is addressable
	for i := 1; i < ticketq.DefaultMaxQueues; i++ {
		if _, err := tb.Create(); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}
}

// TestBuilderCustomLayout tests a non-default handle layout end to end.
func TestBuilderCustomLayout(t *testing.T) {
	tb := ticketq.New(16).Fields(8, 24).Offsets(1, 100).Elements(3).Build()

	h, err := tb.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// index 0 + 1 in the top byte, generation 1 + 100 below
	if h != 1<<24|101 {
		t.Fatalf("handle: got %v, want %v", h, ticketq.Handle(1<<24|101))
	}
	if c, _ := tb.QueueCap(h); c != 3 {
		t.Fatalf("QueueCap: got %d, want 3", c)
	}
}

// TestPanicBuilder tests that nonsensical configurations panic.
func TestPanicBuilder(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{"ZeroQueues", func() { ticketq.New(0) }},
		{"NegativeQueues", func() { ticketq.New(-1) }},
		{"ZeroElements", func() { ticketq.New(4).Elements(0) }},
		{"ZeroIndexBits", func() { ticketq.New(4).Fields(0, 16) }},
		{"ZeroGenerationBits", func() { ticketq.New(4).Fields(16, 0) }},
		{"WiderThanHandle", func() { ticketq.New(4).Fields(17, 16) }},
		{"IndexOffsetTooWide", func() { ticketq.New(4).Offsets(0x8000, 0).Build() }},
		{"NoGenerationsLeft", func() { ticketq.New(4).Offsets(0, 0xffff).Build() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic")
				}
			}()
			tt.build()
		})
	}
}

// TestBuilderLogger tests that inconsistencies are logged at Error and
// routine events at Debug.
func TestBuilderLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
	tb := ticketq.New(4).Fields(3, 16).Offsets(5, ticketq.DefaultGenerationOffset).Logger(logger).Build()

	for range 3 {
		if _, err := tb.Create(); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("debug events leaked at error level: %s", buf.String())
	}

	if _, err := tb.Create(); !errors.Is(err, ticketq.ErrInconsistentState) {
		t.Fatalf("Create: got %v, want ErrInconsistentState", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "op=create") {
		t.Fatalf("inconsistency not logged: %q", out)
	}
}
