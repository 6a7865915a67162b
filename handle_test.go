// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

import "testing"

// =============================================================================
// Codec - Layout
// =============================================================================

// TestCodecMintLayout checks the packed value against the default layout.
func TestCodecMintLayout(t *testing.T) {
	c := newCodec(&New(4).opts)

	h, err := c.mint(0)
	if err != nil {
		t.Fatalf("mint(0): %v", err)
	}
	if h != 0x12210503 {
		t.Fatalf("mint(0): got %v, want 0x12210503", h)
	}

	h, err = c.mint(3)
	if err != nil {
		t.Fatalf("mint(3): %v", err)
	}
	if h != 0x12240504 {
		t.Fatalf("mint(3): got %v, want 0x12240504", h)
	}
	if int32(h) < 0 {
		t.Fatalf("default handle %v is negative as int32", h)
	}
	if got := c.generation(h); got != 0x0504 {
		t.Fatalf("generation: got %#x, want 0x0504", got)
	}
	if got := c.nonce(h); got != 2 {
		t.Fatalf("nonce: got %d, want 2", got)
	}
}

// TestCodecRoundTrip decodes every minted index back to itself.
func TestCodecRoundTrip(t *testing.T) {
	c := newCodec(&New(DefaultMaxQueues).opts)
	for i := range DefaultMaxQueues {
		h, err := c.mint(i)
		if err != nil {
			t.Fatalf("mint(%d): %v", i, err)
		}
		idx, err := c.decode(h)
		if err != nil {
			t.Fatalf("decode(%v): %v", h, err)
		}
		if idx != i {
			t.Fatalf("decode(%v): got %d, want %d", h, idx, i)
		}
	}
}

// TestCodecDecodeOutOfRange tests handles whose index field is outside the table.
func TestCodecDecodeOutOfRange(t *testing.T) {
	c := newCodec(&New(4).opts)
	tests := []struct {
		name string
		h    Handle
	}{
		{"Zero", 0},
		{"BelowOffset", 0x1220<<16 | 0x0503},
		{"PastEnd", (0x1221+4)<<16 | 0x0503},
		{"AllOnes", 0xffffffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if idx, err := c.decode(tt.h); err == nil {
				t.Fatalf("decode(%v): got index %d, want error", tt.h, idx)
			}
		})
	}
}

// =============================================================================
// Codec - Failure Policy
// =============================================================================

// TestCodecMintIndexOutOfRange tests that bad indices fail without
// consuming a generation.
func TestCodecMintIndexOutOfRange(t *testing.T) {
	c := newCodec(&New(4).opts)
	for _, idx := range []int{-1, 4, 1000} {
		if _, err := c.mint(idx); err == nil {
			t.Fatalf("mint(%d): want error", idx)
		}
	}
	if c.next != 1 {
		t.Fatalf("counter advanced on index failure: next=%d", c.next)
	}
}

// TestCodecMintIndexFieldOverflow tests an offset that pushes upper
// slots out of a narrow index field.
func TestCodecMintIndexFieldOverflow(t *testing.T) {
	// 3-bit index field holds 0..7; offset 5 leaves room for slots 0..2.
	c := newCodec(&New(4).Fields(3, 16).Offsets(5, DefaultGenerationOffset).opts)
	for i := range 3 {
		if _, err := c.mint(i); err != nil {
			t.Fatalf("mint(%d): %v", i, err)
		}
	}
	next := c.next
	if _, err := c.mint(3); err == nil {
		t.Fatal("mint(3): want error for index field overflow")
	}
	if c.next != next {
		t.Fatalf("counter advanced on index overflow: got %d, want %d", c.next, next)
	}
}

// TestCodecGenerationExhaustion tests that the counter advances on every
// attempt and that exhaustion is permanent.
func TestCodecGenerationExhaustion(t *testing.T) {
	// 4-bit generation field, no offset: generations 1..15 are usable.
	c := newCodec(&New(2).Fields(15, 4).Offsets(DefaultIndexOffset, 0).opts)
	for g := 1; g <= 15; g++ {
		h, err := c.mint(g % 2)
		if err != nil {
			t.Fatalf("mint #%d: %v", g, err)
		}
		if got := c.generation(h); got != uint32(g) {
			t.Fatalf("mint #%d: generation %d", g, got)
		}
	}
	for i := range 3 {
		if _, err := c.mint(0); err == nil {
			t.Fatalf("mint after exhaustion #%d: want error", i)
		}
	}
	if c.next != 19 {
		t.Fatalf("counter: got %d, want 19 (advances on rejected mints)", c.next)
	}
}

// TestHandleString tests the hex rendering.
func TestHandleString(t *testing.T) {
	if got := Handle(0x12210503).String(); got != "0x12210503" {
		t.Fatalf("String: got %q", got)
	}
	if got := Handle(1).String(); got != "0x00000001" {
		t.Fatalf("String: got %q", got)
	}
}
