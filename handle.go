// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

import "fmt"

// Handle is an opaque ticket for one live queue.
//
// A Handle packs two fields into a single integer:
//
//	| index + IndexOffset | generation + GenerationOffset |
//	  IndexBits             GenerationBits
//
// The index field names a slot in the table, the generation field names
// the occupant of that slot. A handle is only a lookup capability: once
// its queue is destroyed the slot may be reused, and the old handle is
// rejected with ErrInvalidHandle because its generation no longer matches.
//
// The zero Handle is never issued.
type Handle uint32

func (h Handle) String() string {
	return fmt.Sprintf("0x%08x", uint32(h))
}

// codec mints and decodes handles for one table.
//
// The generation counter is shared by every slot and only moves forward,
// so a reused slot never receives a generation that a handle to one of its
// previous occupants could still carry.
type codec struct {
	indexBits   uint
	genBits     uint
	indexMask   uint64
	genMask     uint64
	indexOffset uint64
	genOffset   uint64
	slots       int
	next        uint64 // next generation to stamp; starts at 1
}

func newCodec(o *Options) codec {
	return codec{
		indexBits:   o.indexBits,
		genBits:     o.genBits,
		indexMask:   1<<o.indexBits - 1,
		genMask:     1<<o.genBits - 1,
		indexOffset: uint64(o.indexOffset),
		genOffset:   uint64(o.genOffset),
		slots:       o.maxQueues,
		next:        1,
	}
}

// mint issues a handle for slot index.
//
// Index checks run before the counter is touched. After that the counter
// advances unconditionally, so a rejected generation is consumed too; once
// the generation field is exhausted every later mint fails.
func (c *codec) mint(index int) (Handle, error) {
	if index < 0 || index >= c.slots {
		return 0, fmt.Errorf("index %d out of range [0, %d)", index, c.slots)
	}
	high := uint64(index) + c.indexOffset
	if high > c.indexMask {
		return 0, fmt.Errorf("index %d too large (assumed less than %d)",
			index, c.indexMask-c.indexOffset+1)
	}

	gen := c.next
	c.next++
	low := gen + c.genOffset
	if low > c.genMask || low&c.genMask == 0 {
		return 0, fmt.Errorf("generation number too large (max %d)", c.genMask-c.genOffset)
	}

	return Handle(high<<c.genBits | low), nil
}

// decode returns the slot index named by h. It does not look at the
// generation; that needs table state.
func (c *codec) decode(h Handle) (int, error) {
	field := uint64(h) >> c.genBits & c.indexMask
	if field < c.indexOffset || field-c.indexOffset >= uint64(c.slots) {
		return 0, fmt.Errorf("index %d outside [0, %d)", int64(field)-int64(c.indexOffset), c.slots)
	}
	return int(field - c.indexOffset), nil
}

// generation returns the raw generation field of h (offset included).
// Zero means the handle was never minted.
func (c *codec) generation(h Handle) uint32 {
	return uint32(uint64(h) & c.genMask)
}

// nonce returns the generation counter value stamped into h.
func (c *codec) nonce(h Handle) uint64 {
	return uint64(c.generation(h)) - c.genOffset
}
