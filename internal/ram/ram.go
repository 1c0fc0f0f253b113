// Package ram provides a flat 64 KiB memory that satisfies the CPU
// bus contract. It has no banking or memory-mapped I/O and is used
// to run bare programs against the CPU.
package ram

import (
	"github.com/pkg/errors"
	"github.com/thelolagemann/sm83/internal/types"
)

// Size is the size of the SM83 address space.
const Size = 0x10000

// RAM represents the whole 16-bit address space as plain memory.
type RAM struct {
	data [Size]uint8
}

// NewRAM returns a zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Load copies data into memory starting at origin. Images that would
// run past 0xFFFF are rejected rather than wrapped.
func (r *RAM) Load(origin uint16, data []byte) error {
	if int(origin)+len(data) > Size {
		return errors.Errorf("image of %d bytes does not fit at %04X", len(data), origin)
	}
	copy(r.data[origin:], data)
	return nil
}

// Bytes returns the backing memory.
func (r *RAM) Bytes() []byte {
	return r.data[:]
}

var _ types.Stater = (*RAM)(nil)

// LoadState restores the memory contents from s.
func (r *RAM) LoadState(s *types.State) {
	s.ReadData(r.data[:])
}

// SaveState appends the memory contents to s.
func (r *RAM) SaveState(s *types.State) {
	s.WriteData(r.data[:])
}
