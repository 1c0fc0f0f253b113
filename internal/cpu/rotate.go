package cpu

import "github.com/thelolagemann/sm83/pkg/utils"

// rotate applies a rotate, shift or swap to value and returns the
// result.
//
//	RLC n  - rotate left, old bit 7 to carry and bit 0
//	RRC n  - rotate right, old bit 0 to carry and bit 7
//	RL n   - rotate left through carry
//	RR n   - rotate right through carry
//	SLA n  - shift left into carry, bit 0 reset
//	SRA n  - shift right into carry, bit 7 unchanged
//	SWAP n - swap upper and lower nibbles
//	SRL n  - shift right into carry, bit 7 reset
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out (reset for SWAP).
func (c *CPU) rotate(op RotateOp, value uint8) uint8 {
	var result uint8
	var carry bool
	switch op {
	case OpRLC:
		result = value<<1 | value>>7
		carry = value&0x80 != 0
	case OpRRC:
		result = value>>1 | value<<7
		carry = value&0x01 != 0
	case OpRL:
		result = value << 1
		if c.F.Carry {
			result |= 0x01
		}
		carry = value&0x80 != 0
	case OpRR:
		result = value >> 1
		if c.F.Carry {
			result |= 0x80
		}
		carry = value&0x01 != 0
	case OpSLA:
		result = value << 1
		carry = value&0x80 != 0
	case OpSRA:
		result = value>>1 | value&0x80
		carry = value&0x01 != 0
	case OpSWAP:
		result = value<<4 | value>>4
	case OpSRL:
		result = value >> 1
		carry = value&0x01 != 0
	}

	c.setFlags(result == 0, false, false, carry)
	return result
}

// testBit tests the bit at the given index of value.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, index uint8) {
	c.setFlags(!utils.TestBit(value, index), false, true, c.F.Carry)
}
