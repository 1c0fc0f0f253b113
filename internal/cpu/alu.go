package cpu

// arithmetic dispatches an accumulator ALU operation.
func (c *CPU) arithmetic(op ArithmeticOp, n uint8) {
	switch op {
	case OpADD:
		c.add(n, false)
	case OpADC:
		c.add(n, true)
	case OpSUB:
		c.A = c.sub(n, false)
	case OpSBC:
		c.A = c.sub(n, true)
	case OpAND:
		c.and(n)
	case OpXOR:
		c.xor(n)
	case OpOR:
		c.or(n)
	case OpCP:
		c.sub(n, false)
	}
}

// add n (plus the carry flag, for ADC) to the A Register. The
// result wraps at 8 bits; the carry flag records the overflow.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.F.Carry {
		carry = 1
	}

	sum := uint16(c.A) + uint16(n) + uint16(carry)
	halfCarry := c.A&0x0F+n&0x0F+carry > 0x0F
	result := uint8(sum)

	c.setFlags(result == 0, false, halfCarry, sum > 0xFF)
	c.A = result
}

// sub subtracts n (and the carry flag, for SBC) from the A Register
// and returns the result. CP uses it and discards the result.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) uint8 {
	var carry int16
	if withCarry && c.F.Carry {
		carry = 1
	}

	diff := int16(c.A) - int16(n) - carry
	halfCarry := int16(c.A&0x0F)-int16(n&0x0F)-carry < 0
	result := uint8(diff)

	c.setFlags(result == 0, true, halfCarry, diff < 0)
	return result
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.F.Carry)
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.F.Carry)
	return decremented
}

// addUint16 adds two 16-bit values, as used by ADD HL, nn.
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.F.Zero, false, a&0x0FFF+b&0x0FFF > 0x0FFF, sum > 0xFFFF)
	return uint16(sum)
}

// addSPSigned adds the signed offset to SP and returns the result,
// as used by ADD SP, r8 and LD HL, SP+r8. The flags come from the
// unsigned addition of the offset to the low byte of SP.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	n := uint16(offset)
	c.setFlags(false, false, c.SP&0x0F+n&0x0F > 0x0F, c.SP&0xFF+n > 0xFF)
	return c.SP + uint16(int8(offset))
}

// daa adjusts the A Register to a valid BCD value after an addition
// or subtraction of two BCD values.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) daa() {
	carry := c.F.Carry
	if !c.F.Subtract {
		if c.F.Carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.F.HalfCarry || c.A&0x0F > 0x09 {
			c.A += 0x06
		}
	} else {
		if c.F.Carry {
			c.A -= 0x60
		}
		if c.F.HalfCarry {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, c.F.Subtract, false, carry)
}
