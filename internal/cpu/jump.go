package cpu

import "github.com/thelolagemann/sm83/pkg/utils"

// condition evaluates a jump test against the current flags.
func (c *CPU) condition(test JumpTest) bool {
	switch test {
	case NotZero:
		return !c.F.Zero
	case Zero:
		return c.F.Zero
	case NotCarry:
		return !c.F.Carry
	case Carry:
		return c.F.Carry
	}
	return true
}

// push writes value to the stack, high byte first, decrementing SP
// before each write.
func (c *CPU) push(value uint16) {
	high, low := utils.Uint16ToBytes(value)
	c.SP--
	c.bus.Write(c.SP, high)
	c.SP--
	c.bus.Write(c.SP, low)
}

// pop reads a value from the stack, low byte first, incrementing SP
// after each read.
func (c *CPU) pop() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++
	return utils.BytesToUint16(high, low)
}

// immediate16 reads the little-endian word following the opcode at pc.
func (c *CPU) immediate16(pc uint16) uint16 {
	return utils.BytesToUint16(c.bus.Read(pc+2), c.bus.Read(pc+1))
}
