package cpu

// readable reports whether o can be used as an 8-bit source.
func readable(o Operand) bool { return o <= D8 }

// writable reports whether o can be used as an 8-bit destination.
func writable(o Operand) bool { return o <= A }

// load8 reads the 8-bit operand o of the instruction at pc.
func (c *CPU) load8(o Operand, pc uint16) uint8 {
	switch o {
	case HLI:
		return c.bus.Read(c.HL())
	case D8:
		return c.bus.Read(pc + 1)
	}
	return *c.register(o)
}

// store8 writes value to the 8-bit operand o.
func (c *CPU) store8(o Operand, value uint8) {
	if o == HLI {
		c.bus.Write(c.HL(), value)
		return
	}
	*c.register(o) = value
}

// pair returns the value of a register pair.
func (c *CPU) pair(p RegisterPair) uint16 {
	switch p {
	case BC:
		return c.BC()
	case DE:
		return c.DE()
	case HL:
		return c.HL()
	case SP:
		return c.SP
	}
	return c.AF()
}

// setPair sets the value of a register pair.
func (c *CPU) setPair(p RegisterPair, value uint16) {
	switch p {
	case BC:
		c.SetBC(value)
	case DE:
		c.SetDE(value)
	case HL:
		c.SetHL(value)
	case SP:
		c.SP = value
	case AF:
		c.SetAF(value)
	}
}

// indirect resolves the address of an accumulator load or store.
// (HL+) and (HL-) adjust HL after resolving.
func (c *CPU) indirect(at Indirect, pc uint16) uint16 {
	switch at {
	case AtBC:
		return c.BC()
	case AtDE:
		return c.DE()
	case AtHLInc:
		hl := c.HL()
		c.SetHL(hl + 1)
		return hl
	case AtHLDec:
		hl := c.HL()
		c.SetHL(hl - 1)
		return hl
	case AtA16:
		return c.immediate16(pc)
	case AtHighC:
		return 0xFF00 + uint16(c.C)
	}
	return 0xFF00 + uint16(c.bus.Read(pc+1))
}
