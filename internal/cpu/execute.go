package cpu

import "github.com/thelolagemann/sm83/pkg/utils"

// Execute applies instruction as if it had been fetched from PC and
// returns the address of the next instruction. PC itself is not
// updated; Step does that. Operands the instruction's category cannot
// act on are rejected with ErrUnsupportedOperand before any state is
// changed.
func (c *CPU) Execute(instruction Instruction) (uint16, error) {
	pc := c.PC
	if instruction == nil {
		return pc, unsupported{instruction}
	}
	next := pc + instruction.Length()

	switch i := instruction.(type) {
	case Arithmetic:
		if !readable(i.Source) || i.Op > OpCP {
			return pc, unsupported{i}
		}
		c.arithmetic(i.Op, c.load8(i.Source, pc))
	case INC:
		if !writable(i.Target) {
			return pc, unsupported{i}
		}
		c.store8(i.Target, c.increment(c.load8(i.Target, pc)))
	case DEC:
		if !writable(i.Target) {
			return pc, unsupported{i}
		}
		c.store8(i.Target, c.decrement(c.load8(i.Target, pc)))
	case INC16:
		if i.Pair > SP {
			return pc, unsupported{i}
		}
		c.setPair(i.Pair, c.pair(i.Pair)+1)
	case DEC16:
		if i.Pair > SP {
			return pc, unsupported{i}
		}
		c.setPair(i.Pair, c.pair(i.Pair)-1)
	case AddHL:
		if i.Source > SP {
			return pc, unsupported{i}
		}
		c.SetHL(c.addUint16(c.HL(), c.pair(i.Source)))
	case AddSP:
		c.SP = c.addSPSigned(c.bus.Read(pc + 1))
	case RotateA:
		if i.Op > OpRR {
			return pc, unsupported{i}
		}
		c.A = c.rotate(i.Op, c.A)
		c.F.Zero = false
	case Rotate:
		if !writable(i.Target) || i.Op > OpSRL {
			return pc, unsupported{i}
		}
		c.store8(i.Target, c.rotate(i.Op, c.load8(i.Target, pc)))
	case Bit:
		if !writable(i.Target) || i.Index > 7 || i.Op > OpSET {
			return pc, unsupported{i}
		}
		value := c.load8(i.Target, pc)
		switch i.Op {
		case OpBIT:
			c.testBit(value, i.Index)
		case OpRES:
			c.store8(i.Target, utils.ClearBit(value, i.Index))
		case OpSET:
			c.store8(i.Target, utils.SetBit(value, i.Index))
		}
	case JP:
		if i.Test > Always {
			return pc, unsupported{i}
		}
		if c.condition(i.Test) {
			next = c.immediate16(pc)
		}
	case JPHL:
		next = c.HL()
	case JR:
		if i.Test > Always {
			return pc, unsupported{i}
		}
		if c.condition(i.Test) {
			next += uint16(int8(c.bus.Read(pc + 1)))
		}
	case CALL:
		if i.Test > Always {
			return pc, unsupported{i}
		}
		if c.condition(i.Test) {
			c.push(next)
			next = c.immediate16(pc)
		}
	case RET:
		if i.Test > Always {
			return pc, unsupported{i}
		}
		if c.condition(i.Test) {
			next = c.pop()
		}
	case RETI:
		next = c.pop()
		c.IME = true
		c.imeDelay = 0
	case RST:
		if i.Vector&^0x38 != 0 {
			return pc, unsupported{i}
		}
		c.push(next)
		next = i.Vector
	case LD:
		if !readable(i.Source) || !writable(i.Target) || (i.Target == HLI && i.Source == HLI) {
			return pc, unsupported{i}
		}
		c.store8(i.Target, c.load8(i.Source, pc))
	case LD16:
		if i.Pair > SP {
			return pc, unsupported{i}
		}
		c.setPair(i.Pair, c.immediate16(pc))
	case LDIndirect:
		if i.Address > AtHighA8 {
			return pc, unsupported{i}
		}
		address := c.indirect(i.Address, pc)
		if i.Store {
			c.bus.Write(address, c.A)
		} else {
			c.A = c.bus.Read(address)
		}
	case LDSP:
		switch i.Form {
		case StoreSP:
			address := c.immediate16(pc)
			c.bus.Write(address, uint8(c.SP))
			c.bus.Write(address+1, uint8(c.SP>>8))
		case SPFromHL:
			c.SP = c.HL()
		case HLFromOffset:
			c.SetHL(c.addSPSigned(c.bus.Read(pc + 1)))
		default:
			return pc, unsupported{i}
		}
	case PUSH:
		if i.Pair == SP || i.Pair > AF {
			return pc, unsupported{i}
		}
		c.push(c.pair(i.Pair))
	case POP:
		if i.Pair == SP || i.Pair > AF {
			return pc, unsupported{i}
		}
		c.setPair(i.Pair, c.pop())
	case Control:
		if !c.control(i.Op) {
			return pc, unsupported{i}
		}
	default:
		return pc, unsupported{i}
	}

	return next, nil
}

// control executes an operand-less instruction, reporting false for
// an unknown op.
func (c *CPU) control(op ControlOp) bool {
	switch op {
	case OpNOP:
	case OpHALT:
		c.mode = ModeHalt
	case OpSTOP:
		c.mode = ModeStop
	case OpDI:
		c.IME = false
		c.imeDelay = 0
	case OpEI:
		if !c.IME && c.imeDelay == 0 {
			c.imeDelay = 2
		}
	case OpDAA:
		c.daa()
	case OpCPL:
		c.A = ^c.A
		c.setFlags(c.F.Zero, true, true, c.F.Carry)
	case OpSCF:
		c.setFlags(c.F.Zero, false, false, true)
	case OpCCF:
		c.setFlags(c.F.Zero, false, false, !c.F.Carry)
	default:
		return false
	}
	return true
}
