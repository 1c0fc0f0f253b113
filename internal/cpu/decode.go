package cpu

// Prefix is the escape byte that selects the prefixed opcode table for
// the byte that follows it.
const Prefix = 0xCB

var (
	// InstructionSet is the primary opcode table. Unused opcodes, and
	// the Prefix escape itself, have no entry.
	InstructionSet [256]Instruction
	// InstructionSetCB is the prefixed opcode table.
	InstructionSetCB [256]Instruction
)

// Decode looks up opcode in the primary table, or in the prefixed
// table if prefixed is set. It reports false when the table has no
// entry for opcode.
func Decode(opcode uint8, prefixed bool) (Instruction, bool) {
	var i Instruction
	if prefixed {
		i = InstructionSetCB[opcode]
	} else {
		i = InstructionSet[opcode]
	}
	return i, i != nil
}

// DefineInstruction places an instruction in the primary table. It
// panics if the opcode is already taken, so overlapping definitions
// are caught at start-up.
func DefineInstruction(opcode uint8, i Instruction) {
	if InstructionSet[opcode] != nil {
		panic("cpu: opcode redefined: " + InstructionSet[opcode].String())
	}
	InstructionSet[opcode] = i
}

// DefineInstructionCB places an instruction in the prefixed table.
func DefineInstructionCB(opcode uint8, i Instruction) {
	if InstructionSetCB[opcode] != nil {
		panic("cpu: prefixed opcode redefined: " + InstructionSetCB[opcode].String())
	}
	InstructionSetCB[opcode] = i
}

// pairs in the order they are encoded in bits 5-4 of an opcode. PUSH
// and POP encode AF in place of SP.
var (
	pairIndex  = [4]RegisterPair{BC, DE, HL, SP}
	stackIndex = [4]RegisterPair{BC, DE, HL, AF}
)

func init() {
	// 0x00 - 0x3F
	DefineInstruction(0x00, Control{OpNOP})
	DefineInstruction(0x07, RotateA{OpRLC})
	DefineInstruction(0x08, LDSP{StoreSP})
	DefineInstruction(0x0F, RotateA{OpRRC})
	DefineInstruction(0x10, Control{OpSTOP})
	DefineInstruction(0x17, RotateA{OpRL})
	DefineInstruction(0x18, JR{Always})
	DefineInstruction(0x1F, RotateA{OpRR})
	DefineInstruction(0x27, Control{OpDAA})
	DefineInstruction(0x2F, Control{OpCPL})
	DefineInstruction(0x37, Control{OpSCF})
	DefineInstruction(0x3F, Control{OpCCF})

	indirects := [4]Indirect{AtBC, AtDE, AtHLInc, AtHLDec}
	for i := uint8(0); i < 4; i++ {
		row := i << 4
		DefineInstruction(0x01+row, LD16{pairIndex[i]})
		DefineInstruction(0x02+row, LDIndirect{Address: indirects[i], Store: true})
		DefineInstruction(0x03+row, INC16{pairIndex[i]})
		DefineInstruction(0x09+row, AddHL{pairIndex[i]})
		DefineInstruction(0x0A+row, LDIndirect{Address: indirects[i]})
		DefineInstruction(0x0B+row, DEC16{pairIndex[i]})

		// JR cc, r8
		DefineInstruction(0x20+i<<3, JR{JumpTest(i)})
	}

	for r := uint8(0); r < 8; r++ {
		DefineInstruction(0x04+r<<3, INC{Operand(r)})
		DefineInstruction(0x05+r<<3, DEC{Operand(r)})
		DefineInstruction(0x06+r<<3, LD{Target: Operand(r), Source: D8})
	}

	// 0x40 - 0x7F, LD r, r' (LD (HL), (HL) is HALT)
	for opcode := 0x40; opcode < 0x80; opcode++ {
		if opcode == 0x76 {
			DefineInstruction(0x76, Control{OpHALT})
			continue
		}
		DefineInstruction(uint8(opcode), LD{
			Target: Operand(opcode >> 3 & 0x7),
			Source: Operand(opcode & 0x7),
		})
	}

	// 0x80 - 0xBF, ALU A, r
	for opcode := 0x80; opcode < 0xC0; opcode++ {
		DefineInstruction(uint8(opcode), Arithmetic{
			Op:     ArithmeticOp(opcode >> 3 & 0x7),
			Source: Operand(opcode & 0x7),
		})
	}

	// 0xC0 - 0xFF
	for i := uint8(0); i < 4; i++ {
		DefineInstruction(0xC0+i<<3, RET{JumpTest(i)})
		DefineInstruction(0xC2+i<<3, JP{JumpTest(i)})
		DefineInstruction(0xC4+i<<3, CALL{JumpTest(i)})
		DefineInstruction(0xC1+i<<4, POP{stackIndex[i]})
		DefineInstruction(0xC5+i<<4, PUSH{stackIndex[i]})
	}
	for i := uint8(0); i < 8; i++ {
		DefineInstruction(0xC6+i<<3, Arithmetic{Op: ArithmeticOp(i), Source: D8})
		DefineInstruction(0xC7+i<<3, RST{uint16(i) << 3})
	}
	DefineInstruction(0xC3, JP{Always})
	DefineInstruction(0xC9, RET{Always})
	DefineInstruction(0xCD, CALL{Always})
	DefineInstruction(0xD9, RETI{})
	DefineInstruction(0xE0, LDIndirect{Address: AtHighA8, Store: true})
	DefineInstruction(0xE2, LDIndirect{Address: AtHighC, Store: true})
	DefineInstruction(0xE8, AddSP{})
	DefineInstruction(0xE9, JPHL{})
	DefineInstruction(0xEA, LDIndirect{Address: AtA16, Store: true})
	DefineInstruction(0xF0, LDIndirect{Address: AtHighA8})
	DefineInstruction(0xF2, LDIndirect{Address: AtHighC})
	DefineInstruction(0xF3, Control{OpDI})
	DefineInstruction(0xF8, LDSP{HLFromOffset})
	DefineInstruction(0xF9, LDSP{SPFromHL})
	DefineInstruction(0xFA, LDIndirect{Address: AtA16})
	DefineInstruction(0xFB, Control{OpEI})

	// prefixed table
	for opcode := 0; opcode < 0x100; opcode++ {
		target := Operand(opcode & 0x7)
		n := uint8(opcode >> 3 & 0x7)
		var i Instruction
		switch opcode >> 6 {
		case 0:
			i = Rotate{Op: RotateOp(n), Target: target}
		case 1:
			i = Bit{Op: OpBIT, Index: n, Target: target}
		case 2:
			i = Bit{Op: OpRES, Index: n, Target: target}
		case 3:
			i = Bit{Op: OpSET, Index: n, Target: target}
		}
		DefineInstructionCB(uint8(opcode), i)
	}
}
