package cpu

import "fmt"

// Instruction is a decoded SM83 instruction. The set of implementations
// is closed: every type satisfying it is declared in this file, and
// the executor switches over exactly these types.
//
// Instructions are immutable values produced by Decode.
type Instruction interface {
	fmt.Stringer
	// Length is the number of bytes the instruction occupies, including
	// the 0xCB escape for prefixed instructions.
	Length() uint16

	instruction()
}

// Operand selects an 8-bit source or destination. The first eight
// values follow the hardware register encoding used in opcode bits.
type Operand uint8

const (
	B   Operand = iota // B register
	C                  // C register
	D                  // D register
	E                  // E register
	H                  // H register
	L                  // L register
	HLI                // memory at the address held in HL
	A                  // accumulator
	D8                 // immediate byte following the opcode
)

var operandNames = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A", "d8"}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return fmt.Sprintf("Operand(%d)", o)
}

// RegisterPair selects a 16-bit register.
type RegisterPair uint8

const (
	BC RegisterPair = iota
	DE
	HL
	SP
	AF
)

var pairNames = [...]string{"BC", "DE", "HL", "SP", "AF"}

func (p RegisterPair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("RegisterPair(%d)", p)
}

// JumpTest is the condition under which a jump, call or return is taken.
type JumpTest uint8

const (
	NotZero JumpTest = iota
	Zero
	NotCarry
	Carry
	Always
)

var jumpTestNames = [...]string{"NZ", "Z", "NC", "C", ""}

func (j JumpTest) String() string {
	if int(j) < len(jumpTestNames) {
		return jumpTestNames[j]
	}
	return fmt.Sprintf("JumpTest(%d)", j)
}

// withCondition formats mnemonic with its condition and operand, e.g.
// "JP NZ, a16" or "RET".
func withCondition(mnemonic string, test JumpTest, operand string) string {
	args := test.String()
	if operand != "" {
		if args != "" {
			args += ", "
		}
		args += operand
	}
	if args == "" {
		return mnemonic
	}
	return mnemonic + " " + args
}

// ArithmeticOp is one of the eight accumulator ALU operations.
type ArithmeticOp uint8

const (
	OpADD ArithmeticOp = iota
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
)

var arithmeticNames = [...]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

func (o ArithmeticOp) String() string {
	if int(o) < len(arithmeticNames) {
		return arithmeticNames[o]
	}
	return fmt.Sprintf("ArithmeticOp(%d)", o)
}

// RotateOp is one of the eight prefixed rotate, shift and swap
// operations. The first four also exist as one-byte accumulator forms.
type RotateOp uint8

const (
	OpRLC RotateOp = iota
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
)

var rotateNames = [...]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func (o RotateOp) String() string {
	if int(o) < len(rotateNames) {
		return rotateNames[o]
	}
	return fmt.Sprintf("RotateOp(%d)", o)
}

// BitOp is one of the prefixed single bit operations.
type BitOp uint8

const (
	OpBIT BitOp = iota
	OpRES
	OpSET
)

var bitNames = [...]string{"BIT", "RES", "SET"}

func (o BitOp) String() string {
	if int(o) < len(bitNames) {
		return bitNames[o]
	}
	return fmt.Sprintf("BitOp(%d)", o)
}

// Indirect is the memory operand of an accumulator load or store.
type Indirect uint8

const (
	AtBC    Indirect = iota // (BC)
	AtDE                    // (DE)
	AtHLInc                 // (HL+), HL incremented afterwards
	AtHLDec                 // (HL-), HL decremented afterwards
	AtA16                   // (a16)
	AtHighC                 // (0xFF00+C)
	AtHighA8                // (0xFF00+a8)
)

var indirectNames = [...]string{"(BC)", "(DE)", "(HL+)", "(HL-)", "(a16)", "(C)", "(a8)"}

func (i Indirect) String() string {
	if int(i) < len(indirectNames) {
		return indirectNames[i]
	}
	return fmt.Sprintf("Indirect(%d)", i)
}

// SPLoad is one of the stack pointer load forms.
type SPLoad uint8

const (
	StoreSP      SPLoad = iota // LD (a16), SP
	SPFromHL                   // LD SP, HL
	HLFromOffset               // LD HL, SP+r8
)

// ControlOp is one of the operand-less miscellaneous instructions.
type ControlOp uint8

const (
	OpNOP ControlOp = iota
	OpHALT
	OpSTOP
	OpDI
	OpEI
	OpDAA
	OpCPL
	OpSCF
	OpCCF
)

var controlNames = [...]string{"NOP", "HALT", "STOP", "DI", "EI", "DAA", "CPL", "SCF", "CCF"}

func (o ControlOp) String() string {
	if int(o) < len(controlNames) {
		return controlNames[o]
	}
	return fmt.Sprintf("ControlOp(%d)", o)
}

// Arithmetic applies Op to A and Source, storing the result in A
// (except for CP, which only sets flags).
type Arithmetic struct {
	Op     ArithmeticOp
	Source Operand
}

// INC increments an 8-bit register or (HL).
type INC struct{ Target Operand }

// DEC decrements an 8-bit register or (HL).
type DEC struct{ Target Operand }

// INC16 increments a register pair without touching the flags.
type INC16 struct{ Pair RegisterPair }

// DEC16 decrements a register pair without touching the flags.
type DEC16 struct{ Pair RegisterPair }

// AddHL adds a register pair to HL.
type AddHL struct{ Source RegisterPair }

// AddSP adds a signed immediate byte to SP.
type AddSP struct{}

// RotateA is one of the accumulator rotates RLCA, RRCA, RLA and RRA.
type RotateA struct{ Op RotateOp }

// Rotate is a prefixed rotate, shift or swap.
type Rotate struct {
	Op     RotateOp
	Target Operand
}

// Bit tests, resets or sets bit Index of Target.
type Bit struct {
	Op     BitOp
	Index  uint8
	Target Operand
}

// JP jumps to the little-endian address following the opcode.
type JP struct{ Test JumpTest }

// JPHL jumps to the address held in HL.
type JPHL struct{}

// JR jumps by the signed byte following the opcode.
type JR struct{ Test JumpTest }

// CALL pushes the return address and jumps to the following address.
type CALL struct{ Test JumpTest }

// RET pops the return address.
type RET struct{ Test JumpTest }

// RETI returns and enables interrupts.
type RETI struct{}

// RST calls one of the eight fixed restart vectors.
type RST struct{ Vector uint16 }

// LD copies a byte from Source to Target.
type LD struct {
	Target Operand
	Source Operand
}

// LD16 loads an immediate word into a register pair.
type LD16 struct{ Pair RegisterPair }

// LDIndirect moves A to (Store) or from memory at Address.
type LDIndirect struct {
	Address Indirect
	Store   bool
}

// LDSP is one of the stack pointer loads.
type LDSP struct{ Form SPLoad }

// PUSH pushes a register pair onto the stack.
type PUSH struct{ Pair RegisterPair }

// POP pops a register pair from the stack.
type POP struct{ Pair RegisterPair }

// Control is an operand-less instruction.
type Control struct{ Op ControlOp }

func (Arithmetic) instruction() {}
func (INC) instruction()        {}
func (DEC) instruction()        {}
func (INC16) instruction()      {}
func (DEC16) instruction()      {}
func (AddHL) instruction()      {}
func (AddSP) instruction()      {}
func (RotateA) instruction()    {}
func (Rotate) instruction()     {}
func (Bit) instruction()        {}
func (JP) instruction()         {}
func (JPHL) instruction()       {}
func (JR) instruction()         {}
func (CALL) instruction()       {}
func (RET) instruction()        {}
func (RETI) instruction()       {}
func (RST) instruction()        {}
func (LD) instruction()         {}
func (LD16) instruction()       {}
func (LDIndirect) instruction() {}
func (LDSP) instruction()       {}
func (PUSH) instruction()       {}
func (POP) instruction()        {}
func (Control) instruction()    {}

func (i Arithmetic) Length() uint16 {
	if i.Source == D8 {
		return 2
	}
	return 1
}
func (INC) Length() uint16     { return 1 }
func (DEC) Length() uint16     { return 1 }
func (INC16) Length() uint16   { return 1 }
func (DEC16) Length() uint16   { return 1 }
func (AddHL) Length() uint16   { return 1 }
func (AddSP) Length() uint16   { return 2 }
func (RotateA) Length() uint16 { return 1 }
func (Rotate) Length() uint16  { return 2 }
func (Bit) Length() uint16     { return 2 }
func (JP) Length() uint16      { return 3 }
func (JPHL) Length() uint16    { return 1 }
func (JR) Length() uint16      { return 2 }
func (CALL) Length() uint16    { return 3 }
func (RET) Length() uint16     { return 1 }
func (RETI) Length() uint16    { return 1 }
func (RST) Length() uint16     { return 1 }
func (i LD) Length() uint16 {
	if i.Source == D8 {
		return 2
	}
	return 1
}
func (LD16) Length() uint16 { return 3 }
func (i LDIndirect) Length() uint16 {
	switch i.Address {
	case AtA16:
		return 3
	case AtHighA8:
		return 2
	}
	return 1
}
func (i LDSP) Length() uint16 {
	switch i.Form {
	case StoreSP:
		return 3
	case HLFromOffset:
		return 2
	}
	return 1
}
func (PUSH) Length() uint16 { return 1 }
func (POP) Length() uint16  { return 1 }
func (i Control) Length() uint16 {
	if i.Op == OpSTOP {
		return 2
	}
	return 1
}

func (i Arithmetic) String() string {
	switch i.Op {
	case OpADD, OpADC, OpSBC:
		return fmt.Sprintf("%s A, %s", i.Op, i.Source)
	}
	return fmt.Sprintf("%s %s", i.Op, i.Source)
}
func (i INC) String() string     { return "INC " + i.Target.String() }
func (i DEC) String() string     { return "DEC " + i.Target.String() }
func (i INC16) String() string   { return "INC " + i.Pair.String() }
func (i DEC16) String() string   { return "DEC " + i.Pair.String() }
func (i AddHL) String() string   { return "ADD HL, " + i.Source.String() }
func (AddSP) String() string     { return "ADD SP, r8" }
func (i RotateA) String() string { return i.Op.String() + "A" }
func (i Rotate) String() string  { return fmt.Sprintf("%s %s", i.Op, i.Target) }
func (i Bit) String() string     { return fmt.Sprintf("%s %d, %s", i.Op, i.Index, i.Target) }
func (i JP) String() string      { return withCondition("JP", i.Test, "a16") }
func (JPHL) String() string      { return "JP HL" }
func (i JR) String() string      { return withCondition("JR", i.Test, "r8") }
func (i CALL) String() string    { return withCondition("CALL", i.Test, "a16") }
func (i RET) String() string     { return withCondition("RET", i.Test, "") }
func (RETI) String() string      { return "RETI" }
func (i RST) String() string     { return fmt.Sprintf("RST %02XH", i.Vector) }
func (i LD) String() string      { return fmt.Sprintf("LD %s, %s", i.Target, i.Source) }
func (i LD16) String() string    { return fmt.Sprintf("LD %s, d16", i.Pair) }
func (i LDIndirect) String() string {
	mnemonic := "LD"
	if i.Address == AtHighA8 {
		mnemonic = "LDH"
	}
	if i.Store {
		return fmt.Sprintf("%s %s, A", mnemonic, i.Address)
	}
	return fmt.Sprintf("%s A, %s", mnemonic, i.Address)
}
func (i LDSP) String() string {
	switch i.Form {
	case StoreSP:
		return "LD (a16), SP"
	case SPFromHL:
		return "LD SP, HL"
	case HLFromOffset:
		return "LD HL, SP+r8"
	}
	return fmt.Sprintf("LDSP(%d)", i.Form)
}
func (i PUSH) String() string    { return "PUSH " + i.Pair.String() }
func (i POP) String() string     { return "POP " + i.Pair.String() }
func (i Control) String() string { return i.Op.String() }
