// Package cpu implements the instruction core of the Sharp SM83, the
// processor of the Game Boy. It decodes and executes instructions
// against a Bus and keeps the register file, flags, program counter
// and stack pointer. Timing, interrupt servicing and peripherals are
// left to the caller.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Bus is the 16-bit address space the CPU fetches from and operates on.
// A write must be visible to later reads of the same address.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT.
	ModeHalt
	// ModeStop is entered by STOP.
	ModeStop
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers and the flags.
	Registers

	// IME is the interrupt master enable flag. The CPU only tracks it;
	// servicing interrupts is up to the caller.
	IME bool

	Debug           bool
	DebugBreakpoint bool

	bus       Bus
	log       log.Logger
	model     types.Model
	fromReset bool

	mode     mode
	imeDelay uint8 // steps until a pending EI takes effect
	err      error // set once the CPU has halted on a fatal error
}

// NewCPU creates a new CPU instance that runs against the given Bus.
// Without options the registers hold the DMG power-on values.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus:   bus,
		log:   log.NewNullLogger(),
		model: types.DMGABC,
	}
	c.powerOn()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// powerOn loads the initial register values.
func (c *CPU) powerOn() {
	if c.fromReset {
		c.Registers = Registers{}
		c.PC, c.SP = 0x0000, 0x0000
		return
	}

	r := types.ModelRegisters[c.model]
	c.Registers = Registers{
		A: r.A, B: r.B, C: r.C, D: r.D, E: r.E, H: r.H, L: r.L,
		F: UnpackFlags(r.F),
	}
	c.PC, c.SP = r.PC, r.SP
}

// Reset returns the CPU to its initial state and clears a fatal halt.
func (c *CPU) Reset() {
	c.powerOn()
	c.IME = false
	c.DebugBreakpoint = false
	c.mode = ModeNormal
	c.imeDelay = 0
	c.err = nil
}

// Mode returns the current CPU mode.
func (c *CPU) Mode() mode {
	return c.mode
}

// Wake leaves halt or stop mode. It is called by whatever decides an
// interrupt or button press has ended the low power state.
func (c *CPU) Wake() {
	c.mode = ModeNormal
}

// Err returns the error the CPU halted on, if any.
func (c *CPU) Err() error {
	return c.err
}

// Fetch decodes the instruction at PC without executing it.
func (c *CPU) Fetch() (Instruction, error) {
	instruction, _, _, err := c.fetch()
	return instruction, err
}

func (c *CPU) fetch() (Instruction, uint8, bool, error) {
	opcode := c.bus.Read(c.PC)
	prefixed := opcode == Prefix
	if prefixed {
		opcode = c.bus.Read(c.PC + 1)
	}

	instruction, ok := Decode(opcode, prefixed)
	if !ok {
		return nil, opcode, prefixed, &OpcodeError{
			PC:       c.PC,
			Opcode:   opcode,
			Prefixed: prefixed,
			Err:      ErrUnknownOpcode,
		}
	}
	return instruction, opcode, prefixed, nil
}

// Step fetches, decodes and executes one instruction. In halt or stop
// mode it does nothing. An unknown opcode or unsupported operand halts
// the CPU: the error is returned from this and every later Step until
// Reset, and PC is left at the failing instruction.
func (c *CPU) Step() error {
	if c.err != nil {
		return c.err
	}
	if c.mode != ModeNormal {
		return nil
	}

	instruction, opcode, prefixed, err := c.fetch()
	if err != nil {
		return c.fail(err)
	}

	pc := c.PC
	next, err := c.Execute(instruction)
	if err != nil {
		return c.fail(&OpcodeError{
			PC:          pc,
			Opcode:      opcode,
			Prefixed:    prefixed,
			Instruction: instruction,
			Err:         ErrUnsupportedOperand,
		})
	}
	c.PC = next

	// EI takes effect after the instruction that follows it
	if c.imeDelay > 0 {
		c.imeDelay--
		if c.imeDelay == 0 {
			c.IME = true
		}
	}

	if c.Debug {
		if instruction == Instruction(LD{Target: B, Source: B}) {
			c.DebugBreakpoint = true
		}
		c.log.Debugf("%04X\t%-14s\t%s", pc, instruction, c)
	}

	return nil
}

func (c *CPU) fail(err error) error {
	c.err = err
	c.log.Errorf("cpu halted: %v", err)
	return err
}

func (c *CPU) String() string {
	return fmt.Sprintf("%s SP:%04X PC:%04X", c.Registers.String(), c.SP, c.PC)
}
