package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownOpcode is returned when a fetched byte has no entry in
	// the opcode table it was looked up in.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrUnsupportedOperand is returned when an instruction names an
	// operand its category cannot act on.
	ErrUnsupportedOperand = errors.New("unsupported operand")
)

// OpcodeError records where execution halted and on which bytes.
type OpcodeError struct {
	PC          uint16      // address the opcode was fetched from
	Opcode      uint8       // the opcode byte, after the escape if prefixed
	Prefixed    bool        // the opcode followed the 0xCB escape
	Instruction Instruction // nil for unknown opcodes
	Err         error       // ErrUnknownOpcode or ErrUnsupportedOperand
}

func (e *OpcodeError) Error() string {
	opcode := fmt.Sprintf("%02X", e.Opcode)
	if e.Prefixed {
		opcode = "CB " + opcode
	}
	if e.Instruction != nil {
		return fmt.Sprintf("%v: %s (%s) at %04X", e.Err, e.Instruction, opcode, e.PC)
	}
	return fmt.Sprintf("%v: %s at %04X", e.Err, opcode, e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}

// Bytes returns the raw instruction bytes that caused the error.
func (e *OpcodeError) Bytes() []byte {
	if e.Prefixed {
		return []byte{Prefix, e.Opcode}
	}
	return []byte{e.Opcode}
}

// unsupported is returned by instruction handlers for operand
// combinations they do not implement.
type unsupported struct {
	instruction Instruction
}

func (u unsupported) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnsupportedOperand, u.instruction)
}

func (u unsupported) Unwrap() error { return ErrUnsupportedOperand }
