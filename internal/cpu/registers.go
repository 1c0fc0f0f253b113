package cpu

import "fmt"

// Registers contains the 8-bit registers and the flags register. The
// 16-bit pairs are not stored; they are composed from their halves on
// every access, high byte first.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F Flags
}

// BC returns the B:C register pair.
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }

// SetBC splits value into B and C.
func (r *Registers) SetBC(value uint16) { r.B, r.C = uint8(value>>8), uint8(value) }

// DE returns the D:E register pair.
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }

// SetDE splits value into D and E.
func (r *Registers) SetDE(value uint16) { r.D, r.E = uint8(value>>8), uint8(value) }

// HL returns the H:L register pair.
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetHL splits value into H and L.
func (r *Registers) SetHL(value uint16) { r.H, r.L = uint8(value>>8), uint8(value) }

// AF returns the A:F register pair, with F packed.
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F.Pack()) }

// SetAF splits value into A and F. Bits 3-0 of F are dropped.
func (r *Registers) SetAF(value uint16) { r.A, r.F = uint8(value>>8), UnpackFlags(uint8(value)) }

// String dumps the register file in a single line.
func (r *Registers) String() string {
	return fmt.Sprintf("A:%02X F:%s B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L)
}

// register returns a pointer to the 8-bit register selected by o, or
// nil if o does not name a register.
func (r *Registers) register(o Operand) *uint8 {
	switch o {
	case B:
		return &r.B
	case C:
		return &r.C
	case D:
		return &r.D
	case E:
		return &r.E
	case H:
		return &r.H
	case L:
		return &r.L
	case A:
		return &r.A
	}
	return nil
}
