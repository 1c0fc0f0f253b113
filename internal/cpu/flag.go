package cpu

import "github.com/thelolagemann/sm83/pkg/utils"

// Bit positions of the flags within the F register.
const (
	flagZero      = 7
	flagSubtract  = 6
	flagHalfCarry = 5
	flagCarry     = 4
)

// Flags holds the four SM83 condition flags. Bits 3-0 of the F
// register do not exist in hardware and always read as zero.
type Flags struct {
	Zero      bool // Z - set when the result of an operation is zero
	Subtract  bool // N - set when the last ALU operation was a subtraction
	HalfCarry bool // H - carry out of bit 3 (bit 11 for 16-bit adds)
	Carry     bool // C - carry out of bit 7 (bit 15 for 16-bit adds)
}

// Pack returns the flags as the byte stored in the F register.
func (f Flags) Pack() uint8 {
	var b uint8
	if f.Zero {
		b |= 1 << flagZero
	}
	if f.Subtract {
		b |= 1 << flagSubtract
	}
	if f.HalfCarry {
		b |= 1 << flagHalfCarry
	}
	if f.Carry {
		b |= 1 << flagCarry
	}
	return b
}

// UnpackFlags decodes an F register byte, ignoring bits 3-0.
func UnpackFlags(b uint8) Flags {
	return Flags{
		Zero:      utils.TestBit(b, flagZero),
		Subtract:  utils.TestBit(b, flagSubtract),
		HalfCarry: utils.TestBit(b, flagHalfCarry),
		Carry:     utils.TestBit(b, flagCarry),
	}
}

// String returns the flags in the usual "ZNHC" notation, with a
// dash for each clear flag.
func (f Flags) String() string {
	s := []byte("----")
	if f.Zero {
		s[0] = 'Z'
	}
	if f.Subtract {
		s[1] = 'N'
	}
	if f.HalfCarry {
		s[2] = 'H'
	}
	if f.Carry {
		s[3] = 'C'
	}
	return string(s)
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = Flags{Zero: zero, Subtract: subtract, HalfCarry: halfCarry, Carry: carry}
}
