package cpu

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/ram"
)

// jumpConditionalTest checks that a conditional JP only jumps when
// flag equals want, and advances by 3 bytes otherwise.
func jumpConditionalTest(set func(f *Flags, v bool), want bool) func(t *testing.T, c *CPU, mem *ram.RAM) {
	return func(t *testing.T, c *CPU, mem *ram.RAM) {
		mem.Write(0x0101, 0x34)
		mem.Write(0x0102, 0x12)

		c.F = Flags{}
		set(&c.F, !want)
		step(t, c)
		expectPC(t, c, 0x0103)

		c.PC = 0x0100
		set(&c.F, want)
		step(t, c)
		expectPC(t, c, 0x1234)
	}
}

func setZero(f *Flags, v bool)  { f.Zero = v }
func setCarry(f *Flags, v bool) { f.Carry = v }

func TestInstruction_Jumps(t *testing.T) {
	// 0xC2 - JP NZ, a16
	testInstruction(t, "JP NZ, a16", 0xC2, jumpConditionalTest(setZero, false))
	// 0xCA - JP Z, a16
	testInstruction(t, "JP Z, a16", 0xCA, jumpConditionalTest(setZero, true))
	// 0xD2 - JP NC, a16
	testInstruction(t, "JP NC, a16", 0xD2, jumpConditionalTest(setCarry, false))
	// 0xDA - JP C, a16
	testInstruction(t, "JP C, a16", 0xDA, jumpConditionalTest(setCarry, true))
	// 0xC3 - JP a16
	testInstruction(t, "JP a16", 0xC3, func(t *testing.T, c *CPU, mem *ram.RAM) {
		mem.Write(0x0101, 0xCD)
		mem.Write(0x0102, 0xAB)
		for f := 0; f < 16; f++ {
			c.PC = 0x0100
			c.F = UnpackFlags(uint8(f) << 4)
			step(t, c)
			expectPC(t, c, 0xABCD)
			if c.F != UnpackFlags(uint8(f)<<4) {
				t.Errorf("expected JP to leave flags alone, got %s", c.F)
			}
		}
	})
	// 0xE9 - JP HL
	testInstruction(t, "JP HL", 0xE9, func(t *testing.T, c *CPU, mem *ram.RAM) {
		c.SetHL(0x4000)
		step(t, c)
		expectPC(t, c, 0x4000)
	})
	// 0x18 - JR r8
	testInstruction(t, "JR r8", 0x18, func(t *testing.T, c *CPU, mem *ram.RAM) {
		mem.Write(0x0101, 0x03)
		step(t, c)
		expectPC(t, c, 0x0105)

		// as the instruction takes a signed byte, negative values jump backwards
		c.PC = 0x0100
		mem.Write(0x0101, 0xFE)
		step(t, c)
		expectPC(t, c, 0x0100)
	})
	// 0x20 - JR NZ, r8
	testInstruction(t, "JR NZ, r8", 0x20, func(t *testing.T, c *CPU, mem *ram.RAM) {
		mem.Write(0x0101, 0x10)
		c.F.Zero = true
		step(t, c)
		expectPC(t, c, 0x0102)

		c.PC = 0x0100
		c.F.Zero = false
		step(t, c)
		expectPC(t, c, 0x0112)
	})
	// 0x38 - JR C, r8
	testInstruction(t, "JR C, r8", 0x38, func(t *testing.T, c *CPU, mem *ram.RAM) {
		mem.Write(0x0101, 0x80) // -128
		c.F.Carry = true
		step(t, c)
		expectPC(t, c, 0x0082)
	})
}

func TestInstruction_Calls(t *testing.T) {
	// 0xCD - CALL a16
	testInstruction(t, "CALL a16", 0xCD, func(t *testing.T, c *CPU, mem *ram.RAM) {
		mem.Write(0x0101, 0x34)
		mem.Write(0x0102, 0x12)
		mem.Write(0x1234, 0xC9) // RET
		c.SP = 0xFFFE

		step(t, c)
		expectPC(t, c, 0x1234)
		if c.SP != 0xFFFC {
			t.Errorf("expected SP to be 0xFFFC, got 0x%04X", c.SP)
		}
		if mem.Read(0xFFFD) != 0x01 || mem.Read(0xFFFC) != 0x03 {
			t.Errorf("expected return address 0x0103 on the stack, got %02X%02X", mem.Read(0xFFFD), mem.Read(0xFFFC))
		}

		step(t, c)
		expectPC(t, c, 0x0103)
		if c.SP != 0xFFFE {
			t.Errorf("expected SP to be 0xFFFE, got 0x%04X", c.SP)
		}
	})
	// 0xC4 - CALL NZ, a16
	testInstruction(t, "CALL NZ, a16", 0xC4, func(t *testing.T, c *CPU, mem *ram.RAM) {
		c.F.Zero = true
		sp := c.SP
		step(t, c)
		expectPC(t, c, 0x0103)
		if c.SP != sp {
			t.Errorf("expected SP to be untouched, got 0x%04X", c.SP)
		}
	})
	// 0xDC - CALL C, a16
	testInstruction(t, "CALL C, a16", 0xDC, func(t *testing.T, c *CPU, mem *ram.RAM) {
		mem.Write(0x0101, 0x00)
		mem.Write(0x0102, 0x20)
		c.F.Carry = true
		step(t, c)
		expectPC(t, c, 0x2000)
	})
	// 0xC8 - RET Z
	testInstruction(t, "RET Z", 0xC8, func(t *testing.T, c *CPU, mem *ram.RAM) {
		c.SP = 0xFFFC
		mem.Write(0xFFFC, 0x00)
		mem.Write(0xFFFD, 0x30)

		c.F.Zero = false
		step(t, c)
		expectPC(t, c, 0x0101)

		c.PC = 0x0100
		c.F.Zero = true
		step(t, c)
		expectPC(t, c, 0x3000)
		if c.SP != 0xFFFE {
			t.Errorf("expected SP to be 0xFFFE, got 0x%04X", c.SP)
		}
	})
	// 0xC7 - 0xFF - RST n
	for n := uint16(0); n < 8; n++ {
		vector := n << 3
		testInstruction(t, RST{vector}.String(), 0xC7+uint8(vector), func(t *testing.T, c *CPU, mem *ram.RAM) {
			c.SP = 0xFFFE
			step(t, c)
			expectPC(t, c, vector)
			if mem.Read(0xFFFD) != 0x01 || mem.Read(0xFFFC) != 0x01 {
				t.Errorf("expected return address 0x0101 on the stack, got %02X%02X", mem.Read(0xFFFD), mem.Read(0xFFFC))
			}
		})
	}
}

func TestInstruction_ProgramCounterWraps(t *testing.T) {
	t.Run("NOP", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.PC = 0xFFFF
		step(t, c)
		expectPC(t, c, 0x0000)
	})
	t.Run("JP not taken", func(t *testing.T) {
		c, mem := newTestCPU(t)
		mem.Write(0xFFFE, 0xC2) // JP NZ, a16
		c.PC = 0xFFFE
		c.F.Zero = true
		step(t, c)
		expectPC(t, c, 0x0001)
	})
	t.Run("prefix at top of memory", func(t *testing.T) {
		c, mem := newTestCPU(t)
		mem.Write(0xFFFF, Prefix)
		mem.Write(0x0000, 0x37) // SWAP A
		c.PC = 0xFFFF
		c.A = 0xF1
		step(t, c)
		if c.A != 0x1F {
			t.Errorf("expected A to be 0x1F, got 0x%02X", c.A)
		}
		expectPC(t, c, 0x0001)
	})
}
