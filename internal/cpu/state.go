package cpu

import "github.com/thelolagemann/sm83/internal/types"

var _ types.Stater = (*CPU)(nil)

// LoadState restores the registers, SP, PC, IME and mode from s. A
// fatal halt is cleared, as the restored CPU has not failed.
func (c *CPU) LoadState(s *types.State) {
	c.A = s.Read8()
	c.F = UnpackFlags(s.Read8())
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IME = s.ReadBool()
	c.imeDelay = s.Read8()
	c.mode = s.Read8()
	c.err = nil
}

// SaveState appends the CPU state to s.
func (c *CPU) SaveState(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F.Pack())
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.IME)
	s.Write8(c.imeDelay)
	s.Write8(c.mode)
}
