// Package trace steps a CPU and records what it executes, for
// comparing runs against each other or against reference logs.
package trace

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Run executes up to steps instructions, logging one line per
// instruction. It stops early when the CPU leaves normal mode or a
// step fails, and returns the number of instructions executed.
func Run(c *cpu.CPU, bus cpu.Bus, steps int, l log.Logger) (int, error) {
	for n := 0; n < steps; n++ {
		if c.Mode() != cpu.ModeNormal {
			return n, nil
		}

		pc := c.PC
		instruction, err := c.Fetch()
		if err == nil {
			l.Infof("%s", Line(pc, bus, instruction, c))
		}
		if err := c.Step(); err != nil {
			return n, errors.Wrapf(err, "step %d", n)
		}
	}
	return steps, nil
}

// Line formats a single trace line for instruction at pc.
func Line(pc uint16, bus cpu.Bus, instruction cpu.Instruction, c *cpu.CPU) string {
	raw := make([]string, instruction.Length())
	for i := range raw {
		raw[i] = fmt.Sprintf("%02X", bus.Read(pc+uint16(i)))
	}
	return fmt.Sprintf("%04X  %-8s  %-14s  %s", pc, strings.Join(raw, " "), instruction, c)
}

// Digest returns a fingerprint of the CPU state and the whole of
// memory, taken over their saved state.
func Digest(c *cpu.CPU, mem *ram.RAM) uint64 {
	s := types.NewState()
	c.SaveState(s)
	mem.SaveState(s)
	return xxhash.Sum64(s.Bytes())
}
