package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that configures a CPU instance.
type Opt func(c *CPU)

// Debug enables per-instruction logging and the LD B, B software
// breakpoint.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithLogger sets the logger used for debug output and fatal halts.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithModel loads the register values the given model's boot ROM
// leaves behind.
func WithModel(m types.Model) Opt {
	return func(c *CPU) {
		c.model = m
		c.powerOn()
	}
}

// FromReset starts the CPU with every register cleared and the
// program counter at 0x0000, the state a boot ROM starts from.
func FromReset() Opt {
	return func(c *CPU) {
		c.fromReset = true
		c.powerOn()
	}
}
