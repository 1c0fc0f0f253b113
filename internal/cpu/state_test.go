package cpu

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
)

func TestCPU_State(t *testing.T) {
	// EI; LD A, 0x42; HALT
	c, _ := newTestCPU(t, 0xFB, 0x3E, 0x42, 0x76)
	step(t, c)

	s := types.NewState()
	c.SaveState(s)

	other := NewCPU(ram.NewRAM(), FromReset())
	other.LoadState(types.StateFromBytes(s.Bytes()))
	if other.String() != c.String() || other.IME != c.IME || other.Mode() != c.Mode() {
		t.Fatalf("expected %s, got %s", c, other)
	}

	// the pending EI must survive the round trip
	for _, x := range []*CPU{c, other} {
		x.bus = c.bus
		step(t, x)
		if !x.IME {
			t.Errorf("expected IME to be set after the instruction following EI")
		}
		step(t, x)
		if x.Mode() != ModeHalt {
			t.Errorf("expected halt mode, got %d", x.Mode())
		}
	}
}

func TestCPU_LoadStateClearsFatal(t *testing.T) {
	c, _ := newTestCPU(t, 0xD3)
	s := types.NewState()
	c.SaveState(s)
	if err := c.Step(); err == nil {
		t.Fatal("expected an error")
	}

	c.LoadState(types.StateFromBytes(s.Bytes()))
	if c.Err() != nil {
		t.Errorf("expected the fatal halt to be cleared, got %v", c.Err())
	}
}
