package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/pkg/log"
)

func load(t *testing.T, program ...uint8) (*cpu.CPU, *ram.RAM) {
	t.Helper()
	mem := ram.NewRAM()
	require.NoError(t, mem.Load(0x0100, program))
	return cpu.NewCPU(mem), mem
}

func TestRun(t *testing.T) {
	// LD A, 0x0F; LD B, 0x01; ADD A, B; HALT
	c, mem := load(t, 0x3E, 0x0F, 0x06, 0x01, 0x80, 0x76)

	var buf bytes.Buffer
	n, err := Run(c, mem, 100, log.NewWithWriter(&buf))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, cpu.ModeHalt, c.Mode())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "0100  3E 0F")
	assert.Contains(t, lines[0], "LD A, d8")
	assert.Contains(t, lines[2], "ADD A, B")
	assert.Contains(t, lines[3], "HALT")
}

func TestRun_Steps(t *testing.T) {
	c, mem := load(t, 0x00, 0x00, 0x00, 0x00)
	n, err := Run(c, mem, 2, log.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint16(0x0102), c.PC)
}

func TestRun_Error(t *testing.T) {
	c, mem := load(t, 0x00, 0xD3)
	n, err := Run(c, mem, 10, log.NewNullLogger())
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, errors.Is(err, cpu.ErrUnknownOpcode))
	assert.Contains(t, err.Error(), "step 1")

	var opErr *cpu.OpcodeError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, uint16(0x0101), opErr.PC)
}

func TestLine_Prefixed(t *testing.T) {
	c, mem := load(t, 0xCB, 0x7C)
	i, err := c.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "0100  CB 7C     BIT 7, H        "+c.String(), Line(c.PC, mem, i, c))
}

func TestDigest(t *testing.T) {
	c, mem := load(t, 0x3C)
	before := Digest(c, mem)
	assert.Equal(t, before, Digest(c, mem))

	require.NoError(t, c.Step())
	afterStep := Digest(c, mem)
	assert.NotEqual(t, before, afterStep)

	mem.Write(0xC000, 0x01)
	assert.NotEqual(t, afterStep, Digest(c, mem))
}
