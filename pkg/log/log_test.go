package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	l := NewWithWriter(&buf)

	l.Infof("pc %04X", 0x0100)
	l.Errorf("unknown opcode %02X", 0xD3)
	l.Debugf("step %d", 3)

	assert.Equal("[INFO]\tpc 0100\n[ERROR]\tunknown opcode D3\n[DEBUG]\tstep 3\n", buf.String())
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	assert.NotPanics(t, func() {
		l.Infof("%d", 1)
		l.Errorf("%d", 2)
		l.Debugf("%d", 3)
	})
}
