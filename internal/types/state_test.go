package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x42)
	s.Write16(0xBEEF)
	s.WriteBool(true)
	s.WriteData([]byte{1, 2, 3})

	assert.Equal(t, 7, s.Len())
	assert.Equal(t, []byte{0x42, 0xEF, 0xBE, 0x01, 1, 2, 3}, s.Bytes())

	r := StateFromBytes(s.Bytes())
	assert.Equal(t, uint8(0x42), r.Read8())
	assert.Equal(t, uint16(0xBEEF), r.Read16())
	assert.True(t, r.ReadBool())
	data := make([]byte, 3)
	r.ReadData(data)
	assert.Equal(t, []byte{1, 2, 3}, data)

	r.ResetPosition()
	assert.Equal(t, uint8(0x42), r.Read8())
}
