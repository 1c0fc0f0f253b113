package types

// State is a flat little-endian snapshot of emulated hardware. Values
// are read back in the order they were written.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
}

// Stater is implemented by anything that can be captured in a State
// and restored from one.
type Stater interface {
	LoadState(*State) // LoadState restores the object from the state
	SaveState(*State) // SaveState appends the object to the state
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition rewinds reading to the beginning of the state.
func (s *State) ResetPosition() {
	s.readPosition = 0
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

func (s *State) Read8() uint8 {
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) ReadBool() bool {
	value := s.raw[s.readPosition] != 0
	s.readPosition++
	return value
}

func (s *State) ReadData(p []byte) {
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
}

// Len returns the number of bytes written to the state.
func (s *State) Len() int {
	return len(s.raw)
}

func (s *State) Bytes() []byte {
	return s.raw
}
