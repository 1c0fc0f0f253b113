package utils

// SetBit returns value with the given bit set.
func SetBit(value uint8, bit uint8) uint8 {
	return value | 1<<bit
}

// ClearBit returns value with the given bit reset.
func ClearBit(value uint8, bit uint8) uint8 {
	return value &^ (1 << bit)
}

// TestBit reports whether the given bit of value is set.
func TestBit(value uint8, bit uint8) bool {
	return value&(1<<bit) != 0
}
