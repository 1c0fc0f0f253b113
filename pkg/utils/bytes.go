package utils

// BytesToUint16 joins a high and low byte into a little-endian word's
// value.
func BytesToUint16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Uint16ToBytes splits value into its high and low bytes.
func Uint16ToBytes(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
