package cpu

import "testing"

func TestFlags_Pack(t *testing.T) {
	for i := 0; i < 16; i++ {
		f := Flags{
			Zero:      i&8 != 0,
			Subtract:  i&4 != 0,
			HalfCarry: i&2 != 0,
			Carry:     i&1 != 0,
		}
		packed := f.Pack()
		if packed != uint8(i)<<4 {
			t.Errorf("expected %s to pack to 0x%02X, got 0x%02X", f, uint8(i)<<4, packed)
		}
		if UnpackFlags(packed) != f {
			t.Errorf("expected 0x%02X to unpack to %s, got %s", packed, f, UnpackFlags(packed))
		}
	}
}

func TestFlags_Unpack(t *testing.T) {
	for b := 0; b < 256; b++ {
		if got := UnpackFlags(uint8(b)).Pack(); got != uint8(b)&0xF0 {
			t.Errorf("expected 0x%02X to round trip to 0x%02X, got 0x%02X", b, uint8(b)&0xF0, got)
		}
	}
}

func TestFlags_String(t *testing.T) {
	if s := (Flags{Zero: true, Carry: true}).String(); s != "Z--C" {
		t.Errorf("expected Z--C, got %s", s)
	}
	if s := (Flags{}).String(); s != "----" {
		t.Errorf("expected ----, got %s", s)
	}
}
