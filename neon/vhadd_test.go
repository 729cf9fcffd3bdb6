package neon

import "testing"

func TestVhaddS8Truncates(t *testing.T) {
	// Halving add truncates toward negative infinity, it never rounds.
	n := Int8x8{1, -1, 3, -3, 127, -128, 0, 0}
	m := Int8x8{0, 0, 0, 0, 127, -128, 0, -1}
	d := VhaddS8(n, m)

	expected := Int8x8{0, -1, 1, -2, 127, -128, 0, -1}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VhaddS8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}
}

func TestVhaddU8NoIntermediateOverflow(t *testing.T) {
	// 255+255 = 510; a naive 8-bit intermediate would wrap to 254 and
	// yield 127. The widened sum must give 255.
	n := Uint8x8{255, 255, 200, 1, 0, 0, 0, 0}
	m := Uint8x8{255, 1, 100, 1, 0, 255, 0, 0}
	d := VhaddU8(n, m)

	expected := Uint8x8{255, 128, 150, 1, 0, 127, 0, 0}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VhaddU8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}
}

func TestVhaddqS16WidthScaling(t *testing.T) {
	n := Int16x8{2, 2, 2, 2, 2, 2, 2, 2}
	m := Int16x8{4, 4, 4, 4, 4, 4, 4, 4}
	d := VhaddqS16(n, m)

	for i := range d {
		if d[i] != 3 {
			t.Errorf("VhaddqS16 lane %d: got %d, want 3", i, d[i])
		}
	}
}

func TestVhaddSignedExtremes(t *testing.T) {
	n := Int32x2{2147483647, -2147483648}
	m := Int32x2{2147483647, -2147483648}
	d := VhaddS32(n, m)

	if d[0] != 2147483647 {
		t.Errorf("VhaddS32 lane 0: got %d, want 2147483647", d[0])
	}
	if d[1] != -2147483648 {
		t.Errorf("VhaddS32 lane 1: got %d, want -2147483648", d[1])
	}
}

func TestVhaddDeterminism(t *testing.T) {
	n := Int8x16{5, -7, 99, -100, 1, 2, 3, 4, -5, -6, -7, -8, 127, -128, 0, 1}
	m := Int8x16{-5, 7, -99, 100, 4, 3, 2, 1, 8, 7, 6, 5, -128, 127, 1, 0}

	first := VhaddqS8(n, m)
	second := VhaddqS8(n, m)
	if first != second {
		t.Errorf("VhaddqS8 not deterministic: %v vs %v", first, second)
	}
}

func TestVhaddLaneIndependence(t *testing.T) {
	n := Uint16x8{100, 200, 300, 400, 500, 600, 700, 800}
	m := Uint16x8{1, 2, 3, 4, 5, 6, 7, 8}
	base := VhaddqU16(n, m)

	for lane := range n {
		mutated := n
		mutated[lane] += 100
		d := VhaddqU16(mutated, m)
		for i := range d {
			if i == lane {
				if d[i] == base[i] {
					t.Errorf("lane %d did not change after mutating input lane %d", i, lane)
				}
			} else if d[i] != base[i] {
				t.Errorf("lane %d changed after mutating input lane %d", i, lane)
			}
		}
	}
}

// TestVhaddShapeEnumeration exercises every register shape of the rule
// independently: 6 width/signedness combinations on both vector widths.
func TestVhaddShapeEnumeration(t *testing.T) {
	if d := VhaddS8(Int8x8{7}, Int8x8{4}); d.Lanes() != 8 || d[0] != 5 {
		t.Errorf("VhaddS8: got lanes=%d d0=%d, want 8, 5", d.Lanes(), d[0])
	}
	if d := VhaddS16(Int16x4{7}, Int16x4{4}); d.Lanes() != 4 || d[0] != 5 {
		t.Errorf("VhaddS16: got lanes=%d d0=%d, want 4, 5", d.Lanes(), d[0])
	}
	if d := VhaddS32(Int32x2{7}, Int32x2{4}); d.Lanes() != 2 || d[0] != 5 {
		t.Errorf("VhaddS32: got lanes=%d d0=%d, want 2, 5", d.Lanes(), d[0])
	}
	if d := VhaddU8(Uint8x8{7}, Uint8x8{4}); d.Lanes() != 8 || d[0] != 5 {
		t.Errorf("VhaddU8: got lanes=%d d0=%d, want 8, 5", d.Lanes(), d[0])
	}
	if d := VhaddU16(Uint16x4{7}, Uint16x4{4}); d.Lanes() != 4 || d[0] != 5 {
		t.Errorf("VhaddU16: got lanes=%d d0=%d, want 4, 5", d.Lanes(), d[0])
	}
	if d := VhaddU32(Uint32x2{7}, Uint32x2{4}); d.Lanes() != 2 || d[0] != 5 {
		t.Errorf("VhaddU32: got lanes=%d d0=%d, want 2, 5", d.Lanes(), d[0])
	}
	if d := VhaddqS8(Int8x16{7}, Int8x16{4}); d.Lanes() != 16 || d[0] != 5 {
		t.Errorf("VhaddqS8: got lanes=%d d0=%d, want 16, 5", d.Lanes(), d[0])
	}
	if d := VhaddqS16(Int16x8{7}, Int16x8{4}); d.Lanes() != 8 || d[0] != 5 {
		t.Errorf("VhaddqS16: got lanes=%d d0=%d, want 8, 5", d.Lanes(), d[0])
	}
	if d := VhaddqS32(Int32x4{7}, Int32x4{4}); d.Lanes() != 4 || d[0] != 5 {
		t.Errorf("VhaddqS32: got lanes=%d d0=%d, want 4, 5", d.Lanes(), d[0])
	}
	if d := VhaddqU8(Uint8x16{7}, Uint8x16{4}); d.Lanes() != 16 || d[0] != 5 {
		t.Errorf("VhaddqU8: got lanes=%d d0=%d, want 16, 5", d.Lanes(), d[0])
	}
	if d := VhaddqU16(Uint16x8{7}, Uint16x8{4}); d.Lanes() != 8 || d[0] != 5 {
		t.Errorf("VhaddqU16: got lanes=%d d0=%d, want 8, 5", d.Lanes(), d[0])
	}
	if d := VhaddqU32(Uint32x4{7}, Uint32x4{4}); d.Lanes() != 4 || d[0] != 5 {
		t.Errorf("VhaddqU32: got lanes=%d d0=%d, want 4, 5", d.Lanes(), d[0])
	}
}

func TestVhaddInputsUnchanged(t *testing.T) {
	n := Int8x8{1, 2, 3, 4, 5, 6, 7, 8}
	m := Int8x8{8, 7, 6, 5, 4, 3, 2, 1}
	nCopy, mCopy := n, m

	VhaddS8(n, m)
	if n != nCopy || m != mCopy {
		t.Error("VhaddS8 mutated its inputs")
	}
}
