package neon

import "testing"

func TestVrhaddS8Rounds(t *testing.T) {
	// Rounding halving add rounds halves up, unlike vhadd.
	n := Int8x8{1, -1, 3, 2, 127, -128, 0, -3}
	m := Int8x8{0, 0, 0, 2, 127, -128, 0, 0}
	d := VrhaddS8(n, m)

	expected := Int8x8{1, 0, 2, 2, 127, -128, 0, -1}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VrhaddS8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}
}

func TestVrhaddqU8NoOverflow(t *testing.T) {
	n := Uint8x16{255, 254, 0, 10}
	m := Uint8x16{255, 255, 1, 20}
	d := VrhaddqU8(n, m)

	expected := []uint8{255, 255, 1, 15}
	for i, want := range expected {
		if d[i] != want {
			t.Errorf("VrhaddqU8 lane %d: got %d, want %d", i, d[i], want)
		}
	}
}

func TestVhsubS8(t *testing.T) {
	n := Int8x8{0, 1, -1, 127, -128, 5, 0, 0}
	m := Int8x8{1, 0, 0, -128, 127, 2, 0, 0}
	d := VhsubS8(n, m)

	// (0-1)>>1 = -1, (127-(-128))>>1 = 127, (-128-127)>>1 = -128
	expected := Int8x8{-1, 0, -1, 127, -128, 1, 0, 0}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VhsubS8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}
}

func TestVhsubU8Borrow(t *testing.T) {
	// 0-1 is -1 in the widened domain; the arithmetic shift keeps it -1
	// and the 8-bit truncation yields 255, matching the instruction.
	n := Uint8x8{0, 10, 255, 1, 0, 0, 0, 0}
	m := Uint8x8{1, 4, 0, 255, 0, 0, 0, 0}
	d := VhsubU8(n, m)

	expected := Uint8x8{255, 3, 127, 129, 0, 0, 0, 0}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VhsubU8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}
}

func TestVaddWraps(t *testing.T) {
	n := Uint8x8{255, 250, 0, 128, 0, 0, 0, 0}
	m := Uint8x8{1, 10, 0, 128, 0, 0, 0, 0}
	d := VaddU8(n, m)

	expected := Uint8x8{0, 4, 0, 0, 0, 0, 0, 0}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VaddU8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}

	s := VaddS8(Int8x8{127, -128}, Int8x8{1, -1})
	if s[0] != -128 || s[1] != 127 {
		t.Errorf("VaddS8 wrap: got [%d %d], want [-128 127]", s[0], s[1])
	}
}

func TestVsubWraps(t *testing.T) {
	d := VsubU16(Uint16x4{0, 5, 65535, 100}, Uint16x4{1, 5, 65535, 200})
	expected := Uint16x4{65535, 0, 0, 65436}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VsubU16 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}
}

func TestVqaddSaturates(t *testing.T) {
	d := VqaddS8(Int8x8{120, -120, 50, -50, 127, -128, 0, 0}, Int8x8{10, -10, 50, -50, 127, -128, 0, 0})
	expected := Int8x8{127, -128, 100, -100, 127, -128, 0, 0}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VqaddS8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}

	u := VqaddqU16(Uint16x8{65530, 100, 0, 65535}, Uint16x8{10, 50, 100, 1})
	uexpected := []uint16{65535, 150, 100, 65535}
	for i, want := range uexpected {
		if u[i] != want {
			t.Errorf("VqaddqU16 lane %d: got %d, want %d", i, u[i], want)
		}
	}
}

func TestVqsubSaturates(t *testing.T) {
	d := VqsubU8(Uint8x8{10, 100, 0, 255, 0, 0, 0, 0}, Uint8x8{20, 50, 100, 1, 0, 0, 0, 0})
	expected := Uint8x8{0, 50, 0, 254, 0, 0, 0, 0}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VqsubU8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}

	s := VqsubS16(Int16x4{-32760, 32760, 0, 5}, Int16x4{100, -100, 0, 5})
	sexpected := Int16x4{-32768, 32767, 0, 0}
	for i := range sexpected {
		if s[i] != sexpected[i] {
			t.Errorf("VqsubS16 lane %d: got %d, want %d", i, s[i], sexpected[i])
		}
	}
}

func TestVabd(t *testing.T) {
	d := VabdU8(Uint8x8{10, 5, 255, 0, 0, 0, 0, 0}, Uint8x8{5, 10, 0, 255, 0, 0, 0, 0})
	expected := Uint8x8{5, 5, 255, 255, 0, 0, 0, 0}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VabdU8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}
}

func TestVabdS8KeepsLowBits(t *testing.T) {
	// |127 - (-128)| = 255, which does not fit a signed 8-bit lane; the
	// instruction keeps the low 8 bits, so the lane reads back as -1.
	d := VabdS8(Int8x8{127, -128, 100, -100, 0, 0, 0, 0}, Int8x8{-128, 127, -100, 100, 0, 0, 0, 0})
	expected := Int8x8{-1, -1, -56, -56, 0, 0, 0, 0}
	for i := range expected {
		if d[i] != expected[i] {
			t.Errorf("VabdS8 lane %d: got %d, want %d", i, d[i], expected[i])
		}
	}
}

func TestVmaxVmin(t *testing.T) {
	n := Int16x8{-5, 5, 0, 32767, -32768, 10, -10, 7}
	m := Int16x8{5, -5, 0, -32768, 32767, 20, -20, 7}

	dmax := VmaxqS16(n, m)
	dmin := VminqS16(n, m)
	emax := Int16x8{5, 5, 0, 32767, 32767, 20, -10, 7}
	emin := Int16x8{-5, -5, 0, -32768, -32768, 10, -20, 7}
	for i := range emax {
		if dmax[i] != emax[i] {
			t.Errorf("VmaxqS16 lane %d: got %d, want %d", i, dmax[i], emax[i])
		}
		if dmin[i] != emin[i] {
			t.Errorf("VminqS16 lane %d: got %d, want %d", i, dmin[i], emin[i])
		}
	}
}

func TestVmaxU32(t *testing.T) {
	d := VmaxU32(Uint32x2{4294967295, 0}, Uint32x2{1, 2})
	if d[0] != 4294967295 || d[1] != 2 {
		t.Errorf("VmaxU32: got [%d %d], want [4294967295 2]", d[0], d[1])
	}
}
