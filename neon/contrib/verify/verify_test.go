package verify

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestCheckFullSurface(t *testing.T) {
	if err := Check(1); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestOracleKnownValues(t *testing.T) {
	cases := []struct {
		op     Op
		a, b   int64
		bits   uint
		signed bool
		want   int64
	}{
		{Vhadd, 1, 0, 8, true, 0},    // truncates toward -inf, not to nearest
		{Vhadd, -1, 0, 8, true, -1},  // arithmetic shift keeps the sign
		{Vhadd, 255, 255, 8, false, 255},
		{Vhadd, 127, 127, 8, true, 127},
		{Vrhadd, 1, 0, 8, true, 1},
		{Vrhadd, 255, 255, 8, false, 255},
		{Vhsub, 0, 1, 8, false, 255}, // borrow keeps the low bits
		{Vadd, 255, 1, 8, false, 0},
		{Vadd, 127, 1, 8, true, -128},
		{Vsub, 0, 1, 16, false, 65535},
		{Vqadd, 127, 127, 8, true, 127},
		{Vqadd, -128, -128, 8, true, -128},
		{Vqsub, 0, 1, 8, false, 0},
		{Vabd, 127, -128, 8, true, -1}, // 255 truncated into the signed domain
		{Vabd, 0, 255, 8, false, 255},
		{Vmax, -5, 3, 8, true, 3},
		{Vmin, -5, 3, 8, true, -5},
	}
	for _, tc := range cases {
		got := oracle(tc.op, tc.a, tc.b, tc.bits, tc.signed)
		if got != tc.want {
			t.Errorf("oracle(%s, %d, %d, %d-bit %v): got %d, want %d",
				tc.op, tc.a, tc.b, tc.bits, tc.signed, got, tc.want)
		}
	}
}

func TestCheckEntriesDetectsDrift(t *testing.T) {
	// A halving add computed in the lane's native width: wrong whenever
	// the sum overflows. The sweep must catch it.
	broken := []Entry[uint8]{{
		Name:  "BrokenVhaddU8",
		Op:    Vhadd,
		Lanes: 8,
		Call: func(n, m []uint8) []uint8 {
			d := make([]uint8, len(n))
			for i := range d {
				d[i] = (n[i] + m[i]) >> 1
			}
			return d
		},
	}}

	err := CheckEntries(broken, rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("CheckEntries accepted a kernel with an 8-bit intermediate")
	}
	var m *Mismatch
	if !errors.As(err, &m) {
		t.Fatalf("error is %T, want *Mismatch", err)
	}
	if m.Entry != "BrokenVhaddU8" {
		t.Errorf("Mismatch.Entry: got %q", m.Entry)
	}
	if !strings.Contains(m.Error(), "BrokenVhaddU8") {
		t.Errorf("Mismatch message %q does not name the entry", m.Error())
	}
}

func TestRegistriesComplete(t *testing.T) {
	// 10 rules x 2 vector widths per lane domain.
	for _, n := range []int{
		len(Int8Entries), len(Uint8Entries),
		len(Int16Entries), len(Uint16Entries),
		len(Int32Entries), len(Uint32Entries),
	} {
		if n != 20 {
			t.Errorf("registry size: got %d, want 20", n)
		}
	}
}

func TestDomainEdges(t *testing.T) {
	s8 := domainEdges(8, true)
	if s8[0] != -128 || s8[len(s8)-1] != 127 {
		t.Errorf("signed 8-bit edges: got %v", s8)
	}
	u32 := domainEdges(32, false)
	if u32[0] != 0 || u32[len(u32)-1] != 4294967295 {
		t.Errorf("unsigned 32-bit edges: got %v", u32)
	}
}
