package neon

import (
	"math"
	"testing"
)

// Exhaustive 8-bit sweeps against arithmetic the kernels do not share:
// floating-point floor over the exact mathematical result.

func TestHalvingAddExhaustiveInt8(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			got := halvingAdd(int8(a), int8(b))
			want := int8(math.Floor(float64(a+b) / 2))
			if got != want {
				t.Fatalf("halvingAdd(%d, %d): got %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestHalvingAddExhaustiveUint8(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			got := halvingAdd(uint8(a), uint8(b))
			want := uint8((a + b) / 2)
			if got != want {
				t.Fatalf("halvingAdd(%d, %d): got %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestRoundingHalvingAddExhaustiveInt8(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			got := roundingHalvingAdd(int8(a), int8(b))
			want := int8(math.Floor(float64(a+b+1) / 2))
			if got != want {
				t.Fatalf("roundingHalvingAdd(%d, %d): got %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestHalvingSubExhaustiveUint8(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			got := halvingSub(uint8(a), uint8(b))
			want := uint8(int8(math.Floor(float64(a-b) / 2)))
			if got != want {
				t.Fatalf("halvingSub(%d, %d): got %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestSaturatingAddExhaustiveInt8(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			got := saturatingAdd(int8(a), int8(b))
			sum := a + b
			if sum > 127 {
				sum = 127
			}
			if sum < -128 {
				sum = -128
			}
			if got != int8(sum) {
				t.Fatalf("saturatingAdd(%d, %d): got %d, want %d", a, b, got, sum)
			}
		}
	}
}

func TestSaturatingSubExhaustiveUint8(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			got := saturatingSub(uint8(a), uint8(b))
			diff := a - b
			if diff < 0 {
				diff = 0
			}
			if got != uint8(diff) {
				t.Fatalf("saturatingSub(%d, %d): got %d, want %d", a, b, got, diff)
			}
		}
	}
}

func TestAbsDiffExhaustiveInt8(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			got := absDiff(int8(a), int8(b))
			diff := a - b
			if diff < 0 {
				diff = -diff
			}
			if got != int8(diff) {
				t.Fatalf("absDiff(%d, %d): got %d, want %d", a, b, got, int8(diff))
			}
		}
	}
}

func TestWrappingKernels16(t *testing.T) {
	cases := []struct {
		a, b      int16
		sum, diff int16
	}{
		{32767, 1, -32768, 32766},
		{-32768, -1, 32767, -32767},
		{100, 200, 300, -100},
		{0, 0, 0, 0},
	}
	for _, tc := range cases {
		if got := wrappingAdd(tc.a, tc.b); got != tc.sum {
			t.Errorf("wrappingAdd(%d, %d): got %d, want %d", tc.a, tc.b, got, tc.sum)
		}
		if got := wrappingSub(tc.a, tc.b); got != tc.diff {
			t.Errorf("wrappingSub(%d, %d): got %d, want %d", tc.a, tc.b, got, tc.diff)
		}
	}
}

func TestMaxMinLane(t *testing.T) {
	if got := maxLane(uint32(5), uint32(9)); got != 9 {
		t.Errorf("maxLane: got %d, want 9", got)
	}
	if got := minLane(int32(-5), int32(3)); got != -5 {
		t.Errorf("minLane: got %d, want -5", got)
	}
}
