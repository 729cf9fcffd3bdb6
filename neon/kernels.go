// Copyright 2025 go-neonref Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package neon

// This file holds the per-lane kernels, one per arithmetic rule. Each
// kernel is a total, pure function of two lanes in the same numeric
// domain. Widening kernels compute the intermediate in the next larger
// integer type so the sum or difference can never overflow before the
// shift or clamp brings it back into the lane's range.
//
// The dispatch entries in v*.go apply these kernels lane by lane; they
// are generated by cmd/neongen so the 12 shape variants of every rule
// cannot drift from one another.

// halvingAdd computes (a + b) >> 1 with the sum widened first (VHADD).
// The shift is arithmetic for signed lanes, so the result truncates
// toward negative infinity, never toward zero and never to nearest.
func halvingAdd[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		sum := int16(any(a).(int8)) + int16(any(b).(int8))
		return T(any(int8(sum >> 1)).(int8))
	case int16:
		sum := int32(any(a).(int16)) + int32(any(b).(int16))
		return T(any(int16(sum >> 1)).(int16))
	case int32:
		sum := int64(any(a).(int32)) + int64(any(b).(int32))
		return T(any(int32(sum >> 1)).(int32))
	case uint8:
		sum := uint16(any(a).(uint8)) + uint16(any(b).(uint8))
		return T(any(uint8(sum >> 1)).(uint8))
	case uint16:
		sum := uint32(any(a).(uint16)) + uint32(any(b).(uint16))
		return T(any(uint16(sum >> 1)).(uint16))
	case uint32:
		sum := uint64(any(a).(uint32)) + uint64(any(b).(uint32))
		return T(any(uint32(sum >> 1)).(uint32))
	default:
		return (a + b) >> 1
	}
}

// roundingHalvingAdd computes (a + b + 1) >> 1 with the sum widened
// first (VRHADD). Unlike halvingAdd this rounds halves up.
func roundingHalvingAdd[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		sum := int16(any(a).(int8)) + int16(any(b).(int8)) + 1
		return T(any(int8(sum >> 1)).(int8))
	case int16:
		sum := int32(any(a).(int16)) + int32(any(b).(int16)) + 1
		return T(any(int16(sum >> 1)).(int16))
	case int32:
		sum := int64(any(a).(int32)) + int64(any(b).(int32)) + 1
		return T(any(int32(sum >> 1)).(int32))
	case uint8:
		sum := uint16(any(a).(uint8)) + uint16(any(b).(uint8)) + 1
		return T(any(uint8(sum >> 1)).(uint8))
	case uint16:
		sum := uint32(any(a).(uint16)) + uint32(any(b).(uint16)) + 1
		return T(any(uint16(sum >> 1)).(uint16))
	case uint32:
		sum := uint64(any(a).(uint32)) + uint64(any(b).(uint32)) + 1
		return T(any(uint32(sum >> 1)).(uint32))
	default:
		return (a + b + 1) >> 1
	}
}

// halvingSub computes (a - b) >> 1 with the difference widened first
// (VHSUB). The shift truncates toward negative infinity for signed
// lanes; for unsigned lanes the widened difference is taken modulo the
// widened domain, matching the instruction's two's-complement result.
func halvingSub[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		diff := int16(any(a).(int8)) - int16(any(b).(int8))
		return T(any(int8(diff >> 1)).(int8))
	case int16:
		diff := int32(any(a).(int16)) - int32(any(b).(int16))
		return T(any(int16(diff >> 1)).(int16))
	case int32:
		diff := int64(any(a).(int32)) - int64(any(b).(int32))
		return T(any(int32(diff >> 1)).(int32))
	case uint8:
		diff := int16(any(a).(uint8)) - int16(any(b).(uint8))
		return T(any(uint8(diff >> 1)).(uint8))
	case uint16:
		diff := int32(any(a).(uint16)) - int32(any(b).(uint16))
		return T(any(uint16(diff >> 1)).(uint16))
	case uint32:
		diff := int64(any(a).(uint32)) - int64(any(b).(uint32))
		return T(any(uint32(diff >> 1)).(uint32))
	default:
		return (a - b) >> 1
	}
}

// wrappingAdd computes a + b modulo the lane width (VADD). Go's
// fixed-width integer addition already wraps.
func wrappingAdd[T Integers](a, b T) T {
	return a + b
}

// wrappingSub computes a - b modulo the lane width (VSUB).
func wrappingSub[T Integers](a, b T) T {
	return a - b
}

// saturatingAdd computes a + b clamped to the lane's range (VQADD).
func saturatingAdd[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		sum := int16(any(a).(int8)) + int16(any(b).(int8))
		if sum > 127 {
			sum = 127
		}
		if sum < -128 {
			sum = -128
		}
		return T(any(int8(sum)).(int8))
	case int16:
		sum := int32(any(a).(int16)) + int32(any(b).(int16))
		if sum > 32767 {
			sum = 32767
		}
		if sum < -32768 {
			sum = -32768
		}
		return T(any(int16(sum)).(int16))
	case int32:
		sum := int64(any(a).(int32)) + int64(any(b).(int32))
		if sum > 2147483647 {
			sum = 2147483647
		}
		if sum < -2147483648 {
			sum = -2147483648
		}
		return T(any(int32(sum)).(int32))
	case uint8:
		sum := uint16(any(a).(uint8)) + uint16(any(b).(uint8))
		if sum > 255 {
			sum = 255
		}
		return T(any(uint8(sum)).(uint8))
	case uint16:
		sum := uint32(any(a).(uint16)) + uint32(any(b).(uint16))
		if sum > 65535 {
			sum = 65535
		}
		return T(any(uint16(sum)).(uint16))
	case uint32:
		sum := uint64(any(a).(uint32)) + uint64(any(b).(uint32))
		if sum > 4294967295 {
			sum = 4294967295
		}
		return T(any(uint32(sum)).(uint32))
	default:
		return a + b
	}
}

// saturatingSub computes a - b clamped to the lane's range (VQSUB).
func saturatingSub[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		diff := int16(any(a).(int8)) - int16(any(b).(int8))
		if diff > 127 {
			diff = 127
		}
		if diff < -128 {
			diff = -128
		}
		return T(any(int8(diff)).(int8))
	case int16:
		diff := int32(any(a).(int16)) - int32(any(b).(int16))
		if diff > 32767 {
			diff = 32767
		}
		if diff < -32768 {
			diff = -32768
		}
		return T(any(int16(diff)).(int16))
	case int32:
		diff := int64(any(a).(int32)) - int64(any(b).(int32))
		if diff > 2147483647 {
			diff = 2147483647
		}
		if diff < -2147483648 {
			diff = -2147483648
		}
		return T(any(int32(diff)).(int32))
	case uint8:
		av := any(a).(uint8)
		bv := any(b).(uint8)
		if bv > av {
			return T(any(uint8(0)).(uint8))
		}
		return T(any(av - bv).(uint8))
	case uint16:
		av := any(a).(uint16)
		bv := any(b).(uint16)
		if bv > av {
			return T(any(uint16(0)).(uint16))
		}
		return T(any(av - bv).(uint16))
	case uint32:
		av := any(a).(uint32)
		bv := any(b).(uint32)
		if bv > av {
			return T(any(uint32(0)).(uint32))
		}
		return T(any(av - bv).(uint32))
	default:
		return a - b
	}
}

// absDiff computes |a - b| in the widened domain and truncates the
// result back to the lane width (VABD). For signed lanes the absolute
// difference can exceed the lane's positive range (|127 - (-128)| =
// 255); the instruction keeps the low bits, so the reference does too.
func absDiff[T Integers](a, b T) T {
	switch any(a).(type) {
	case int8:
		diff := int16(any(a).(int8)) - int16(any(b).(int8))
		if diff < 0 {
			diff = -diff
		}
		return T(any(int8(diff)).(int8))
	case int16:
		diff := int32(any(a).(int16)) - int32(any(b).(int16))
		if diff < 0 {
			diff = -diff
		}
		return T(any(int16(diff)).(int16))
	case int32:
		diff := int64(any(a).(int32)) - int64(any(b).(int32))
		if diff < 0 {
			diff = -diff
		}
		return T(any(int32(diff)).(int32))
	default:
		if a > b {
			return a - b
		}
		return b - a
	}
}

// maxLane returns the larger lane (VMAX).
func maxLane[T Integers](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// minLane returns the smaller lane (VMIN).
func minLane[T Integers](a, b T) T {
	if a < b {
		return a
	}
	return b
}
