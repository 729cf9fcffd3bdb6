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

package verify

import "github.com/pxl-lab/go-neonref/neon"

// Call applies a dispatch entry to slice-form operands.
type Call[T neon.Integers] func(n, m []T) []T

// Entry adapts one dispatch entry of the reference for the sweep.
type Entry[T neon.Integers] struct {
	Name  string
	Op    Op
	Lanes int
	Call  Call[T]
}

// Adapters from register form to slice form, one per register type.

func d8(f func(n, m neon.Int8x8) neon.Int8x8) Call[int8] {
	return func(n, m []int8) []int8 {
		return f(neon.Int8x8FromSlice(n), neon.Int8x8FromSlice(m)).Slice()
	}
}

func q8(f func(n, m neon.Int8x16) neon.Int8x16) Call[int8] {
	return func(n, m []int8) []int8 {
		return f(neon.Int8x16FromSlice(n), neon.Int8x16FromSlice(m)).Slice()
	}
}

func du8(f func(n, m neon.Uint8x8) neon.Uint8x8) Call[uint8] {
	return func(n, m []uint8) []uint8 {
		return f(neon.Uint8x8FromSlice(n), neon.Uint8x8FromSlice(m)).Slice()
	}
}

func qu8(f func(n, m neon.Uint8x16) neon.Uint8x16) Call[uint8] {
	return func(n, m []uint8) []uint8 {
		return f(neon.Uint8x16FromSlice(n), neon.Uint8x16FromSlice(m)).Slice()
	}
}

func d16(f func(n, m neon.Int16x4) neon.Int16x4) Call[int16] {
	return func(n, m []int16) []int16 {
		return f(neon.Int16x4FromSlice(n), neon.Int16x4FromSlice(m)).Slice()
	}
}

func q16(f func(n, m neon.Int16x8) neon.Int16x8) Call[int16] {
	return func(n, m []int16) []int16 {
		return f(neon.Int16x8FromSlice(n), neon.Int16x8FromSlice(m)).Slice()
	}
}

func du16(f func(n, m neon.Uint16x4) neon.Uint16x4) Call[uint16] {
	return func(n, m []uint16) []uint16 {
		return f(neon.Uint16x4FromSlice(n), neon.Uint16x4FromSlice(m)).Slice()
	}
}

func qu16(f func(n, m neon.Uint16x8) neon.Uint16x8) Call[uint16] {
	return func(n, m []uint16) []uint16 {
		return f(neon.Uint16x8FromSlice(n), neon.Uint16x8FromSlice(m)).Slice()
	}
}

func d32(f func(n, m neon.Int32x2) neon.Int32x2) Call[int32] {
	return func(n, m []int32) []int32 {
		return f(neon.Int32x2FromSlice(n), neon.Int32x2FromSlice(m)).Slice()
	}
}

func q32(f func(n, m neon.Int32x4) neon.Int32x4) Call[int32] {
	return func(n, m []int32) []int32 {
		return f(neon.Int32x4FromSlice(n), neon.Int32x4FromSlice(m)).Slice()
	}
}

func du32(f func(n, m neon.Uint32x2) neon.Uint32x2) Call[uint32] {
	return func(n, m []uint32) []uint32 {
		return f(neon.Uint32x2FromSlice(n), neon.Uint32x2FromSlice(m)).Slice()
	}
}

func qu32(f func(n, m neon.Uint32x4) neon.Uint32x4) Call[uint32] {
	return func(n, m []uint32) []uint32 {
		return f(neon.Uint32x4FromSlice(n), neon.Uint32x4FromSlice(m)).Slice()
	}
}

// The registries enumerate the full dispatch surface: 10 rules on both
// vector widths for each of the 6 lane domains.

var Int8Entries = []Entry[int8]{
	{"VhaddS8", Vhadd, 8, d8(neon.VhaddS8)},
	{"VhaddqS8", Vhadd, 16, q8(neon.VhaddqS8)},
	{"VrhaddS8", Vrhadd, 8, d8(neon.VrhaddS8)},
	{"VrhaddqS8", Vrhadd, 16, q8(neon.VrhaddqS8)},
	{"VhsubS8", Vhsub, 8, d8(neon.VhsubS8)},
	{"VhsubqS8", Vhsub, 16, q8(neon.VhsubqS8)},
	{"VaddS8", Vadd, 8, d8(neon.VaddS8)},
	{"VaddqS8", Vadd, 16, q8(neon.VaddqS8)},
	{"VsubS8", Vsub, 8, d8(neon.VsubS8)},
	{"VsubqS8", Vsub, 16, q8(neon.VsubqS8)},
	{"VqaddS8", Vqadd, 8, d8(neon.VqaddS8)},
	{"VqaddqS8", Vqadd, 16, q8(neon.VqaddqS8)},
	{"VqsubS8", Vqsub, 8, d8(neon.VqsubS8)},
	{"VqsubqS8", Vqsub, 16, q8(neon.VqsubqS8)},
	{"VabdS8", Vabd, 8, d8(neon.VabdS8)},
	{"VabdqS8", Vabd, 16, q8(neon.VabdqS8)},
	{"VmaxS8", Vmax, 8, d8(neon.VmaxS8)},
	{"VmaxqS8", Vmax, 16, q8(neon.VmaxqS8)},
	{"VminS8", Vmin, 8, d8(neon.VminS8)},
	{"VminqS8", Vmin, 16, q8(neon.VminqS8)},
}

var Uint8Entries = []Entry[uint8]{
	{"VhaddU8", Vhadd, 8, du8(neon.VhaddU8)},
	{"VhaddqU8", Vhadd, 16, qu8(neon.VhaddqU8)},
	{"VrhaddU8", Vrhadd, 8, du8(neon.VrhaddU8)},
	{"VrhaddqU8", Vrhadd, 16, qu8(neon.VrhaddqU8)},
	{"VhsubU8", Vhsub, 8, du8(neon.VhsubU8)},
	{"VhsubqU8", Vhsub, 16, qu8(neon.VhsubqU8)},
	{"VaddU8", Vadd, 8, du8(neon.VaddU8)},
	{"VaddqU8", Vadd, 16, qu8(neon.VaddqU8)},
	{"VsubU8", Vsub, 8, du8(neon.VsubU8)},
	{"VsubqU8", Vsub, 16, qu8(neon.VsubqU8)},
	{"VqaddU8", Vqadd, 8, du8(neon.VqaddU8)},
	{"VqaddqU8", Vqadd, 16, qu8(neon.VqaddqU8)},
	{"VqsubU8", Vqsub, 8, du8(neon.VqsubU8)},
	{"VqsubqU8", Vqsub, 16, qu8(neon.VqsubqU8)},
	{"VabdU8", Vabd, 8, du8(neon.VabdU8)},
	{"VabdqU8", Vabd, 16, qu8(neon.VabdqU8)},
	{"VmaxU8", Vmax, 8, du8(neon.VmaxU8)},
	{"VmaxqU8", Vmax, 16, qu8(neon.VmaxqU8)},
	{"VminU8", Vmin, 8, du8(neon.VminU8)},
	{"VminqU8", Vmin, 16, qu8(neon.VminqU8)},
}

var Int16Entries = []Entry[int16]{
	{"VhaddS16", Vhadd, 4, d16(neon.VhaddS16)},
	{"VhaddqS16", Vhadd, 8, q16(neon.VhaddqS16)},
	{"VrhaddS16", Vrhadd, 4, d16(neon.VrhaddS16)},
	{"VrhaddqS16", Vrhadd, 8, q16(neon.VrhaddqS16)},
	{"VhsubS16", Vhsub, 4, d16(neon.VhsubS16)},
	{"VhsubqS16", Vhsub, 8, q16(neon.VhsubqS16)},
	{"VaddS16", Vadd, 4, d16(neon.VaddS16)},
	{"VaddqS16", Vadd, 8, q16(neon.VaddqS16)},
	{"VsubS16", Vsub, 4, d16(neon.VsubS16)},
	{"VsubqS16", Vsub, 8, q16(neon.VsubqS16)},
	{"VqaddS16", Vqadd, 4, d16(neon.VqaddS16)},
	{"VqaddqS16", Vqadd, 8, q16(neon.VqaddqS16)},
	{"VqsubS16", Vqsub, 4, d16(neon.VqsubS16)},
	{"VqsubqS16", Vqsub, 8, q16(neon.VqsubqS16)},
	{"VabdS16", Vabd, 4, d16(neon.VabdS16)},
	{"VabdqS16", Vabd, 8, q16(neon.VabdqS16)},
	{"VmaxS16", Vmax, 4, d16(neon.VmaxS16)},
	{"VmaxqS16", Vmax, 8, q16(neon.VmaxqS16)},
	{"VminS16", Vmin, 4, d16(neon.VminS16)},
	{"VminqS16", Vmin, 8, q16(neon.VminqS16)},
}

var Uint16Entries = []Entry[uint16]{
	{"VhaddU16", Vhadd, 4, du16(neon.VhaddU16)},
	{"VhaddqU16", Vhadd, 8, qu16(neon.VhaddqU16)},
	{"VrhaddU16", Vrhadd, 4, du16(neon.VrhaddU16)},
	{"VrhaddqU16", Vrhadd, 8, qu16(neon.VrhaddqU16)},
	{"VhsubU16", Vhsub, 4, du16(neon.VhsubU16)},
	{"VhsubqU16", Vhsub, 8, qu16(neon.VhsubqU16)},
	{"VaddU16", Vadd, 4, du16(neon.VaddU16)},
	{"VaddqU16", Vadd, 8, qu16(neon.VaddqU16)},
	{"VsubU16", Vsub, 4, du16(neon.VsubU16)},
	{"VsubqU16", Vsub, 8, qu16(neon.VsubqU16)},
	{"VqaddU16", Vqadd, 4, du16(neon.VqaddU16)},
	{"VqaddqU16", Vqadd, 8, qu16(neon.VqaddqU16)},
	{"VqsubU16", Vqsub, 4, du16(neon.VqsubU16)},
	{"VqsubqU16", Vqsub, 8, qu16(neon.VqsubqU16)},
	{"VabdU16", Vabd, 4, du16(neon.VabdU16)},
	{"VabdqU16", Vabd, 8, qu16(neon.VabdqU16)},
	{"VmaxU16", Vmax, 4, du16(neon.VmaxU16)},
	{"VmaxqU16", Vmax, 8, qu16(neon.VmaxqU16)},
	{"VminU16", Vmin, 4, du16(neon.VminU16)},
	{"VminqU16", Vmin, 8, qu16(neon.VminqU16)},
}

var Int32Entries = []Entry[int32]{
	{"VhaddS32", Vhadd, 2, d32(neon.VhaddS32)},
	{"VhaddqS32", Vhadd, 4, q32(neon.VhaddqS32)},
	{"VrhaddS32", Vrhadd, 2, d32(neon.VrhaddS32)},
	{"VrhaddqS32", Vrhadd, 4, q32(neon.VrhaddqS32)},
	{"VhsubS32", Vhsub, 2, d32(neon.VhsubS32)},
	{"VhsubqS32", Vhsub, 4, q32(neon.VhsubqS32)},
	{"VaddS32", Vadd, 2, d32(neon.VaddS32)},
	{"VaddqS32", Vadd, 4, q32(neon.VaddqS32)},
	{"VsubS32", Vsub, 2, d32(neon.VsubS32)},
	{"VsubqS32", Vsub, 4, q32(neon.VsubqS32)},
	{"VqaddS32", Vqadd, 2, d32(neon.VqaddS32)},
	{"VqaddqS32", Vqadd, 4, q32(neon.VqaddqS32)},
	{"VqsubS32", Vqsub, 2, d32(neon.VqsubS32)},
	{"VqsubqS32", Vqsub, 4, q32(neon.VqsubqS32)},
	{"VabdS32", Vabd, 2, d32(neon.VabdS32)},
	{"VabdqS32", Vabd, 4, q32(neon.VabdqS32)},
	{"VmaxS32", Vmax, 2, d32(neon.VmaxS32)},
	{"VmaxqS32", Vmax, 4, q32(neon.VmaxqS32)},
	{"VminS32", Vmin, 2, d32(neon.VminS32)},
	{"VminqS32", Vmin, 4, q32(neon.VminqS32)},
}

var Uint32Entries = []Entry[uint32]{
	{"VhaddU32", Vhadd, 2, du32(neon.VhaddU32)},
	{"VhaddqU32", Vhadd, 4, qu32(neon.VhaddqU32)},
	{"VrhaddU32", Vrhadd, 2, du32(neon.VrhaddU32)},
	{"VrhaddqU32", Vrhadd, 4, qu32(neon.VrhaddqU32)},
	{"VhsubU32", Vhsub, 2, du32(neon.VhsubU32)},
	{"VhsubqU32", Vhsub, 4, qu32(neon.VhsubqU32)},
	{"VaddU32", Vadd, 2, du32(neon.VaddU32)},
	{"VaddqU32", Vadd, 4, qu32(neon.VaddqU32)},
	{"VsubU32", Vsub, 2, du32(neon.VsubU32)},
	{"VsubqU32", Vsub, 4, qu32(neon.VsubqU32)},
	{"VqaddU32", Vqadd, 2, du32(neon.VqaddU32)},
	{"VqaddqU32", Vqadd, 4, qu32(neon.VqaddqU32)},
	{"VqsubU32", Vqsub, 2, du32(neon.VqsubU32)},
	{"VqsubqU32", Vqsub, 4, qu32(neon.VqsubqU32)},
	{"VabdU32", Vabd, 2, du32(neon.VabdU32)},
	{"VabdqU32", Vabd, 4, qu32(neon.VabdqU32)},
	{"VmaxU32", Vmax, 2, du32(neon.VmaxU32)},
	{"VmaxqU32", Vmax, 4, qu32(neon.VmaxqU32)},
	{"VminU32", Vmin, 2, du32(neon.VminU32)},
	{"VminqU32", Vmin, 4, qu32(neon.VminqU32)},
}
