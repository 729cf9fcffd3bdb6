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

package main

// Shape describes one register shape of the dispatch surface: a
// (signedness, element width, vector width) triple and the concrete
// neon type that carries it.
type Shape struct {
	Suffix    string // exported name suffix: S8, U16, ...
	Intrinsic string // intrinsic name suffix: s8, u16, ...
	Type      string // neon register type: Int8x8, Uint16x4, ...
	Lanes     int
	Sign      string // "signed" or "unsigned"
	Bits      int    // element width in bits
}

// DShapes are the 64-bit (D register) shapes, signed before unsigned,
// narrower lanes first, matching the order of the Arm intrinsic listings.
var DShapes = []Shape{
	{Suffix: "S8", Intrinsic: "s8", Type: "Int8x8", Lanes: 8, Sign: "signed", Bits: 8},
	{Suffix: "S16", Intrinsic: "s16", Type: "Int16x4", Lanes: 4, Sign: "signed", Bits: 16},
	{Suffix: "S32", Intrinsic: "s32", Type: "Int32x2", Lanes: 2, Sign: "signed", Bits: 32},
	{Suffix: "U8", Intrinsic: "u8", Type: "Uint8x8", Lanes: 8, Sign: "unsigned", Bits: 8},
	{Suffix: "U16", Intrinsic: "u16", Type: "Uint16x4", Lanes: 4, Sign: "unsigned", Bits: 16},
	{Suffix: "U32", Intrinsic: "u32", Type: "Uint32x2", Lanes: 2, Sign: "unsigned", Bits: 32},
}

// QShapes are the 128-bit (Q register) shapes in the same order.
var QShapes = []Shape{
	{Suffix: "S8", Intrinsic: "s8", Type: "Int8x16", Lanes: 16, Sign: "signed", Bits: 8},
	{Suffix: "S16", Intrinsic: "s16", Type: "Int16x8", Lanes: 8, Sign: "signed", Bits: 16},
	{Suffix: "S32", Intrinsic: "s32", Type: "Int32x4", Lanes: 4, Sign: "signed", Bits: 32},
	{Suffix: "U8", Intrinsic: "u8", Type: "Uint8x16", Lanes: 16, Sign: "unsigned", Bits: 8},
	{Suffix: "U16", Intrinsic: "u16", Type: "Uint16x8", Lanes: 8, Sign: "unsigned", Bits: 16},
	{Suffix: "U32", Intrinsic: "u32", Type: "Uint32x4", Lanes: 4, Sign: "unsigned", Bits: 32},
}

// Rule describes one arithmetic rule: its intrinsic family name, the
// per-lane kernel in the neon package that implements it, and doc text.
type Rule struct {
	Name   string // intrinsic family: vhadd
	Kernel string // neon kernel func: halvingAdd
	Instr  string // instruction mnemonic: VHADD
	Doc    string // short doc phrase: "halving add"
}

// Rules is the full rule table. Kernel semantics follow the Arm
// Architecture Reference Manual; confirm a new rule's truncation,
// rounding, or saturation behavior there before adding a row.
var Rules = []Rule{
	{Name: "vhadd", Kernel: "halvingAdd", Instr: "VHADD", Doc: "halving add"},
	{Name: "vrhadd", Kernel: "roundingHalvingAdd", Instr: "VRHADD", Doc: "rounding halving add"},
	{Name: "vhsub", Kernel: "halvingSub", Instr: "VHSUB", Doc: "halving subtract"},
	{Name: "vadd", Kernel: "wrappingAdd", Instr: "VADD", Doc: "wrapping add"},
	{Name: "vsub", Kernel: "wrappingSub", Instr: "VSUB", Doc: "wrapping subtract"},
	{Name: "vqadd", Kernel: "saturatingAdd", Instr: "VQADD", Doc: "saturating add"},
	{Name: "vqsub", Kernel: "saturatingSub", Instr: "VQSUB", Doc: "saturating subtract"},
	{Name: "vabd", Kernel: "absDiff", Instr: "VABD", Doc: "absolute difference"},
	{Name: "vmax", Kernel: "maxLane", Instr: "VMAX", Doc: "maximum"},
	{Name: "vmin", Kernel: "minLane", Instr: "VMIN", Doc: "minimum"},
}

// LookupRule finds a rule by its intrinsic family name.
func LookupRule(name string) (Rule, bool) {
	for _, r := range Rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}
