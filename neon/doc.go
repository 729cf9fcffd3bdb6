// Package neon is a scalar, bit-exact reference model of the Arm NEON
// integer arithmetic instructions.
//
// It reproduces, lane for lane, the documented semantics of each
// instruction so that code depending on NEON arithmetic can run (and be
// verified) on hardware or toolchains where the real vector unit or its
// intrinsics are unavailable. Every operation is a pure function over
// fixed-size register values; nothing here is vectorized and nothing
// here is meant to be fast.
//
// Register types mirror the NEON register set: 64-bit D registers
// (Int8x8, Int16x4, Int32x2 and unsigned counterparts) and 128-bit Q
// registers (Int8x16, Int16x8, Int32x4 and unsigned counterparts).
// Entry points follow the intrinsic names: vhadd_s8 becomes VhaddS8,
// vhaddq_u16 becomes VhaddqU16.
//
// Basic usage:
//
//	n := neon.Int8x8{1, 2, 3, 4, 5, 6, 7, 8}
//	m := neon.Int8x8{8, 7, 6, 5, 4, 3, 2, 1}
//	d := neon.VhaddS8(n, m) // per-lane truncating average
//
// Use Native to find out whether the running CPU could execute the real
// instructions instead.
package neon
