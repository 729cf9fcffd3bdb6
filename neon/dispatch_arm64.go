//go:build arm64

package neon

import "golang.org/x/sys/cpu"

func init() {
	if forceScalarEnv() {
		native = false
		targetName = "scalar"
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) as part of the ARMv8-A
	// base architecture; the cpu package check keeps the detection
	// explicit anyway.
	if cpu.ARM64.HasASIMD {
		native = true
		targetName = "neon"
	} else {
		native = false
		targetName = "scalar"
	}
}
