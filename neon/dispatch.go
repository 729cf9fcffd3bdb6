package neon

import (
	"os"
	"strconv"
)

// native and targetName describe the running CPU. They are set by init
// in dispatch_*.go.
var (
	native     bool
	targetName string
)

// Native reports whether the running CPU could execute the modeled
// instructions directly instead of through this scalar reference.
// A verification harness uses this to choose between comparing against
// real hardware and comparing against an independent oracle.
func Native() bool {
	return native
}

// Target returns a human-readable name for the detected target,
// "neon" or "scalar".
func Target() string {
	return targetName
}

// forceScalarEnv reports whether the NEONREF_FORCE_SCALAR environment
// variable requests ignoring the real vector unit even when present.
func forceScalarEnv() bool {
	v := os.Getenv("NEONREF_FORCE_SCALAR")
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err != nil || b
}
