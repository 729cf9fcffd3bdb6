//go:build !arm64

package neon

func init() {
	// No NEON unit on this architecture; the reference is the only
	// implementation available.
	native = false
	targetName = "scalar"
}
