package neon

// The dispatch surface (vhadd.go, vrhadd.go, ...) is generated from the
// shape and rule tables in cmd/neongen so the 12 shape variants of each
// rule stay mechanically in sync. Regenerate after adding a rule:

//go:generate go run github.com/pxl-lab/go-neonref/cmd/neongen -all -output .
