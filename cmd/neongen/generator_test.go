package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestEntriesCoverAllShapes(t *testing.T) {
	r, ok := LookupRule("vhadd")
	if !ok {
		t.Fatal("vhadd missing from rule table")
	}

	entries := Entries(r)
	if len(entries) != 12 {
		t.Fatalf("entries: got %d, want 12", len(entries))
	}

	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.GoName] {
			t.Errorf("duplicate entry %s", e.GoName)
		}
		seen[e.GoName] = true
	}
	for _, want := range []string{
		"VhaddS8", "VhaddS16", "VhaddS32", "VhaddU8", "VhaddU16", "VhaddU32",
		"VhaddqS8", "VhaddqS16", "VhaddqS32", "VhaddqU8", "VhaddqU16", "VhaddqU32",
	} {
		if !seen[want] {
			t.Errorf("missing entry %s", want)
		}
	}
}

func TestEntriesLaneCountsMatchWidths(t *testing.T) {
	for _, r := range Rules {
		for _, e := range Entries(r) {
			vectorBits := e.Lanes * e.Bits
			q := strings.Contains(e.Intrinsic, "q_")
			if q && vectorBits != 128 {
				t.Errorf("%s: %d lanes x %d bits = %d, want 128", e.GoName, e.Lanes, e.Bits, vectorBits)
			}
			if !q && vectorBits != 64 {
				t.Errorf("%s: %d lanes x %d bits = %d, want 64", e.GoName, e.Lanes, e.Bits, vectorBits)
			}
		}
	}
}

func TestRenderParses(t *testing.T) {
	g := &Generator{}
	for _, r := range Rules {
		src, err := g.Render(r)
		if err != nil {
			t.Fatalf("Render(%s): %v", r.Name, err)
		}

		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, r.Name+".go", src, 0)
		if err != nil {
			t.Fatalf("Render(%s) output does not parse: %v", r.Name, err)
		}
		if got := len(f.Decls); got != 12 {
			t.Errorf("Render(%s): got %d declarations, want 12", r.Name, got)
		}
		if !strings.HasPrefix(string(src), "// Code generated by") {
			t.Errorf("Render(%s): missing generated-code header", r.Name)
		}
	}
}

func TestLookupRule(t *testing.T) {
	if _, ok := LookupRule("vhadd"); !ok {
		t.Error("LookupRule(vhadd): not found")
	}
	if _, ok := LookupRule("vtbl"); ok {
		t.Error("LookupRule(vtbl): unexpectedly found")
	}
}
