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

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// Generator emits one dispatch file per rule into OutputDir.
type Generator struct {
	OutputDir string
}

// entry is one concrete (rule, shape) instantiation in a file.
type entry struct {
	GoName    string // VhaddS8, VhaddqU16, ...
	Intrinsic string // vhadd_s8, vhaddq_u16, ...
	Type      string
	Lanes     int
	Sign      string
	Bits      int
	Kernel    string
	Doc       string
}

type fileData struct {
	Rule    Rule
	Entries []entry
}

var titleCaser = cases.Title(language.English)

const fileTemplate = `// Code generated by "neongen -rule {{.Rule.Name}}"; DO NOT EDIT.

package neon

// Scalar reference entry points for the NEON {{.Rule.Instr}} instruction
// ({{.Rule.Doc}}), one per register shape.
{{range .Entries}}
// {{.GoName}} implements {{.Intrinsic}}: per-lane {{.Doc}}, {{.Lanes}} {{.Sign}} {{.Bits}}-bit lanes.
func {{.GoName}}(n, m {{.Type}}) {{.Type}} {
	var d {{.Type}}
	for i := range d {
		d[i] = {{.Kernel}}(n[i], m[i])
	}
	return d
}
{{end}}`

var tmpl = template.Must(template.New("rule").Parse(fileTemplate))

// Entries builds the 12 instantiations of a rule: the 6 D-register
// shapes followed by the 6 Q-register shapes.
func Entries(r Rule) []entry {
	exported := titleCaser.String(r.Name)

	var out []entry
	for _, s := range DShapes {
		out = append(out, entry{
			GoName:    exported + s.Suffix,
			Intrinsic: r.Name + "_" + s.Intrinsic,
			Type:      s.Type,
			Lanes:     s.Lanes,
			Sign:      s.Sign,
			Bits:      s.Bits,
			Kernel:    r.Kernel,
			Doc:       r.Doc,
		})
	}
	for _, s := range QShapes {
		out = append(out, entry{
			GoName:    exported + "q" + s.Suffix,
			Intrinsic: r.Name + "q_" + s.Intrinsic,
			Type:      s.Type,
			Lanes:     s.Lanes,
			Sign:      s.Sign,
			Bits:      s.Bits,
			Kernel:    r.Kernel,
			Doc:       r.Doc,
		})
	}
	return out
}

// Render produces the formatted source for one rule file.
func (g *Generator) Render(r Rule) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, fileData{Rule: r, Entries: Entries(r)}); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", r.Name, err)
	}

	src, err := imports.Process(r.Name+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", r.Name, err)
	}
	return src, nil
}

// Generate renders a rule and writes <rule>.go into OutputDir.
func (g *Generator) Generate(r Rule) error {
	src, err := g.Render(r)
	if err != nil {
		return err
	}

	path := filepath.Join(g.OutputDir, r.Name+".go")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
