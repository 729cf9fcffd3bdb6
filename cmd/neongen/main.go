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

// Command neongen generates the dispatch surface of the neon package:
// one file per arithmetic rule, holding the 12 per-shape entry points
// that apply the rule's kernel lane by lane.
//
// Usage:
//
//	neongen -rule vhadd -output ../../neon
//	neongen -all -output ../../neon
//
// Or via go:generate in the neon package:
//
//	//go:generate go run github.com/pxl-lab/go-neonref/cmd/neongen -all -output .
//
// Generating the entries from one shape table guarantees the 12 shape
// variants of a rule cannot drift from one another; adding a rule means
// adding one kernel to the neon package and one row to the rule table
// here.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	ruleName  = flag.String("rule", "", "Generate a single rule (e.g. vhadd)")
	allRules  = flag.Bool("all", false, "Generate every rule in the table")
	outputDir = flag.String("output", ".", "Output directory (the neon package)")
)

func main() {
	flag.Parse()

	if *ruleName == "" && !*allRules {
		fmt.Fprintf(os.Stderr, "Error: either -rule or -all is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var selected []Rule
	if *allRules {
		selected = Rules
	} else {
		r, ok := LookupRule(*ruleName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown rule %q\n", *ruleName)
			os.Exit(1)
		}
		selected = []Rule{r}
	}

	g := &Generator{OutputDir: *outputDir}
	for _, r := range selected {
		if err := g.Generate(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Generated %d rule file(s) in %s\n", len(selected), *outputDir)
}
