// Command shaderinfo prints the resolved binding and layout tables a
// manifest's shaders get on each dialect, without writing any source.
//
// Usage:
//
//	shaderinfo [options] <manifest>
//
// Examples:
//
//	shaderinfo shaders.toml                  # Report all manifest targets
//	shaderinfo -dialect hlsl shaders.toml    # Report one dialect
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/dialect"
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/manifest"
)

var dialects = flag.String("dialect", "", "comma-separated dialects to report (default: manifest targets)")

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no manifest specified")
		usage()
		os.Exit(1)
	}

	m, err := manifest.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	targets, err := parseDialects(*dialects)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(targets) == 0 {
		targets = m.RenderTargets()
	}

	for i, shader := range m.Shaders {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("shader %s (%s)\n", shader.Name, shader.Stage)
		for _, d := range targets {
			_, info, err := shadergen.Render(shader, d, shadergen.DefaultOptions())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			printInfo(info)
		}
	}
}

func parseDialects(list string) ([]dialect.Dialect, error) {
	if list == "" {
		return nil, nil
	}
	var out []dialect.Dialect
	for _, name := range strings.Split(list, ",") {
		d, err := dialect.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// printInfo writes one dialect's report. Map keys print sorted so the
// output diffs cleanly between runs.
func printInfo(info ir.Info) {
	fmt.Printf("  %s: entry point %s\n", info.Dialect, info.EntryPoint)
	for _, name := range sortedKeys(info.Bindings) {
		fmt.Printf("    binding  %-24s %s\n", name, info.Bindings[name])
	}
	for _, name := range sortedKeys(info.Offsets) {
		fmt.Printf("    offset   %-24s %d\n", name, info.Offsets[name])
	}
	for _, name := range sortedKeys(info.Spans) {
		fmt.Printf("    span     %-24s %d\n", name, info.Spans[name])
	}
	if len(info.SplitResources) > 0 {
		fmt.Printf("    split    %s\n", strings.Join(info.SplitResources, ", "))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shaderinfo [options] <manifest>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shaderinfo shaders.toml                Report all manifest targets\n")
	fmt.Fprintf(os.Stderr, "  shaderinfo -dialect hlsl shaders.toml  Report one dialect\n")
}
