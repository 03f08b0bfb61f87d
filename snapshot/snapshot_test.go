// Package snapshot_test provides golden snapshot tests for all shadergen
// dialects.
//
// For each manifest in testdata/in/, the test renders every declared
// shader through all three backends and compares output to golden files
// stored in testdata/golden/{glsl,hlsl,msl}/.
//
// To regenerate golden files after intentional changes:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/dialect"
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/manifest"
)

// ---------------------------------------------------------------------------
// Test Runner
// ---------------------------------------------------------------------------

// manifestFile represents an input manifest loaded from disk.
type manifestFile struct {
	name     string // base name without extension (e.g., "lit_fragment")
	manifest *manifest.Manifest
}

// TestSnapshots is the main golden snapshot test. It loads all input
// manifests, renders each declared shader into every target dialect, and
// compares with golden files.
func TestSnapshots(t *testing.T) {
	manifests := loadManifests(t, filepath.Join("testdata", "in"))
	if len(manifests) == 0 {
		t.Fatal("no input manifests found in testdata/in/")
	}

	for _, mf := range manifests {
		t.Run(mf.name, func(t *testing.T) {
			for _, shader := range mf.manifest.Shaders {
				t.Run(shader.Name, func(t *testing.T) {
					for _, d := range mf.manifest.RenderTargets() {
						t.Run(d.String(), func(t *testing.T) {
							code := render(t, shader, d)
							path := filepath.Join("testdata", "golden", d.String(), shader.Name+"."+d.FileExt())
							compareGolden(t, path, code)
						})
					}
				})
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Manifest Loading
// ---------------------------------------------------------------------------

// loadManifests reads all .toml manifests from the given directory.
func loadManifests(t *testing.T, dir string) []manifestFile {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read input directory %q: %v", dir, err)
	}

	var manifests []manifestFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		m, loadErr := manifest.Load(filepath.Join(dir, entry.Name()))
		if loadErr != nil {
			t.Fatalf("load manifest %q: %v", entry.Name(), loadErr)
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")
		manifests = append(manifests, manifestFile{name: name, manifest: m})
	}

	// Sort for deterministic test order
	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].name < manifests[j].name
	})

	return manifests
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// render renders one shader into one dialect through the root API. Any
// failure is a regression: manifests are validated at load time, so a
// render error here means a backend rejected a valid description.
func render(t *testing.T, shader *ir.Shader, d dialect.Dialect) string {
	t.Helper()

	code, _, err := shadergen.Render(shader, d, shadergen.DefaultOptions())
	if err != nil {
		t.Fatalf("render %s: %v", d, err)
	}
	return code
}

// ---------------------------------------------------------------------------
// Golden File Comparison
// ---------------------------------------------------------------------------

// compareGolden compares actual output with the golden file at path.
// If UPDATE_GOLDEN is set, writes actual output as the new golden file.
func compareGolden(t *testing.T, path, actual string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			t.Fatalf("create golden dir: %v", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(actual), 0o644); wErr != nil {
			t.Fatalf("write golden file: %v", wErr)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file missing: %s\nRun with UPDATE_GOLDEN=1 to create.\n\nActual output:\n%s", path, truncate(actual, 500))
	}
	if err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}

	// Normalize line endings for cross-platform comparison.
	// Git may convert \n to \r\n on Windows checkout.
	expectedStr := strings.ReplaceAll(string(expected), "\r\n", "\n")
	actualStr := strings.ReplaceAll(actual, "\r\n", "\n")

	if expectedStr != actualStr {
		diff := diffStrings(expectedStr, actualStr)
		t.Errorf("output differs from golden %s:\n%s", path, diff)
	}
}

// diffStrings produces a simple line-by-line diff showing the first
// difference and surrounding context.
func diffStrings(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	maxLines := len(expectedLines)
	if len(actualLines) > maxLines {
		maxLines = len(actualLines)
	}

	firstDiff := -1
	for i := 0; i < maxLines; i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			firstDiff = i
			break
		}
	}

	if firstDiff < 0 {
		return "(no difference found)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "first difference at line %d:\n", firstDiff+1)
	fmt.Fprintf(&sb, "  expected lines: %d\n", len(expectedLines))
	fmt.Fprintf(&sb, "  actual lines:   %d\n\n", len(actualLines))

	// Show context around the first difference
	const contextLines = 3
	start := firstDiff - contextLines
	if start < 0 {
		start = 0
	}
	end := firstDiff + contextLines + 1
	if end > maxLines {
		end = maxLines
	}

	for i := start; i < end; i++ {
		prefix := " "
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			prefix = "!"
		}
		fmt.Fprintf(&sb, "%s %4d expected: %s\n", prefix, i+1, truncate(eLine, 120))
		if eLine != aLine {
			fmt.Fprintf(&sb, "%s %4d actual:   %s\n", prefix, i+1, truncate(aLine, 120))
		}
	}

	return sb.String()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
