// Command shadergenc renders shader manifests into dialect source files.
//
// Usage:
//
//	shadergenc [options] <manifest>
//
// Examples:
//
//	shadergenc shaders.toml                  # Render all targets to stdout
//	shadergenc -dialect msl shaders.toml     # Render one dialect
//	shadergenc -o out shaders.toml           # Write <name>.<ext> files
//	shadergenc -watch -o out shaders.toml    # Re-render on change
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/dialect"
	"github.com/gogpu/shadergen/manifest"
)

var (
	dialects  = flag.String("dialect", "", "comma-separated dialects to render (default: manifest targets)")
	output    = flag.String("o", "", "output directory (default: stdout)")
	highlight = flag.Bool("highlight", false, "syntax-highlight stdout output")
	watch     = flag.Bool("watch", false, "watch the manifest directory and re-render on change")
	verbose   = flag.Bool("v", false, "verbose diagnostics")
	version   = flag.Bool("version", false, "print version")
)

const shadergenVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("shadergenc version %s\n", shadergenVersion)
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no manifest specified")
		usage()
		os.Exit(1)
	}
	manifestPath := args[0]

	targets, err := parseDialects(*dialects)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := renderManifest(manifestPath, targets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *watch {
		if err := watchManifest(manifestPath, targets); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// parseDialects decodes the -dialect flag. Empty means the manifest's
// own targets.
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

// renderManifest loads the manifest and renders every shader into every
// target dialect.
func renderManifest(path string, override []dialect.Dialect) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	targets := override
	if len(targets) == 0 {
		targets = m.RenderTargets()
	}

	for _, shader := range m.Shaders {
		for _, d := range targets {
			code, info, err := shadergen.Render(shader, d, shadergen.DefaultOptions())
			if err != nil {
				return err
			}
			slog.Debug("rendered shader",
				"shader", shader.Name,
				"dialect", d.String(),
				"entry", info.EntryPoint,
				"bytes", len(code))
			if err := emit(shader.Name, d, code); err != nil {
				return err
			}
		}
	}
	return nil
}

// emit writes one rendered artifact to the output directory, or to
// stdout behind a comment banner naming it.
func emit(name string, d dialect.Dialect, code string) error {
	artifact := name + "." + d.FileExt()

	if *output != "" {
		if err := os.MkdirAll(*output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		outPath := filepath.Join(*output, artifact)
		if err := os.WriteFile(outPath, []byte(code), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", outPath, len(code))
		return nil
	}

	fmt.Printf("// %s\n", artifact)
	if *highlight {
		return highlightSource(os.Stdout, code, d)
	}
	_, err := io.WriteString(os.Stdout, code)
	return err
}

// highlightSource writes code through chroma's terminal formatter. MSL
// has no dedicated lexer; the C++ one covers it.
func highlightSource(w io.Writer, code string, d dialect.Dialect) error {
	language := d.String()
	if d == dialect.MSL {
		language = "c++"
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", language, err)
	}
	return formatter.Format(w, style, it)
}

// watchManifest re-renders whenever the manifest's directory changes.
// Watching the directory instead of the file survives editors that
// replace files on save, and picks up body_file edits too.
func watchManifest(path string, targets []dialect.Dialect) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	fmt.Printf("watching %s\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if err := renderManifest(path, targets); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shadergenc [options] <manifest>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shadergenc shaders.toml                Render all targets to stdout\n")
	fmt.Fprintf(os.Stderr, "  shadergenc -dialect msl shaders.toml   Render one dialect\n")
	fmt.Fprintf(os.Stderr, "  shadergenc -o out shaders.toml         Write one file per shader and dialect\n")
	fmt.Fprintf(os.Stderr, "  shadergenc -watch -o out shaders.toml  Re-render on manifest changes\n")
}
