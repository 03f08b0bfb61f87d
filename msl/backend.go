// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// Version represents an MSL language version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common MSL versions.
var (
	Version2_0 = Version{Major: 2, Minor: 0}
	Version2_1 = Version{Major: 2, Minor: 1}
	Version2_3 = Version{Major: 2, Minor: 3}
	Version3_0 = Version{Major: 3, Minor: 0}
)

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// LanguageFlag returns the -std flag value for the Metal toolchain,
// e.g. "metal2.1". The version never appears in generated source.
func (v Version) LanguageFlag() string {
	return fmt.Sprintf("metal%d.%d", v.Major, v.Minor)
}

// Options configures MSL code generation.
type Options struct {
	// LangVersion is the target MSL version.
	// Defaults to Version2_1 if zero.
	LangVersion Version
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{LangVersion: Version2_1}
}

// Compile renders a shader description into MSL source text.
// Returns the source, render info, or an error. Nothing is returned
// on error: validation, binding checks, layout resolution and
// vocabulary mapping all run before text leaves the writer.
//
// Unlike the other dialects the entry point carries the shader's own
// name; "main" is reserved in Metal.
func Compile(shader *ir.Shader, options Options) (string, ir.Info, error) {
	if options.LangVersion == (Version{}) {
		options.LangVersion = Version2_1
	}

	if err := ir.Validate(shader); err != nil {
		return "", ir.Info{}, err
	}
	if err := checkReserved(shader); err != nil {
		return "", ir.Info{}, err
	}

	w := newWriter(shader, &options)
	for _, section := range []func() error{
		w.writeBindings,
		w.writeSignature,
		w.writeBody,
		w.closeEntry,
	} {
		if err := section(); err != nil {
			return "", ir.Info{}, err
		}
	}
	return w.String(), w.info, nil
}

// checkReserved covers the shader name too: it becomes the entry point
// identifier in this dialect.
func checkReserved(shader *ir.Shader) error {
	names := append([]string{shader.Name}, ir.DeclaredNames(shader)...)
	for _, name := range names {
		if isReserved(name) {
			return &ir.Error{
				Kind:    ir.ErrInvalidShader,
				Dialect: "msl",
				Entity:  name,
				Message: "reserved word in this dialect",
			}
		}
	}
	return nil
}
