// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// Version represents a GLSL version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common GLSL versions.
var (
	Version430 = Version{Major: 4, Minor: 30} // OpenGL 4.3 (compute shaders)
	Version450 = Version{Major: 4, Minor: 50} // Vulkan-style GLSL
	Version460 = Version{Major: 4, Minor: 60} // OpenGL 4.6
)

// String returns the version as a #version directive value.
func (v Version) String() string {
	return fmt.Sprintf("%d%02d", v.Major, v.Minor)
}

// SupportsCompute returns true if this version supports compute
// shaders.
func (v Version) SupportsCompute() bool {
	return v.Major > 4 || (v.Major == 4 && v.Minor >= 30)
}

// Options configures GLSL code generation.
type Options struct {
	// LangVersion is the target GLSL version.
	// Defaults to Version450 if zero.
	LangVersion Version
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{LangVersion: Version450}
}

// Compile renders a shader description into GLSL source text.
// Returns the source, render info, or an error. Nothing is returned
// on error: validation, binding checks, layout resolution and
// vocabulary mapping all run before text leaves the writer.
func Compile(shader *ir.Shader, options Options) (string, ir.Info, error) {
	if options.LangVersion == (Version{}) {
		options.LangVersion = Version450
	}

	if err := ir.Validate(shader); err != nil {
		return "", ir.Info{}, err
	}
	if err := checkReserved(shader); err != nil {
		return "", ir.Info{}, err
	}
	if shader.Stage == ir.StageCompute && !options.LangVersion.SupportsCompute() {
		return "", ir.Info{}, &ir.Error{
			Kind:    ir.ErrInvalidShader,
			Dialect: "glsl",
			Message: fmt.Sprintf("GLSL %s has no compute stage", options.LangVersion),
		}
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

func checkReserved(shader *ir.Shader) error {
	for _, name := range ir.DeclaredNames(shader) {
		if isReserved(name) {
			return &ir.Error{
				Kind:    ir.ErrInvalidShader,
				Dialect: "glsl",
				Entity:  name,
				Message: "reserved word in this dialect",
			}
		}
	}
	return nil
}
