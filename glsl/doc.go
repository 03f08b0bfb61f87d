// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl renders shader descriptions into Vulkan-flavored GLSL.
//
// The dialect declares textures and samplers combined (sampler2D),
// addresses bindings with explicit (set, binding) pairs, and reaches
// pipeline values through gl_* builtins. Texel fetch goes through the
// combined object, so a fetch-only texture still occupies a sampler
// slot at runtime even though no filtering ever happens.
//
// Clip-space Y points down in this dialect; the generated entry point
// flips the Y of the portable position output after the body runs, so
// authors never see the difference.
package glsl
