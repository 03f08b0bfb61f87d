// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package msl renders shader descriptions into Metal Shading Language.
//
// The dialect keeps textures and samplers split, so every combined
// resource decomposes into a texture2d/sampler parameter pair sharing
// the combined binding's argument slot across the texture and sampler
// tables. Texel fetch compiles to texture2d.read and consumes no
// sampler at all.
//
// Bindings are entry point parameters carrying [[texture(n)]],
// [[sampler(n)]] and [[buffer(n)]] attributes instead of file-scope
// declarations; constant blocks become struct parameters whose members
// are packed vectors with explicit padding, so the bytes land exactly
// where the portable layout put them. Linked stage IO travels through
// generated _Input/_Output structs, and the compute threadgroup size
// is a dispatch-time property of the pipeline, never part of the
// source.
package msl
