// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl renders shader descriptions into D3D-flavored HLSL.
//
// The dialect keeps textures and samplers split, so every combined
// resource decomposes into a Texture2D/SamplerState pair sharing the
// combined binding's register index across the t and s classes. Texel
// fetch compiles to Texture2D.Load and consumes no sampler at all.
//
// Binding coordinates are (register, space) pairs, constant blocks are
// cbuffers with packoffset-pinned members, and pipeline values travel
// as SV_* semantics on entry point parameters. The native fragment
// coordinate carries clip-space W where the portable convention wants
// its reciprocal; the generated prologue rewrites it before the body
// runs.
package hlsl
