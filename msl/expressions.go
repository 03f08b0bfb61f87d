// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// Call site rendering for the split texture/sampler model. The names
// come from the same derivation the declarations use, so a combined
// resource can never be declared split and called combined or the
// other way around.

func sampleCall(r *ir.Resource, coords string) (string, error) {
	return fmt.Sprintf("%s.sample(%s, %s)",
		ir.SplitTextureName(r.Name), ir.SplitSamplerName(r.Name), coords), nil
}

func sampleLevelCall(r *ir.Resource, coords, level string) (string, error) {
	return fmt.Sprintf("%s.sample(%s, %s, level(%s))",
		ir.SplitTextureName(r.Name), ir.SplitSamplerName(r.Name), coords, level), nil
}

func gatherCall(r *ir.Resource, coords string) (string, error) {
	return fmt.Sprintf("%s.gather(%s, %s)",
		ir.SplitTextureName(r.Name), ir.SplitSamplerName(r.Name), coords), nil
}

// fetchCall reads one texel. No sampler exists anywhere on this path:
// the resource is declared as a bare texture2d and read takes unsigned
// coordinates plus the mip level.
func fetchCall(r *ir.Resource, coords, level string) (string, error) {
	return fmt.Sprintf("%s.read(uint2(%s), %s)", r.Name, coords, level), nil
}

// uniformAccess spells block member access. Blocks arrive as reference
// parameters named after the block with the generated-local prefix, so
// authored identifiers can never collide with them.
func uniformAccess(block, member string) (string, error) {
	return blockParam(block) + "." + member, nil
}

// blockParam derives the entry parameter name a block travels under.
func blockParam(block string) string {
	return "_" + block
}
