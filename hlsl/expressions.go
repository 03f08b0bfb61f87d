// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// Call site rendering for the split texture/sampler model. The names
// come from the same derivation the declarations use, so a combined
// resource can never be declared split and called combined or the
// other way around.

func sampleCall(r *ir.Resource, coords string) (string, error) {
	return fmt.Sprintf("%s.Sample(%s, %s)",
		ir.SplitTextureName(r.Name), ir.SplitSamplerName(r.Name), coords), nil
}

func sampleLevelCall(r *ir.Resource, coords, level string) (string, error) {
	return fmt.Sprintf("%s.SampleLevel(%s, %s, %s)",
		ir.SplitTextureName(r.Name), ir.SplitSamplerName(r.Name), coords, level), nil
}

func gatherCall(r *ir.Resource, coords string) (string, error) {
	return fmt.Sprintf("%s.Gather(%s, %s)",
		ir.SplitTextureName(r.Name), ir.SplitSamplerName(r.Name), coords), nil
}

// fetchCall loads one texel. No sampler exists anywhere on this path:
// the resource is declared as a bare Texture2D and Load takes the mip
// level in its coordinate.
func fetchCall(r *ir.Resource, coords, level string) (string, error) {
	return fmt.Sprintf("%s.Load(int3(%s, %s))", r.Name, coords, level), nil
}

// uniformAccess spells block member access. cbuffer members live in
// the global namespace.
func uniformAccess(block, member string) (string, error) {
	return member, nil
}
