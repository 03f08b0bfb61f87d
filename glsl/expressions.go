// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// Call site rendering. Declarations and call sites agree on names by
// construction: both go through the resource's logical name, which in
// this dialect is also the declared name for every kind.

func sampleCall(r *ir.Resource, coords string) (string, error) {
	return fmt.Sprintf("texture(%s, %s)", r.Name, coords), nil
}

func sampleLevelCall(r *ir.Resource, coords, level string) (string, error) {
	return fmt.Sprintf("textureLod(%s, %s, %s)", r.Name, coords, level), nil
}

func gatherCall(r *ir.Resource, coords string) (string, error) {
	return fmt.Sprintf("textureGather(%s, %s)", r.Name, coords), nil
}

// fetchCall loads one texel through the combined object. The fetch
// resource is declared sampler2D here even though filtering never
// applies, which is exactly the sampler-slot asymmetry against the
// split dialects.
func fetchCall(r *ir.Resource, coords, level string) (string, error) {
	return fmt.Sprintf("texelFetch(%s, %s, %s)", r.Name, coords, level), nil
}

// uniformAccess spells block member access. Blocks are declared
// anonymous, so members live in the global namespace.
func uniformAccess(block, member string) (string, error) {
	return member, nil
}
