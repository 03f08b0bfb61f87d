// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// ShaderModel represents a DirectX Shader Model version.
type ShaderModel uint8

// Supported Shader Model versions. The zero value is ShaderModel5_1,
// the recommended minimum for descriptor-table binding.
const (
	// ShaderModel5_1 provides improved resource binding (default).
	ShaderModel5_1 ShaderModel = iota

	// ShaderModel5_0 is the base SM5 version (DirectX 11). Predates
	// register spaces.
	ShaderModel5_0

	// ShaderModel6_0 introduces wave intrinsics and DXIL.
	ShaderModel6_0
)

func (sm ShaderModel) version() (major, minor uint8) {
	switch sm {
	case ShaderModel5_0:
		return 5, 0
	case ShaderModel6_0:
		return 6, 0
	default:
		return 5, 1
	}
}

// String returns a human-readable representation, e.g. "SM 5.1".
func (sm ShaderModel) String() string {
	major, minor := sm.version()
	return fmt.Sprintf("SM %d.%d", major, minor)
}

// ProfileSuffix returns the profile suffix, e.g. "5_1".
func (sm ShaderModel) ProfileSuffix() string {
	major, minor := sm.version()
	return fmt.Sprintf("%d_%d", major, minor)
}

// SupportsSpaces reports whether register space annotations are
// available. Spaces arrived with root signatures in SM 5.1.
func (sm ShaderModel) SupportsSpaces() bool {
	return sm != ShaderModel5_0
}

// Profile returns the compilation profile for a stage, e.g. "vs_5_1",
// "ps_5_1" or "cs_5_1".
func Profile(stage ir.Stage, sm ShaderModel) string {
	prefix := "vs"
	switch stage {
	case ir.StageFragment:
		prefix = "ps"
	case ir.StageCompute:
		prefix = "cs"
	}
	return prefix + "_" + sm.ProfileSuffix()
}
