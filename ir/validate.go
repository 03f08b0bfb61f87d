package ir

import (
	"errors"
	"fmt"
)

// Validate checks a shader description against the structural
// contracts that hold for every dialect: identifier rules, one global
// namespace across declared and derived names, resource kind
// consistency, stage interface ordering and system value placement.
// Dialect-specific requirements (binding coordinate presence, reserved
// words) are checked by the backends.
//
// All violations are reported, joined into one error.
func Validate(s *Shader) error {
	if s == nil {
		return NewError(ErrInvalidShader, "shader is nil")
	}
	v := &validator{shader: s}
	v.validateName()
	v.validateIdentifiers()
	v.validateResources()
	v.validateBlocks()
	v.validateIO()
	v.validateStage()
	if s.Body == nil {
		v.add("", "shader has no body")
	}
	return errors.Join(v.errs...)
}

type validator struct {
	shader *Shader
	errs   []error
}

func (v *validator) add(entity, format string, args ...any) {
	v.errs = append(v.errs, &Error{
		Kind:    ErrInvalidShader,
		Entity:  entity,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) validateName() {
	if !isIdent(v.shader.Name) {
		v.add(v.shader.Name, "shader name must be a plain identifier")
	}
}

// DeclaredNames returns every author-declared identifier in
// declaration order: resources, blocks and their members, the push
// block and its members, and stage IO slots. Backends use the list for
// reserved word checks; derived names are not included.
func DeclaredNames(s *Shader) []string {
	var names []string
	for _, r := range s.Resources {
		names = append(names, r.Name)
	}
	for _, b := range s.Blocks {
		names = append(names, b.Name)
		for _, m := range b.Members {
			names = append(names, m.Name)
		}
	}
	if s.Push != nil {
		names = append(names, s.Push.Name)
		for _, m := range s.Push.Members {
			names = append(names, m.Name)
		}
	}
	for _, io := range s.IO {
		names = append(names, io.Name)
	}
	return names
}

func (v *validator) validateIdentifiers() {
	names := DeclaredNames(v.shader)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if !isIdent(n) {
			v.add(n, "not a plain identifier (letters first, no leading underscore)")
			continue
		}
		if seen[n] {
			v.add(n, "declared more than once; all declared names share one namespace")
		}
		seen[n] = true
	}

	// Derived names must stay free: the split texture/sampler pair of
	// every combined resource, and the IO struct names derived from
	// the shader name.
	for _, r := range v.shader.Resources {
		if r.Kind != KindCombined {
			continue
		}
		for _, derived := range []string{SplitTextureName(r.Name), SplitSamplerName(r.Name)} {
			if seen[derived] {
				v.add(derived, "collides with the name derived for combined resource %q", r.Name)
			}
		}
	}
	if seen[v.shader.Name] {
		v.add(v.shader.Name, "shader name collides with a declared identifier")
	}
	for _, derived := range []string{v.shader.Name + "_Input", v.shader.Name + "_Output"} {
		if seen[derived] {
			v.add(derived, "collides with a name derived from the shader name")
		}
	}
}

func (v *validator) validateResources() {
	for _, r := range v.shader.Resources {
		if r.Kind >= numResourceKinds {
			v.add(r.Name, "unknown resource kind %d", r.Kind)
			continue
		}
		if r.Kind != KindSampler {
			if !r.Texel.IsValid() {
				v.add(r.Name, "invalid texel type %s", r.Texel)
			} else if r.Texel.Kind == ScalarBool {
				v.add(r.Name, "textures cannot carry bool texels")
			}
		}
		if r.Register != nil {
			want := RegisterT
			if r.Kind == KindSampler {
				want = RegisterS
			}
			if r.Register.Type != want {
				v.add(r.Name, "%s resources bind to %s registers, got %s", r.Kind, want, r.Register.Type)
			}
		}
	}
}

func (v *validator) validateBlocks() {
	for _, b := range v.shader.Blocks {
		if b.Register != nil && b.Register.Type != RegisterB {
			v.add(b.Name, "constant blocks bind to b registers, got %s", b.Register.Type)
		}
		v.validateMembers(b.Name, b.Members)
	}
	if p := v.shader.Push; p != nil {
		if p.BaseOffset%4 != 0 {
			v.add(p.Name, "push base offset %d is not a multiple of four", p.BaseOffset)
		}
		if p.Register != nil && p.Register.Type != RegisterB {
			v.add(p.Name, "push ranges bind to b registers, got %s", p.Register.Type)
		}
		v.validateMembers(p.Name, p.Members)
	}
}

func (v *validator) validateMembers(block string, members []BlockMember) {
	if len(members) == 0 {
		v.add(block, "block has no members")
	}
	for _, m := range members {
		if !m.Type.IsValid() {
			v.add(m.Name, "invalid member type %s", m.Type)
			continue
		}
		// Bool layouts diverge across dialects (1 vs 4 bytes), so
		// blocks carry flags as uint instead.
		if m.Type.Kind == ScalarBool {
			v.add(m.Name, "bool members are not layout-portable, declare uint")
		}
		if m.Count > 0 && m.Type.Size() != 16 {
			v.add(m.Name, "array members need a four-component element type, got %s", m.Type)
		}
	}
}

func (v *validator) validateIO() {
	// Declaration order is part of the contract: linked inputs, then
	// system inputs, then linked outputs, then system outputs.
	group := func(io StageIO) int {
		switch {
		case io.Dir == DirIn && io.Linked():
			return 0
		case io.Dir == DirIn:
			return 1
		case io.Linked():
			return 2
		default:
			return 3
		}
	}
	groupNames := []string{"linked inputs", "system inputs", "linked outputs", "system outputs"}

	prev := 0
	locations := map[IODirection]map[uint32]string{DirIn: {}, DirOut: {}}
	systems := map[SystemValue]string{}
	for _, io := range v.shader.IO {
		g := group(io)
		if g < prev {
			v.add(io.Name, "%s must precede %s in the stage interface", groupNames[g], groupNames[prev])
		}
		prev = g

		if !io.Type.IsValid() {
			v.add(io.Name, "invalid slot type %s", io.Type)
			continue
		}

		if io.Linked() {
			if holder, dup := locations[io.Dir][io.Location]; dup {
				v.add(io.Name, "location %d already taken by %q", io.Location, holder)
			}
			locations[io.Dir][io.Location] = io.Name
			continue
		}

		if io.System >= numSystemValues {
			v.add(io.Name, "unknown system value %d", io.System)
			continue
		}
		if holder, dup := systems[io.System]; dup {
			v.add(io.Name, "system value %s already carried by %q", io.System, holder)
		}
		systems[io.System] = io.Name

		stage, dir := io.System.Placement()
		if stage != v.shader.Stage || dir != io.Dir {
			v.add(io.Name, "system value %s belongs to %s %s slots", io.System, stage, dir)
		}
		if want := io.System.Type(); io.Type != want {
			v.add(io.Name, "system value %s requires type %s, got %s", io.System, want, io.Type)
		}
	}
}

func (v *validator) validateStage() {
	s := v.shader
	switch s.Stage {
	case StageVertex:
		if !v.hasSystemOutput(SysPosition) {
			v.add(s.Name, "vertex shader declares no position output")
		}
	case StageFragment:
		if len(s.Outputs()) == 0 {
			v.add(s.Name, "fragment shader declares no outputs")
		}
	case StageCompute:
		for _, io := range s.IO {
			if io.Linked() {
				v.add(io.Name, "compute shaders have no linked slots")
			} else if io.System != SysGlobalInvocationID {
				v.add(io.Name, "system value %s is not available to compute", io.System)
			}
		}
	default:
		v.add(s.Name, "unknown stage %d", s.Stage)
	}
	if s.Stage != StageCompute && s.Workgroup != [3]uint32{} {
		v.add(s.Name, "workgroup size is only meaningful for compute")
	}
}

func (v *validator) hasSystemOutput(sys SystemValue) bool {
	for _, io := range v.shader.IO {
		if io.Dir == DirOut && io.System == sys {
			return true
		}
	}
	return false
}

// isIdent reports whether s is a plain identifier: a letter followed
// by letters, digits or underscores. Leading underscores are reserved
// for generated locals.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '_'):
		default:
			return false
		}
	}
	return true
}
