package ir

// Stage identifies the pipeline stage an entry point runs in.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
	StageCompute
)

// String returns the stage name as used in manifests and diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// ParseStage maps a manifest stage name to its Stage value.
func ParseStage(name string) (Stage, error) {
	switch name {
	case "vertex":
		return StageVertex, nil
	case "fragment":
		return StageFragment, nil
	case "compute":
		return StageCompute, nil
	}
	return 0, NewError(ErrInvalidShader, "unknown stage \""+name+"\" (want vertex, fragment or compute)")
}

// BodyFunc produces the body text for one render. It is invoked once
// per target dialect with a vocabulary bound to that dialect; the
// returned text is inserted into the entry point verbatim.
type BodyFunc func(v *Vocab) (string, error)

// StaticBody wraps dialect-independent body text as a BodyFunc. The
// text is inserted as-is on every render; use a hand-written BodyFunc
// when the body needs the vocabulary.
func StaticBody(text string) BodyFunc {
	return func(*Vocab) (string, error) {
		return text, nil
	}
}

// Shader is one entry point's complete declaration set. It is the unit
// shadergen renders: one Shader in, one dialect source text out.
type Shader struct {
	// Name is the logical shader name. It names output artifacts and,
	// for dialects without a fixed entry point name, the entry point.
	Name string

	// Stage is the pipeline stage.
	Stage Stage

	// Workgroup is the compute workgroup size. Zero components default
	// to 1 at render time. Must be left zero for non-compute stages.
	Workgroup [3]uint32

	// Resources declares the textures and samplers the body accesses.
	Resources []Resource

	// Blocks declares the uniform constant blocks.
	Blocks []Block

	// Push declares the push-constant block, if any.
	Push *PushBlock

	// IO declares the stage interface in order: linked inputs, system
	// inputs, linked outputs, system outputs.
	IO []StageIO

	// Body produces the entry point body.
	Body BodyFunc
}

// Resource returns the declared resource with the given logical name,
// or nil.
func (s *Shader) Resource(name string) *Resource {
	for i := range s.Resources {
		if s.Resources[i].Name == name {
			return &s.Resources[i]
		}
	}
	return nil
}

// Block returns the declared uniform block with the given name, or nil.
func (s *Shader) Block(name string) *Block {
	for i := range s.Blocks {
		if s.Blocks[i].Name == name {
			return &s.Blocks[i]
		}
	}
	return nil
}

// Inputs returns the declared inputs in declaration order.
func (s *Shader) Inputs() []StageIO {
	return s.ioDir(DirIn)
}

// Outputs returns the declared outputs in declaration order.
func (s *Shader) Outputs() []StageIO {
	return s.ioDir(DirOut)
}

func (s *Shader) ioDir(dir IODirection) []StageIO {
	var out []StageIO
	for _, io := range s.IO {
		if io.Dir == dir {
			out = append(out, io)
		}
	}
	return out
}

// WorkgroupOrDefault returns the workgroup size with zero components
// replaced by 1.
func (s *Shader) WorkgroupOrDefault() [3]uint32 {
	wg := s.Workgroup
	for i := range wg {
		if wg[i] == 0 {
			wg[i] = 1
		}
	}
	return wg
}
