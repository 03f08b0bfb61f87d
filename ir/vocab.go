package ir

import "fmt"

// VocabFuncs is the capability table a backend supplies to bind a
// vocabulary to its dialect. Each function renders one kind of request
// into dialect text. Resolution happens once per render; bodies never
// see the table directly.
type VocabFuncs struct {
	// Spell renders an abstract type name.
	Spell func(Type) (string, error)

	// Intrinsic renders an intrinsic call with pre-rendered argument
	// expressions.
	Intrinsic func(Intrinsic, []string) (string, error)

	// Sample renders a filtered sample of a combined resource.
	Sample func(r *Resource, coords string) (string, error)

	// SampleLevel renders an explicit-LOD sample of a combined
	// resource.
	SampleLevel func(r *Resource, coords, level string) (string, error)

	// Gather renders a four-texel gather of the first component.
	Gather func(r *Resource, coords string) (string, error)

	// Fetch renders an integer-coordinate texel load.
	Fetch func(r *Resource, coords, level string) (string, error)

	// Uniform renders access to a block member.
	Uniform func(block, member string) (string, error)
}

// Vocab is the vocabulary one body render writes against. All methods
// return best-effort text and latch the first error; the renderer
// checks Err after the body returns and discards the output on
// failure, so bodies can be written without error plumbing.
type Vocab struct {
	funcs     VocabFuncs
	resources map[string]*Resource
	owners    map[string]string // member name -> owning block name
	err       error
}

// NewVocab binds a vocabulary for one render of s. The shader must
// already be validated; NewVocab trusts name uniqueness.
func NewVocab(s *Shader, funcs VocabFuncs) *Vocab {
	v := &Vocab{
		funcs:     funcs,
		resources: make(map[string]*Resource, len(s.Resources)),
		owners:    map[string]string{},
	}
	for i := range s.Resources {
		v.resources[s.Resources[i].Name] = &s.Resources[i]
	}
	for i := range s.Blocks {
		for _, m := range s.Blocks[i].Members {
			v.owners[m.Name] = s.Blocks[i].Name
		}
	}
	if s.Push != nil {
		for _, m := range s.Push.Members {
			v.owners[m.Name] = s.Push.Name
		}
	}
	return v
}

// Err returns the first error latched by any vocabulary call.
func (v *Vocab) Err() error {
	return v.err
}

func (v *Vocab) latch(text string, err error) string {
	if err != nil && v.err == nil {
		v.err = err
	}
	return text
}

func (v *Vocab) fail(kind ErrorKind, entity, format string, args ...any) string {
	if v.err == nil {
		v.err = &Error{Kind: kind, Entity: entity, Message: fmt.Sprintf(format, args...)}
	}
	return ""
}

// Spell returns the dialect spelling of an abstract type.
func (v *Vocab) Spell(t Type) string {
	if !t.IsValid() {
		return v.fail(ErrInvalidShader, "", "cannot spell invalid type %s", t)
	}
	return v.latch(v.funcs.Spell(t))
}

// Intrinsic returns a rendered intrinsic call.
func (v *Vocab) Intrinsic(i Intrinsic, args ...string) string {
	if i.IsValid() && len(args) != i.Arity() {
		return v.fail(ErrInvalidShader, i.String(), "%s takes %d arguments, got %d", i, i.Arity(), len(args))
	}
	return v.latch(v.funcs.Intrinsic(i, args))
}

// Sample returns a filtered sample of the named combined resource at
// normalized coordinates.
func (v *Vocab) Sample(resource, coords string) string {
	r, ok := v.sampled(resource)
	if !ok {
		return ""
	}
	return v.latch(v.funcs.Sample(r, coords))
}

// SampleLevel returns an explicit-LOD sample of the named combined
// resource.
func (v *Vocab) SampleLevel(resource, coords, level string) string {
	r, ok := v.sampled(resource)
	if !ok {
		return ""
	}
	return v.latch(v.funcs.SampleLevel(r, coords, level))
}

// Gather returns a four-texel gather of the named combined resource's
// first component.
func (v *Vocab) Gather(resource, coords string) string {
	r, ok := v.sampled(resource)
	if !ok {
		return ""
	}
	return v.latch(v.funcs.Gather(r, coords))
}

// Fetch returns an unfiltered texel load from the named fetch resource
// at integer coordinates and an explicit mip level.
func (v *Vocab) Fetch(resource, coords, level string) string {
	r, ok := v.resources[resource]
	if !ok {
		v.fail(ErrInvalidShader, resource, "unknown resource")
		return ""
	}
	if r.Kind != KindFetch {
		v.fail(ErrInvalidShader, resource, "fetch needs a fetch resource, %s is %s", resource, r.Kind)
		return ""
	}
	return v.latch(v.funcs.Fetch(r, coords, level))
}

// Uniform returns access to the named block member.
func (v *Vocab) Uniform(member string) string {
	block, ok := v.owners[member]
	if !ok {
		v.fail(ErrInvalidShader, member, "no block declares member %q", member)
		return ""
	}
	return v.latch(v.funcs.Uniform(block, member))
}

func (v *Vocab) sampled(resource string) (*Resource, bool) {
	r, ok := v.resources[resource]
	if !ok {
		v.fail(ErrInvalidShader, resource, "unknown resource")
		return nil, false
	}
	if r.Kind != KindCombined {
		v.fail(ErrInvalidShader, resource, "sampling needs a combined resource, %s is %s", resource, r.Kind)
		return nil, false
	}
	return r, true
}
