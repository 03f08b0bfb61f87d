package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shadergen/dialect"
	"github.com/gogpu/shadergen/ir"
)

// Format identifies a manifest encoding.
type Format uint8

const (
	// TOML is the go-toml encoding, conventionally .toml files.
	TOML Format = iota
	// YAML is the yaml.v3 encoding, conventionally .yaml or .yml files.
	YAML
)

// String returns the format name.
func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// DetectFormat maps a manifest file name to its Format by extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("manifest %s: unknown extension (want .toml, .yaml or .yml)", path)
}

// Manifest is a decoded shader manifest.
type Manifest struct {
	// Shaders holds the declared shaders in manifest order.
	Shaders []*ir.Shader

	// Targets holds the dialects the manifest asks to render, in
	// manifest order. Empty means every dialect.
	Targets []dialect.Dialect
}

// RenderTargets returns the manifest's requested dialects, or all
// dialects when the manifest names none.
func (m *Manifest) RenderTargets() []dialect.Dialect {
	if len(m.Targets) == 0 {
		return dialect.All()
	}
	return m.Targets
}

// Shader returns the declared shader with the given name, or nil.
func (m *Manifest) Shader(name string) *ir.Shader {
	for _, s := range m.Shaders {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Load reads and decodes the manifest at path. The format follows the
// file extension; body_file references resolve relative to the
// manifest's directory.
func Load(path string) (*Manifest, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := parse(data, format, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest from raw bytes. body_file references
// resolve relative to the current directory; prefer Load for manifests
// that live on disk.
func Parse(data []byte, format Format) (*Manifest, error) {
	return parse(data, format, "")
}

// rawManifest is the document schema shared by both encodings.
type rawManifest struct {
	Targets []string    `toml:"targets" yaml:"targets"`
	Shaders []rawShader `toml:"shaders" yaml:"shaders"`
}

type rawShader struct {
	Name      string        `toml:"name" yaml:"name"`
	Stage     string        `toml:"stage" yaml:"stage"`
	Workgroup []uint32      `toml:"workgroup" yaml:"workgroup"`
	Body      string        `toml:"body" yaml:"body"`
	BodyFile  string        `toml:"body_file" yaml:"body_file"`
	Resources []rawResource `toml:"resources" yaml:"resources"`
	Blocks    []rawBlock    `toml:"blocks" yaml:"blocks"`
	Push      *rawPush      `toml:"push" yaml:"push"`
	IO        []rawIO       `toml:"io" yaml:"io"`
}

type rawResource struct {
	Name     string  `toml:"name" yaml:"name"`
	Kind     string  `toml:"kind" yaml:"kind"`
	Texel    string  `toml:"texel" yaml:"texel"`
	Set      *uint32 `toml:"set" yaml:"set"`
	Binding  *uint32 `toml:"binding" yaml:"binding"`
	Register string  `toml:"register" yaml:"register"`
	Space    uint32  `toml:"space" yaml:"space"`
	Slot     *uint32 `toml:"slot" yaml:"slot"`
}

type rawBlock struct {
	Name     string      `toml:"name" yaml:"name"`
	Capacity uint32      `toml:"capacity" yaml:"capacity"`
	Members  []rawMember `toml:"members" yaml:"members"`
	Set      *uint32     `toml:"set" yaml:"set"`
	Binding  *uint32     `toml:"binding" yaml:"binding"`
	Register string      `toml:"register" yaml:"register"`
	Space    uint32      `toml:"space" yaml:"space"`
	Slot     *uint32     `toml:"slot" yaml:"slot"`
}

type rawPush struct {
	Name       string      `toml:"name" yaml:"name"`
	BaseOffset uint32      `toml:"base_offset" yaml:"base_offset"`
	Capacity   uint32      `toml:"capacity" yaml:"capacity"`
	Members    []rawMember `toml:"members" yaml:"members"`
	Register   string      `toml:"register" yaml:"register"`
	Space      uint32      `toml:"space" yaml:"space"`
	Slot       *uint32     `toml:"slot" yaml:"slot"`
}

type rawMember struct {
	Name   string  `toml:"name" yaml:"name"`
	Type   string  `toml:"type" yaml:"type"`
	Count  uint32  `toml:"count" yaml:"count"`
	Offset *uint32 `toml:"offset" yaml:"offset"`
}

type rawIO struct {
	Name     string `toml:"name" yaml:"name"`
	Type     string `toml:"type" yaml:"type"`
	Dir      string `toml:"dir" yaml:"dir"`
	Location uint32 `toml:"location" yaml:"location"`
	System   string `toml:"system" yaml:"system"`
}

func parse(data []byte, format Format, dir string) (*Manifest, error) {
	var raw rawManifest
	switch format {
	case TOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown manifest format %d", format)
	}

	if len(raw.Shaders) == 0 {
		return nil, ir.NewError(ir.ErrInvalidShader, "manifest declares no shaders")
	}

	m := &Manifest{}
	for _, name := range raw.Targets {
		d, err := dialect.Parse(name)
		if err != nil {
			return nil, err
		}
		m.Targets = append(m.Targets, d)
	}

	for i := range raw.Shaders {
		shader, err := buildShader(&raw.Shaders[i], dir)
		if err != nil {
			return nil, fmt.Errorf("shader %q: %w", raw.Shaders[i].Name, err)
		}
		m.Shaders = append(m.Shaders, shader)
	}
	return m, nil
}

func buildShader(raw *rawShader, dir string) (*ir.Shader, error) {
	stage, err := ir.ParseStage(raw.Stage)
	if err != nil {
		return nil, err
	}

	s := &ir.Shader{Name: raw.Name, Stage: stage}

	if len(raw.Workgroup) > 3 {
		return nil, ir.NewError(ir.ErrInvalidShader,
			fmt.Sprintf("workgroup has %d components, at most 3 allowed", len(raw.Workgroup)))
	}
	copy(s.Workgroup[:], raw.Workgroup)

	for i := range raw.Resources {
		r, err := buildResource(&raw.Resources[i])
		if err != nil {
			return nil, err
		}
		s.Resources = append(s.Resources, *r)
	}

	for i := range raw.Blocks {
		b, err := buildBlock(&raw.Blocks[i])
		if err != nil {
			return nil, err
		}
		s.Blocks = append(s.Blocks, *b)
	}

	if raw.Push != nil {
		p, err := buildPush(raw.Push)
		if err != nil {
			return nil, err
		}
		s.Push = p
	}

	for _, io := range raw.IO {
		slot, err := buildIO(io)
		if err != nil {
			return nil, err
		}
		s.IO = append(s.IO, slot)
	}

	body, err := resolveBody(raw, dir)
	if err != nil {
		return nil, err
	}
	s.Body = ir.StaticBody(body)

	if err := ir.Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func resolveBody(raw *rawShader, dir string) (string, error) {
	switch {
	case raw.Body != "" && raw.BodyFile != "":
		return "", ir.NewError(ir.ErrInvalidShader, "body and body_file are mutually exclusive")
	case raw.Body != "":
		return raw.Body, nil
	case raw.BodyFile != "":
		data, err := os.ReadFile(filepath.Join(dir, raw.BodyFile))
		if err != nil {
			return "", fmt.Errorf("read body: %w", err)
		}
		return string(data), nil
	default:
		return "", ir.NewError(ir.ErrInvalidShader, "no body or body_file")
	}
}

func buildResource(raw *rawResource) (*ir.Resource, error) {
	kind, err := ir.ParseResourceKind(raw.Kind)
	if err != nil {
		return nil, fmt.Errorf("resource %q: %w", raw.Name, err)
	}
	r := &ir.Resource{Name: raw.Name, Kind: kind}
	if raw.Texel != "" {
		texel, err := ir.ParseType(raw.Texel)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", raw.Name, err)
		}
		r.Texel = texel
	} else if kind != ir.KindSampler {
		r.Texel = ir.Float4
	}
	r.SetBinding = buildSetBinding(raw.Set, raw.Binding)
	r.Register, err = parseRegister(raw.Register, raw.Space)
	if err != nil {
		return nil, fmt.Errorf("resource %q: %w", raw.Name, err)
	}
	r.Slot = buildSlot(raw.Slot)
	return r, nil
}

func buildBlock(raw *rawBlock) (*ir.Block, error) {
	b := &ir.Block{Name: raw.Name, Capacity: raw.Capacity}
	for _, m := range raw.Members {
		member, err := buildMember(m)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", raw.Name, err)
		}
		b.Members = append(b.Members, member)
	}
	var err error
	b.SetBinding = buildSetBinding(raw.Set, raw.Binding)
	b.Register, err = parseRegister(raw.Register, raw.Space)
	if err != nil {
		return nil, fmt.Errorf("block %q: %w", raw.Name, err)
	}
	b.Slot = buildSlot(raw.Slot)
	return b, nil
}

func buildPush(raw *rawPush) (*ir.PushBlock, error) {
	p := &ir.PushBlock{
		Name:       raw.Name,
		BaseOffset: raw.BaseOffset,
		Capacity:   raw.Capacity,
	}
	for _, m := range raw.Members {
		member, err := buildMember(m)
		if err != nil {
			return nil, fmt.Errorf("push block %q: %w", raw.Name, err)
		}
		p.Members = append(p.Members, member)
	}
	var err error
	p.Register, err = parseRegister(raw.Register, raw.Space)
	if err != nil {
		return nil, fmt.Errorf("push block %q: %w", raw.Name, err)
	}
	p.Slot = buildSlot(raw.Slot)
	return p, nil
}

func buildMember(raw rawMember) (ir.BlockMember, error) {
	typ, err := ir.ParseType(raw.Type)
	if err != nil {
		return ir.BlockMember{}, fmt.Errorf("member %q: %w", raw.Name, err)
	}
	return ir.BlockMember{
		Name:   raw.Name,
		Type:   typ,
		Count:  raw.Count,
		Offset: raw.Offset,
	}, nil
}

func buildIO(raw rawIO) (ir.StageIO, error) {
	typ, err := ir.ParseType(raw.Type)
	if err != nil {
		return ir.StageIO{}, fmt.Errorf("io %q: %w", raw.Name, err)
	}
	io := ir.StageIO{Name: raw.Name, Type: typ, Location: raw.Location}
	switch raw.Dir {
	case "in":
		io.Dir = ir.DirIn
	case "out":
		io.Dir = ir.DirOut
	default:
		return ir.StageIO{}, ir.NewError(ir.ErrInvalidShader,
			fmt.Sprintf("io %q: direction %q (want in or out)", raw.Name, raw.Dir))
	}
	if raw.System != "" {
		sys, err := ir.ParseSystemValue(raw.System)
		if err != nil {
			return ir.StageIO{}, fmt.Errorf("io %q: %w", raw.Name, err)
		}
		io.System = sys
	}
	return io, nil
}

func buildSetBinding(set, binding *uint32) *ir.SetBinding {
	if set == nil && binding == nil {
		return nil
	}
	sb := &ir.SetBinding{}
	if set != nil {
		sb.Set = *set
	}
	if binding != nil {
		sb.Binding = *binding
	}
	return sb
}

func buildSlot(slot *uint32) *ir.Slot {
	if slot == nil {
		return nil
	}
	return &ir.Slot{Index: *slot}
}

// parseRegister decodes a register coordinate written as class letter
// plus index, e.g. "t2" or "b0". Empty means no register coordinates.
func parseRegister(s string, space uint32) (*ir.Register, error) {
	if s == "" {
		return nil, nil
	}
	class, err := ir.ParseRegisterType(s[:1])
	if err != nil {
		return nil, err
	}
	index, err := strconv.ParseUint(s[1:], 10, 32)
	if err != nil {
		return nil, ir.NewError(ir.ErrInvalidShader,
			fmt.Sprintf("register %q: bad index", s))
	}
	return &ir.Register{Type: class, Index: uint32(index), Space: space}, nil
}
