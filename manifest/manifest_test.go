package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shadergen/dialect"
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/ir"
)

// litTOML exercises every declaration a manifest can carry: targets,
// resources with all three coordinate families, blocks with explicit
// offsets, a push range and a mixed stage interface.
const litTOML = `
targets = ["glsl", "hlsl", "msl"]

[[shaders]]
name = "lit"
stage = "fragment"
body = "color = uv.xyxy;\n"

[[shaders.resources]]
name = "albedo"
kind = "combined"
set = 0
binding = 1
register = "t2"
slot = 1

[[shaders.blocks]]
name = "Params"
capacity = 32
set = 0
binding = 0
register = "b0"
slot = 0

[[shaders.blocks.members]]
name = "extent"
type = "float3"

[[shaders.blocks.members]]
name = "gain"
type = "float"

[[shaders.blocks.members]]
name = "shift"
type = "float2"
offset = 16

[shaders.push]
name = "PC"
base_offset = 64
capacity = 16
register = "b1"
slot = 2

[[shaders.push.members]]
name = "exposure"
type = "float"

[[shaders.io]]
name = "uv"
type = "float2"
dir = "in"
location = 0

[[shaders.io]]
name = "fc"
type = "float4"
dir = "in"
system = "frag_coord"

[[shaders.io]]
name = "color"
type = "float4"
dir = "out"
location = 0
`

func TestParseTOML(t *testing.T) {
	m, err := Parse([]byte(litTOML), TOML)
	require.NoError(t, err)

	assert.Equal(t, []dialect.Dialect{dialect.GLSL, dialect.HLSL, dialect.MSL}, m.Targets)
	require.Len(t, m.Shaders, 1)

	s := m.Shaders[0]
	assert.Equal(t, "lit", s.Name)
	assert.Equal(t, ir.StageFragment, s.Stage)
	assert.Equal(t, [3]uint32{}, s.Workgroup)

	require.Len(t, s.Resources, 1)
	assert.Equal(t, ir.Resource{
		Name:       "albedo",
		Kind:       ir.KindCombined,
		Texel:      ir.Float4,
		SetBinding: &ir.SetBinding{Set: 0, Binding: 1},
		Register:   &ir.Register{Type: ir.RegisterT, Index: 2},
		Slot:       &ir.Slot{Index: 1},
	}, s.Resources[0])

	shift := uint32(16)
	require.Len(t, s.Blocks, 1)
	assert.Equal(t, ir.Block{
		Name: "Params",
		Members: []ir.BlockMember{
			{Name: "extent", Type: ir.Float3},
			{Name: "gain", Type: ir.Float},
			{Name: "shift", Type: ir.Float2, Offset: &shift},
		},
		Capacity:   32,
		SetBinding: &ir.SetBinding{},
		Register:   &ir.Register{Type: ir.RegisterB},
		Slot:       &ir.Slot{},
	}, s.Blocks[0])

	require.NotNil(t, s.Push)
	assert.Equal(t, ir.PushBlock{
		Name:       "PC",
		Members:    []ir.BlockMember{{Name: "exposure", Type: ir.Float}},
		BaseOffset: 64,
		Capacity:   16,
		Register:   &ir.Register{Type: ir.RegisterB, Index: 1},
		Slot:       &ir.Slot{Index: 2},
	}, *s.Push)

	assert.Equal(t, []ir.StageIO{
		{Name: "uv", Type: ir.Float2, Dir: ir.DirIn},
		{Name: "fc", Type: ir.Float4, Dir: ir.DirIn, System: ir.SysFragCoord},
		{Name: "color", Type: ir.Float4, Dir: ir.DirOut},
	}, s.IO)

	body, err := s.Body(nil)
	require.NoError(t, err)
	assert.Equal(t, "color = uv.xyxy;\n", body)
}

const tileYAML = `
targets: [msl]
shaders:
  - name: tile
    stage: compute
    workgroup: [8, 8, 1]
    body: "counts = extent;\n"
    blocks:
      - name: Grid
        set: 0
        binding: 0
        register: b0
        slot: 0
        members:
          - name: extent
            type: uint4
    io:
      - name: gid
        type: uint3
        dir: in
        system: global_invocation_id
`

func TestParseYAML(t *testing.T) {
	m, err := Parse([]byte(tileYAML), YAML)
	require.NoError(t, err)

	assert.Equal(t, []dialect.Dialect{dialect.MSL}, m.Targets)
	require.Len(t, m.Shaders, 1)

	s := m.Shaders[0]
	assert.Equal(t, "tile", s.Name)
	assert.Equal(t, ir.StageCompute, s.Stage)
	assert.Equal(t, [3]uint32{8, 8, 1}, s.Workgroup)

	require.Len(t, s.Blocks, 1)
	assert.Equal(t, ir.Block{
		Name:       "Grid",
		Members:    []ir.BlockMember{{Name: "extent", Type: ir.Uint4}},
		SetBinding: &ir.SetBinding{},
		Register:   &ir.Register{Type: ir.RegisterB},
		Slot:       &ir.Slot{},
	}, s.Blocks[0])

	assert.Equal(t, []ir.StageIO{
		{Name: "gid", Type: ir.Uint3, Dir: ir.DirIn, System: ir.SysGlobalInvocationID},
	}, s.IO)
}

const coverTOML = `
[[shaders]]
name = "cover"
stage = "vertex"
body = "clip = position.xyzz;\n"

[[shaders.blocks]]
name = "Camera"
set = 0
binding = 0
register = "b0"
slot = 0

[[shaders.blocks.members]]
name = "viewport"
type = "float4"

[[shaders.io]]
name = "position"
type = "float3"
dir = "in"
location = 0

[[shaders.io]]
name = "clip"
type = "float4"
dir = "out"
system = "position"
`

const coverYAML = `
shaders:
  - name: cover
    stage: vertex
    body: "clip = position.xyzz;\n"
    blocks:
      - name: Camera
        set: 0
        binding: 0
        register: b0
        slot: 0
        members:
          - name: viewport
            type: float4
    io:
      - name: position
        type: float3
        dir: in
        location: 0
      - name: clip
        type: float4
        dir: out
        system: position
`

// Both encodings describe the same document, so the shaders they build
// must render to identical text.
func TestFormatEquivalence(t *testing.T) {
	fromTOML, err := Parse([]byte(coverTOML), TOML)
	require.NoError(t, err)
	fromYAML, err := Parse([]byte(coverYAML), YAML)
	require.NoError(t, err)

	srcTOML, infoTOML, err := glsl.Compile(fromTOML.Shaders[0], glsl.DefaultOptions())
	require.NoError(t, err)
	srcYAML, infoYAML, err := glsl.Compile(fromYAML.Shaders[0], glsl.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, srcTOML, srcYAML)
	assert.Equal(t, infoTOML, infoYAML)
}

const loadTOML = `
[[shaders]]
name = "lit"
stage = "fragment"
body_file = "lit.body"

[[shaders.io]]
name = "uv"
type = "float2"
dir = "in"
location = 0

[[shaders.io]]
name = "color"
type = "float4"
dir = "out"
location = 0
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	body := "    color = uv.xyxy;\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lit.body"), []byte(body), 0o644))
	path := filepath.Join(dir, "shaders.toml")
	require.NoError(t, os.WriteFile(path, []byte(loadTOML), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Shaders, 1)

	s := m.Shader("lit")
	require.NotNil(t, s)
	got, err := s.Body(nil)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	assert.Nil(t, m.Shader("absent"))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "shaders.json"))
	assert.ErrorContains(t, err, "unknown extension")

	_, err = Load(filepath.Join(dir, "absent.toml"))
	assert.ErrorContains(t, err, "read manifest")

	// The manifest itself loads, but its body_file does not exist.
	path := filepath.Join(dir, "shaders.toml")
	require.NoError(t, os.WriteFile(path, []byte(loadTOML), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "read body")
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		format  Format
		wantErr bool
	}{
		{"shaders.toml", TOML, false},
		{"shaders.yaml", YAML, false},
		{"shaders.yml", YAML, false},
		{"SHADERS.TOML", TOML, false},
		{"assets/pipeline.yaml", YAML, false},
		{"shaders.json", 0, true},
		{"shaders", 0, true},
	}
	for _, test := range tests {
		f, err := DetectFormat(test.path)
		if test.wantErr {
			assert.Error(t, err, test.path)
			continue
		}
		require.NoError(t, err, test.path)
		assert.Equal(t, test.format, f, test.path)
	}
}

func TestRenderTargets(t *testing.T) {
	m := &Manifest{}
	assert.Equal(t, dialect.All(), m.RenderTargets())

	m.Targets = []dialect.Dialect{dialect.HLSL, dialect.GLSL}
	assert.Equal(t, []dialect.Dialect{dialect.HLSL, dialect.GLSL}, m.RenderTargets())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		want   string
	}{
		{
			name:   "no shaders",
			format: TOML,
			data:   `targets = ["glsl"]`,
			want:   "declares no shaders",
		},
		{
			name:   "unknown target",
			format: TOML,
			data:   "targets = [\"cuda\"]\n\n[[shaders]]\nname = \"x\"\n",
			want:   `unknown dialect "cuda"`,
		},
		{
			name:   "unknown stage",
			format: TOML,
			data:   "[[shaders]]\nname = \"x\"\nstage = \"geometry\"\n",
			want:   "unknown stage",
		},
		{
			name:   "unknown member type",
			format: TOML,
			data: "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\n" +
				"[[shaders.blocks]]\nname = \"B\"\n" +
				"[[shaders.blocks.members]]\nname = \"m\"\ntype = \"mat4\"\n",
			want: `unknown type "mat4"`,
		},
		{
			name:   "unknown resource kind",
			format: TOML,
			data: "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\n" +
				"[[shaders.resources]]\nname = \"r\"\nkind = \"storage\"\n",
			want: "unknown resource kind",
		},
		{
			name:   "unknown register class",
			format: TOML,
			data: "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\n" +
				"[[shaders.blocks]]\nname = \"B\"\nregister = \"x0\"\n" +
				"[[shaders.blocks.members]]\nname = \"m\"\ntype = \"float\"\n",
			want: "unknown register class",
		},
		{
			name:   "bad register index",
			format: TOML,
			data: "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\n" +
				"[[shaders.resources]]\nname = \"r\"\nkind = \"texture\"\nregister = \"t2x\"\n",
			want: `register "t2x": bad index`,
		},
		{
			name:   "bad io direction",
			format: TOML,
			data: "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\n" +
				"[[shaders.io]]\nname = \"uv\"\ntype = \"float2\"\ndir = \"inout\"\n",
			want: `direction "inout"`,
		},
		{
			name:   "unknown system value",
			format: TOML,
			data: "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\n" +
				"[[shaders.io]]\nname = \"fc\"\ntype = \"float4\"\ndir = \"in\"\nsystem = \"clip\"\n",
			want: "unknown system value",
		},
		{
			name:   "body and body_file",
			format: TOML,
			data:   "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\nbody = \"a\"\nbody_file = \"b\"\n",
			want:   "mutually exclusive",
		},
		{
			name:   "no body",
			format: TOML,
			data:   "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\n",
			want:   "no body or body_file",
		},
		{
			name:   "workgroup too long",
			format: TOML,
			data:   "[[shaders]]\nname = \"x\"\nstage = \"compute\"\nworkgroup = [1, 2, 3, 4]\n",
			want:   "workgroup has 4 components",
		},
		{
			name:   "structurally invalid shader",
			format: TOML,
			data:   "[[shaders]]\nname = \"x\"\nstage = \"fragment\"\nbody = \"y\"\n",
			want:   "declares no outputs",
		},
		{
			name:   "malformed toml",
			format: TOML,
			data:   "= nope",
			want:   "decode toml",
		},
		{
			name:   "malformed yaml",
			format: YAML,
			data:   "[",
			want:   "decode yaml",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.data), test.format)
			assert.ErrorContains(t, err, test.want)
		})
	}
}

func TestParseErrorKind(t *testing.T) {
	_, err := Parse([]byte(`targets = ["glsl"]`), TOML)
	require.Error(t, err)
	assert.True(t, ir.IsKind(err, ir.ErrInvalidShader))
}
