// Package manifest loads shader manifests.
//
// A manifest is a TOML or YAML document declaring one or more shaders:
// stage, resources with their per-dialect binding coordinates, constant
// blocks, the stage interface and the body text. Loading produces
// ir.Shader values ready for rendering, plus the dialects the manifest
// asks to be rendered into.
//
// # Format
//
// A minimal fragment shader in TOML:
//
//	targets = ["glsl", "msl"]
//
//	[[shaders]]
//	name = "blit"
//	stage = "fragment"
//	body = """
//	    color = uv.xyxy;
//	"""
//
//	[[shaders.io]]
//	name = "uv"
//	type = "float2"
//	dir = "in"
//	location = 0
//
//	[[shaders.io]]
//	name = "color"
//	type = "float4"
//	dir = "out"
//	location = 0
//
// The same document structure applies in YAML. Binding coordinates are
// written per family: set/binding (GLSL), register/space (HLSL, the
// register as class letter plus index, e.g. "t2"), slot (MSL). A
// coordinate family may be omitted when the manifest is never rendered
// to the dialect that needs it.
//
// Body text may live inline under body or in a separate file named by
// body_file, resolved relative to the manifest. Manifest bodies are
// static text: they are spliced into every dialect unchanged, so they
// must stick to spelling-neutral expressions. Shaders needing
// per-dialect vocabulary are built in Go against ir directly.
//
// # Usage
//
//	m, err := manifest.Load("shaders/sprites.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, shader := range m.Shaders {
//	    source, info, err := shadergen.Render(shader, dialect.GLSL, shadergen.DefaultOptions())
//	    ...
//	}
package manifest
