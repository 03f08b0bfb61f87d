package ir

// Info carries render metadata: what the backend declared and where.
// Engines use it to wire descriptor sets, root signatures or argument
// tables without re-parsing generated text.
type Info struct {
	// Dialect is the rendered dialect's name.
	Dialect string

	// EntryPoint is the entry point name in the generated source.
	EntryPoint string

	// SplitResources lists the logical names of combined resources
	// that were decomposed into texture/sampler pairs.
	SplitResources []string

	// Bindings maps each declared resource or block identifier to its
	// binding annotation in the generated source.
	Bindings map[string]string

	// Offsets maps qualified member names ("Block.member") to their
	// resolved byte offsets.
	Offsets map[string]uint32

	// Spans maps block names to their resolved byte spans.
	Spans map[string]uint32
}
