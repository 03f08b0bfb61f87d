package dialect

import "testing"

func TestAllCoversEveryDialect(t *testing.T) {
	all := All()
	if len(all) != int(numDialects) {
		t.Fatalf("All() returned %d dialects, want %d", len(all), numDialects)
	}
	seen := map[string]bool{}
	for _, d := range all {
		if !d.IsValid() {
			t.Errorf("All() contains invalid dialect %v", d)
		}
		if seen[d.String()] {
			t.Errorf("duplicate dialect name %q", d.String())
		}
		seen[d.String()] = true
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, d := range All() {
		got, err := Parse(d.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", d.String(), err)
		}
		if got != d {
			t.Errorf("Parse(%q) = %v, want %v", d.String(), got, d)
		}
	}

	// "metal" is accepted as an alias for msl.
	if got, err := Parse("metal"); err != nil || got != MSL {
		t.Errorf("Parse(\"metal\") = %v, %v, want MSL", got, err)
	}

	if _, err := Parse("wgsl"); err == nil {
		t.Error("Parse(\"wgsl\") should fail, dialect set is closed")
	}
}

func TestDescriptorFacts(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    Descriptor
	}{
		{GLSL, Descriptor{
			CombinedTextureSampler: true,
			Bindings:               BindSetBinding,
			FetchUsesSampler:       true,
			FragCoordWInverse:      false,
			ScreenYDown:            true,
			PushOffsetsGlobal:      true,
		}},
		{HLSL, Descriptor{
			CombinedTextureSampler: false,
			Bindings:               BindRegisterSpace,
			FetchUsesSampler:       false,
			FragCoordWInverse:      true,
			ScreenYDown:            false,
			PushOffsetsGlobal:      false,
		}},
		{MSL, Descriptor{
			CombinedTextureSampler: false,
			Bindings:               BindArgumentSlot,
			FetchUsesSampler:       false,
			FragCoordWInverse:      false,
			ScreenYDown:            false,
			PushOffsetsGlobal:      false,
		}},
	}
	for _, tt := range tests {
		if got := tt.dialect.Descriptor(); got != tt.want {
			t.Errorf("%s descriptor = %+v, want %+v", tt.dialect, got, tt.want)
		}
	}
}

// The divergence facts are what make cross-dialect bugs: each one must
// single out exactly the dialect it exists for.
func TestDescriptorDivergence(t *testing.T) {
	combined := 0
	fetchSampler := 0
	wInverse := 0
	yDown := 0
	for _, d := range All() {
		desc := d.Descriptor()
		if desc.CombinedTextureSampler {
			combined++
			if d != GLSL {
				t.Errorf("%s unexpectedly combines textures and samplers", d)
			}
		}
		if desc.FetchUsesSampler {
			fetchSampler++
			if !desc.CombinedTextureSampler {
				t.Errorf("%s consumes a fetch sampler but declares split resources", d)
			}
		}
		if desc.FragCoordWInverse {
			wInverse++
			if d != HLSL {
				t.Errorf("%s unexpectedly inverts fragment W", d)
			}
		}
		if desc.ScreenYDown {
			yDown++
			if d != GLSL {
				t.Errorf("%s unexpectedly flips clip-space Y", d)
			}
		}
	}
	if combined != 1 || fetchSampler != 1 || wInverse != 1 || yDown != 1 {
		t.Errorf("divergence counts combined=%d fetchSampler=%d wInverse=%d yDown=%d, want 1 each",
			combined, fetchSampler, wInverse, yDown)
	}
}

func TestFileExt(t *testing.T) {
	tests := []struct {
		dialect Dialect
		ext     string
	}{
		{GLSL, "glsl"},
		{HLSL, "hlsl"},
		{MSL, "metal"},
	}
	for _, tt := range tests {
		if got := tt.dialect.FileExt(); got != tt.ext {
			t.Errorf("%s.FileExt() = %q, want %q", tt.dialect, got, tt.ext)
		}
	}
}

func TestDescriptorPanicsOnInvalidDialect(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Descriptor() on invalid dialect should panic")
		}
	}()
	Dialect(42).Descriptor()
}
