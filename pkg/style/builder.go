package style

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/starchart/pkg/errors"
)

//go:embed presets/*.toml
var presetFS embed.FS

// Presets returns the names of the built-in presets, sorted.
func Presets() []string {
	entries, _ := fs.ReadDir(presetFS, "presets")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(names)
	return names
}

// PresetTOML returns the raw TOML of a preset.
func PresetTOML(name string) ([]byte, error) {
	data, err := presetFS.ReadFile("presets/" + name + ".toml")
	if err != nil {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown style preset %q (available: %s)", name, strings.Join(Presets(), ", "))
	}
	return data, nil
}

// Builder resolves a style from a base and ordered override layers.
// Later layers win. Errors are deferred to Build.
type Builder struct {
	base   PlotStyle
	layers []map[string]any
	err    error
}

// NewBuilder starts from base.
func NewBuilder(base PlotStyle) *Builder {
	return &Builder{base: base}
}

// Layer applies a named preset.
func (b *Builder) Layer(preset string) *Builder {
	if b.err != nil {
		return b
	}
	data, err := PresetTOML(preset)
	if err != nil {
		b.err = err
		return b
	}
	return b.layerTOML(data, "preset "+preset)
}

// LayerTOML applies a TOML document.
func (b *Builder) LayerTOML(data []byte) *Builder {
	return b.layerTOML(data, "toml layer")
}

func (b *Builder) layerTOML(data []byte, what string) *Builder {
	if b.err != nil {
		return b
	}
	m := map[string]any{}
	if _, err := toml.Decode(string(data), &m); err != nil {
		b.err = errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode %s", what)
		return b
	}
	return b.LayerMap(m)
}

// LayerYAML applies a YAML document.
func (b *Builder) LayerYAML(data []byte) *Builder {
	if b.err != nil {
		return b
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		b.err = errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode yaml layer")
		return b
	}
	return b.LayerMap(m)
}

// LayerMap applies a nested map keyed by the style's TOML names.
func (b *Builder) LayerMap(m map[string]any) *Builder {
	if b.err == nil && len(m) > 0 {
		b.layers = append(b.layers, m)
	}
	return b
}

// Build merges every layer over the base and validates the result. Keys
// that do not name a style field are rejected.
func (b *Builder) Build() (PlotStyle, error) {
	if b.err != nil {
		return PlotStyle{}, b.err
	}

	merged, err := toMap(b.base)
	if err != nil {
		return PlotStyle{}, err
	}
	for _, layer := range b.layers {
		merge(merged, layer)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(merged); err != nil {
		return PlotStyle{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "encode merged style")
	}
	var out PlotStyle
	md, err := toml.Decode(buf.String(), &out)
	if err != nil {
		return PlotStyle{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode merged style")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return PlotStyle{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style keys: %s", strings.Join(keys, ", "))
	}
	if err := out.Validate(); err != nil {
		return PlotStyle{}, err
	}
	return out, nil
}

// Resolve builds Default overlaid with the named presets.
func Resolve(presets ...string) (PlotStyle, error) {
	b := NewBuilder(Default())
	for _, p := range presets {
		b.Layer(p)
	}
	return b.Build()
}

func toMap(s PlotStyle) (map[string]any, error) {
	data, err := s.TOML()
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode base style")
	}
	return m, nil
}

// merge copies src into dst, recursing where both sides hold tables.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sv, ok := asMap(v)
		if !ok {
			dst[k] = v
			continue
		}
		dv, ok := asMap(dst[k])
		if !ok {
			dv = map[string]any{}
		}
		merge(dv, sv)
		dst[k] = dv
	}
}

// asMap normalizes the table types produced by the TOML and YAML decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	}
	return nil, false
}
