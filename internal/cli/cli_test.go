package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/starchart/pkg/cache"
	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/scene"
)

// execute runs the root command with args and returns what it wrote to
// its output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STARCHART_CACHE_DIR", filepath.Join(t.TempDir(), "cache"))
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("STARCHART_CACHE_DIR", "/tmp/charts")
	t.Setenv("STARCHART_CACHE_TTL", "1h")
	t.Setenv("STARCHART_NO_CACHE", "true")
	t.Setenv("STARCHART_STYLE", "blue_dark")
	t.Setenv("STARCHART_RESOLUTION", "1024")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.CacheDir != "/tmp/charts" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if !cfg.NoCache {
		t.Error("NoCache should be set")
	}
	if cfg.Style != "blue_dark" || cfg.Resolution != 1024 {
		t.Errorf("Style/Resolution = %q/%d", cfg.Style, cfg.Resolution)
	}
	if cfg.RedisPrefix != "starchart:" {
		t.Errorf("RedisPrefix = %q, want default", cfg.RedisPrefix)
	}

	t.Setenv("STARCHART_RESOLUTION", "wide")
	if _, err := loadConfig(); err == nil {
		t.Error("non-numeric resolution should fail")
	}
}

func TestCacheDir(t *testing.T) {
	cfg := Config{CacheDir: "/srv/starchart"}
	if dir, _ := cfg.cacheDir(); dir != "/srv/starchart" {
		t.Errorf("cacheDir() = %q, want the configured dir", dir)
	}

	dir, err := Config{}.cacheDir()
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c, err := Config{CacheDir: dir}.openCache(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("--no-cache should give a NullCache, got %T", c)
	}

	c, err = Config{CacheDir: dir}.openCache(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("default backend should be a FileCache, got %T", c)
	}

	c, err = Config{CacheDir: dir, CacheTTL: time.Minute}.openCache(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(fixedTTL); !ok {
		t.Errorf("CACHE_TTL should wrap the backend, got %T", c)
	}
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if data, hit, _ := c.Get(ctx, "k"); !hit || string(data) != "v" {
		t.Error("wrapped cache should still store entries")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"svg, png,,pdf", []string{"svg", "png", "pdf"}},
	}
	for _, tt := range tests {
		got := splitList(tt.input)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if got := parseFormats("SVG,Png"); strings.Join(got, ",") != "svg,png" {
		t.Errorf("parseFormats should lowercase, got %v", got)
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		input   string
		formats []string
		want    map[string]string
	}{
		{"single from input", "", "orion.toml", []string{"svg"}, map[string]string{"svg": "orion.svg"}},
		{"single explicit", "out/chart.svg", "orion.toml", []string{"svg"}, map[string]string{"svg": "out/chart.svg"}},
		{"multiple from input", "", "skies/orion.yaml", []string{"svg", "png"}, map[string]string{"svg": "skies/orion.svg", "png": "skies/orion.png"}},
		{"multiple strips format ext", "chart.svg", "orion.toml", []string{"svg", "pdf"}, map[string]string{"svg": "chart.svg", "pdf": "chart.pdf"}},
		{"multiple keeps other ext", "chart.v2", "orion.toml", []string{"svg", "pdf"}, map[string]string{"svg": "chart.v2.svg", "pdf": "chart.v2.pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputPaths(tt.output, tt.input, tt.formats)
			if err != nil {
				t.Fatal(err)
			}
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("path[%s] = %q, want %q", f, got[f], want)
				}
			}
		})
	}

	if _, err := outputPaths("../escape.svg", "x", []string{"svg"}); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("traversal: got %v, want INVALID_PATH", err)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 15, 4, 0, 0, 0, time.UTC)
	for _, s := range []string{"2024-03-15T04:00:00Z", "2024-03-15T00:00:00-04:00", "2024-03-15 04:00"} {
		got, err := parseTime(s)
		if err != nil {
			t.Errorf("parseTime(%q): %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("parseTime(%q) = %v, want %v", s, got, want)
		}
	}
	if got, err := parseTime("now"); err != nil || !got.IsZero() {
		t.Errorf("parseTime(now) = %v, %v; want zero time", got, err)
	}
	if _, err := parseTime("yesterday"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad time: got %v, want INVALID_INPUT", err)
	}
}

func TestStatsLine(t *testing.T) {
	var stats scene.Stats
	stats.Chart.Objects = 12
	stats.Chart.Labels.Accepted = 3
	line := statsLine(stats, true)
	for _, want := range []string{"12 objects", "3 labels", iconCached} {
		if !strings.Contains(line, want) {
			t.Errorf("statsLine = %q, missing %q", line, want)
		}
	}
	if strings.Contains(line, "shapes") {
		t.Errorf("statsLine = %q, should omit zero shapes", line)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "starchart version ") {
		t.Errorf("version output = %q", out)
	}
}

func TestStylesCommand(t *testing.T) {
	out, err := execute(t, "styles")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"base", "blue_dark", "grayscale", "zenith"} {
		if !strings.Contains(out, name) {
			t.Errorf("styles output missing %q", name)
		}
	}

	out, err = execute(t, "styles", "map", "grayscale")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "background_color") {
		t.Errorf("resolved style should be TOML, got %q", out)
	}

	if _, err := execute(t, "styles", "neon"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown preset: got %v, want NOT_FOUND", err)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orion.toml")
	data := `
kind = "map"
projection = "stereo_north"
time = 2024-03-15T04:00:00Z
layers = ["constellations", "stars", "legend"]

[viewport]
ra_min = 3.5
ra_max = 7
dec_min = -15
dec_max = 25
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "render", path, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	svg, err := os.ReadFile(filepath.Join(dir, "orion.svg"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("Betelgeuse")) {
		t.Error("output should be an svg chart labeling Betelgeuse")
	}

	out := filepath.Join(dir, "custom.svg")
	if _, err := execute(t, "render", path, "-o", out, "--padding", "0.5"); err != nil {
		t.Fatalf("render -o: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected %s: %v", out, err)
	}

	if _, err := execute(t, "render", filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing scene: got %v, want FILE_NOT_FOUND", err)
	}
	if _, err := execute(t, "render", path, "-f", "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format: got %v, want INVALID_FORMAT", err)
	}
}

func TestQuickChartCommands(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"map", []string{"map", "-p", "mollweide", "--time", "2024-03-15T04:00:00Z", "--layers", "stars,ecliptic"}},
		{"zenith", []string{"zenith", "--lat", "40.7", "--lon", "-74", "--time", "2024-03-15T04:00:00Z", "--info"}},
		{"optic", []string{"optic", "--target", "M45", "--time", "2024-03-15T04:00:00Z", "--reticle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name+".svg")
			if _, err := execute(t, append(tt.args, "--no-cache", "-o", out)...); err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Contains(data, []byte("<svg")) {
				t.Error("expected svg output")
			}
		})
	}
}

func TestOpticCommandErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.svg")
	if _, err := execute(t, "optic", "--target", "Vulcan", "--no-cache", "-o", out); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown target: got %v, want NOT_FOUND", err)
	}
	if _, err := execute(t, "optic", "--optic", "periscope", "--no-cache", "-o", out); !errors.Is(err, errors.ErrCodeInvalidOptic) {
		t.Errorf("unknown optic: got %v, want INVALID_OPTIC", err)
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "cache") {
		t.Errorf("cache path = %q, want STARCHART_CACHE_DIR", out)
	}
}
