package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/starchart/pkg/errors"
	"github.com/matzehuels/starchart/pkg/render"
	"github.com/matzehuels/starchart/pkg/scene"
)

// outputFlags are shared by every command that writes a chart.
type outputFlags struct {
	output       string  // output file (single format) or base path (several)
	formats      string  // comma-separated formats
	padding      float64 // inches around the chart
	noCache      bool    // skip the artifact cache
	refresh      bool    // redraw even when cached
	adjustLabels bool    // relax overlapping labels after drawing
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (several formats)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&f.padding, "padding", 0, "padding around the chart in inches")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "redraw even if the chart is cached")
	cmd.Flags().BoolVar(&f.adjustLabels, "adjust-labels", false, "push overlapping labels apart after drawing")
}

// apply copies flags the user set onto opts, leaving scene values alone
// otherwise.
func (f *outputFlags) apply(cmd *cobra.Command, opts *scene.Options) {
	if formats := parseFormats(f.formats); len(formats) > 0 {
		opts.Formats = formats
	}
	if cmd.Flags().Changed("padding") {
		opts.Padding = f.padding
	}
	if f.adjustLabels {
		opts.AdjustLabels = true
	}
	opts.Refresh = f.refresh
}

// renderCommand creates the render command, which draws a scene file.
func (c *CLI) renderCommand() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene file (TOML, YAML or JSON)",
		Long: `Render draws the chart described by a scene file and writes one file per
output format. Without -o, outputs are named after the scene file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			c.applyConfig(&opts)
			out.apply(cmd, &opts)
			return c.runScene(cmd.Context(), opts, &out, args[0])
		},
	}
	out.register(cmd)
	return cmd
}

// applyConfig fills scene defaults from the environment.
func (c *CLI) applyConfig(opts *scene.Options) {
	if len(opts.Style) == 0 && c.Config.Style != "" {
		opts.Style = splitList(c.Config.Style)
	}
	if opts.Resolution == 0 && c.Config.Resolution > 0 {
		opts.Resolution = c.Config.Resolution
	}
}

// runScene executes opts and writes its artifacts. name seeds the output
// file names when --output is empty.
func (c *CLI) runScene(ctx context.Context, opts scene.Options, out *outputFlags, name string) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	paths, err := outputPaths(out.output, name, opts.Formats)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, out.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, fmt.Sprintf("Drawing %s chart", opts.Kind))
	spin.Start()
	result, err := runner.Execute(ctx, opts)
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done("Rendered " + name)

	for _, format := range opts.Formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	printSuccess("Rendered %s chart", opts.Kind)
	printStats(result.Stats, result.CacheInfo.RenderHit)
	if r := result.Stats.Relax; r != nil && r.Overlaps > 0 {
		printWarning("%d label overlaps remain after %d iterations", r.Overlaps, r.Iterations)
	}
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	return nil
}

// outputPaths maps each format to a file. A single format with an
// explicit output writes exactly there; otherwise files are named
// <base>.<format>.
func outputPaths(output, name string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
	} else {
		base := basePath(output, name)
		for _, f := range formats {
			paths[f] = base + "." + f
		}
	}
	for _, p := range paths {
		if err := errors.ValidateOutputPath(p); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// basePath derives the base output path. If output is empty, it strips the
// extension from name. A format extension on output is stripped too.
func basePath(output, name string) string {
	if output == "" {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	ext := filepath.Ext(output)
	if render.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// parseTime reads a --time flag: RFC 3339, "2006-01-02 15:04" in UTC, or
// empty for now.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "now" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New(errors.ErrCodeInvalidInput, "invalid time %q (use RFC 3339, e.g. 2024-03-15T04:00:00Z)", s)
}
