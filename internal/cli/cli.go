// Package cli implements the starchart command-line interface.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/starchart/pkg/buildinfo"
	"github.com/matzehuels/starchart/pkg/observability"
	"github.com/matzehuels/starchart/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "starchart"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Starchart draws star charts",
		Long:         `Starchart draws sky maps, zenith charts and eyepiece or camera views as SVG, PNG or PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c.Config = cfg
			hooks := observability.LogHooks{Logger: c.Logger}
			observability.SetSceneHooks(hooks)
			observability.SetCacheHooks(hooks)
			c.Logger.Debug("starting", "generator", buildinfo.Generator())
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.mapCommand())
	root.AddCommand(c.zenithCommand())
	root.AddCommand(c.opticCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a scene runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*scene.Runner, error) {
	store, err := c.Config.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return scene.NewRunner(store, nil, c.Logger), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// splitList parses a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseFormats parses the --format flag. Empty means the scene default.
func parseFormats(s string) []string {
	return splitList(strings.ToLower(s))
}
