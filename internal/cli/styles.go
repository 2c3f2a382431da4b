package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/starchart/pkg/style"
)

// stylesCommand lists the style presets, or prints the style resolved from
// the named presets as TOML, ready to copy into a preset of your own.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles [preset...]",
		Short: "List style presets or print a resolved style",
		Example: `  starchart styles
  starchart styles map grayscale > my-style.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), StyleTitle.Render("Style presets"))
				for _, name := range style.Presets() {
					fmt.Fprintln(cmd.OutOrStdout(), "  "+StyleValue.Render(name))
				}
				return nil
			}

			st, err := style.Resolve(args...)
			if err != nil {
				return err
			}
			data, err := st.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
