package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cdb/internal/app"
)

func (c *CLI) newCaptureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture [flags] -- <build command...>",
		Short: "Run a build and record its compiler invocations",
		Example: "  cdb capture -- make -j8\n" +
			"  cdb capture --append -o build/compile_commands.json -- ninja -C build",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			library, _ := cmd.Flags().GetString("library")

			return c.app.Capture(cmd.Context(), app.CaptureOptions{
				OutputOptions: outputOptions(cmd),
				Library:       library,
				Build:         args,
			})
		},
	}
	// The build command keeps its own flags.
	cmd.Flags().SetInterspersed(false)
	addOutputFlags(cmd)
	cmd.Flags().StringP("library", "l", "", "Path of the preload library (default from cdb.yaml)")
	return cmd
}
