package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cdb/internal/app"
)

func (c *CLI) newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <report-dir>",
		Short: "Build a compilation database from the report files of an earlier capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Filter(cmd.Context(), app.FilterOptions{
				OutputOptions: outputOptions(cmd),
				ReportDir:     args[0],
			})
		},
	}
	addOutputFlags(cmd)
	return cmd
}
