package commands

import "github.com/spf13/cobra"

func (c *CLI) newCTUCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctu",
		Short: "Cross translation unit analysis helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "merge <input-dir> <output-file>",
		Short: "Merge per-unit symbol maps into one definition map",
		Long: "Merge reads every symbol map file in input-dir and writes the symbols that\n" +
			"are defined by exactly one module to output-file.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.MergeSymbols(cmd.Context(), args[0], args[1])
		},
	})
	return cmd
}
