package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cdb/internal/app"
)

// addOutputFlags registers the flags shared by the commands that write a database.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Path of the compilation database (default from cdb.yaml or compile_commands.json)")
	cmd.Flags().BoolP("append", "a", false, "Merge the records into the existing database")
	cmd.Flags().BoolP("disable-filter", "n", false, "Write every captured invocation unfiltered")
	cmd.Flags().String("dedup", "", "Duplicate record policy: none or exact")
	cmd.Flags().IntP("jobs", "j", 0, "Number of analysis workers (default one per CPU)")
}

func outputOptions(cmd *cobra.Command) app.OutputOptions {
	output, _ := cmd.Flags().GetString("output")
	appendRecords, _ := cmd.Flags().GetBool("append")
	disableFilter, _ := cmd.Flags().GetBool("disable-filter")
	dedup, _ := cmd.Flags().GetString("dedup")
	jobs, _ := cmd.Flags().GetInt("jobs")

	return app.OutputOptions{
		Output:        output,
		Append:        appendRecords,
		DisableFilter: disableFilter,
		Dedup:         dedup,
		Jobs:          jobs,
	}
}
