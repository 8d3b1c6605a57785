package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/cdb/internal/ui/output"
	"go.trai.ch/cdb/internal/ui/style"
)

func (c *CLI) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [flags] -- <compiler command...>",
		Short: "Show how a single command line would be recorded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("directory")
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}

			result, err := c.app.Classify(args, dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lipgloss.SetColorProfile(output.ColorProfile(out))

			phase := "not a compiler"
			if result.Compiler {
				phase = result.Phase.String()
			}
			_, _ = fmt.Fprintln(out, style.Verdict(phase, result.Recorded()))

			if !result.Recorded() {
				_, _ = fmt.Fprintln(out, style.Field("reason", result.Reason.Error()))
				return nil
			}

			data, err := json.MarshalIndent(result.Record, "", "    ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, string(data))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringP("directory", "C", "", "Working directory of the command (default current directory)")
	return cmd
}
