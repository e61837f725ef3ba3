package cli

import (
	"context"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/journeymap/internal/adapters/cli"
	"github.com/example/journeymap/internal/wire"
)

var exportCmd = &cobra.Command{
	Use:   "export [journey-id]",
	Short: "Export a journey map as CSV",
	Long: `Export a journey map as CSV: one column per phase, one record per row.

The file is written to the configured export directory unless --stdout is given.
Opportunities are listed one per line as "<name> [<priority>]".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		stdout, _ := cmd.Flags().GetBool("stdout")
		verify, _ := cmd.Flags().GetBool("verify")

		_, err := wire.ExportAdapter().Export(context.Background(), args[0], cliadapter.ExportOptions{
			Filename: output,
			Stdout:   stdout,
			Verify:   verify,
		})
		return err
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "File name (default: derived from the journey name)")
	exportCmd.Flags().Bool("stdout", false, "Write CSV to stdout")
	exportCmd.Flags().Bool("verify", false, "Parse the CSV back and check its shape before writing")
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return exportCmd
}
