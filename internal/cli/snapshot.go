package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/journeymap/internal/wire"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the workspace with a JSON snapshot",
	Long:  "Load an AppState JSON snapshot (as exported by the web app) and replace everything in the store with it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SnapshotAdapter().Import(context.Background(), args[0])
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Write the workspace to a JSON snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "snapshot.json"
		if len(args) == 1 {
			path = args[0]
		}
		return wire.SnapshotAdapter().Dump(context.Background(), path)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replace the workspace with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SnapshotAdapter().Demo(context.Background())
	},
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return importCmd
}

// DumpCmd returns the dump command
func DumpCmd() *cobra.Command {
	return dumpCmd
}

// DemoCmd returns the demo command
func DemoCmd() *cobra.Command {
	return demoCmd
}
