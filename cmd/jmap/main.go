package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/journeymap/internal/cli"
	"github.com/example/journeymap/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     version.Name,
		Short:   "jmap - customer journey maps from the command line",
		Version: version.String(),
		Long: `jmap manages customer journey maps: clients own projects, projects own
journeys, and journeys are grids of phases by rows. It scores phase health
and exports journeys as CSV.`,
		SilenceUsage: true,
	}
	cli.AddGlobalFlags(rootCmd)

	// Workspace commands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.DumpCmd())
	rootCmd.AddCommand(cli.DemoCmd())

	// Journey map commands
	rootCmd.AddCommand(cli.ClientsCmd())
	rootCmd.AddCommand(cli.RowsCmd())
	rootCmd.AddCommand(cli.HealthCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	rootCmd.AddCommand(cli.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
