package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/journeymap/internal/wire"
)

var (
	configDir string
	verbose   bool
)

// AddGlobalFlags registers --config-dir and --verbose on root and configures
// the wire package before any subcommand runs.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding .jmap/ (default: home directory)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		dir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		wire.Configure(dir, verbose)
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		wire.Close()
	}
}

func resolveConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}
