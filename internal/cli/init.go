package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/journeymap/internal/config"
	"github.com/example/journeymap/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the jmap workspace",
		Long: `Write .jmap/config.yaml and create the configured store.
The default store is a sqlite database at .jmap/jmap.db.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := cmd.Flags().GetString("store")

			dir, err := resolveConfigDir()
			if err != nil {
				return err
			}

			_, err = config.LoadConfig(dir)
			switch {
			case err == nil:
				fmt.Printf("Config already exists at %s\n", config.Path(dir))
			case errors.Is(err, os.ErrNotExist):
				cfg := config.Default(dir)
				cfg.Store = store
				if err := cfg.Validate(); err != nil {
					return err
				}
				if err := config.SaveConfig(dir, cfg); err != nil {
					return err
				}
				fmt.Printf("✓ Config written to %s\n", config.Path(dir))
			default:
				return err
			}

			if err := wire.Init(); err != nil {
				return err
			}
			cfg := wire.Config()
			switch cfg.Store {
			case config.StoreJSON:
				fmt.Printf("✓ Using snapshot file %s\n", cfg.SnapshotPath)
			default:
				fmt.Printf("✓ Database initialized at %s\n", cfg.DatabasePath)
			}
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  jmap demo")
			fmt.Println("  jmap clients")
			return nil
		},
	}
	cmd.Flags().String("store", config.StoreSQLite, "Store backend (sqlite or json)")
	return cmd
}
