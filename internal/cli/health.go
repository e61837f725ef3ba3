package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/journeymap/internal/wire"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Score journey health",
	Long: `Score phases from 0 to 100 and average them up to journeys, projects and clients.

A phase starts at 100 and loses 20 for customer struggles, 10 for internal
struggles, 20 when no customer jobs are linked, and up to 40 for open
opportunities weighted by priority. Scores of 60 and above are good,
40 to 59 mid, below 40 bad.`,
}

var healthJourneyCmd = &cobra.Command{
	Use:   "journey [journey-id]",
	Short: "Show per-phase health of a journey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.HealthAdapter().Journey(context.Background(), args[0])
		return err
	},
}

var healthClientCmd = &cobra.Command{
	Use:   "client [client-id]",
	Short: "Show client, project and journey health",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.HealthAdapter().Client(context.Background(), args[0])
		return err
	},
}

var healthReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show health for every client",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.HealthAdapter().Report(context.Background())
		return err
	},
}

func init() {
	healthCmd.AddCommand(healthJourneyCmd)
	healthCmd.AddCommand(healthClientCmd)
	healthCmd.AddCommand(healthReportCmd)
}

// HealthCmd returns the health command
func HealthCmd() *cobra.Command {
	return healthCmd
}
