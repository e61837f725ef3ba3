package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/journeymap/internal/wire"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients",
	Long:  "List every client with its project and journey counts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.JourneyAdapter().ListClients(context.Background())
		return err
	},
}

var clientsShowCmd = &cobra.Command{
	Use:   "show [client-id]",
	Short: "Show a client's projects and journeys",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.JourneyAdapter().ShowTree(context.Background(), args[0])
		return err
	},
}

var rowsCmd = &cobra.Command{
	Use:   "rows [journey-id]",
	Short: "Show the resolved row layout of a journey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.JourneyAdapter().ShowRows(context.Background(), args[0])
		return err
	},
}

func init() {
	clientsCmd.AddCommand(clientsShowCmd)
}

// ClientsCmd returns the clients command
func ClientsCmd() *cobra.Command {
	return clientsCmd
}

// RowsCmd returns the rows command
func RowsCmd() *cobra.Command {
	return rowsCmd
}
