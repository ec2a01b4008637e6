package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host     string
	userID   string
	userName string
	userRole string
	dryRun   bool
)

var rootCmd = &cobra.Command{
	Use:   "pitchside-cli",
	Short: "A CLI to interact with the pitchside server",
	Long: `A command-line interface for making requests to the various endpoints
of the pitchside application. Identity is passed via the X-User-* headers.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "The user ID to act as")
	rootCmd.PersistentFlags().StringVar(&userName, "name", "", "The display name of the acting user")
	rootCmd.PersistentFlags().StringVar(&userRole, "role", "player", "The role of the acting user (player or admin)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Skip outbound notifications")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
