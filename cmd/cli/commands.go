package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(pitchesCmd)
	rootCmd.AddCommand(reservationsCmd)
	rootCmd.AddCommand(suspensionsCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(leaveCmd)
	rootCmd.AddCommand(waitlistJoinCmd)
	rootCmd.AddCommand(waitlistLeaveCmd)
	rootCmd.AddCommand(kickCmd)
	rootCmd.AddCommand(suspendCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(metricsCmd)

	suspendCmd.Flags().IntVar(&suspendDays, "days", 7, "How many days the suspension lasts")
	suspendCmd.Flags().StringVar(&suspendReason, "reason", "", "Why the player is suspended")
}

var (
	suspendDays   int
	suspendReason string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var pitchesCmd = &cobra.Command{
	Use:   "pitches",
	Short: "List the pitches in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/pitches")
	},
}

var reservationsCmd = &cobra.Command{
	Use:   "reservations",
	Short: "List the reservations in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/reservations")
	},
}

var suspensionsCmd = &cobra.Command{
	Use:   "suspensions",
	Short: "List the active suspensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/suspensions")
	},
}

var joinCmd = &cobra.Command{
	Use:   "join <reservation-id>",
	Short: "Join the lineup of a reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/join", map[string]any{"reservation_id": args[0]})
	},
}

var leaveCmd = &cobra.Command{
	Use:   "leave <reservation-id>",
	Short: "Leave the lineup of a reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/leave", map[string]any{"reservation_id": args[0]})
	},
}

var waitlistJoinCmd = &cobra.Command{
	Use:   "waitlist-join <reservation-id>",
	Short: "Queue on the waiting list of a full reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/waitlist/join", map[string]any{"reservation_id": args[0]})
	},
}

var waitlistLeaveCmd = &cobra.Command{
	Use:   "waitlist-leave <reservation-id>",
	Short: "Leave the waiting list of a reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/waitlist/leave", map[string]any{"reservation_id": args[0]})
	},
}

var kickCmd = &cobra.Command{
	Use:   "kick <reservation-id> <user-id>",
	Short: "Remove a player from a reservation (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/admin/kick", map[string]any{"reservation_id": args[0], "user_id": args[1]})
	},
}

var suspendCmd = &cobra.Command{
	Use:   "suspend <user-id>",
	Short: "Suspend a player (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/admin/suspend", map[string]any{"user_id": args[0], "days": suspendDays, "reason": suspendReason})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <reservation-id>",
	Short: "Delete a reservation (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/admin/reservations/delete", map[string]any{"reservation_id": args[0]})
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload map[string]any) error {
	url := host + endpoint
	if dryRun {
		url += "?dry_run=true"
	}
	fmt.Printf("Making request to %s\n", url)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-User-Name", userName)
	req.Header.Set("X-User-Role", userRole)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
