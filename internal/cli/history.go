package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/quotebot/internal/model"
	"github.com/rcliao/quotebot/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent deliveries",
		Run:   runHistory,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().String("run", "", "Filter by run ID")
	cmd.Flags().StringP("mode", "m", "", "Filter by mode")
	cmd.Flags().Bool("failed", false, "Only failed deliveries")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	runID, _ := cmd.Flags().GetString("run")
	mode, _ := cmd.Flags().GetString("mode")
	failed, _ := cmd.Flags().GetBool("failed")

	if mode != "" && !model.ValidModes[model.Mode(mode)] {
		exitErr("history", fmt.Errorf("unknown mode %q", mode))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	deliveries, err := s.Recent(cmd.Context(), store.RecentParams{
		RunID:  runID,
		Mode:   model.Mode(mode),
		Failed: failed,
		Limit:  limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	b, _ := json.MarshalIndent(deliveries, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
