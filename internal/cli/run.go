package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bot without the menu",
		Long:  "Run the bot once in the configured mode. Focus the target window during the initial delay.",
		Run:   runRun,
	}

	cmd.Flags().StringP("mode", "m", "", "Override test_mode for this run: normal, burst, flood, pattern, mixed")
	cmd.Flags().Int("max", 0, "Override max_messages for this run")

	RootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) {
	mode, _ := cmd.Flags().GetString("mode")
	maxMessages, _ := cmd.Flags().GetInt("max")

	s, err := openSession(cmd)
	if err != nil {
		exitErr("start", err)
	}
	defer s.Close()

	// Overrides apply to this run only; the config file is not rewritten.
	cfg := s.d.Config()
	if mode != "" {
		if err := cfg.Set("test_mode", mode); err != nil {
			exitErr("mode", err)
		}
	}
	if cmd.Flags().Changed("max") {
		if err := cfg.Set("max_messages", fmt.Sprint(maxMessages)); err != nil {
			exitErr("max", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := s.d.Run(ctx)
	if err != nil {
		s.Close()
		exitErr("run", err)
	}

	b, _ := json.Marshal(rep)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
