package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export <run-id>",
		Short: "Export every delivery of one run as JSON",
		Args:  cobra.ExactArgs(1),
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	deliveries, err := s.ExportRun(cmd.Context(), args[0])
	if err != nil {
		exitErr("export", err)
	}
	if len(deliveries) == 0 {
		s.Close()
		exitErr("export", fmt.Errorf("no deliveries for run %s", args[0]))
	}

	b, _ := json.MarshalIndent(deliveries, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
