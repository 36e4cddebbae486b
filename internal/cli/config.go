package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/quotebot/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print every setting",
		Run:   runConfigShow,
	}
	show.Flags().Bool("json", false, "Print the config as JSON")

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting and save it",
		Args:  cobra.ExactArgs(2),
		Run:   runConfigSet,
	}

	keys := &cobra.Command{
		Use:   "keys",
		Short: "List setting keys with their types",
		Run:   runConfigKeys,
	}

	cmd.AddCommand(show, set, keys)
	RootCmd.AddCommand(cmd)
}

func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s, using defaults\n", configPath)
	}
	return cfg
}

func runConfigShow(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")
	cfg := loadConfig(cmd)

	if asJSON {
		b, _ := json.MarshalIndent(cfg, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	for _, e := range cfg.Entries() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Key, e.Value)
	}
}

func runConfigSet(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	if err := cfg.Set(args[0], args[1]); err != nil {
		exitErr("set "+args[0], err)
	}
	if err := cfg.Save(configPath); err != nil {
		exitErr("save config", err)
	}

	v, _ := cfg.Get(args[0])
	b, _ := json.Marshal(map[string]any{args[0]: v})
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func runConfigKeys(cmd *cobra.Command, args []string) {
	for _, f := range config.Fields {
		line := fmt.Sprintf("%-24s %-6s %s", f.Key, f.Kind, f.Help)
		if len(f.Enum) > 0 {
			line += fmt.Sprintf(" %v", f.Enum)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
