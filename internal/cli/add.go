package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/quotebot/internal/quotes"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add <quote>",
		Short: "Append a quote to the quote file",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	q, total, err := appendQuote(quotesPath, strings.Join(args, " "))
	if err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(map[string]any{"added": q, "total": total})
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

// appendQuote adds raw to the quote file at path. A malformed file is left
// as it is and reported; an empty or missing one starts from the built-ins.
func appendQuote(path, raw string) (string, int, error) {
	q, ok := quotes.Normalize(raw)
	if !ok {
		return "", 0, errors.New("quote is blank")
	}

	list, err := quotes.Load(path)
	if errors.Is(err, quotes.ErrMalformed) {
		return "", 0, fmt.Errorf("%w; fix or remove it before adding", err)
	}
	list = append(list, q)
	if err := quotes.Save(path, list); err != nil {
		return "", 0, fmt.Errorf("save quotes: %w", err)
	}
	return q, len(list), nil
}
