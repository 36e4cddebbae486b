package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/quotebot/internal/quotes"
)

func init() {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print random quotes without delivering them",
		Run:   runQuote,
	}

	cmd.Flags().IntP("count", "n", 1, "How many quotes to print")

	RootCmd.AddCommand(cmd)
}

func runQuote(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")

	list, err := quotes.Load(quotesPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s, using default quotes\n", quotesPath)
	}

	sel := quotes.NewSelector(list, true, rand.New(rand.NewSource(time.Now().UnixNano())))
	for i := 0; i < count; i++ {
		q, err := sel.Next()
		if err != nil {
			exitErr("quote", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), q)
	}
}
