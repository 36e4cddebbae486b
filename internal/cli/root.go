// Package cli implements the quotebot CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/quotebot/internal/config"
	"github.com/rcliao/quotebot/internal/delivery"
	"github.com/rcliao/quotebot/internal/dispatch"
	"github.com/rcliao/quotebot/internal/logging"
	"github.com/rcliao/quotebot/internal/menu"
	"github.com/rcliao/quotebot/internal/quotes"
	"github.com/rcliao/quotebot/internal/store"
)

var (
	configPath  string
	quotesPath  string
	historyPath string
	logFile     string
)

// RootCmd is the top-level command. Without a sub-command it opens the
// interactive menu.
var RootCmd = &cobra.Command{
	Use:   "quotebot",
	Short: "Paste quotes into the focused window on a timer",
	Long: `quotebot copies quotes (or spam-like test messages) to the clipboard and
pastes them into whichever window has focus, paced by one of five delivery
modes: normal, burst, flood, pattern, mixed.

Run without arguments to open the interactive menu.`,
	Run: runMenu,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "Config file")
	RootCmd.PersistentFlags().StringVarP(&quotesPath, "quotes", "q", "quotes.json", "Quote file")
	RootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "History database (default: $QUOTEBOT_HISTORY or ~/.quotebot/history.db)")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", logging.DefaultFile, "Log file, used when log_messages is on")
}

func getHistoryPath() string {
	if historyPath != "" {
		return historyPath
	}
	if env := os.Getenv("QUOTEBOT_HISTORY"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".quotebot", "history.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getHistoryPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// session wires the dispatcher to the desktop, the log and the history.
type session struct {
	d         *dispatch.Dispatcher
	log       *zap.Logger
	closeLog  func() error
	store     *store.SQLiteStore
	quotesErr error
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, cfgErr := config.Load(configPath)
	list, quotesErr := quotes.Load(quotesPath)

	log, closeLog, err := logging.New(logging.Options{
		Enabled: cfg.LogMessages,
		File:    logFile,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	if cfgErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s, using defaults\n", configPath)
		log.Warn("Config fallback", zap.Error(cfgErr))
	}
	if quotesErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s, using default quotes\n", quotesPath)
		log.Warn("Quote fallback", zap.Error(quotesErr))
	}

	s := &session{log: log, closeLog: closeLog, quotesErr: quotesErr}
	opts := dispatch.Options{
		Deliverer: delivery.NewDesktop(),
		Logger:    log,
		Out:       cmd.OutOrStdout(),
	}
	if st, err := openStore(); err != nil {
		log.Warn("History disabled", zap.String("path", getHistoryPath()), zap.Error(err))
	} else {
		s.store = st
		opts.Recorder = st
		opts.NewRunID = st.NewID
	}
	s.d = dispatch.New(cfg, list, opts)
	return s, nil
}

// runBot runs the dispatcher until it finishes or the operator presses
// Ctrl+C, which only ends the run.
func (s *session) runBot(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := s.d.Run(ctx)
	return err
}

func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	s.closeLog()
}

func runMenu(cmd *cobra.Command, args []string) {
	s, err := openSession(cmd)
	if err != nil {
		exitErr("start", err)
	}
	defer s.Close()

	m := menu.New(s.d, configPath, quotesPath, s.runBot, cmd.InOrStdin(), cmd.OutOrStdout())
	m.Logger = s.log
	m.QuotesErr = s.quotesErr
	if err := m.Loop(cmd.Context()); err != nil {
		exitErr("menu", err)
	}
}
