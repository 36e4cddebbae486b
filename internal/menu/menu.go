// Package menu implements the interactive numbered menu.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rcliao/quotebot/internal/config"
	"github.com/rcliao/quotebot/internal/dispatch"
	"github.com/rcliao/quotebot/internal/model"
	"github.com/rcliao/quotebot/internal/quotes"
)

// RunFunc starts a bot run. The menu blocks until it returns.
type RunFunc func(ctx context.Context) error

// Menu is the REPL. It reads choices line by line from In and writes
// prompts to Out.
type Menu struct {
	Dispatcher *dispatch.Dispatcher
	ConfigPath string
	QuotesPath string
	Run        RunFunc
	Logger     *zap.Logger
	// QuotesErr is the error from loading QuotesPath, if any. A malformed
	// quote file is never rewritten; added quotes then live for the session.
	QuotesErr error

	in  *bufio.Scanner
	out io.Writer
}

// New creates a menu over the given streams.
func New(d *dispatch.Dispatcher, configPath, quotesPath string, run RunFunc, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		Dispatcher: d,
		ConfigPath: configPath,
		QuotesPath: quotesPath,
		Run:        run,
		Logger:     zap.NewNop(),
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// modeTunables lists the keys offered after a mode is selected.
var modeTunables = map[model.Mode][]string{
	model.ModeNormal:  {"min_delay", "max_delay"},
	model.ModeBurst:   {"burst_count", "burst_delay"},
	model.ModeFlood:   {"flood_rate"},
	model.ModePattern: {"pattern_repeat"},
	model.ModeMixed:   {"caps_chance", "spam_words_chance", "repeat_chars_chance"},
}

var modeDescriptions = map[model.Mode]string{
	model.ModeNormal:  "Normal - Regular message sending",
	model.ModeBurst:   "Burst - Send messages in quick bursts",
	model.ModeFlood:   "Flood - Continuous rapid messages",
	model.ModePattern: "Pattern - Similar/repeated messages",
	model.ModeMixed:   "Mixed - Combination of spam patterns",
}

// Loop runs until the operator picks Exit or input ends.
func (m *Menu) Loop(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\n=== Quote Bot Menu ===")
		fmt.Fprintln(m.out, "1. Run bot")
		fmt.Fprintln(m.out, "2. Add new quote")
		fmt.Fprintln(m.out, "3. Show random quote")
		fmt.Fprintln(m.out, "4. Show config")
		fmt.Fprintln(m.out, "5. Edit config")
		fmt.Fprintln(m.out, "6. Test Mode Selection")
		fmt.Fprintln(m.out, "7. Exit")

		choice, ok := m.prompt("Enter your choice (1-7): ")
		if !ok {
			fmt.Fprintln(m.out, "\nGoodbye!")
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := m.Run(ctx); err != nil {
				fmt.Fprintf(m.out, "Error occurred: %v\n", err)
			}
		case "2":
			m.addQuote()
		case "3":
			m.showRandom()
		case "4":
			m.showConfig()
		case "5":
			m.editConfig()
		case "6":
			m.selectMode()
		case "7":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

// prompt writes p and reads one line. The trailing newline is removed but
// other whitespace is kept. ok is false at end of input.
func (m *Menu) prompt(p string) (string, bool) {
	fmt.Fprint(m.out, p)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(m.in.Text(), "\r"), true
}

func (m *Menu) addQuote() {
	line, _ := m.prompt("Enter new quote: ")
	q, ok := quotes.Normalize(line)
	if !ok {
		return
	}
	m.Dispatcher.AddQuote(q)
	if errors.Is(m.QuotesErr, quotes.ErrMalformed) {
		fmt.Fprintf(m.out, "Added quote for this session only: %s is unreadable and was left untouched\n", m.QuotesPath)
		m.Logger.Warn("Quote file not saved", zap.String("path", m.QuotesPath), zap.Error(m.QuotesErr))
		return
	}
	if err := quotes.Save(m.QuotesPath, m.Dispatcher.Quotes()); err != nil {
		fmt.Fprintf(m.out, "Error saving quotes: %v\n", err)
		m.Logger.Error("Save quotes failed", zap.Error(err))
		return
	}
	m.Logger.Info("Quote added", zap.Int("total", len(m.Dispatcher.Quotes())))
	fmt.Fprintf(m.out, "Added quote: %s\n", q)
}

func (m *Menu) showRandom() {
	q, err := m.Dispatcher.NextQuote()
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Random quote: %s\n", q)
}

func (m *Menu) showConfig() {
	fmt.Fprintln(m.out, "Current configuration:")
	m.printEntries()
}

func (m *Menu) printEntries() {
	for _, e := range m.Dispatcher.Config().Entries() {
		fmt.Fprintf(m.out, "  %s: %s\n", e.Key, e.Value)
	}
}

func (m *Menu) editConfig() {
	fmt.Fprintln(m.out, "\nCurrent configuration:")
	m.printEntries()

	key, _ := m.prompt("\nEnter config key to edit (or press Enter to cancel): ")
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	f, ok := config.Lookup(key)
	if !ok {
		fmt.Fprintf(m.out, "Config key '%s' not found\n", key)
		return
	}
	raw, _ := m.prompt(fmt.Sprintf("Enter new value for %s (current: %s): ", key, m.current(key)))
	m.apply(f, raw)
}

// apply sets one key and persists the config. The key is left unchanged on
// a bad value.
func (m *Menu) apply(f config.Field, raw string) {
	cfg := m.Dispatcher.Config()
	if err := cfg.Set(f.Key, raw); err != nil {
		fmt.Fprintf(m.out, "Invalid value for %s: %v\n", f.Key, err)
		return
	}
	if err := cfg.Save(m.ConfigPath); err != nil {
		fmt.Fprintf(m.out, "Error saving config: %v\n", err)
		m.Logger.Error("Save config failed", zap.Error(err))
		return
	}
	m.Logger.Info("Config updated", zap.String("key", f.Key), zap.String("value", m.current(f.Key)))
	fmt.Fprintf(m.out, "Updated %s to %s\n", f.Key, m.current(f.Key))
}

func (m *Menu) current(key string) string {
	v, _ := m.Dispatcher.Config().Get(key)
	return fmt.Sprint(v)
}

func (m *Menu) selectMode() {
	fmt.Fprintln(m.out, "\n=== Test Mode Selection ===")
	for i, mode := range model.Modes {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, modeDescriptions[mode])
	}

	choice, _ := m.prompt(fmt.Sprintf("Select test mode (1-%d): ", len(model.Modes)))
	idx, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || idx < 1 || idx > len(model.Modes) {
		fmt.Fprintln(m.out, "Invalid choice")
		return
	}
	mode := model.Modes[idx-1]

	cfg := m.Dispatcher.Config()
	if err := cfg.Set("test_mode", string(mode)); err != nil {
		fmt.Fprintf(m.out, "Invalid choice: %v\n", err)
		return
	}
	if err := cfg.Save(m.ConfigPath); err != nil {
		fmt.Fprintf(m.out, "Error saving config: %v\n", err)
	}
	m.Logger.Info("Test mode changed", zap.String("mode", string(mode)))
	fmt.Fprintf(m.out, "Test mode set to: %s\n", mode)

	switch mode {
	case model.ModeBurst:
		fmt.Fprintf(m.out, "Burst settings: %d messages with %gs delay\n", cfg.BurstCount, cfg.BurstDelay)
	case model.ModeFlood:
		fmt.Fprintf(m.out, "Flood settings: %gs between messages\n", cfg.FloodRate)
	case model.ModePattern:
		fmt.Fprintf(m.out, "Pattern settings: %d repeats per message\n", cfg.PatternRepeat)
	}

	for _, key := range modeTunables[mode] {
		f, _ := config.Lookup(key)
		raw, ok := m.prompt(fmt.Sprintf("  %s (current: %s, Enter to keep): ", key, m.current(key)))
		if !ok {
			return
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		m.apply(f, raw)
	}
}
