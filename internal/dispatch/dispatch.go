// Package dispatch runs the delivery modes: it picks messages, hands them to
// a Deliverer, paces the sends and counts successes against max_messages.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rcliao/quotebot/internal/config"
	"github.com/rcliao/quotebot/internal/delivery"
	"github.com/rcliao/quotebot/internal/model"
	"github.com/rcliao/quotebot/internal/noise"
	"github.com/rcliao/quotebot/internal/quotes"
)

// Recorder persists delivery attempts. *store.SQLiteStore satisfies it.
type Recorder interface {
	Record(ctx context.Context, d model.Delivery) (*model.Delivery, error)
}

// Sleeper pauses for d or until ctx is done, returning ctx.Err() in the
// latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

// Options carries the collaborators of a Dispatcher. Only Deliverer is
// required.
type Options struct {
	Deliverer delivery.Deliverer
	Recorder  Recorder
	Logger    *zap.Logger
	// Out receives operator progress lines. Nil discards them.
	Out      io.Writer
	Rand     *rand.Rand
	Sleep    Sleeper
	Patterns *noise.Patterns
	NewRunID func() string
}

// Report summarises one run.
type Report struct {
	RunID       string     `json:"run_id"`
	Mode        model.Mode `json:"mode"`
	Sent        int        `json:"sent"`
	Failed      int        `json:"failed"`
	Interrupted bool       `json:"interrupted"`
	Started     time.Time  `json:"started"`
	Finished    time.Time  `json:"finished"`
}

// Dispatcher owns the configuration, the quote selector and its used-quote
// tracker for the lifetime of a session.
type Dispatcher struct {
	cfg       *config.Config
	selector  *quotes.Selector
	patterns  noise.Patterns
	deliverer delivery.Deliverer
	recorder  Recorder
	log       *zap.Logger
	out       io.Writer
	rng       *rand.Rand
	sleep     Sleeper
	newRunID  func() string
}

var (
	errNoVariants = errors.New("pattern table is empty")
	errNoFlood    = errors.New("flood table is empty")
	errUnexpected = errors.New("unexpected failure")
)

// New creates a Dispatcher over cfg and the quote list. cfg is shared, not
// copied: edits made through it are picked up by the next Run.
func New(cfg *config.Config, list []string, opts Options) *Dispatcher {
	d := &Dispatcher{
		cfg:       cfg,
		deliverer: opts.Deliverer,
		recorder:  opts.Recorder,
		log:       opts.Logger,
		out:       opts.Out,
		rng:       opts.Rand,
		sleep:     opts.Sleep,
		newRunID:  opts.NewRunID,
	}
	if d.log == nil {
		d.log = zap.NewNop()
	}
	if d.out == nil {
		d.out = io.Discard
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.sleep == nil {
		d.sleep = SleepContext
	}
	if d.newRunID == nil {
		d.newRunID = func() string { return ulid.Make().String() }
	}
	if opts.Patterns != nil {
		d.patterns = *opts.Patterns
	} else {
		d.patterns = noise.DefaultPatterns()
	}
	d.selector = quotes.NewSelector(list, cfg.AvoidRepeats, d.rng)
	return d
}

// Config returns the live configuration.
func (d *Dispatcher) Config() *config.Config { return d.cfg }

// NextQuote returns a quote through the repeat-avoiding selector.
func (d *Dispatcher) NextQuote() (string, error) {
	d.selector.SetAvoidRepeats(d.cfg.AvoidRepeats)
	return d.selector.Next()
}

// AddQuote appends q to the in-memory quote set.
func (d *Dispatcher) AddQuote(q string) { d.selector.Add(q) }

// Quotes returns the current quote set.
func (d *Dispatcher) Quotes() []string { return d.selector.Quotes() }

// Used returns the quotes consumed in the current repeat-avoidance cycle.
func (d *Dispatcher) Used() []string { return d.selector.Used() }

// Run executes the configured mode once. Cancelling ctx stops the run at the
// next send or pause; that is reported with Interrupted set and a nil error.
// Any other error ends the run and is returned with the partial report.
func (d *Dispatcher) Run(ctx context.Context) (Report, error) {
	if err := d.cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid config: %w", err)
	}
	d.selector.SetAvoidRepeats(d.cfg.AvoidRepeats)

	r := &run{
		d: d,
		noise: noise.NewInjector(d.patterns, noise.Chances{
			Caps:        d.cfg.CapsChance,
			SpamWord:    d.cfg.SpamWordsChance,
			RepeatChars: d.cfg.RepeatCharsChance,
		}, d.rng),
		report: Report{
			RunID:   d.newRunID(),
			Mode:    d.cfg.TestMode,
			Started: time.Now(),
		},
	}
	log := d.log.With(zap.String("run_id", r.report.RunID), zap.String("mode", string(r.report.Mode)))
	r.log = log

	fmt.Fprintf(d.out, "Quote Bot starting in %s mode...\n", r.report.Mode)
	fmt.Fprintf(d.out, "Initial delay: %g seconds\n", d.cfg.InitialDelay)
	fmt.Fprintf(d.out, "Max messages: %d\n", d.cfg.MaxMessages)
	fmt.Fprintln(d.out, "Press Ctrl+C to stop")
	log.Info("Bot starting", zap.Int("max_messages", d.cfg.MaxMessages))

	err := d.sleep(ctx, config.Seconds(d.cfg.InitialDelay))
	if err == nil {
		err = r.safeExec(ctx)
	}
	r.report.Finished = time.Now()

	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		r.report.Interrupted = true
		fmt.Fprintln(d.out, "\nBot stopped by user")
		log.Info("Bot stopped by user", zap.Int("sent", r.report.Sent), zap.Int("failed", r.report.Failed))
		return r.report, nil
	}
	if err != nil {
		log.Error("Bot error", zap.Error(err))
		return r.report, err
	}
	log.Info("Bot finished", zap.Int("sent", r.report.Sent), zap.Int("failed", r.report.Failed))
	return r.report, nil
}

// safeExec runs the mode and reports a panic from a collaborator as an error.
func (r *run) safeExec(ctx context.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", errUnexpected, p)
		}
	}()
	return r.exec(ctx)
}

// SleepContext is the production Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
