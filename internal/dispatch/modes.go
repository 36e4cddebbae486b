package dispatch

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/quotebot/internal/config"
	"github.com/rcliao/quotebot/internal/delivery"
	"github.com/rcliao/quotebot/internal/model"
	"github.com/rcliao/quotebot/internal/noise"
)

// Message kinds recorded in the history.
const (
	KindQuote   = "quote"
	KindBurst   = "burst"
	KindFlood   = "flood"
	KindPattern = "pattern"
	KindSimilar = "similar"
	KindSpam    = "spam_words"
)

// Pauses of the mixed-mode sub-behaviours, in seconds.
var (
	afterBurst   = [2]float64{3, 8}
	afterSimilar = [2]float64{0.5, 2}
	afterSpam    = [2]float64{1, 3}
)

// run is the state of a single Run call.
type run struct {
	d      *Dispatcher
	noise  *noise.Injector
	log    *zap.Logger
	report Report
}

func (r *run) exec(ctx context.Context) error {
	switch r.report.Mode {
	case model.ModeBurst:
		fmt.Fprintln(r.d.out, "Running burst test (rapid message bursts)...")
		return r.burst(ctx)
	case model.ModeFlood:
		fmt.Fprintln(r.d.out, "Running flood test (continuous rapid messages)...")
		return r.flood(ctx)
	case model.ModePattern:
		fmt.Fprintln(r.d.out, "Running pattern test (similar/repeated messages)...")
		return r.pattern(ctx)
	case model.ModeMixed:
		fmt.Fprintln(r.d.out, "Running mixed test (combination of spam patterns)...")
		return r.mixed(ctx)
	default:
		fmt.Fprintln(r.d.out, "Running normal mode...")
		return r.normal(ctx)
	}
}

func (r *run) normal(ctx context.Context) error {
	cfg := r.d.cfg
	for r.report.Sent < cfg.MaxMessages {
		q, err := r.d.selector.Next()
		if err != nil {
			return err
		}
		if r.send(ctx, KindQuote, cfg.MessagePrefix+q) {
			r.log.Info("Sent message",
				zap.Int("sent", r.report.Sent),
				zap.Int("max", cfg.MaxMessages),
				zap.String("quote", truncate(q, 50)))
			fmt.Fprintf(r.d.out, "Sent message %d/%d\n", r.report.Sent, cfg.MaxMessages)
		}
		if err := r.pauseBetween(ctx, cfg.MinDelay, cfg.MaxDelay); err != nil {
			return err
		}
	}
	return nil
}

// burst makes a single pass of burst_count sends; it does not loop up to
// max_messages.
func (r *run) burst(ctx context.Context) error {
	cfg := r.d.cfg
	for i := 0; i < cfg.BurstCount; i++ {
		q, err := r.d.selector.Next()
		if err != nil {
			return err
		}
		if r.send(ctx, KindBurst, cfg.MessagePrefix+q) {
			r.log.Info("Burst message",
				zap.Int("index", i+1),
				zap.Int("burst_count", cfg.BurstCount),
				zap.String("quote", truncate(q, 30)))
			fmt.Fprintf(r.d.out, "Burst message %d/%d sent\n", i+1, cfg.BurstCount)
		}
		if err := r.pause(ctx, config.Seconds(cfg.BurstDelay)); err != nil {
			return err
		}
	}
	return nil
}

// flood suffixes each phrase with the number the send will have if it
// succeeds, so delivered suffixes run 1, 2, 3... without gaps.
func (r *run) flood(ctx context.Context) error {
	cfg := r.d.cfg
	phrases := r.d.patterns.FloodMessages
	if len(phrases) == 0 {
		return errNoFlood
	}
	for r.report.Sent < cfg.MaxMessages {
		phrase := r.noise.Pick(phrases)
		msg := cfg.MessagePrefix + phrase + " #" + strconv.Itoa(r.report.Sent+1)
		if r.send(ctx, KindFlood, msg) {
			r.log.Info("Flood message", zap.Int("sent", r.report.Sent), zap.String("phrase", phrase))
			fmt.Fprintf(r.d.out, "Flood message %d sent\n", r.report.Sent)
		}
		if err := r.pause(ctx, config.Seconds(cfg.FloodRate)); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) pattern(ctx context.Context) error {
	cfg := r.d.cfg
	variants := r.d.patterns.SimilarMessages
	if len(variants) == 0 {
		return errNoVariants
	}
	for r.report.Sent < cfg.MaxMessages {
		for _, v := range variants {
			for i := 0; i < cfg.PatternRepeat; i++ {
				if r.report.Sent >= cfg.MaxMessages {
					return nil
				}
				if r.send(ctx, KindPattern, cfg.MessagePrefix+v) {
					r.log.Info("Pattern message", zap.Int("sent", r.report.Sent), zap.String("variant", v))
					fmt.Fprintf(r.d.out, "Pattern message %d sent\n", r.report.Sent)
				}
				if err := r.pauseBetween(ctx, cfg.MinDelay, cfg.MaxDelay); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *run) mixed(ctx context.Context) error {
	cfg := r.d.cfg
	variants := r.d.patterns.SimilarMessages
	if len(variants) == 0 {
		return errNoVariants
	}
	for r.report.Sent < cfg.MaxMessages {
		switch r.d.rng.Intn(4) {
		case 0:
			q, err := r.d.selector.Next()
			if err != nil {
				return err
			}
			if r.send(ctx, KindQuote, cfg.MessagePrefix+q) {
				fmt.Fprintf(r.d.out, "Normal message %d sent\n", r.report.Sent)
			}
			if err := r.pauseBetween(ctx, cfg.MinDelay, cfg.MaxDelay); err != nil {
				return err
			}

		case 1:
			size := min(cfg.BurstCount, cfg.MaxMessages-r.report.Sent)
			for i := 0; i < size; i++ {
				q, err := r.d.selector.Next()
				if err != nil {
					return err
				}
				if r.send(ctx, KindBurst, r.noise.Apply(cfg.MessagePrefix+q)) {
					fmt.Fprintf(r.d.out, "Burst message %d sent\n", r.report.Sent)
				}
				if err := r.pause(ctx, config.Seconds(cfg.BurstDelay)); err != nil {
					return err
				}
			}
			if err := r.pauseBetween(ctx, afterBurst[0], afterBurst[1]); err != nil {
				return err
			}

		case 2:
			v := r.noise.Pick(variants)
			if r.send(ctx, KindSimilar, cfg.MessagePrefix+v) {
				fmt.Fprintf(r.d.out, "Similar message %d sent\n", r.report.Sent)
			}
			if err := r.pauseBetween(ctx, afterSimilar[0], afterSimilar[1]); err != nil {
				return err
			}

		case 3:
			q, err := r.d.selector.Next()
			if err != nil {
				return err
			}
			if r.send(ctx, KindSpam, r.noise.Apply(cfg.MessagePrefix+q)) {
				fmt.Fprintf(r.d.out, "Spam-like message %d sent\n", r.report.Sent)
			}
			if err := r.pauseBetween(ctx, afterSpam[0], afterSpam[1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// send delivers msg and updates the counters. Failures are logged and
// recorded but never returned: the caller's loop moves on.
func (r *run) send(ctx context.Context, kind, msg string) bool {
	// An interrupt is not a delivery failure; the next pause ends the run.
	if ctx.Err() != nil {
		return false
	}
	res := r.d.deliverer.Deliver(ctx, msg)

	rec := model.Delivery{
		RunID:   r.report.RunID,
		Mode:    r.report.Mode,
		Kind:    kind,
		Message: msg,
		OK:      res.OK(),
		SentAt:  time.Now(),
	}
	if res.OK() {
		r.report.Sent++
	} else {
		r.report.Failed++
		rec.Reason = res.Reason.String()
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		r.log.Error("Error sending message",
			zap.Stringer("reason", res.Reason),
			zap.Error(res.Err),
			zap.String("kind", kind))
		if res.Reason == delivery.ReasonNoFocusedTarget {
			fmt.Fprintln(r.d.out, "No focused window to deliver to")
		}
	}

	if r.d.recorder != nil {
		// The attempt happened even if the run is being cancelled.
		if _, err := r.d.recorder.Record(context.WithoutCancel(ctx), rec); err != nil {
			r.log.Warn("Failed to record delivery", zap.Error(err))
		}
	}
	return res.OK()
}

func (r *run) pause(ctx context.Context, d time.Duration) error {
	return r.d.sleep(ctx, d)
}

// pauseBetween sleeps for a uniform random time in [lo, hi] seconds.
func (r *run) pauseBetween(ctx context.Context, lo, hi float64) error {
	return r.pause(ctx, config.Seconds(lo+r.d.rng.Float64()*(hi-lo)))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
