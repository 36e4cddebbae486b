// Package delivery puts text into whatever desktop window has input focus:
// the text goes on the system clipboard, then a paste and an enter
// keystroke are injected.
package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// Reason classifies a delivery outcome.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonClipboardUnavailable
	ReasonInjectionRejected
	ReasonNoFocusedTarget
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonClipboardUnavailable:
		return "clipboard_unavailable"
	case ReasonInjectionRejected:
		return "injection_rejected"
	case ReasonNoFocusedTarget:
		return "no_focused_target"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Result is the outcome of one delivery. The zero value is a success.
type Result struct {
	Reason Reason
	Err    error
}

// OK reports whether the message was delivered.
func (r Result) OK() bool { return r.Reason == ReasonNone }

func (r Result) String() string {
	if r.Err == nil {
		return r.Reason.String()
	}
	return r.Reason.String() + ": " + r.Err.Error()
}

// Fail builds a failed result.
func Fail(reason Reason, err error) Result {
	return Result{Reason: reason, Err: err}
}

// Deliverer sends one message to the focused window.
type Deliverer interface {
	Deliver(ctx context.Context, text string) Result
}

// Keyboard injects the paste-then-submit keystroke pair.
type Keyboard interface {
	PasteAndEnter() error
}

// ErrNoDisplay is reported when no graphical session is reachable.
var ErrNoDisplay = errors.New("no graphical session")

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// Desktop delivers through the real clipboard and keyboard.
type Desktop struct {
	keys       Keyboard
	hasDisplay func() bool
}

// NewDesktop returns a Desktop using the OS keyboard.
func NewDesktop() *Desktop {
	return &Desktop{keys: newOSKeyboard(), hasDisplay: displayAvailable}
}

// Deliver implements Deliverer.
func (d *Desktop) Deliver(ctx context.Context, text string) Result {
	if err := ctx.Err(); err != nil {
		return Fail(ReasonInjectionRejected, err)
	}
	if !d.hasDisplay() {
		return Fail(ReasonNoFocusedTarget, ErrNoDisplay)
	}
	if clipboard.Unsupported {
		return Fail(ReasonClipboardUnavailable, errors.New("clipboard not supported on this system"))
	}
	if err := clipboardWriteAll(text); err != nil {
		return Fail(ReasonClipboardUnavailable, err)
	}
	if err := d.keys.PasteAndEnter(); err != nil {
		return Fail(ReasonInjectionRejected, err)
	}
	return Result{}
}
