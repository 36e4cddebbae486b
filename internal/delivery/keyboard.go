package delivery

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/micmonay/keybd_event"
)

// osKeyboard drives keybd_event. The key bonding is created on first use so
// that menus and tests never touch uinput or the window server.
type osKeyboard struct {
	once sync.Once
	kb   keybd_event.KeyBonding
	err  error
}

func newOSKeyboard() *osKeyboard {
	return &osKeyboard{}
}

func (k *osKeyboard) init() error {
	k.once.Do(func() {
		kb, err := keybd_event.NewKeyBonding()
		if err != nil {
			k.err = fmt.Errorf("key bonding: %w", err)
			return
		}
		// The virtual device needs a moment before the desktop accepts events.
		if runtime.GOOS == "linux" {
			time.Sleep(2 * time.Second)
		}
		k.kb = kb
	})
	return k.err
}

func (k *osKeyboard) PasteAndEnter() error {
	if err := k.init(); err != nil {
		return err
	}

	k.kb.Clear()
	k.kb.SetKeys(keybd_event.VK_V)
	if pasteWithSuper(runtime.GOOS) {
		k.kb.HasSuper(true)
	} else {
		k.kb.HasCTRL(true)
	}
	if err := k.kb.Launching(); err != nil {
		return fmt.Errorf("paste: %w", err)
	}

	k.kb.Clear()
	k.kb.SetKeys(keybd_event.VK_ENTER)
	if err := k.kb.Launching(); err != nil {
		return fmt.Errorf("enter: %w", err)
	}
	return nil
}

// pasteWithSuper reports whether goos pastes with Cmd+V rather than Ctrl+V.
func pasteWithSuper(goos string) bool {
	return goos == "darwin"
}

// displayAvailable reports whether a graphical session is reachable. Only
// Linux can run without one; other desktops always have a window server.
func displayAvailable() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
