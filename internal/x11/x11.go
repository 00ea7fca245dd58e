// Package x11 wraps the X server operations the overlay needs: screen
// geometry, pointer warping, XTEST click injection and a global key grab.
package x11

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Core X button numbers.
const (
	ButtonLeft  byte = 1
	ButtonRight byte = 3
)

// ErrNoXTest is returned by Click when the server lacks the XTEST extension.
var ErrNoXTest = errors.New("XTEST extension unavailable")

// Display is one connection to the X server.
type Display struct {
	xu    *xgbutil.XUtil
	root  xproto.Window
	xtest bool

	mu       sync.Mutex
	grabbed  []string
	mainDone chan struct{}
}

// Open connects to $DISPLAY.
func Open() (*Display, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to X server: %w", err)
	}
	keybind.Initialize(xu)
	d := &Display{xu: xu, root: xu.RootWin()}
	if err := xtest.Init(xu.Conn()); err == nil {
		d.xtest = true
	}
	return d, nil
}

// Size returns the root screen in pixels.
func (d *Display) Size() (int, int) {
	screen := d.xu.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// Warp moves the pointer to root coordinates (x, y).
func (d *Display) Warp(x, y int) error {
	err := xproto.WarpPointerChecked(d.xu.Conn(), xproto.WindowNone, d.root, 0, 0, 0, 0, int16(x), int16(y)).Check()
	if err != nil {
		return fmt.Errorf("warp pointer to %d,%d: %w", x, y, err)
	}
	return nil
}

// Click presses and releases button at the current pointer position.
func (d *Display) Click(button byte) error {
	if !d.xtest {
		return ErrNoXTest
	}
	conn := d.xu.Conn()
	for _, kind := range []byte{xproto.ButtonPress, xproto.ButtonRelease} {
		if err := xtest.FakeInputChecked(conn, kind, button, xproto.TimeCurrentTime, d.root, 0, 0, 0).Check(); err != nil {
			return fmt.Errorf("fake button %d: %w", button, err)
		}
	}
	return nil
}

// GrabHotkey grabs keyStr (xgbutil notation, e.g. "Mod4-Shift-z") on the
// root window and calls fire for every press. The X event loop runs until
// ctx is cancelled.
func (d *Display) GrabHotkey(ctx context.Context, keyStr string, fire func()) error {
	cb := keybind.KeyPressFun(func(*xgbutil.XUtil, xevent.KeyPressEvent) {
		fire()
	})
	if err := cb.Connect(d.xu, d.root, keyStr, true); err != nil {
		return fmt.Errorf("grab %s: %w", keyStr, err)
	}

	d.mu.Lock()
	d.grabbed = append(d.grabbed, keyStr)
	start := d.mainDone == nil
	if start {
		d.mainDone = make(chan struct{})
	}
	done := d.mainDone
	d.mu.Unlock()

	if start {
		go func() {
			defer close(done)
			xevent.Main(d.xu)
		}()
	}
	go func() {
		<-ctx.Done()
		xevent.Quit(d.xu)
	}()
	return nil
}

// Close releases grabs and disconnects.
func (d *Display) Close() error {
	d.mu.Lock()
	grabbed := d.grabbed
	d.grabbed = nil
	d.mu.Unlock()
	if len(grabbed) > 0 {
		keybind.Detach(d.xu, d.root)
		xevent.Quit(d.xu)
	}
	d.xu.Conn().Close()
	return nil
}
