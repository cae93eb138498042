// Package ssh adapts gliderlabs/ssh sessions so tcell can draw on them.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of one SSH session. Every climber who
// connects gets their own Tty and screen.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	onSize func()
}

// NewTty wraps s. pty carries the starting window size and winCh the
// window-change requests that follow.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read reads keystrokes sent by the client.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends screen output to the client.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close ends the session.
func (t *Tty) Close() error { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the server.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last size the client reported.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts following window changes until the
// session ends.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()

	done := t.session.Context().Done()
	go func() {
		for {
			select {
			case <-done:
				return
			case win, ok := <-t.winCh:
				if !ok {
					return
				}
				t.resize(win)
			}
		}
	}()
}

func (t *Tty) resize(win gossh.Window) {
	t.mu.Lock()
	t.window = win
	cb := t.onSize
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}
