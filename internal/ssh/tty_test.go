package ssh

import (
	"testing"

	gossh "github.com/gliderlabs/ssh"
)

func TestTtyResize(t *testing.T) {
	tty := NewTty(nil, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, nil)

	ws, err := tty.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize: %v", err)
	}
	if ws.Width != 80 || ws.Height != 24 {
		t.Errorf("initial size = %dx%d, want 80x24", ws.Width, ws.Height)
	}

	calls := 0
	tty.onSize = func() { calls++ }
	tty.resize(gossh.Window{Width: 120, Height: 40})

	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("resized size = %dx%d, want 120x40", ws.Width, ws.Height)
	}
	if calls != 1 {
		t.Errorf("resize callback called %d times, want 1", calls)
	}
}
