//go:build unix

package terminal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ResizeEvent carries the terminal size after a resize
type ResizeEvent struct {
	Width  int
	Height int
}

// WatchResize reports the size of the terminal on fd after every SIGWINCH
// until ctx ends, then closes the channel. Only the latest size is kept when
// the receiver falls behind.
func WatchResize(ctx context.Context, fd uintptr) <-chan ResizeEvent {
	sigCh := make(chan os.Signal, 1)
	eventCh := make(chan ResizeEvent, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(eventCh)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				w, h := TerminalSize(fd)
				publishLatest(eventCh, ResizeEvent{Width: w, Height: h})
			}
		}
	}()
	return eventCh
}

// publishLatest sends ev, replacing an unconsumed older event
func publishLatest(ch chan ResizeEvent, ev ResizeEvent) {
	select {
	case ch <- ev:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- ev:
	default:
	}
}
