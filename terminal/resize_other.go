//go:build !unix

package terminal

import (
	"context"
)

// ResizeEvent carries the terminal size after a resize
type ResizeEvent struct {
	Width  int
	Height int
}

// WatchResize has no resize signal to listen for on this platform; the
// channel only closes when ctx ends. Render still samples the size each frame.
func WatchResize(ctx context.Context, fd uintptr) <-chan ResizeEvent {
	eventCh := make(chan ResizeEvent)
	go func() {
		<-ctx.Done()
		close(eventCh)
	}()
	return eventCh
}
