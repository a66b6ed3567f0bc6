package terminal

// Backend abstracts the terminal a Frame renders to.
// Frames sample Size on every Render and send all output through Write.
type Backend interface {
	// Size returns the current terminal dimensions in cells.
	// Non-positive values are replaced with the 80x24 default.
	Size() (width, height int)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) error
}

// Default terminal size when the real one cannot be determined
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// sanitizeSize applies the 80x24 fallback to unusable reports
func sanitizeSize(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// backendWriter adapts Backend to io.Writer for the staging buffer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Profile is a fixed terminal description, used in place of detection
type Profile struct {
	Mode   ColorMode
	Width  int
	Height int
}

// profileBackend reports the profile's size and forwards writes
type profileBackend struct {
	Backend
	width, height int
}

func (p profileBackend) Size() (int, int) {
	return p.width, p.height
}
