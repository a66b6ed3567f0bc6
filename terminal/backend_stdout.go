package terminal

import (
	"os"
)

// fileBackend writes to a terminal file, typically stdout
type fileBackend struct {
	out *os.File
}

// NewFileBackend returns a Backend writing to f and sizing from f's terminal
func NewFileBackend(f *os.File) Backend {
	return &fileBackend{out: f}
}

func newStdoutBackend() Backend {
	return NewFileBackend(os.Stdout)
}

func (b *fileBackend) Size() (int, int) {
	return TerminalSize(b.out.Fd())
}

func (b *fileBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}
