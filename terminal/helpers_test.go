package terminal

import (
	"bytes"
	"errors"
)

var errBackendClosed = errors.New("backend closed")

// recordingBackend captures every physical write as a separate chunk
type recordingBackend struct {
	width, height int
	chunks        [][]byte
	err           error
}

func newRecorder(w, h int) *recordingBackend {
	return &recordingBackend{width: w, height: h}
}

func (r *recordingBackend) Size() (int, int) {
	return r.width, r.height
}

func (r *recordingBackend) Write(p []byte) error {
	if r.err != nil {
		return r.err
	}
	// bufio reuses its buffer after a write returns
	r.chunks = append(r.chunks, bytes.Clone(p))
	return nil
}

func (r *recordingBackend) output() string {
	return string(bytes.Join(r.chunks, nil))
}

func (r *recordingBackend) reset() {
	r.chunks = nil
}

// newTestFrame creates a frame on a recorder and discards setup output
func newTestFrame(w, h int, mode ColorMode, rec *recordingBackend) *Frame {
	f, err := Create(w, h, '.', White, Black, WithBackend(rec), WithColorMode(mode))
	if err != nil {
		panic(err)
	}
	rec.reset()
	return f
}

// snapshot copies the frame grid
func snapshot(f *Frame) []Cell {
	return append([]Cell(nil), f.cells...)
}
