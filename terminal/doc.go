// @focus: #sys { term, render }
// Package terminal renders a fixed-size grid of styled cells to an ANSI terminal.
//
// Features:
//   - True color (24-bit), 256-color palette and 16-color base output
//   - Nearest-color quantization for terminals below true color
//   - Style-coalesced output staged through a bounded buffer
//   - Per-frame size sampling with a "terminal too small" fallback view
//   - Alternate screen and cursor restoration on Destroy
//
// This package bypasses terminfo for output, emitting direct ANSI sequences.
// Terminfo is consulted only as a color-count hint during detection.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
