package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/termcanvas/terminal"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256, base")
	widthFlag     = flag.Int("width", 60, "Frame width in cells")
	heightFlag    = flag.Int("height", 20, "Frame height in cells")
	fgFlag        = flag.String("fg", "white", "Foreground color: CSS name or #rrggbb")
	bgFlag        = flag.String("bg", "black", "Background color: CSS name or #rrggbb")
	framesFlag    = flag.Int("frames", 0, "Frames to render before exiting (0 runs until interrupted)")
	fpsFlag       = flag.Int("fps", 20, "Frames per second")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/termcanvas.log")
)

// resolveColorMode maps the -color flag to a mode; "auto" detects
func resolveColorMode(s string) (terminal.ColorMode, error) {
	if s == "auto" || s == "" {
		return terminal.DetectColorMode(), nil
	}
	return terminal.ParseColorMode(s)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMCANVAS CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termcanvas-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	mode, err := resolveColorMode(*colorModeFlag)
	if err != nil {
		return err
	}
	fg, err := terminal.ParseColor(*fgFlag)
	if err != nil {
		return fmt.Errorf("-fg: %w", err)
	}
	bg, err := terminal.ParseColor(*bgFlag)
	if err != nil {
		return fmt.Errorf("-bg: %w", err)
	}
	if *fpsFlag <= 0 {
		return fmt.Errorf("-fps must be positive, got %d", *fpsFlag)
	}

	frame, err := terminal.Create(*widthFlag, *heightFlag, ' ', fg, bg, terminal.WithColorMode(mode))
	if err != nil {
		return err
	}
	defer frame.Destroy()
	log.Printf("frame %dx%d mode=%s staging=%dB", frame.Width(), frame.Height(), frame.ColorMode(), frame.StagingCapacity())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resize := terminal.WatchResize(ctx, os.Stdout.Fd())
	return animate(ctx, frame, &scene{fg: fg, bg: bg}, resize, *framesFlag, time.Second/time.Duration(*fpsFlag))
}

// animate draws and renders frames until ctx ends or limit frames are shown.
// A resize redraws at once instead of waiting for the next tick.
func animate(ctx context.Context, frame *terminal.Frame, s *scene, resize <-chan terminal.ResizeEvent, limit int, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; limit <= 0 || n < limit; n++ {
		s.draw(frame)
		if err := frame.Render(); err != nil {
			log.Printf("render failed: %v", err)
			return fmt.Errorf("render: %w", err)
		}
		if limit > 0 && n+1 >= limit {
			break
		}

	wait:
		for {
			select {
			case <-ctx.Done():
				log.Printf("interrupted after %d frames", n+1)
				return nil
			case ev, ok := <-resize:
				if !ok {
					resize = nil
					continue
				}
				log.Printf("terminal resized to %dx%d", ev.Width, ev.Height)
				break wait
			case <-ticker.C:
				break wait
			}
		}
	}
	return nil
}
