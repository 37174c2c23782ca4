package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/schollz/cli/v2"
	log "github.com/schollz/logger"

	"github.com/richbar/richbar/src/models"
	"github.com/richbar/richbar/src/progress"
)

// Version specifies the version
var Version string

// Options specifies how the demo bar is drawn and paced
type Options struct {
	Total       uint64
	BarLength   int
	Color       progress.Color
	DisplayMode progress.DisplayMode
	ColorMode   progress.ColorMode
	Fill        rune
	Delay       time.Duration
}

// Run runs the command line application
func Run() (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewApp(os.Stdout).RunContext(ctx, os.Args)
}

// NewApp builds the application, drawing the bar to w
func NewApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "richbar"
	if Version == "" {
		Version = "dev"
	}
	app.Version = Version
	app.Usage = "draw a colored progress bar in the console"
	app.UsageText = `Draw a bar that fills up over --total steps:

   richbar --total 50 --color bright-green

   Print one line per step instead of overwriting:

   richbar --mode newline --delay 50ms`
	app.Writer = w
	app.Flags = []cli.Flag{
		&cli.Uint64Flag{Name: "total", Aliases: []string{"t"}, Value: models.DEFAULT_TOTAL, Usage: "number of steps that make up 100%", EnvVars: []string{models.ENV_PREFIX + "TOTAL"}},
		&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Value: models.DEFAULT_DEMO_LENGTH, Usage: "width of the bar in characters", EnvVars: []string{models.ENV_PREFIX + "LENGTH"}},
		&cli.StringFlag{Name: "color", Aliases: []string{"c"}, Value: models.DEFAULT_DEMO_COLOR, Usage: "bar color (black, red, green, yellow, blue, magenta, cyan, white, or bright-<color>)", EnvVars: []string{models.ENV_PREFIX + "COLOR"}},
		&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: progress.Inline.String(), Usage: "display mode (inline, newline)", EnvVars: []string{models.ENV_PREFIX + "MODE"}},
		&cli.StringFlag{Name: "color-mode", Value: progress.ColorAlways.String(), Usage: "when to color the bar (always, auto, never)", EnvVars: []string{models.ENV_PREFIX + "COLOR_MODE"}},
		&cli.StringFlag{Name: "fill", Value: string(models.DEFAULT_FILL), Usage: "character for completed cells", EnvVars: []string{models.ENV_PREFIX + "FILL"}},
		&cli.DurationFlag{Name: "delay", Aliases: []string{"d"}, Value: models.DEFAULT_DEMO_DELAY, Usage: "pause between steps", EnvVars: []string{models.ENV_PREFIX + "DELAY"}},
		&cli.BoolFlag{Name: "debug", Usage: "increase verbosity", EnvVars: []string{models.ENV_PREFIX + "DEBUG"}},
	}
	app.Before = func(c *cli.Context) error {
		setDebugLevel(c.Bool("debug"))
		return nil
	}
	app.Action = demo
	return app
}

func setDebugLevel(debug bool) {
	if debug {
		log.SetLevel("debug")
	} else {
		log.SetLevel("warn")
	}
}

func demo(c *cli.Context) (err error) {
	opts, err := optionsFromContext(c)
	if err != nil {
		return
	}
	log.Debugf("options: %+v", opts)

	bar := opts.NewBar(c.App.Writer)
	err = Drive(c.Context, bar, opts.Delay)
	if errors.Is(err, context.Canceled) {
		log.Debugf("interrupted at %d/%d", bar.Current(), bar.Total())
		err = nil
	}
	if err != nil {
		return
	}
	if bar.DisplayMode() == progress.Inline {
		// leave the finished bar on screen
		if _, err = fmt.Fprintln(c.App.Writer); err != nil {
			return fmt.Errorf("%w: %w", progress.ErrWrite, err)
		}
	}
	return
}

func optionsFromContext(c *cli.Context) (opts Options, err error) {
	opts.Total = c.Uint64("total")
	opts.BarLength = c.Int("length")
	if opts.BarLength < 0 {
		err = fmt.Errorf("--length must not be negative, got %d", opts.BarLength)
		return
	}
	opts.Delay = c.Duration("delay")
	if opts.Delay < 0 {
		err = fmt.Errorf("--delay must not be negative, got %s", opts.Delay)
		return
	}
	if opts.Color, err = progress.ParseColor(c.String("color")); err != nil {
		return
	}
	if opts.DisplayMode, err = progress.ParseDisplayMode(c.String("mode")); err != nil {
		return
	}
	if opts.ColorMode, err = progress.ParseColorMode(c.String("color-mode")); err != nil {
		return
	}
	fill := c.String("fill")
	if utf8.RuneCountInString(fill) != 1 {
		err = fmt.Errorf("--fill must be a single character, got %q", fill)
		return
	}
	opts.Fill, _ = utf8.DecodeRuneInString(fill)
	return
}

// NewBar configures a progress bar from the options
func (opts Options) NewBar(w io.Writer) *progress.ProgressBar {
	return progress.New().
		SetColor(opts.Color).
		SetBarLength(opts.BarLength).
		SetDisplayMode(opts.DisplayMode).
		SetColorMode(opts.ColorMode).
		SetFill(opts.Fill).
		SetWriter(w).
		SetTotal(opts.Total)
}

// Drive draws the empty bar, then increments it until complete, pausing
// delay between steps. It stops at the first write error or when ctx is done.
func Drive(ctx context.Context, bar *progress.ProgressBar, delay time.Duration) (err error) {
	if err = bar.Render(); err != nil {
		return
	}
	for !bar.IsComplete() {
		if err = wait(ctx, delay); err != nil {
			return
		}
		if err = bar.Inc(); err != nil {
			return
		}
	}
	return
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
