// Package progress renders a single console progress bar.
//
// A bar is configured through chained setters and then driven by Inc
// until it is complete:
//
//	bar := progress.New().
//		SetColor(progress.Red).
//		SetBarLength(80).
//		SetDisplayMode(progress.Inline).
//		SetTotal(100)
//	for i := 0; i < 100; i++ {
//		if err := bar.Inc(); err != nil {
//			return err
//		}
//		time.Sleep(150 * time.Millisecond)
//	}
//
// A ProgressBar is not safe for concurrent use, and only one bar should
// write to a given terminal at a time.
package progress

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	log "github.com/schollz/logger"

	"github.com/richbar/richbar/src/models"
	"github.com/richbar/richbar/src/utils"
)

// ProgressBar tracks a count towards a total and renders it
type ProgressBar struct {
	total       uint64
	current     uint64
	barLength   int
	color       Color
	displayMode DisplayMode
	colorMode   ColorMode
	fill        rune
	out         io.Writer
}

// flusher is implemented by buffered writers such as *bufio.Writer
type flusher interface {
	Flush() error
}

// New returns a bar at 0 of 100, 90 cells wide, white, inline, writing to stdout.
func New() *ProgressBar {
	return &ProgressBar{
		total:       models.DEFAULT_TOTAL,
		barLength:   models.DEFAULT_BAR_LENGTH,
		color:       White,
		displayMode: Inline,
		colorMode:   ColorAlways,
		fill:        models.DEFAULT_FILL,
		out:         os.Stdout,
	}
}

// SetColor sets the color used for the bar and percentage in inline mode.
func (p *ProgressBar) SetColor(c Color) *ProgressBar {
	p.color = c
	return p
}

// SetTotal sets the count that represents 100%. If the bar has already
// counted past the new total, the current count is lowered to match.
// A total of zero renders as complete.
func (p *ProgressBar) SetTotal(total uint64) *ProgressBar {
	p.total = total
	if p.current > total {
		log.Debugf("total %d below current %d, clamping", total, p.current)
		p.current = total
	}
	return p
}

// SetDisplayMode chooses between overwriting the line and printing new lines.
func (p *ProgressBar) SetDisplayMode(mode DisplayMode) *ProgressBar {
	p.displayMode = mode
	return p
}

// SetBarLength sets the number of cells in the bar. Negative lengths
// are treated as zero, which renders an empty bracket pair.
func (p *ProgressBar) SetBarLength(length int) *ProgressBar {
	if length < 0 {
		length = 0
	}
	p.barLength = length
	return p
}

// SetColorMode decides when the color is applied.
func (p *ProgressBar) SetColorMode(mode ColorMode) *ProgressBar {
	p.colorMode = mode
	return p
}

// SetFill sets the character used for completed cells.
func (p *ProgressBar) SetFill(fill rune) *ProgressBar {
	p.fill = fill
	return p
}

// SetWriter redirects output, nil restores stdout.
func (p *ProgressBar) SetWriter(w io.Writer) *ProgressBar {
	if w == nil {
		w = os.Stdout
	}
	p.out = w
	return p
}

func (p *ProgressBar) Current() uint64 {
	return p.current
}

func (p *ProgressBar) Total() uint64 {
	return p.total
}

func (p *ProgressBar) Color() Color {
	return p.color
}

func (p *ProgressBar) DisplayMode() DisplayMode {
	return p.displayMode
}

func (p *ProgressBar) BarLength() int {
	return p.barLength
}

func (p *ProgressBar) ColorMode() ColorMode {
	return p.colorMode
}

func (p *ProgressBar) Fill() rune {
	return p.fill
}

// IsComplete reports whether the count has reached the total
func (p *ProgressBar) IsComplete() bool {
	return p.current >= p.total
}

// Percent returns the completion rounded to a whole percent
func (p *ProgressBar) Percent() int {
	return int(math.Round(p.ratio() * 100))
}

// Inc advances the count by one unless the bar is complete, then renders
// it. Renders happen even once complete. The returned error wraps
// ErrWrite and the writer's error.
func (p *ProgressBar) Inc() error {
	if p.current < p.total {
		p.current++
		if p.current == p.total {
			log.Debugf("progress complete at %d", p.total)
		}
	}
	return p.Render()
}

// Render draws the bar in its current state without advancing it.
func (p *ProgressBar) Render() (err error) {
	bar := p.bar()
	percent := strconv.Itoa(p.Percent())

	switch p.displayMode {
	case NewLine:
		// new-line output is never colored
		_, err = fmt.Fprintf(p.out, "[%-*s] %s%%\n", models.NEWLINE_WIDTH, bar, percent)
	default:
		paint := p.painter()
		_, err = fmt.Fprintf(p.out, "\r[%s] %s%%", paint.Sprint(bar), paint.Sprint(percent))
	}
	if err == nil {
		if f, ok := p.out.(flusher); ok {
			err = f.Flush()
		}
	}
	if err != nil {
		log.Debugf("render failed: %v", err)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// String returns the uncolored text of the next render, without the
// leading carriage return or trailing newline.
func (p *ProgressBar) String() string {
	if p.displayMode == NewLine {
		return fmt.Sprintf("[%-*s] %d%%", models.NEWLINE_WIDTH, p.bar(), p.Percent())
	}
	return fmt.Sprintf("[%s] %d%%", p.bar(), p.Percent())
}

// ratio is current/total in [0, 1], with a zero total counting as done
func (p *ProgressBar) ratio() float64 {
	if p.total == 0 {
		return 1
	}
	r := float64(p.current) / float64(p.total)
	if r > 1 {
		r = 1
	}
	return r
}

// filled rounds half away from zero
func (p *ProgressBar) filled() int {
	n := int(math.Round(float64(p.barLength) * p.ratio()))
	if n < 0 {
		n = 0
	}
	if n > p.barLength {
		n = p.barLength
	}
	return n
}

func (p *ProgressBar) bar() string {
	n := p.filled()
	return strings.Repeat(string(p.fill), n) + strings.Repeat(" ", p.barLength-n)
}

func (p *ProgressBar) painter() *color.Color {
	c := color.New(p.color.attribute())
	if p.colorEnabled() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (p *ProgressBar) colorEnabled() bool {
	switch p.colorMode {
	case ColorNever:
		return false
	case ColorAuto:
		return utils.ColorSupported(p.out)
	default:
		return true
	}
}
