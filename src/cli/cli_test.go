package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richbar/richbar/src/progress"
)

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, syscall.EPIPE
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := NewApp(&buf).Run(append([]string{"richbar"}, args...))
	return buf.String(), err
}

func TestRunInline(t *testing.T) {
	out, err := runApp(t, "--total", "3", "--length", "3", "--delay", "0s", "--color-mode", "never")
	require.Nil(t, err)
	assert.Equal(t, "\r[   ] 0%\r[=  ] 33%\r[== ] 67%\r[===] 100%\n", out)
}

func TestRunNewLine(t *testing.T) {
	out, err := runApp(t, "-t", "2", "-l", "4", "-d", "0s", "-m", "newline", "--fill", "#")
	require.Nil(t, err)
	pad := strings.Repeat(" ", 46)
	assert.Equal(t, "[    "+pad+"] 0%\n[##  "+pad+"] 50%\n[####"+pad+"] 100%\n", out)
}

func TestRunColored(t *testing.T) {
	out, err := runApp(t, "--total", "1", "--length", "2", "--delay", "0s", "--color", "green")
	require.Nil(t, err)
	assert.Contains(t, out, "\x1b[32m")
}

func TestRunFromEnv(t *testing.T) {
	t.Setenv("RICHBAR_TOTAL", "4")
	t.Setenv("RICHBAR_LENGTH", "4")
	t.Setenv("RICHBAR_DELAY", "0s")
	t.Setenv("RICHBAR_COLOR_MODE", "never")
	out, err := runApp(t)
	require.Nil(t, err)
	assert.Equal(t, 5, strings.Count(out, "\r"))
	assert.True(t, strings.HasSuffix(out, "\r[====] 100%\n"))
}

func TestRunInvalidOptions(t *testing.T) {
	_, err := runApp(t, "--color", "mauve", "--delay", "0s")
	assert.True(t, errors.Is(err, progress.ErrUnknownColor))

	_, err = runApp(t, "--mode", "sideways", "--delay", "0s")
	assert.True(t, errors.Is(err, progress.ErrUnknownDisplayMode))

	_, err = runApp(t, "--color-mode", "sometimes", "--delay", "0s")
	assert.True(t, errors.Is(err, progress.ErrUnknownColorMode))

	_, err = runApp(t, "--fill", "ab", "--delay", "0s")
	assert.NotNil(t, err)

	_, err = runApp(t, "--length", "-1", "--delay", "0s")
	assert.NotNil(t, err)
}

func TestOptionsNewBar(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{
		Total:       7,
		BarLength:   12,
		Color:       progress.BrightYellow,
		DisplayMode: progress.NewLine,
		ColorMode:   progress.ColorNever,
		Fill:        '*',
	}
	bar := opts.NewBar(&buf)
	assert.Equal(t, uint64(7), bar.Total())
	assert.Equal(t, 12, bar.BarLength())
	assert.Equal(t, progress.BrightYellow, bar.Color())
	assert.Equal(t, progress.NewLine, bar.DisplayMode())
	assert.Equal(t, progress.ColorNever, bar.ColorMode())
	assert.Equal(t, '*', bar.Fill())
	assert.Equal(t, uint64(0), bar.Current())
}

func TestDriveStopsOnWriteError(t *testing.T) {
	bar := progress.New().SetWriter(errWriter{}).SetTotal(5)
	err := Drive(context.Background(), bar, 0)
	assert.True(t, errors.Is(err, progress.ErrWrite))
	assert.True(t, errors.Is(err, syscall.EPIPE))
	assert.Equal(t, uint64(0), bar.Current())
}

func TestDriveCancelled(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.New().SetWriter(&buf).SetColorMode(progress.ColorNever).SetTotal(1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Drive(ctx, bar, time.Hour)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), bar.Current())
	// only the initial empty bar was drawn
	assert.Equal(t, 1, strings.Count(buf.String(), "\r"))
}

func TestDriveZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.New().SetWriter(&buf).SetColorMode(progress.ColorNever).SetTotal(0).SetBarLength(2)
	require.Nil(t, Drive(context.Background(), bar, 0))
	assert.Equal(t, "\r[==] 100%", buf.String())
}
