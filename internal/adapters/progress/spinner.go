package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// SpinnerSink renders progress events as a terminal spinner with colored
// status lines. Use NewNopSink in non-interactive or JSON mode.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	return &SpinnerSink{spinner: s}
}

// OnProgress updates the spinner with the current stage.
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.spinner.Stop()
	if event.Spinner {
		s.spinner.Suffix = fmt.Sprintf(" %s: %s", event.Stage, event.Message)
		s.spinner.Start()
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", color.CyanString("•"), event.Message)
}

// Info prints an informational status line.
func (s *SpinnerSink) Info(message string) {
	s.spinner.Stop()
	fmt.Fprintf(os.Stderr, "%s %s\n", color.GreenString("✓"), message)
}

// Error prints an error status line.
func (s *SpinnerSink) Error(message string) {
	s.spinner.Stop()
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), message)
}

// Stop halts any running spinner.
func (s *SpinnerSink) Stop() {
	s.spinner.Stop()
}

// NewNopSink returns a sink that swallows all progress events.
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
