// Package linear provides a synchronous, line-oriented renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/cascade/internal/ui/output"
	"go.trai.ch/cascade/internal/ui/style"
)

// Renderer implements ports.Renderer with plain chronological output.
// Banners and notices go to stdout, interleaved with the output of the
// external tools; step lifecycle lines go to stderr.
type Renderer struct {
	stdout *termenv.Output
	stderr *termenv.Output

	mu    sync.Mutex
	steps map[string]stepState // spanID -> step
}

type stepState struct {
	name      string
	startTime time.Time
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer. Nil writers select the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout: output.NewWithProfile(stdout, output.ColorProfileANSI),
		stderr: output.NewWithProfile(stderr, output.ColorProfileANSI),
		steps:  make(map[string]stepState),
	}
}

// Banner prints msg framed by asterisks:
//
//	*********
//	* cmake *
//	*********
func (r *Renderer) Banner(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	border := style.Border + strings.Repeat(style.Border, utf8.RuneCountInString(msg)+2) + style.Border
	body := style.Border + " " + msg + " " + style.Border

	for _, line := range []string{border, body, border} {
		styled := r.stdout.String(line).Bold().String()
		_, _ = fmt.Fprintln(r.stdout, styled)
	}
}

// Notice prints msg on its own line.
func (r *Renderer) Notice(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout, msg)
}

// OnPlanEmit prints the ordered step names.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(steps) == 0 {
		return
	}
	plan := strings.Join(steps, " "+style.Arrow+" ")
	line := r.stderr.String(fmt.Sprintf("Planning %d step(s): %s", len(steps), plan)).Faint().String()
	_, _ = fmt.Fprintln(r.stderr, line)
}

// OnStepStart prints a start line for the step.
func (r *Renderer) OnStepStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[spanID] = stepState{name: name, startTime: startTime}

	prefix := r.stderr.String("[" + name + "]").Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnStepComplete prints the outcome and duration of the step.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}
	delete(r.steps, spanID)

	duration := endTime.Sub(step.startTime).Round(time.Millisecond)
	prefix := "[" + step.name + "]"

	if err != nil {
		symbol := r.stderr.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}
	symbol := r.stderr.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
}
