package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
)

const (
	liveWidth   = 70
	liveHeight  = 14
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws a growing asciigraph plot of a function's
// trace as new samples arrive: a frame-rate-limited clear-and-redraw
// loop over a single scalar trace.
type LiveRenderer struct {
	function  string
	frameRate int
	lastFrame time.Time
	history   []float64
}

func NewLiveRenderer(function string, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		function:  function,
		frameRate: frameRate,
		history:   make([]float64, 0, 256),
	}
}

// OnSample appends one (t, y) sample and redraws if the frame budget
// has elapsed.
func (r *LiveRenderer) OnSample(t, y float64) {
	r.history = append(r.history, y)

	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.render(t)
}

func (r *LiveRenderer) render(t float64) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  t=%.4f\n", r.function, t))
	b.WriteString("  " + strings.Repeat("-", liveWidth) + "\n")

	plot := asciigraph.Plot(r.history,
		asciigraph.Width(liveWidth),
		asciigraph.Height(liveHeight),
	)
	for _, line := range strings.Split(plot, "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("  " + strings.Repeat("-", liveWidth) + "\n")
	if n := len(r.history); n > 0 {
		b.WriteString(fmt.Sprintf("  y=%.6f\n", r.history[n-1]))
	}

	fmt.Print(b.String())
}

func (r *LiveRenderer) Start() { fmt.Print(hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Print(showCursor) }
