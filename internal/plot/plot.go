// Package plot renders sampled traces and power spectra as terminal
// ASCII graphs.
package plot

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odeflow/internal/analysis"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// Trace renders y(t) for a single component of a sampled stream.
func Trace(caption string, ts []float64, ys []vecalg.Vector, component int) string {
	data := make([]float64, len(ys))
	for i, y := range ys {
		if component < y.Dim() {
			data[i] = real(y[component])
		}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// Spectrum renders the power spectrum of a sampled real component:
// pads to the next power of two, takes the FFT, and plots the lower
// quarter of the magnitude spectrum (the mirrored upper half and
// near-Nyquist noise carry no useful information for the low-order
// periodic recipes this library evaluates).
func Spectrum(caption string, samples []float64) (string, float64) {
	n := 1
	for n < len(samples) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, samples)

	ps := analysis.PowerSpectrum(padded)
	quarter := ps[:len(ps)/4]

	graph := asciigraph.Plot(quarter,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)

	maxPower, maxIdx := 0.0, 0
	for i := 1; i < len(quarter); i++ {
		if quarter[i] > maxPower {
			maxPower = quarter[i]
			maxIdx = i
		}
	}

	return graph, float64(maxIdx)
}

// Report writes a plain t,y table, used when a caller wants the raw
// numbers instead of the graph.
func Report(ts []float64, ys []vecalg.Vector) string {
	var out string
	for i, t := range ts {
		if i >= len(ys) {
			break
		}
		out += fmt.Sprintf("%12.6f  %v\n", t, ys[i].Re())
	}
	return out
}
