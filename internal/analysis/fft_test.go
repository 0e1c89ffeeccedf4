package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumFindsDominantFrequency(t *testing.T) {
	const n = 64
	const freq = 4.0 // cycles across the sampled window

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) / n)
	}

	ps := PowerSpectrum(data)

	peak := 0
	for i, v := range ps {
		if v > ps[peak] {
			peak = i
		}
	}

	if peak != int(freq) {
		t.Errorf("expected the dominant bin at %d, got %d", int(freq), peak)
	}
}

func TestPowerSpectrumLengthIsHalfInput(t *testing.T) {
	data := make([]float64, 32)
	ps := PowerSpectrum(data)
	if len(ps) != 16 {
		t.Errorf("expected half-length spectrum, got %d", len(ps))
	}
}

func TestFFTOfZerosIsZero(t *testing.T) {
	data := make([]float64, 16)
	spectrum := FFT(data)
	for i, c := range spectrum {
		if c != 0 {
			t.Errorf("FFT of all zeros should be all zeros, got nonzero at %d: %v", i, c)
		}
	}
}
