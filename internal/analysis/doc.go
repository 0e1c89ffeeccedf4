// Package analysis provides spectral analysis of sampled query
// streams.
//
// A special function evaluated over a time range and sampled at a
// fixed rate is just a signal, and [PowerSpectrum] exposes its
// frequency content:
//
//	values, _ := stream.QueryMany(s, ts)
//	data := make([]float64, len(values))
//	for i, v := range values {
//		data[i] = v.At0()
//	}
//	spectrum := analysis.PowerSpectrum(data)
//
// Chaos-detection tools (Lyapunov exponents, bifurcation diagrams,
// phase portraits) have no home here: every catalogue entry in this
// library is a deterministic, non-chaotic recipe (an exponential, a
// trig pair, an error function), so there is no
// divergent-trajectory-separation or parameter-sweep-driven dynamics
// to characterize.
package analysis
