// Package analysis inspects rendered effect output.
//
//   - [Probe]: one pixel's channel sampled over time
//   - [Measure]: lightness statistics and checksum of a frame
//   - [DominantFrequency]: strongest periodic component of a probe signal
//
// # Example
//
//	samples := analysis.Probe(e, 400, 300, analysis.ProbeSpec{X: 200, Y: 150, Duration: 8, Rate: 32})
//	hz := analysis.DominantFrequency(samples, 32)
package analysis
