// Package analysis provides post-run analysis of particle trajectories.
//
//   - [PowerSpectrum]: magnitude spectrum of a sampled signal
//   - [DominantFrequency]: strongest non-DC frequency, in cycles per frame
//   - [CyclotronFrequency]: |q||B|/2pi for a unit-mass particle
//   - [NewPortrait]: 2D phase portrait of one particle's recorded state
//
// # Gyration Check
//
// A charge in a uniform field circles at the cyclotron frequency:
//
//	xs := result.Column(0, 0)
//	measured := analysis.DominantFrequency(xs)
//	expected := analysis.CyclotronFrequency(1, 0.05)
package analysis
