package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X_k| for k in [0, n/2).
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantFrequency returns the strongest frequency in cycles per sample,
// ignoring the mean. The peak is refined by parabolic interpolation over its
// neighbouring bins. Signals shorter than 4 samples return 0.
func DominantFrequency(data []float64) float64 {
	n := len(data)
	if n < 4 {
		return 0
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range data {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if ps[peak] == 0 {
		return 0
	}

	offset := 0.0
	if peak > 1 && peak < len(ps)-1 {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
	}

	return (float64(peak) + offset) / float64(n)
}

// CyclotronFrequency is |q||B|/2pi cycles per frame for unit mass.
func CyclotronFrequency(charge, field float64) float64 {
	return math.Abs(charge*field) / (2 * math.Pi)
}
