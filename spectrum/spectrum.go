// Package spectrum exposes forward and inverse discrete Fourier transforms of
// complex sequences of any length.
//
// FFT is unnormalised; IFFT scales by 1/n so that IFFT(FFT(x)) == x up to
// rounding.
package spectrum

import "gonum.org/v1/gonum/dsp/fourier"

// FFT returns the discrete Fourier transform of seq. The input is not
// modified. An empty input yields an empty output.
func FFT(seq []complex128) []complex128 {
	if len(seq) == 0 {
		return []complex128{}
	}
	return fourier.NewCmplxFFT(len(seq)).Coefficients(nil, seq)
}

// IFFT returns the inverse discrete Fourier transform of coeff, normalised by
// 1/len(coeff).
func IFFT(coeff []complex128) []complex128 {
	if len(coeff) == 0 {
		return []complex128{}
	}
	out := fourier.NewCmplxFFT(len(coeff)).Sequence(nil, coeff)
	scale := complex(1/float64(len(out)), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}
