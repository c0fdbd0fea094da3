// Package spectrum turns a real signal into a magnitude spectrum so that
// spectral lines can be located with the peaks package.
//
// The FFT itself is delegated to algo-fft, windows come from the window
// package and magnitudes use algo-vecmath.
package spectrum
