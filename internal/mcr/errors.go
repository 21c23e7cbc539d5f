package mcr

import "errors"

var (
	// ErrShapeMismatch is returned when a preload matrix does not match the
	// declared (rows, cols) of its factor module.
	ErrShapeMismatch = errors.New("mcr: preload shape mismatch")

	// ErrEmptyReduction is returned when the smoothness penalty is requested
	// for a spectra matrix with fewer than two wavelength columns: the
	// finite-difference tensor is empty and its mean is undefined.
	ErrEmptyReduction = errors.New("mcr: empty reduction in smoothness penalty")
)
