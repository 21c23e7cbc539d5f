// Copyright 2025 The MCR Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mcr provides the public API for multivariate curve resolution
// models.
//
// A model factors an observation matrix D (samples × waves) into
// weights (samples × components) times spectra (components × waves),
// with constraints applied through differentiable modifiers.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model, err := mcr.NewNormalizedSpectra(64, 2, 128,
//	    mcr.NormalizedSpectraConfig[*autodiff.Backend[*cpu.Backend]]{}, backend)
package mcr

import (
	"github.com/mcr-ml/mcr/internal/mcr"
	"github.com/mcr-ml/mcr/internal/tensor"
)

// Sentinel errors.
var (
	ErrShapeMismatch  = mcr.ErrShapeMismatch
	ErrEmptyReduction = mcr.ErrEmptyReduction
)

// Module is a source module: it produces a tensor from its own parameters.
type Module[B tensor.Backend] = mcr.Module[B]

// Parameter is a named trainable tensor.
type Parameter[B tensor.Backend] = mcr.Parameter[B]

// NewParameter creates a named parameter wrapping the given tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return mcr.NewParameter(name, t)
}

// Modifiers

// Default clip bounds for NormalizedSoftmax.
const (
	DefaultClipLow  = mcr.DefaultClipLow
	DefaultClipHigh = mcr.DefaultClipHigh
)

// Modifier transforms a raw factor matrix into its constrained form.
type Modifier[B tensor.Backend] = mcr.Modifier[B]

// Softplus returns the modifier mapping raw values to (0, ∞) via
// log(1 + exp(x)).
func Softplus[B tensor.Backend]() Modifier[B] {
	return mcr.Softplus[B]()
}

// Identity returns the modifier that leaves raw values unchanged.
func Identity[B tensor.Backend]() Modifier[B] {
	return mcr.Identity[B]()
}

// NormalizedSoftmax returns the modifier that clips raw values to
// [clipLow, clipHigh] and applies a row-wise softmax, so every row sums to
// one. Passing zero for both bounds selects the defaults.
func NormalizedSoftmax[B tensor.Backend](clipLow, clipHigh float64) Modifier[B] {
	return mcr.NormalizedSoftmax[B](clipLow, clipHigh)
}

// Factor matrices

// FactorConfig holds options for NewFactorMatrix.
type FactorConfig[B tensor.Backend] = mcr.FactorConfig[B]

// FactorMatrix is a trainable matrix module with an optional modifier.
type FactorMatrix[B tensor.Backend] = mcr.FactorMatrix[B]

// NewFactorMatrix creates a rows×cols factor matrix. A preloaded tensor,
// when given, must match the requested dimensions.
func NewFactorMatrix[B tensor.Backend](name string, rows, cols int, config FactorConfig[B], backend B) (*FactorMatrix[B], error) {
	return mcr.NewFactorMatrix(name, rows, cols, config, backend)
}

// Models

// Model composes a weights module and a spectra module; Forward returns
// their matrix product.
type Model[B tensor.Backend] = mcr.Model[B]

// New composes a model from arbitrary weights and spectra modules.
func New[B tensor.Backend](weights, spectra Module[B]) *Model[B] {
	return mcr.New(weights, spectra)
}

// SimpleConfig holds options for NewSimple.
type SimpleConfig[B tensor.Backend] = mcr.SimpleConfig[B]

// NewSimple builds a model with softplus-constrained factors by default.
func NewSimple[B tensor.Backend](samples, components, waves int, config SimpleConfig[B], backend B) (*Model[B], error) {
	return mcr.NewSimple(samples, components, waves, config, backend)
}

// NormalizedSpectraConfig holds options for NewNormalizedSpectra.
type NormalizedSpectraConfig[B tensor.Backend] = mcr.NormalizedSpectraConfig[B]

// NewNormalizedSpectra builds a model whose spectra rows are constrained
// to the probability simplex via a clipped row softmax.
func NewNormalizedSpectra[B tensor.Backend](samples, components, waves int, config NormalizedSpectraConfig[B], backend B) (*Model[B], error) {
	return mcr.NewNormalizedSpectra(samples, components, waves, config, backend)
}

// Losses

// Default smoothness weights for NewSmoothLoss.
const (
	DefaultSmoothSpectraWeight = mcr.DefaultSmoothSpectraWeight
	DefaultSmoothWeightWeight  = mcr.DefaultSmoothWeightWeight
)

// BaseLoss is an elementwise reconstruction objective reduced to a scalar.
type BaseLoss[B tensor.Backend] = mcr.BaseLoss[B]

// L1Loss is the mean absolute error.
func L1Loss[B tensor.Backend](predicted, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	return mcr.L1Loss(predicted, target)
}

// MSELoss is the mean squared error.
func MSELoss[B tensor.Backend](predicted, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	return mcr.MSELoss(predicted, target)
}

// SmoothLoss combines a base loss with a spectra smoothness penalty.
type SmoothLoss[B tensor.Backend] = mcr.SmoothLoss[B]

// NewSmoothLoss builds a smoothness objective around base (L1Loss when
// nil). Both weights are taken as given, including zero.
func NewSmoothLoss[B tensor.Backend](base BaseLoss[B], spectraWeight, weightWeight float64) *SmoothLoss[B] {
	return mcr.NewSmoothLoss(base, spectraWeight, weightWeight)
}
