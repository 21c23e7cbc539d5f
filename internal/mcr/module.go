// Package mcr implements differentiable multivariate curve resolution:
// an observed data matrix (samples × wavelengths) is factored into a
// weights matrix (samples × components) and a spectra matrix
// (components × wavelengths) whose product reconstructs the observation.
//
// Domain constraints (non-negativity, row normalization) are enforced by
// reparameterization: each factor module owns an unconstrained raw matrix
// and maps it through a monotone or normalizing transform on every forward
// pass, so gradient descent on the raw matrix can never leave the feasible
// set.
//
// Building blocks:
//   - Module interface: anything that produces a factor matrix
//   - FactorMatrix: a raw parameter matrix with an optional Modifier
//   - Model: composes one weights module and one spectra module
//   - SmoothLoss: reconstruction discrepancy plus smoothness penalties
package mcr

import "github.com/mcr-ml/mcr/internal/tensor"

// Module is the interface for factor-producing modules.
//
// Unlike a layer, a factor module takes no input: it is a source that
// derives its output tensor from its own parameters on demand.
type Module[B tensor.Backend] interface {
	// Forward computes the module's constrained output matrix.
	// The output is derived, never stored: it is recomputed on every call
	// so parameter updates are always reflected.
	Forward() *tensor.Tensor[B]

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter[B]
}
