package mcr

import "github.com/mcr-ml/mcr/internal/tensor"

// Model is the base factorization model: it composes exactly one
// weights-producing module and one spectra-producing module and
// reconstructs the observation as their matrix product.
//
// The caller is responsible for supplying modules with a consistent inner
// dimension (weights columns == spectra rows); this is not revalidated on
// every forward call, and an inconsistent pair fails inside the
// linear-algebra layer.
type Model[B tensor.Backend] struct {
	weights Module[B]
	spectra Module[B]
}

// New composes a factorization model from a weights module and a spectra
// module.
func New[B tensor.Backend](weights, spectra Module[B]) *Model[B] {
	return &Model[B]{
		weights: weights,
		spectra: spectra,
	}
}

// Forward computes the reconstruction: weights (M×K) @ spectra (K×N),
// shape (M, N). The result is derived per call and never stored.
func (m *Model[B]) Forward() *tensor.Tensor[B] {
	return m.weights.Forward().MatMul(m.spectra.Forward())
}

// Weights returns the weights-producing module.
func (m *Model[B]) Weights() Module[B] {
	return m.weights
}

// Spectra returns the spectra-producing module.
func (m *Model[B]) Spectra() Module[B] {
	return m.spectra
}

// Parameters returns the trainable parameters of both factor modules.
func (m *Model[B]) Parameters() []*Parameter[B] {
	params := append([]*Parameter[B]{}, m.weights.Parameters()...)
	return append(params, m.spectra.Parameters()...)
}
