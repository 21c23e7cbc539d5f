package mcr

import "github.com/mcr-ml/mcr/internal/tensor"

// Parameter represents a trainable parameter matrix.
//
// Parameters are tensors whose gradients are computed during the backward
// pass; here they are the raw weights and spectra matrices. Each parameter
// is exclusively owned by one factor module.
type Parameter[B tensor.Backend] struct {
	name   string            // Parameter name (e.g., "weights", "spectra")
	tensor *tensor.Tensor[B] // The parameter tensor
	grad   *tensor.Tensor[B] // Gradient tensor (set after backward pass)
}

// NewParameter creates a new trainable parameter.
//
// The parameter tensor should be initialized before creating the Parameter;
// the gradient is attached after the first backward pass.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[B] {
	return p.tensor
}

// Grad returns the gradient tensor.
// Returns nil before the first backward pass.
func (p *Parameter[B]) Grad() *tensor.Tensor[B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
// Typically called by the optimizer after a backward pass.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
// Call before each training iteration to avoid stale gradients.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
