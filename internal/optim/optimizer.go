// Package optim implements gradient-based optimizers for fitting
// factorization models.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{
//	    LR: 0.001,
//	}, backend)
//
//	for epoch := range epochs {
//	    backend.Tape().Clear()
//	    backend.Tape().StartRecording()
//	    predicted := model.Forward()
//	    loss, err := criterion.Forward(predicted, target, model.Spectra().Forward())
//	    ...
//	    grads := autodiff.Backward(loss, backend)
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/mcr-ml/mcr/internal/mcr"
	"github.com/mcr-ml/mcr/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters in place based on computed gradients.
// Updates must mutate the parameter's existing buffer: the autodiff tape
// keys gradients by raw tensor identity, so replacing a parameter's tensor
// would orphan it from subsequent backward passes.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Takes the gradient map from autodiff.Backward. Parameters absent
	// from the map did not participate in the forward pass and are
	// skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// getGradient retrieves the gradient for a parameter, or nil if the
// parameter was not part of the recorded computation.
func getGradient[B tensor.Backend](param *mcr.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
