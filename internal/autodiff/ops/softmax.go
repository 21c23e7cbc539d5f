package ops

import (
	"fmt"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// SoftmaxOp represents row-wise softmax over a 2D tensor.
//
// Forward (for each row, computed by the backend with max-shifting):
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// Backward:
//
//	The Jacobian of softmax is ∂softmax_i/∂x_j = softmax_i * (δ_ij - softmax_j),
//	which the chain rule collapses to:
//
//	∂L/∂x_j = softmax_j * (∂L/∂softmax_j - Σ_i (∂L/∂softmax_i * softmax_i))
//
// The cached forward output is reused; the input values are not needed.
type SoftmaxOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor // Cached softmax output for backward pass
}

// NewSoftmaxOp creates a new SoftmaxOp.
func NewSoftmaxOp(input, output *tensor.RawTensor) *SoftmaxOp {
	return &SoftmaxOp{
		input:  input,
		output: output,
	}
}

// Backward computes the gradient with respect to the input.
func (op *SoftmaxOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	shape := op.input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("SoftmaxOp: backward only supports 2D tensors, got shape %v", shape))
	}

	rows, cols := shape[0], shape[1]
	grad := zerosLike(op.input)

	s, g, out := op.output.Data(), outputGrad.Data(), grad.Data()
	for r := 0; r < rows; r++ {
		offset := r * cols

		// dot = Σ_i grad_output[i] * softmax[i] for this row
		dot := 0.0
		for j := 0; j < cols; j++ {
			dot += g[offset+j] * s[offset+j]
		}

		for j := 0; j < cols; j++ {
			out[offset+j] = s[offset+j] * (g[offset+j] - dot)
		}
	}
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *SoftmaxOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor softmax(x).
func (op *SoftmaxOp) Output() *tensor.RawTensor {
	return op.output
}
