package ops

import (
	"math"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// SoftplusOp represents the softplus map: output = log(1 + exp(x)).
//
// Backward pass: d softplus(x)/dx = sigmoid(x), so
//
//	grad_x = outputGrad * sigmoid(x)
//
// The sigmoid never reaches 0 or 1 exactly, which is the point of using
// softplus over a hard clamp: gradients keep flowing for any finite input.
type SoftplusOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // softplus(x)
}

// NewSoftplusOp creates a new SoftplusOp.
func NewSoftplusOp(x, output *tensor.RawTensor) *SoftplusOp {
	return &SoftplusOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient for softplus.
func (op *SoftplusOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := zerosLike(x)

	xData, gData, out := x.Data(), outputGrad.Data(), grad.Data()
	for i, v := range xData {
		out[i] = gData[i] / (1.0 + math.Exp(-v))
	}
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *SoftplusOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the output tensor softplus(x).
func (op *SoftplusOp) Output() *tensor.RawTensor { return op.output }

// ClampOp represents element-wise clipping into [low, high].
//
// Backward pass: the gradient passes through where the input lies inside
// the range and is zero where the input was clipped.
type ClampOp struct {
	inputs    []*tensor.RawTensor // [x]
	output    *tensor.RawTensor   // clamp(x, low, high)
	low, high float64
}

// NewClampOp creates a new ClampOp.
func NewClampOp(x, output *tensor.RawTensor, low, high float64) *ClampOp {
	return &ClampOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
		low:    low,
		high:   high,
	}
}

// Backward computes the input gradient for clamp.
func (op *ClampOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := zerosLike(x)

	xData, gData, out := x.Data(), outputGrad.Data(), grad.Data()
	for i, v := range xData {
		if v >= op.low && v <= op.high {
			out[i] = gData[i]
		}
	}
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *ClampOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the output tensor clamp(x, low, high).
func (op *ClampOp) Output() *tensor.RawTensor { return op.output }

// AbsOp represents the element-wise absolute value: output = |x|.
//
// Backward pass: grad_x = outputGrad * sign(x). The subgradient at zero is
// taken as 0.
type AbsOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // |x|
}

// NewAbsOp creates a new AbsOp.
func NewAbsOp(x, output *tensor.RawTensor) *AbsOp {
	return &AbsOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient for absolute value.
func (op *AbsOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := zerosLike(x)

	xData, gData, out := x.Data(), outputGrad.Data(), grad.Data()
	for i, v := range xData {
		switch {
		case v > 0:
			out[i] = gData[i]
		case v < 0:
			out[i] = -gData[i]
		}
	}
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *AbsOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the output tensor |x|.
func (op *AbsOp) Output() *tensor.RawTensor { return op.output }
