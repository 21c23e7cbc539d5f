package ops

import (
	"fmt"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// MeanOp represents a full reduction to the mean over all elements.
//
// Forward:
//
//	y = Σ x_i / n, shape {1}
//
// Backward: every element contributed 1/n, so
//
//	grad_x = outputGrad / n, broadcast to the input shape.
type MeanOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // mean(x), shape {1}
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(x, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient for the mean reduction.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := zerosLike(x)

	g := outputGrad.Data()[0] / float64(x.NumElements())
	out := grad.Data()
	for i := range out {
		out[i] = g
	}
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *MeanOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the output tensor mean(x).
func (op *MeanOp) Output() *tensor.RawTensor { return op.output }

// NarrowOp represents slicing along a dimension: output = x[start:start+length]
// along dim.
//
// Backward: the gradient scatters back into a zero tensor of the input
// shape; positions outside the slice receive no gradient.
type NarrowOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // narrowed slice
	dim    int
	start  int
	length int
}

// NewNarrowOp creates a new NarrowOp.
func NewNarrowOp(x, output *tensor.RawTensor, dim, start, length int) *NarrowOp {
	return &NarrowOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
		dim:    dim,
		start:  start,
		length: length,
	}
}

// Backward scatters the output gradient into the input's coordinate range.
func (op *NarrowOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := zerosLike(x)

	outShape := outputGrad.Shape()
	if !outShape.Equal(op.output.Shape()) {
		panic(fmt.Sprintf("NarrowOp: gradient shape %v does not match output shape %v",
			outShape, op.output.Shape()))
	}

	inStrides := x.Shape().ComputeStrides()
	outStrides := outShape.ComputeStrides()
	g, out := outputGrad.Data(), grad.Data()
	for i, v := range g {
		offset := 0
		for d := range outShape {
			coord := (i / outStrides[d]) % outShape[d]
			if d == op.dim {
				coord += op.start
			}
			offset += coord * inStrides[d]
		}
		out[offset] += v
	}
	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *NarrowOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the narrowed output tensor.
func (op *NarrowOp) Output() *tensor.RawTensor { return op.output }
