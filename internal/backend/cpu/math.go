package cpu

import (
	"fmt"
	"math"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// MulScalar multiplies every element by a constant.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return unaryOp("mulscalar", x, func(v float64) float64 { return v * scalar })
}

// Abs computes the element-wise absolute value.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp("abs", x, math.Abs)
}

// Softplus computes log(1 + exp(x)) element-wise.
// The max(x,0) + log1p(exp(-|x|)) form avoids overflow for large positive
// inputs and is exact down to float64 underflow for large negative ones.
func (cpu *CPUBackend) Softplus(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp("softplus", x, softplus)
}

func softplus(v float64) float64 {
	return math.Max(v, 0) + math.Log1p(math.Exp(-math.Abs(v)))
}

// Clamp clips every element into [low, high].
func (cpu *CPUBackend) Clamp(x *tensor.RawTensor, low, high float64) *tensor.RawTensor {
	if low > high {
		panic(fmt.Sprintf("clamp: low %v > high %v", low, high))
	}
	return unaryOp("clamp", x, func(v float64) float64 {
		return math.Min(math.Max(v, low), high)
	})
}

// Softmax normalizes each row of a 2D tensor into a probability
// distribution, shifting by the row maximum for numerical stability.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("softmax: only 2D tensors supported, got shape %v", shape))
	}

	result, err := tensor.NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("softmax: %v", err))
	}

	rows, cols := shape[0], shape[1]
	src, dst := x.Data(), result.Data()
	for r := 0; r < rows; r++ {
		row := src[r*cols : (r+1)*cols]
		out := dst[r*cols : (r+1)*cols]

		maxVal := row[0]
		for _, v := range row[1:] {
			if v > maxVal {
				maxVal = v
			}
		}

		sum := 0.0
		for j, v := range row {
			out[j] = math.Exp(v - maxVal)
			sum += out[j]
		}
		for j := range out {
			out[j] /= sum
		}
	}
	return result
}

func unaryOp(name string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}
	src, dst := x.Data(), result.Data()
	for i, v := range src {
		dst[i] = f(v)
	}
	return result
}
