package cpu

import (
	"fmt"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// Mean reduces a tensor to the mean over all its elements, shape {1}.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{1})
	if err != nil {
		panic(fmt.Sprintf("mean: %v", err))
	}

	sum := 0.0
	for _, v := range x.Data() {
		sum += v
	}
	result.Data()[0] = sum / float64(x.NumElements())
	return result
}

// Narrow copies the slice [start, start+length) of x along dim.
func (cpu *CPUBackend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("narrow: invalid dimension %d for shape %v", dim, shape))
	}
	if start < 0 || length <= 0 || start+length > shape[dim] {
		panic(fmt.Sprintf("narrow: range [%d,%d) out of bounds for dimension %d (size %d)",
			start, start+length, dim, shape[dim]))
	}

	outShape := shape.Clone()
	outShape[dim] = length
	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("narrow: %v", err))
	}

	strides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	src, dst := x.Data(), result.Data()
	for i := range dst {
		// Map the output multi-index to the source, offsetting along dim.
		offset := 0
		for d := range outShape {
			coord := (i / outStrides[d]) % outShape[d]
			if d == dim {
				coord += start
			}
			offset += coord * strides[d]
		}
		dst[i] = src[offset]
	}
	return result
}
