// Package cpu implements the CPU backend for dense float64 tensors.
// Matrix multiplication is delegated to gonum's BLAS-backed mat package;
// element-wise kernels are plain Go loops.
package cpu

import (
	"fmt"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// CPUBackend implements tensor operations on the CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binaryOp("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binaryOp("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binaryOp("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return binaryOp("div", a, b, func(x, y float64) float64 { return x / y })
}

// binaryOp applies f element-wise over broadcast-aligned operands.
func binaryOp(name string, a, b *tensor.RawTensor, f func(x, y float64) float64) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	rd := result.Data()
	if !needsBroadcast {
		// Fast path: same shape, element-by-element.
		ad, bd := a.Data(), b.Data()
		for i := range rd {
			rd[i] = f(ad[i], bd[i])
		}
		return result
	}

	outStrides := outShape.ComputeStrides()
	for i := range rd {
		rd[i] = f(
			a.Data()[broadcastOffset(i, outShape, outStrides, a.Shape())],
			b.Data()[broadcastOffset(i, outShape, outStrides, b.Shape())],
		)
	}
	return result
}

// broadcastOffset maps a flat index in the broadcast output back to the flat
// index of an operand, treating size-1 and missing dimensions as repeated.
func broadcastOffset(flat int, outShape tensor.Shape, outStrides []int, inShape tensor.Shape) int {
	inStrides := inShape.ComputeStrides()
	pad := len(outShape) - len(inShape)

	offset := 0
	for d := 0; d < len(outShape); d++ {
		id := d - pad
		if id < 0 || inShape[id] == 1 {
			continue
		}
		coord := (flat / outStrides[d]) % outShape[d]
		offset += coord * inStrides[id]
	}
	return offset
}
