package tensor

import "fmt"

// RawTensor is the low-level tensor representation: a dense, row-major
// float64 buffer with a shape. Factorization models only ever need dense
// real-valued matrices and scalars, so there is no dtype or device axis.
//
// Identity matters: the autodiff tape keys gradients by *RawTensor, so a
// trainable parameter must keep the same RawTensor across forward passes
// and be mutated in place by the optimizer.
type RawTensor struct {
	data  []float64
	shape Shape
}

// NewRaw creates a new zero-initialized RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's row-major memory strides.
func (r *RawTensor) Strides() []int {
	return r.shape.ComputeStrides()
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Data returns the underlying float64 slice.
// WARNING: direct access to underlying memory; writes are visible to every
// view of this tensor.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]float64, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:  data,
		shape: r.shape.Clone(),
	}
}
