package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense creates a 2D tensor from a gonum dense matrix.
// The matrix data is copied.
func FromDense[B Backend](d *mat.Dense, b B) *Tensor[B] {
	rows, cols := d.Dims()
	t := Zeros(Shape{rows, cols}, b)
	data := t.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = d.At(i, j)
		}
	}
	return t
}

// Dense returns a copy of a 2D tensor as a gonum dense matrix.
// Panics if the tensor is not 2D.
func (t *Tensor[B]) Dense() *mat.Dense {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Dense() only works for 2D tensors, got shape %v", shape))
	}
	data := make([]float64, len(t.Data()))
	copy(data, t.Data())
	return mat.NewDense(shape[0], shape[1], data)
}
