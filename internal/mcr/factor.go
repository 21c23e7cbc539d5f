package mcr

import (
	"fmt"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// FactorConfig configures a FactorMatrix.
type FactorConfig[B tensor.Backend] struct {
	// Preload optionally initializes the raw parameter to the given values
	// (copied). Its shape must equal the declared (rows, cols).
	Preload *tensor.Tensor[B]

	// Modifier optionally maps the raw parameter to the constrained output.
	// When nil, Forward returns the raw parameter unmodified.
	Modifier Modifier[B]
}

// FactorMatrix is a constrained parameter module: it owns one raw
// gradient-tracked (rows × cols) matrix and exposes it through an optional
// modifier. Without a preload the raw matrix is initialized to independent
// uniform-random values in [0, 1).
type FactorMatrix[B tensor.Backend] struct {
	rows, cols int
	param      *Parameter[B]
	modifier   Modifier[B]
}

// NewFactorMatrix creates a factor module with the given dimensions.
//
// Returns an error wrapping ErrShapeMismatch if a preload matrix is
// supplied whose shape is not exactly (rows, cols).
func NewFactorMatrix[B tensor.Backend](name string, rows, cols int, cfg FactorConfig[B], backend B) (*FactorMatrix[B], error) {
	want := tensor.Shape{rows, cols}

	var raw *tensor.Tensor[B]
	if cfg.Preload != nil {
		if !cfg.Preload.Shape().Equal(want) {
			return nil, fmt.Errorf("factor %q: preload shape %v, want %v: %w",
				name, cfg.Preload.Shape(), want, ErrShapeMismatch)
		}
		raw = cfg.Preload.Clone()
	} else {
		raw = tensor.Rand(want, backend)
	}

	return &FactorMatrix[B]{
		rows:     rows,
		cols:     cols,
		param:    NewParameter(name, raw),
		modifier: cfg.Modifier,
	}, nil
}

// Forward returns the constrained output matrix: modifier(raw) when a
// modifier is configured, otherwise the raw parameter itself.
func (f *FactorMatrix[B]) Forward() *tensor.Tensor[B] {
	if f.modifier != nil {
		return f.modifier.Apply(f.param.Tensor())
	}
	return f.param.Tensor()
}

// Parameters returns the single raw parameter matrix.
func (f *FactorMatrix[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{f.param}
}

// Param returns the raw parameter for direct inspection.
func (f *FactorMatrix[B]) Param() *Parameter[B] {
	return f.param
}

// Rows returns the number of rows of the factor matrix.
func (f *FactorMatrix[B]) Rows() int {
	return f.rows
}

// Cols returns the number of columns of the factor matrix.
func (f *FactorMatrix[B]) Cols() int {
	return f.cols
}
