package mcr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcr-ml/mcr/internal/autodiff"
	"github.com/mcr-ml/mcr/internal/backend/cpu"
	"github.com/mcr-ml/mcr/internal/tensor"
)

type Backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func newBackend() Backend {
	return autodiff.New(cpu.New())
}

func TestFactorMatrix_RandomInit(t *testing.T) {
	backend := newBackend()

	f, err := NewFactorMatrix("weights", 3, 4, FactorConfig[Backend]{}, backend)
	require.NoError(t, err)

	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, 4, f.Cols())
	assert.True(t, f.Param().Tensor().Shape().Equal(tensor.Shape{3, 4}))

	// Raw parameter values come from U[0, 1).
	for _, v := range f.Param().Tensor().Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestFactorMatrix_Preload(t *testing.T) {
	backend := newBackend()

	init, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	f, err := NewFactorMatrix("spectra", 2, 3, FactorConfig[Backend]{Preload: init}, backend)
	require.NoError(t, err)
	assert.Equal(t, init.Data(), f.Param().Tensor().Data())

	// The preload is copied: later mutation of the source must not reach
	// the parameter.
	init.Set(99, 0, 0)
	assert.Equal(t, 1.0, f.Param().Tensor().At(0, 0))
}

func TestFactorMatrix_PreloadShapeMismatch(t *testing.T) {
	backend := newBackend()

	init, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	_, err = NewFactorMatrix("weights", 2, 3, FactorConfig[Backend]{Preload: init}, backend)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFactorMatrix_ForwardAppliesModifier(t *testing.T) {
	backend := newBackend()

	init, err := tensor.FromSlice([]float64{-10, -1, 0, 1, 10, 100}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	f, err := NewFactorMatrix("weights", 2, 3, FactorConfig[Backend]{
		Preload:  init,
		Modifier: Softplus[Backend](),
	}, backend)
	require.NoError(t, err)

	for _, v := range f.Forward().Data() {
		assert.Greater(t, v, 0.0, "softplus output must be strictly positive")
	}
	// Raw parameter keeps its unconstrained values.
	assert.Equal(t, -10.0, f.Param().Tensor().At(0, 0))
}

func TestFactorMatrix_ForwardWithoutModifier(t *testing.T) {
	backend := newBackend()

	init, err := tensor.FromSlice([]float64{-1, 2}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	f, err := NewFactorMatrix("weights", 1, 2, FactorConfig[Backend]{Preload: init}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float64{-1, 2}, f.Forward().Data())
}

func TestFactorMatrix_Parameters(t *testing.T) {
	backend := newBackend()

	f, err := NewFactorMatrix("spectra", 2, 2, FactorConfig[Backend]{}, backend)
	require.NoError(t, err)

	params := f.Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, "spectra", params[0].Name())
	assert.Same(t, f.Param(), params[0])
}

func TestParameter_Grad(t *testing.T) {
	backend := newBackend()

	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	p := NewParameter("x", x)
	assert.Equal(t, "x", p.Name())
	assert.Nil(t, p.Grad())

	g := tensor.Ones(tensor.Shape{2}, backend)
	p.SetGrad(g)
	assert.Same(t, g, p.Grad())

	p.ZeroGrad()
	assert.Nil(t, p.Grad())
}
