package mcr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcr-ml/mcr/internal/autodiff"
	"github.com/mcr-ml/mcr/internal/tensor"
)

func TestModel_ForwardShape(t *testing.T) {
	backend := newBackend()

	model, err := NewSimple(4, 2, 7, SimpleConfig[Backend]{}, backend)
	require.NoError(t, err)

	out := model.Forward()
	assert.True(t, out.Shape().Equal(tensor.Shape{4, 7}), "shape = %v", out.Shape())
}

func TestModel_ForwardKnownProduct(t *testing.T) {
	backend := newBackend()

	// All-ones factors with no modifiers: every entry of W@S is the inner
	// dimension.
	ones := func(rows, cols int) *tensor.Tensor[Backend] {
		return tensor.Ones(tensor.Shape{rows, cols}, backend)
	}
	model, err := NewSimple(5, 2, 10, SimpleConfig[Backend]{
		PreloadWeights:  ones(5, 2),
		PreloadSpectra:  ones(2, 10),
		WeightsModifier: Identity[Backend](),
		SpectraModifier: Identity[Backend](),
	}, backend)
	require.NoError(t, err)

	out := model.Forward()
	require.True(t, out.Shape().Equal(tensor.Shape{5, 10}))
	for _, v := range out.Data() {
		assert.Equal(t, 2.0, v)
	}
}

func TestModel_Parameters(t *testing.T) {
	backend := newBackend()

	model, err := NewSimple(3, 2, 4, SimpleConfig[Backend]{}, backend)
	require.NoError(t, err)

	params := model.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "weights", params[0].Name())
	assert.Equal(t, "spectra", params[1].Name())
}

func TestModel_Accessors(t *testing.T) {
	backend := newBackend()

	weights, err := NewFactorMatrix("weights", 2, 2, FactorConfig[Backend]{}, backend)
	require.NoError(t, err)
	spectra, err := NewFactorMatrix("spectra", 2, 3, FactorConfig[Backend]{}, backend)
	require.NoError(t, err)

	model := New[Backend](weights, spectra)
	assert.Same(t, Module[Backend](weights), model.Weights())
	assert.Same(t, Module[Backend](spectra), model.Spectra())
}

func TestNewSimple_DefaultsToSoftplus(t *testing.T) {
	backend := newBackend()

	negative := tensor.Full(tensor.Shape{2, 3}, -5.0, backend)
	model, err := NewSimple(2, 3, 4, SimpleConfig[Backend]{PreloadWeights: negative}, backend)
	require.NoError(t, err)

	// Softplus keeps the constrained weights strictly positive even with a
	// negative raw preload.
	for _, v := range model.Weights().Forward().Data() {
		assert.Greater(t, v, 0.0)
	}
}

func TestNewSimple_PreloadShapeMismatch(t *testing.T) {
	backend := newBackend()

	bad := tensor.Ones(tensor.Shape{2, 2}, backend)
	_, err := NewSimple(3, 2, 4, SimpleConfig[Backend]{PreloadWeights: bad}, backend)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewSimple(2, 2, 4, SimpleConfig[Backend]{PreloadSpectra: bad}, backend)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNewNormalizedSpectra_SpectraOnSimplex(t *testing.T) {
	backend := newBackend()

	model, err := NewNormalizedSpectra(6, 3, 20, NormalizedSpectraConfig[Backend]{}, backend)
	require.NoError(t, err)

	spectra := model.Spectra().Forward()
	require.True(t, spectra.Shape().Equal(tensor.Shape{3, 20}))
	for r := 0; r < 3; r++ {
		sum := 0.0
		for c := 0; c < 20; c++ {
			v := spectra.At(r, c)
			assert.GreaterOrEqual(t, v, 0.0)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "row %d", r)
	}

	// Weights keep the softplus constraint.
	for _, v := range model.Weights().Forward().Data() {
		assert.Greater(t, v, 0.0)
	}
}

func TestModel_GradientsReachBothFactors(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	model, err := NewNormalizedSpectra(4, 2, 8, NormalizedSpectraConfig[Backend]{}, backend)
	require.NoError(t, err)

	target := tensor.Full(tensor.Shape{4, 8}, 0.5, backend)
	loss := L1Loss(model.Forward(), target)

	grads := autodiff.Backward(loss, backend)
	for _, param := range model.Parameters() {
		grad, ok := grads[param.Tensor().Raw()]
		require.True(t, ok, "no gradient for %q", param.Name())
		assert.True(t, grad.Shape().Equal(param.Tensor().Shape()),
			"gradient shape %v for %q parameter shape %v",
			grad.Shape(), param.Name(), param.Tensor().Shape())

		nonZero := false
		for _, v := range grad.Data() {
			if v != 0 {
				nonZero = true
				break
			}
		}
		assert.True(t, nonZero, "gradient for %q is all zeros", param.Name())
	}
}
