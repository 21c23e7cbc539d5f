package mcr

import "github.com/mcr-ml/mcr/internal/tensor"

// SimpleConfig holds options for NewSimple.
// The zero value selects random initialization for both factors and the
// softplus modifier on each.
type SimpleConfig[B tensor.Backend] struct {
	// PreloadWeights optionally initializes the weights factor, shape
	// (samples, components).
	PreloadWeights *tensor.Tensor[B]
	// PreloadSpectra optionally initializes the spectra factor, shape
	// (components, waves).
	PreloadSpectra *tensor.Tensor[B]
	// WeightsModifier overrides the softplus default on the weights factor.
	WeightsModifier Modifier[B]
	// SpectraModifier overrides the softplus default on the spectra factor.
	SpectraModifier Modifier[B]
}

// NewSimple builds a model whose two factors are plain matrices with a
// softplus positivity modifier by default. Preloaded values, when given,
// must match the requested dimensions.
func NewSimple[B tensor.Backend](samples, components, waves int, config SimpleConfig[B], backend B) (*Model[B], error) {
	weightsModifier := config.WeightsModifier
	if weightsModifier == nil {
		weightsModifier = Softplus[B]()
	}
	spectraModifier := config.SpectraModifier
	if spectraModifier == nil {
		spectraModifier = Softplus[B]()
	}

	weights, err := NewFactorMatrix("weights", samples, components, FactorConfig[B]{
		Preload:  config.PreloadWeights,
		Modifier: weightsModifier,
	}, backend)
	if err != nil {
		return nil, err
	}

	spectra, err := NewFactorMatrix("spectra", components, waves, FactorConfig[B]{
		Preload:  config.PreloadSpectra,
		Modifier: spectraModifier,
	}, backend)
	if err != nil {
		return nil, err
	}

	return New[B](weights, spectra), nil
}

// NormalizedSpectraConfig holds options for NewNormalizedSpectra.
// ClipLow and ClipHigh bound the raw spectra values before the row softmax;
// leaving both at zero selects DefaultClipLow and DefaultClipHigh.
type NormalizedSpectraConfig[B tensor.Backend] struct {
	PreloadWeights *tensor.Tensor[B]
	PreloadSpectra *tensor.Tensor[B]
	// WeightsModifier overrides the softplus default on the weights factor.
	WeightsModifier Modifier[B]
	ClipLow         float64
	ClipHigh        float64
}

// NewNormalizedSpectra builds a model whose spectra rows are constrained to
// the probability simplex: each raw spectra row is clipped and passed
// through a softmax, so every resolved spectrum sums to one. Weights keep
// the softplus positivity constraint.
func NewNormalizedSpectra[B tensor.Backend](samples, components, waves int, config NormalizedSpectraConfig[B], backend B) (*Model[B], error) {
	weightsModifier := config.WeightsModifier
	if weightsModifier == nil {
		weightsModifier = Softplus[B]()
	}

	weights, err := NewFactorMatrix("weights", samples, components, FactorConfig[B]{
		Preload:  config.PreloadWeights,
		Modifier: weightsModifier,
	}, backend)
	if err != nil {
		return nil, err
	}

	spectra, err := NewFactorMatrix("spectra", components, waves, FactorConfig[B]{
		Preload:  config.PreloadSpectra,
		Modifier: NormalizedSoftmax[B](config.ClipLow, config.ClipHigh),
	}, backend)
	if err != nil {
		return nil, err
	}

	return New[B](weights, spectra), nil
}
