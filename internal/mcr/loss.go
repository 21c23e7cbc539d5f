package mcr

import (
	"fmt"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// Default smoothness weights for NewSmoothLoss. Zero is a meaningful value
// (it disables the corresponding penalty), so the defaults are applied by
// the callers that want them rather than by the constructor.
const (
	DefaultSmoothSpectraWeight = 0.1
	DefaultSmoothWeightWeight  = 0.1
)

// BaseLoss is an elementwise reconstruction objective reduced to a scalar.
type BaseLoss[B tensor.Backend] func(predicted, target *tensor.Tensor[B]) *tensor.Tensor[B]

// L1Loss is the mean absolute error between predicted and target.
func L1Loss[B tensor.Backend](predicted, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	return predicted.Sub(target).Abs().Mean()
}

// MSELoss is the mean squared error between predicted and target.
func MSELoss[B tensor.Backend](predicted, target *tensor.Tensor[B]) *tensor.Tensor[B] {
	diff := predicted.Sub(target)
	return diff.Mul(diff).Mean()
}

// SmoothLoss combines a base reconstruction loss with a smoothness penalty
// on the resolved spectra: the mean squared first difference along the wave
// axis, normalized by the mean absolute spectra value so the penalty is
// invariant to the overall intensity scale.
//
// The penalty term is shared between the spectra and weights smoothness
// weights: both scale the same spectra-difference statistic. This matches
// the behavior the objective was calibrated against.
type SmoothLoss[B tensor.Backend] struct {
	base          BaseLoss[B]
	spectraWeight float64
	weightWeight  float64
}

// NewSmoothLoss builds a smoothness objective around base, which defaults
// to L1Loss when nil. Both weights are taken as given, including zero.
func NewSmoothLoss[B tensor.Backend](base BaseLoss[B], spectraWeight, weightWeight float64) *SmoothLoss[B] {
	if base == nil {
		base = L1Loss[B]
	}
	return &SmoothLoss[B]{
		base:          base,
		spectraWeight: spectraWeight,
		weightWeight:  weightWeight,
	}
}

// Forward evaluates the objective. With both weights zero it reduces to the
// base loss and never touches spectra. Otherwise spectra must be a 2D
// tensor with at least two columns; fewer leaves no first differences to
// average and the call fails with ErrEmptyReduction.
func (l *SmoothLoss[B]) Forward(predicted, target, spectra *tensor.Tensor[B]) (*tensor.Tensor[B], error) {
	base := l.base(predicted, target)
	if l.spectraWeight == 0 && l.weightWeight == 0 {
		return base, nil
	}

	shape := spectra.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("smooth loss: spectra must be 2D, got shape %v: %w", shape, ErrShapeMismatch)
	}
	waves := shape[1]
	if waves < 2 {
		return nil, fmt.Errorf("smooth loss: need at least 2 wave columns, got %d: %w", waves, ErrEmptyReduction)
	}

	scale := spectra.Abs().Mean()
	diff := spectra.Narrow(1, 1, waves-1).Sub(spectra.Narrow(1, 0, waves-1)).Div(scale)
	penalty := diff.Mul(diff).Mean()

	total := base.
		Add(penalty.MulScalar(l.weightWeight)).
		Add(penalty.MulScalar(l.spectraWeight))
	return total, nil
}
