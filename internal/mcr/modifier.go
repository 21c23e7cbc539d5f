package mcr

import "github.com/mcr-ml/mcr/internal/tensor"

// Default clip range for NormalizedSoftmax. Wide enough to be inert at the
// U[0,1) initialization scale while staying far below float64 exp overflow.
const (
	DefaultClipLow  = -50.0
	DefaultClipHigh = 50.0
)

// Modifier maps a raw parameter matrix to its constrained output.
//
// Modifiers are immutable values: a modifier holds configuration only,
// never per-instance state, so the same value may be shared between
// modules without aliasing hazards.
type Modifier[B tensor.Backend] interface {
	Apply(raw *tensor.Tensor[B]) *tensor.Tensor[B]
}

// softplusModifier maps every entry to a strictly positive value via
// log(1 + exp(x)).
type softplusModifier[B tensor.Backend] struct{}

func (softplusModifier[B]) Apply(raw *tensor.Tensor[B]) *tensor.Tensor[B] {
	return raw.Softplus()
}

// Softplus returns the softplus modifier: a smooth monotone map onto the
// strictly positive reals. Output tends to 0 as the input tends to -∞ and
// approaches the input for large positive values, so gradients never die
// the way they would at a hard clamp.
func Softplus[B tensor.Backend]() Modifier[B] {
	return softplusModifier[B]{}
}

// identityModifier returns the raw matrix unmodified.
type identityModifier[B tensor.Backend] struct{}

func (identityModifier[B]) Apply(raw *tensor.Tensor[B]) *tensor.Tensor[B] {
	return raw
}

// Identity returns the identity modifier, for explicitly disabling the
// default transform of a model variant.
func Identity[B tensor.Backend]() Modifier[B] {
	return identityModifier[B]{}
}

// normalizedSoftmax clips each entry into [clipLow, clipHigh] and then
// applies row-wise softmax, producing a row-stochastic matrix.
type normalizedSoftmax[B tensor.Backend] struct {
	clipLow  float64
	clipHigh float64
}

func (m normalizedSoftmax[B]) Apply(raw *tensor.Tensor[B]) *tensor.Tensor[B] {
	return raw.Clamp(m.clipLow, m.clipHigh).Softmax()
}

// NormalizedSoftmax returns the simplex modifier: every row of the output
// sums to 1 and every entry is ≥ 0. Clipping happens before normalization,
// which bounds the exponentials for extreme raw values without zeroing the
// gradient of in-range entries.
//
// Passing 0 for both bounds selects the defaults [DefaultClipLow,
// DefaultClipHigh].
func NormalizedSoftmax[B tensor.Backend](clipLow, clipHigh float64) Modifier[B] {
	if clipLow == 0 && clipHigh == 0 {
		clipLow, clipHigh = DefaultClipLow, DefaultClipHigh
	}
	return normalizedSoftmax[B]{clipLow: clipLow, clipHigh: clipHigh}
}
