package autodiff_test

import (
	"math"
	"testing"

	"github.com/mcr-ml/mcr/internal/autodiff"
	"github.com/mcr-ml/mcr/internal/tensor"
)

// numericalGradient approximates df/dx at element idx of x using central
// finite differences, where f evaluates the full forward pass to a scalar.
func numericalGradient(f func([]float64) float64, x []float64, idx int, epsilon float64) float64 {
	orig := x[idx]
	x[idx] = orig + epsilon
	plus := f(x)
	x[idx] = orig - epsilon
	minus := f(x)
	x[idx] = orig
	return (plus - minus) / (2 * epsilon)
}

// checkGradients compares autodiff gradients against finite differences for
// every element of the input.
func checkGradients(t *testing.T, input []float64, shape tensor.Shape, forward func(*tensor.Tensor[testBackend]) *tensor.Tensor[testBackend], tolerance float64) {
	t.Helper()

	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice(t, backend, input, shape)
	loss := forward(x)
	if loss.NumElements() != 1 {
		t.Fatalf("forward must reduce to a scalar, got shape %v", loss.Shape())
	}

	grads := autodiff.Backward(loss, backend)
	grad, ok := grads[x.Raw()]
	if !ok {
		t.Fatal("no gradient for input")
	}
	gradData := grad.Data()

	f := func(data []float64) float64 {
		// Fresh untaped backend per evaluation.
		evalBackend := newBackend()
		xe, err := tensor.FromSlice(data, shape, evalBackend)
		if err != nil {
			t.Fatalf("FromSlice: %v", err)
		}
		return forward(xe).Item()
	}

	perturbed := make([]float64, len(input))
	copy(perturbed, input)
	for i := range input {
		numerical := numericalGradient(f, perturbed, i, 1e-6)
		if math.Abs(gradData[i]-numerical) > tolerance {
			t.Errorf("grad[%d]: autodiff=%.8f numerical=%.8f", i, gradData[i], numerical)
		}
	}
}

func TestGradientCheck_SquareMean(t *testing.T) {
	checkGradients(t, []float64{1.5, -2.0, 0.5, 3.0}, tensor.Shape{2, 2},
		func(x *tensor.Tensor[testBackend]) *tensor.Tensor[testBackend] {
			return x.Mul(x).Mean()
		}, 1e-5)
}

func TestGradientCheck_SoftplusMean(t *testing.T) {
	checkGradients(t, []float64{-2, -0.5, 0.5, 2}, tensor.Shape{4},
		func(x *tensor.Tensor[testBackend]) *tensor.Tensor[testBackend] {
			return x.Softplus().Mean()
		}, 1e-5)
}

func TestGradientCheck_AbsMean(t *testing.T) {
	// Stay away from the kink at zero where abs is not differentiable.
	checkGradients(t, []float64{-2, -0.5, 0.5, 2}, tensor.Shape{4},
		func(x *tensor.Tensor[testBackend]) *tensor.Tensor[testBackend] {
			return x.Abs().Mean()
		}, 1e-5)
}

func TestGradientCheck_SoftmaxWeightedMean(t *testing.T) {
	checkGradients(t, []float64{0.1, 0.9, -0.4, 1.2, -0.7, 0.3}, tensor.Shape{2, 3},
		func(x *tensor.Tensor[testBackend]) *tensor.Tensor[testBackend] {
			// Break the uniform-gradient symmetry so the softmax Jacobian
			// is actually exercised.
			w, err := tensor.FromSlice([]float64{1, -2, 3, 0.5, 2, -1}, tensor.Shape{2, 3}, x.Backend())
			if err != nil {
				t.Fatalf("FromSlice: %v", err)
			}
			return x.Softmax().Mul(w).Mean()
		}, 1e-5)
}

func TestGradientCheck_MatMulMean(t *testing.T) {
	checkGradients(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3},
		func(x *tensor.Tensor[testBackend]) *tensor.Tensor[testBackend] {
			w, err := tensor.FromSlice([]float64{0.5, -1, 2, 0.25, -0.75, 1.5}, tensor.Shape{3, 2}, x.Backend())
			if err != nil {
				t.Fatalf("FromSlice: %v", err)
			}
			return x.MatMul(w).Mul(x.MatMul(w)).Mean()
		}, 1e-4)
}

func TestGradientCheck_SmoothnessPipeline(t *testing.T) {
	// The full spectra smoothness computation: scale-normalized squared
	// first differences along the wave axis.
	checkGradients(t, []float64{0.2, 0.5, 0.9, 0.4, 1.1, 0.8, 0.3, 0.6}, tensor.Shape{2, 4},
		func(x *tensor.Tensor[testBackend]) *tensor.Tensor[testBackend] {
			scale := x.Abs().Mean()
			diff := x.Narrow(1, 1, 3).Sub(x.Narrow(1, 0, 3)).Div(scale)
			return diff.Mul(diff).Mean()
		}, 1e-4)
}

func TestGradientCheck_ClippedSoftmax(t *testing.T) {
	// Values inside the clip bounds so the composition stays smooth.
	checkGradients(t, []float64{0.5, -1.5, 2.5, -0.5, 1.0, 0.0}, tensor.Shape{2, 3},
		func(x *tensor.Tensor[testBackend]) *tensor.Tensor[testBackend] {
			w, err := tensor.FromSlice([]float64{2, -1, 0.5, 1, 3, -2}, tensor.Shape{2, 3}, x.Backend())
			if err != nil {
				t.Fatalf("FromSlice: %v", err)
			}
			return x.Clamp(-50, 50).Softmax().Mul(w).Mean()
		}, 1e-5)
}
