package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations; the
// autodiff decorator wraps a Backend and records every call on its tape.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Matrix operations (2D).
	MatMul(a, b *RawTensor) *RawTensor
	Transpose(t *RawTensor) *RawTensor

	// Scalar operations (element-wise with a constant).
	MulScalar(x *RawTensor, scalar float64) *RawTensor

	// Math operations (element-wise).
	Abs(x *RawTensor) *RawTensor
	Softplus(x *RawTensor) *RawTensor                // log(1 + exp(x)), numerically stable
	Clamp(x *RawTensor, low, high float64) *RawTensor // clip into [low, high]

	// Softmax normalizes each row of a 2D tensor into a probability
	// distribution (max-shifted for numerical stability).
	Softmax(x *RawTensor) *RawTensor

	// Reduction operations.
	Mean(x *RawTensor) *RawTensor // mean over all elements, shape {1}

	// Narrow returns a copy of a slice of x along dim: [start, start+length).
	Narrow(x *RawTensor, dim, start, length int) *RawTensor

	// Metadata.
	Name() string
}
