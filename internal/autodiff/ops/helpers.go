package ops

import (
	"fmt"

	"github.com/mcr-ml/mcr/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when broadcasting was used in the forward pass:
// the gradient contribution of a repeated element is the sum over all
// positions it was broadcast to.
//
// Example:
//
//	Forward: a{1} / b{2,3} -> c{2,3}  (a was broadcast over both dims)
//	Backward: grad_c{2,3} -> grad_a{1} (sum over all six entries)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, _ tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()
	if gradShape.Equal(targetShape) {
		// Clone so later gradient accumulation never aliases shared buffers.
		return grad.Clone()
	}

	result, err := tensor.NewRaw(targetShape)
	if err != nil {
		panic(fmt.Sprintf("reduceBroadcast: %v", err))
	}

	gradStrides := gradShape.ComputeStrides()
	targetStrides := targetShape.ComputeStrides()
	pad := len(gradShape) - len(targetShape)
	if pad < 0 {
		panic(fmt.Sprintf("reduceBroadcast: gradient shape %v narrower than target %v", gradShape, targetShape))
	}

	src, dst := grad.Data(), result.Data()
	for i, v := range src {
		// Right-aligned mapping: repeated (size-1 or missing) target
		// dimensions collapse to index 0 and accumulate.
		offset := 0
		for d := range gradShape {
			td := d - pad
			if td < 0 || targetShape[td] == 1 {
				continue
			}
			coord := (i / gradStrides[d]) % gradShape[d]
			offset += coord * targetStrides[td]
		}
		dst[offset] += v
	}
	return result
}

// zerosLike allocates a zero tensor with the same shape as t.
func zerosLike(t *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(t.Shape())
	if err != nil {
		panic(fmt.Sprintf("zerosLike: %v", err))
	}
	return result
}
