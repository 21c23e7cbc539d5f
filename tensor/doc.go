// Copyright 2025 The MCR Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense float64 tensors.
//
// The package defines the core types used throughout the library:
//   - Tensor[B]: High-level tensor generic over the compute backend
//   - RawTensor: Low-level storage (flat float64 buffer plus shape)
//   - Backend: Interface for compute implementations
//   - Shape: Tensor dimensions
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	y := tensor.Ones(tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
package tensor
