// Copyright 2025 The MCR Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend.
//
// Element-wise kernels are plain Go loops; matrix multiplication is
// delegated to gonum's BLAS-backed mat package.
package cpu

import (
	internalcpu "github.com/mcr-ml/mcr/internal/backend/cpu"
	"github.com/mcr-ml/mcr/tensor"
)

// Backend is the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}
