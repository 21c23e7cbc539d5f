// Copyright 2025 The MCR Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	internalcpu "github.com/mcr-ml/mcr/internal/backend/cpu"
	"github.com/mcr-ml/mcr/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*internalcpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies the RawTensor type alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3})
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}

	clone := raw.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil")
	}
	clone.Data()[0] = 5
	if raw.Data()[0] != 0 {
		t.Error("Clone() shares memory with the original")
	}
}

// TestCreationFunctions verifies the re-exported creation functions.
func TestCreationFunctions(t *testing.T) {
	backend := internalcpu.New()

	x := tensor.Zeros(tensor.Shape{2, 2}, backend)
	y := tensor.Ones(tensor.Shape{2, 2}, backend)
	z := x.Add(y)

	for i, v := range z.Data() {
		if v != 1 {
			t.Errorf("z[%d] = %f, want 1", i, v)
		}
	}

	full := tensor.Full(tensor.Shape{3}, 2.5, backend)
	if full.At(1) != 2.5 {
		t.Errorf("Full At(1) = %f, want 2.5", full.At(1))
	}

	fs, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if fs.At(1, 0) != 3 {
		t.Errorf("FromSlice At(1,0) = %f, want 3", fs.At(1, 0))
	}
}
