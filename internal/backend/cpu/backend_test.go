package cpu_test

import (
	"math"
	"testing"

	"github.com/mcr-ml/mcr/internal/backend/cpu"
	"github.com/mcr-ml/mcr/internal/tensor"
)

func fromSlice(t *testing.T, data []float64, shape tensor.Shape) *tensor.Tensor[*cpu.CPUBackend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, cpu.New())
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return x
}

func assertData(t *testing.T, got *tensor.Tensor[*cpu.CPUBackend], want []float64, eps float64) {
	t.Helper()
	data := got.Data()
	if len(data) != len(want) {
		t.Fatalf("length = %d, want %d", len(data), len(want))
	}
	for i := range want {
		if math.Abs(data[i]-want[i]) > eps {
			t.Errorf("data[%d] = %f, want %f", i, data[i], want[i])
		}
	}
}

func TestAdd_SameShape(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, []float64{5, 6, 7, 8}, tensor.Shape{2, 2})
	assertData(t, a.Add(b), []float64{6, 8, 10, 12}, 1e-12)
}

func TestAdd_BroadcastScalar(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	s := fromSlice(t, []float64{10}, tensor.Shape{1})
	assertData(t, a.Add(s), []float64{11, 12, 13, 14}, 1e-12)
}

func TestAdd_BroadcastRow(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := fromSlice(t, []float64{10, 20, 30}, tensor.Shape{3})
	assertData(t, a.Add(row), []float64{11, 22, 33, 14, 25, 36}, 1e-12)
}

func TestAdd_BroadcastColumn(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	col := fromSlice(t, []float64{10, 100}, tensor.Shape{2, 1})
	assertData(t, a.Add(col), []float64{11, 12, 13, 104, 105, 106}, 1e-12)
}

func TestSub(t *testing.T) {
	a := fromSlice(t, []float64{5, 6, 7, 8}, tensor.Shape{4})
	b := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{4})
	assertData(t, a.Sub(b), []float64{4, 4, 4, 4}, 1e-12)
}

func TestDiv_BroadcastScalar(t *testing.T) {
	a := fromSlice(t, []float64{2, 4, 6, 8}, tensor.Shape{2, 2})
	s := fromSlice(t, []float64{2}, tensor.Shape{1})
	assertData(t, a.Div(s), []float64{1, 2, 3, 4}, 1e-12)
}

func TestAdd_IncompatibleShapesPanics(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3})

	defer func() {
		if recover() == nil {
			t.Error("Add with incompatible shapes did not panic")
		}
	}()
	a.Add(b)
}

func TestMatMul(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := fromSlice(t, []float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	c := a.MatMul(b)
	if !c.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", c.Shape())
	}
	assertData(t, c, []float64{58, 64, 139, 154}, 1e-12)
}

func TestMatMul_IdentityPreserves(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	id := fromSlice(t, []float64{1, 0, 0, 1}, tensor.Shape{2, 2})
	assertData(t, a.MatMul(id), []float64{1, 2, 3, 4}, 1e-12)
}

func TestMatMul_DimensionMismatchPanics(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3, 1})

	defer func() {
		if recover() == nil {
			t.Error("MatMul with inner dimension mismatch did not panic")
		}
	}()
	a.MatMul(b)
}

func TestTranspose(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	at := a.T()
	if !at.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", at.Shape())
	}
	assertData(t, at, []float64{1, 4, 2, 5, 3, 6}, 1e-12)
}

func TestMulScalar(t *testing.T) {
	a := fromSlice(t, []float64{1, -2, 3}, tensor.Shape{3})
	assertData(t, a.MulScalar(-2), []float64{-2, 4, -6}, 1e-12)
}

func TestAbs(t *testing.T) {
	a := fromSlice(t, []float64{-1.5, 0, 2.5}, tensor.Shape{3})
	assertData(t, a.Abs(), []float64{1.5, 0, 2.5}, 1e-12)
}

func TestSoftplus_Values(t *testing.T) {
	a := fromSlice(t, []float64{0, 1, -1}, tensor.Shape{3})
	want := []float64{math.Log(2), math.Log1p(math.E), math.Log1p(math.Exp(-1))}
	assertData(t, a.Softplus(), want, 1e-12)
}

func TestSoftplus_StableAtExtremes(t *testing.T) {
	a := fromSlice(t, []float64{-1000, 1000}, tensor.Shape{2})
	out := a.Softplus().Data()

	if out[0] != 0 {
		t.Errorf("softplus(-1000) = %g, want 0", out[0])
	}
	if math.IsInf(out[1], 0) || math.IsNaN(out[1]) {
		t.Fatalf("softplus(1000) = %g, want finite", out[1])
	}
	if math.Abs(out[1]-1000) > 1e-9 {
		t.Errorf("softplus(1000) = %f, want ~1000", out[1])
	}
	// Output is strictly positive everywhere it matters.
	for i, v := range out {
		if v < 0 {
			t.Errorf("softplus output[%d] = %f, want >= 0", i, v)
		}
	}
}

func TestClamp(t *testing.T) {
	a := fromSlice(t, []float64{-100, -1, 0, 1, 100}, tensor.Shape{5})
	assertData(t, a.Clamp(-50, 50), []float64{-50, -1, 0, 1, 50}, 1e-12)
}

func TestClamp_InvertedBoundsPanics(t *testing.T) {
	a := fromSlice(t, []float64{1}, tensor.Shape{1})

	defer func() {
		if recover() == nil {
			t.Error("Clamp with low > high did not panic")
		}
	}()
	a.Clamp(1, -1)
}

func TestSoftmax_RowsSumToOne(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 10, 10, 10}, tensor.Shape{2, 3})

	out := a.Softmax()
	data := out.Data()
	for row := 0; row < 2; row++ {
		sum := 0.0
		for col := 0; col < 3; col++ {
			v := data[row*3+col]
			if v <= 0 || v >= 1 {
				t.Errorf("softmax[%d,%d] = %f, want (0, 1)", row, col, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("row %d sum = %f, want 1", row, sum)
		}
	}

	// Uniform row gives uniform probabilities.
	for col := 0; col < 3; col++ {
		if math.Abs(data[3+col]-1.0/3.0) > 1e-12 {
			t.Errorf("uniform row softmax[%d] = %f, want 1/3", col, data[3+col])
		}
	}
}

func TestSoftmax_StableAtLargeValues(t *testing.T) {
	a := fromSlice(t, []float64{1000, 1000, 999}, tensor.Shape{1, 3})

	out := a.Softmax().Data()
	sum := 0.0
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("softmax[%d] = %g, want finite", i, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("sum = %f, want 1", sum)
	}
}

func TestMean(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	m := a.Mean()
	if !m.Shape().Equal(tensor.Shape{1}) {
		t.Fatalf("shape = %v, want [1]", m.Shape())
	}
	if math.Abs(m.Item()-2.5) > 1e-12 {
		t.Errorf("mean = %f, want 2.5", m.Item())
	}
}

func TestNarrow(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	// Columns 1..2 of each row.
	n := a.Narrow(1, 1, 2)
	if !n.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", n.Shape())
	}
	assertData(t, n, []float64{2, 3, 5, 6}, 1e-12)

	// Second row only.
	r := a.Narrow(0, 1, 1)
	if !r.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("shape = %v, want [1 3]", r.Shape())
	}
	assertData(t, r, []float64{4, 5, 6}, 1e-12)
}

func TestNarrow_OutOfBoundsPanics(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	defer func() {
		if recover() == nil {
			t.Error("Narrow past the end did not panic")
		}
	}()
	a.Narrow(1, 2, 2)
}

func TestName(t *testing.T) {
	if got := cpu.New().Name(); got != "CPU" {
		t.Errorf("Name() = %q, want CPU", got)
	}
}
