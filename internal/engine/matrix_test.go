package engine

import "testing"

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate after scale: (1, 1) -> (2, 2) -> (12, 22)
	m := Translate(10, 20).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if x != 12 || y != 22 {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (12, 22)", x, y)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix2D
	}{
		{"identity", Identity()},
		{"translate", Translate(-3, 7)},
		{"scale", Scale(0.25, 4)},
		{"viewport", Translate(400, 0).Multiply(Scale(1.5, 1.5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.TransformPoint(13, -5)
			bx, by := tt.m.Invert().TransformPoint(x, y)
			if !approx(bx, 13, 1e-9) || !approx(by, -5, 1e-9) {
				t.Errorf("round trip = (%v, %v), want (13, -5)", bx, by)
			}
		})
	}

	if got := Scale(0, 1).Invert(); got != Identity() {
		t.Errorf("singular Invert() = %v, want identity", got)
	}
}

func TestMatrixToSlice(t *testing.T) {
	got := Translate(1, 2).ToSlice()
	want := []float64{1, 0, 0, 1, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice() = %v, want %v", got, want)
		}
	}
}
