package mathx

import (
	"testing"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
	}{
		{0, 0, 0},
		{2, 3, 5},
		{-1, 1, 0},
		{2.5, 0.5, 3.0},
	}

	for _, tt := range tests {
		if got := Add(tt.x, tt.y); got != tt.want {
			t.Errorf("Add(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		if got := Add(tt.y, tt.x); got != tt.want {
			t.Errorf("Add(%v, %v) = %v, want %v", tt.y, tt.x, got, tt.want)
		}
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
	}{
		{0, 0, 0},
		{4, 5, 20},
		{-2, 3, -6},
		{2.5, 0.4, 1.0},
	}

	for _, tt := range tests {
		if got := Multiply(tt.x, tt.y); got != tt.want {
			t.Errorf("Multiply(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		if got := Mul(tt.x, tt.y); got != Multiply(tt.x, tt.y) {
			t.Errorf("Mul(%v, %v) = %v, want %v", tt.x, tt.y, got, Multiply(tt.x, tt.y))
		}
	}
}

func TestAddValues(t *testing.T) {
	tests := []struct {
		name    string
		x, y    interface{}
		want    float64
		wantErr bool
		field   string
	}{
		{"ints", 2, 3, 5, false, ""},
		{"mixed", int64(2), 0.5, 2.5, false, ""},
		{"float32", float32(1.5), uint8(1), 2.5, false, ""},
		{"strings", "a", "b", 0, true, "x"},
		{"string and int", "ab", 3, 0, true, "x"},
		{"nil", nil, 1, 0, true, "x"},
		{"slice", []int{}, 2, 0, true, "x"},
		{"bool right", 1, true, 0, true, "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddValues(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddValues() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !rwerror.HasCode(err, rwerror.CodeInvalidType) {
					t.Errorf("AddValues() code = %v, want %v", rwerror.GetCode(err), rwerror.CodeInvalidType)
				}
				if f := rwerror.GetField(err); f != tt.field {
					t.Errorf("AddValues() field = %q, want %q", f, tt.field)
				}
				return
			}
			if got != tt.want {
				t.Errorf("AddValues() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiplyValues(t *testing.T) {
	got, err := MultiplyValues(4, 5)
	if err != nil {
		t.Fatalf("MultiplyValues() error = %v", err)
	}
	if got != 20 {
		t.Errorf("MultiplyValues(4, 5) = %v, want 20", got)
	}

	for _, bad := range []interface{}{"a", nil, []int{1}, map[string]int{}} {
		if _, err := MultiplyValues(bad, 2); !rwerror.HasCode(err, rwerror.CodeInvalidType) {
			t.Errorf("MultiplyValues(%v, 2) error = %v, want INVALID_TYPE", bad, err)
		}
	}
}

func TestToNumber_Message(t *testing.T) {
	_, err := ToNumber("abc", "principal")
	if err == nil {
		t.Fatal("ToNumber() should reject a string")
	}
	if err.Error() != "principal must be int or float" {
		t.Errorf("ToNumber() error = %q", err.Error())
	}
}
