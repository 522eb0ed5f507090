package core

import (
	"math"
	"testing"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		normal    Vec3
		expected  Vec3
	}{
		{
			name:      "Head-on bounce",
			direction: NewVec3(0, -1, 0),
			normal:    NewVec3(0, 1, 0),
			expected:  NewVec3(0, 1, 0),
		},
		{
			name:      "45 degree bounce off floor",
			direction: NewVec3(1, -1, 0),
			normal:    NewVec3(0, 1, 0),
			expected:  NewVec3(1, 1, 0),
		},
		{
			name:      "Grazing ray is unchanged",
			direction: NewVec3(1, 0, 0),
			normal:    NewVec3(0, 1, 0),
			expected:  NewVec3(1, 0, 0),
		},
		{
			name:      "Wall facing +Z",
			direction: NewVec3(0.3, 0.2, -1),
			normal:    NewVec3(0, 0, 1),
			expected:  NewVec3(0.3, 0.2, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.direction, tt.normal)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	zero := NewVec3(0, 0, 0).Normalize()
	if !zero.IsZero() {
		t.Errorf("Expected zero vector, got %v", zero)
	}
	if math.IsNaN(zero.X) || math.IsNaN(zero.Y) || math.IsNaN(zero.Z) {
		t.Errorf("Normalize of zero vector produced NaN: %v", zero)
	}

	unit := NewVec3(3, 0, 4).Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
	if !unit.Equals(NewVec3(0.6, 0, 0.8)) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", unit)
	}
}

func TestVec3_Clamp(t *testing.T) {
	got := NewVec3(-0.5, 0.25, 3).Clamp(0, 1)
	want := NewVec3(0, 0.25, 1)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if got := ray.At(1.5); !got.Equals(NewVec3(1, 2, 0)) {
		t.Errorf("Expected (1, 2, 0), got %v", got)
	}
}
