package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func identity() mgl64.Mat4 {
	return mgl64.Ident4()
}

func assertMatNear(t *testing.T, got, want mgl64.Mat4) {
	t.Helper()
	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("element %d: got %v, want %v\ngot  %v\nwant %v", i, got[i], want[i], got, want)
		}
	}
}

func TestScaleRoundTrip(t *testing.T) {
	prior := []struct {
		name  string
		setup func(s *Scene)
	}{
		{"identity", func(s *Scene) {}},
		{"translated", func(s *Scene) { s.Translate(0.3, -1.2, 4, 1) }},
		{"rotated", func(s *Scene) { s.Rotate(0.7, AxisY, 1) }},
		{"compound", func(s *Scene) {
			s.Rotate(-0.4, AxisX, 1)
			s.Translate(0.015, 0, -0.015, 1)
			s.Scale(2.5, 1)
			s.Rotate(1.1, AxisZ, 1)
		}},
	}

	for _, tt := range prior {
		t.Run(tt.name, func(t *testing.T) {
			s := twoGroupScene(t)
			tt.setup(s)
			before := s.Group(1).Model

			if err := s.Scale(Emphasis, 1); err != nil {
				t.Fatal(err)
			}
			if err := s.Scale(1/Emphasis, 1); err != nil {
				t.Fatal(err)
			}
			assertMatNear(t, s.Group(1).Model, before)
		})
	}
}

func TestScaleKeepsCentroidFixed(t *testing.T) {
	s := twoGroupScene(t)
	c := s.Group(0).Centroid

	s.Scale(3, 0)
	got := mgl64.TransformCoordinate(c, s.Group(0).Model)
	if !got.ApproxEqualThreshold(c, tolerance) {
		t.Errorf("centroid moved to %v, want %v", got, c)
	}

	// A vertex moves away from the centroid by the factor.
	v := mgl64.Vec3{0, 0, 0}
	moved := mgl64.TransformCoordinate(v, s.Group(0).Model)
	want := c.Add(v.Sub(c).Mul(3))
	if !moved.ApproxEqualThreshold(want, tolerance) {
		t.Errorf("vertex scaled to %v, want %v", moved, want)
	}
}

func TestRotateAboutCentroid(t *testing.T) {
	s := twoGroupScene(t)
	c := s.Group(0).Centroid

	s.Rotate(math.Pi/2, AxisZ, 0)
	m := s.Group(0).Model

	if got := mgl64.TransformCoordinate(c, m); !got.ApproxEqualThreshold(c, tolerance) {
		t.Errorf("centroid moved to %v, want %v", got, c)
	}

	// (c.x+1, c.y, c.z) rotates a quarter turn about z to (c.x, c.y+1, c.z).
	p := c.Add(mgl64.Vec3{1, 0, 0})
	want := c.Add(mgl64.Vec3{0, 1, 0})
	if got := mgl64.TransformCoordinate(p, m); !got.ApproxEqualThreshold(want, tolerance) {
		t.Errorf("rotated point = %v, want %v", got, want)
	}
}

func TestTranslateAccumulates(t *testing.T) {
	s := twoGroupScene(t)
	for i := 0; i < 10; i++ {
		if err := s.Translate(0.015, 0, -0.015, 0); err != nil {
			t.Fatal(err)
		}
	}
	m := s.Group(0).Model
	if !near(m[12], 0.15) || !near(m[13], 0) || !near(m[14], -0.15) {
		t.Errorf("translation column = (%v, %v, %v), want (0.15, 0, -0.15)", m[12], m[13], m[14])
	}
	if s.Group(1).Model != identity() {
		t.Error("translating group 0 changed group 1")
	}
}

func TestTranslateAfterRotateUsesLocalAxes(t *testing.T) {
	s := twoGroupScene(t)
	c := s.Group(0).Centroid

	s.Rotate(math.Pi/2, AxisZ, 0)
	s.Translate(1, 0, 0, 0)

	// Post-multiplication applies the translation before the rotation, so
	// the centroid ends up displaced along the rotated x axis (world +y).
	got := mgl64.TransformCoordinate(c, s.Group(0).Model)
	want := c.Add(mgl64.Vec3{0, 1, 0})
	if !got.ApproxEqualThreshold(want, tolerance) {
		t.Errorf("centroid = %v, want %v", got, want)
	}
}

func TestInvalidGroupIndex(t *testing.T) {
	s := twoGroupScene(t)
	ops := map[string]func() error{
		"translate negative": func() error { return s.Translate(1, 0, 0, -1) },
		"scale past end":     func() error { return s.Scale(2, 2) },
		"rotate past end":    func() error { return s.Rotate(1, AxisY, 7) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrInvalidGroupIndex) {
				t.Errorf("expected ErrInvalidGroupIndex, got %v", err)
			}
		})
	}
	for i, g := range s.Groups() {
		if g.Model != identity() {
			t.Errorf("group %d changed by a rejected transform", i)
		}
	}
}

func TestResetTransforms(t *testing.T) {
	s := twoGroupScene(t)
	s.Translate(1, 2, 3, 0)
	s.Rotate(0.3, AxisX, 1)
	s.Scale(0.5, 1)

	s.ResetTransforms()
	for i, g := range s.Groups() {
		if g.Model != identity() {
			t.Errorf("group %d not reset", i)
		}
	}
}
