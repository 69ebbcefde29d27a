package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/sceneview/internal/assets"
	"github.com/Faultbox/sceneview/internal/scene"
)

const eps = 1e-6

func square(x0, z float32) assets.RawGroup {
	return assets.RawGroup{
		Vertices:  [][3]float32{{x0, 0, z}, {x0 + 1, 0, z}, {x0 + 1, 1, z}, {x0, 1, z}},
		Normals:   [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		Triangles: [][3]uint32{{0, 1, 2}, {0, 2, 3}},
	}
}

func TestScreenToRayCenter(t *testing.T) {
	eye := mgl64.Vec3{0, 0, 3}
	view := mgl64.LookAtV(eye, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(math.Pi/2, 1, 0.01, 100)

	r := ScreenToRay(400, 400, 800, 800, proj.Mul4(view).Inv())
	if !r.Direction.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, eps) {
		t.Errorf("direction = %v, want -Z", r.Direction)
	}
	// The origin lies on the near plane in front of the eye.
	if math.Abs(r.Origin[0]) > eps || math.Abs(r.Origin[1]) > eps || math.Abs(r.Origin[2]-(3-0.01)) > 1e-4 {
		t.Errorf("origin = %v", r.Origin)
	}

	// The top-left corner points up and to the left.
	r = ScreenToRay(0, 0, 800, 800, proj.Mul4(view).Inv())
	if r.Direction[0] >= 0 || r.Direction[1] <= 0 {
		t.Errorf("corner direction = %v", r.Direction)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{-1, -1, -1})

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float64
	}{
		{"front", Ray{mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1}}, true, 4},
		{"inside", Ray{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}}, true, 1},
		{"behind", Ray{mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1}}, false, 0},
		{"miss parallel", Ray{mgl64.Vec3{2, 0, 5}, mgl64.Vec3{0, 0, -1}}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && math.Abs(got-tt.wantT) > eps {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestGroupBoundsFollowsModel(t *testing.T) {
	s, err := scene.Build([]assets.RawGroup{square(0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	s.Translate(2, 0, 0, 0)

	box, ok := GroupBounds(s.Group(0))
	if !ok {
		t.Fatal("expected bounds")
	}
	if !box.Min.ApproxEqualThreshold(mgl64.Vec3{2, 0, 0}, eps) || !box.Max.ApproxEqualThreshold(mgl64.Vec3{3, 1, 0}, eps) {
		t.Errorf("bounds = %v..%v", box.Min, box.Max)
	}

	empty, _ := scene.Build([]assets.RawGroup{{}})
	if _, ok := GroupBounds(empty.Group(0)); ok {
		t.Error("empty group should have no bounds")
	}
}

func TestPickNearest(t *testing.T) {
	// Group 0 sits behind group 1 along the same line of sight.
	s, err := scene.Build([]assets.RawGroup{square(0, 0), square(0, 1), square(5, 0)})
	if err != nil {
		t.Fatal(err)
	}

	r := Ray{Origin: mgl64.Vec3{0.5, 0.5, 4}, Direction: mgl64.Vec3{0, 0, -1}}
	if idx, ok := Pick(s, r); !ok || idx != 1 {
		t.Errorf("Pick = %d, %v; want 1, true", idx, ok)
	}

	r = Ray{Origin: mgl64.Vec3{5.5, 0.5, 4}, Direction: mgl64.Vec3{0, 0, -1}}
	if idx, ok := Pick(s, r); !ok || idx != 2 {
		t.Errorf("Pick = %d, %v; want 2, true", idx, ok)
	}

	r = Ray{Origin: mgl64.Vec3{3, 0.5, 4}, Direction: mgl64.Vec3{0, 0, -1}}
	if idx, ok := Pick(s, r); ok {
		t.Errorf("Pick hit %d through empty space", idx)
	}
}
