package gpu

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMat4Narrowing(t *testing.T) {
	m := mgl64.Translate3D(1.5, -2, 0.25).Mul4(mgl64.Scale3D(2, 2, 2))
	got := Mat4(m)
	for i := range m {
		if float64(got[i]) != m[i] {
			t.Errorf("element %d: got %v, want %v", i, got[i], m[i])
		}
	}
}

func TestVec3Narrowing(t *testing.T) {
	if got := Vec3(mgl64.Vec3{2.3, 2.165, 1.405}); got[0] != float32(2.3) || got[1] != float32(2.165) || got[2] != float32(1.405) {
		t.Errorf("Vec3() = %v", got)
	}
}

func TestStageString(t *testing.T) {
	tests := map[Stage]string{
		VertexStage:   "vertex",
		FragmentStage: "fragment",
		Stage(9):      "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Stage(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
