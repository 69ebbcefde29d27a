package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/sceneview/internal/assets"
)

func TestDefault(t *testing.T) {
	l := Default()
	if l.Position != (mgl64.Vec3{4.12, 3, 1.135}) {
		t.Errorf("position = %v", l.Position)
	}
	white := [3]float32{1, 1, 1}
	if l.Diffuse != white || l.Ambient != white || l.Specular != white {
		t.Errorf("expected white intensities, got %+v", l)
	}
}

func TestFromAssets(t *testing.T) {
	tests := []struct {
		name   string
		raw    []assets.RawLight
		wantOK bool
		want   PointLight
	}{
		{
			name:   "empty falls back",
			raw:    nil,
			wantOK: false,
			want:   Default(),
		},
		{
			name: "first entry wins",
			raw: []assets.RawLight{
				{X: -0.5, Y: 1.5, Z: -0.5, Ambient: [3]float32{1, 1, 1}, Diffuse: [3]float32{1, 1, 1}, Specular: [3]float32{1, 1, 1}},
				{X: 9, Y: 9, Z: 9},
			},
			wantOK: true,
			want: PointLight{
				Position: mgl64.Vec3{-0.5, 1.5, -0.5},
				Diffuse:  [3]float32{1, 1, 1},
				Ambient:  [3]float32{1, 1, 1},
				Specular: [3]float32{1, 1, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromAssets(tt.raw)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

