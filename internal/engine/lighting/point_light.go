// Package lighting provides the scene's point light.
package lighting

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/sceneview/internal/assets"
)

// DefaultPosition is where the fallback light sits.
var DefaultPosition = mgl64.Vec3{4.12, 3, 1.135}

// PointLight is a single point light with Phong intensities per channel.
type PointLight struct {
	Position mgl64.Vec3
	Diffuse  [3]float32
	Ambient  [3]float32
	Specular [3]float32
}

// Default returns the white light used when no light asset could be loaded.
func Default() PointLight {
	return PointLight{
		Position: DefaultPosition,
		Diffuse:  [3]float32{1, 1, 1},
		Ambient:  [3]float32{1, 1, 1},
		Specular: [3]float32{1, 1, 1},
	}
}

// FromAsset converts a light asset entry.
func FromAsset(raw assets.RawLight) PointLight {
	return PointLight{
		Position: mgl64.Vec3{float64(raw.X), float64(raw.Y), float64(raw.Z)},
		Diffuse:  raw.Diffuse,
		Ambient:  raw.Ambient,
		Specular: raw.Specular,
	}
}

// FromAssets picks the first light of the asset. Only one light is shaded.
// It reports false and returns Default when the list is empty.
func FromAssets(raw []assets.RawLight) (PointLight, bool) {
	if len(raw) == 0 {
		return Default(), false
	}
	return FromAsset(raw[0]), true
}

