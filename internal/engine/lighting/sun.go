// Package lighting provides the directional sun and hemispheric sky fill that
// drive grass shading.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/meadow/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a unit vector
// pointing towards the sun. Longitude rotates around Y, latitude is elevation
// from the horizon.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := float64(longitude) * gomath.Pi / 180.0
	latRad := float64(latitude) * gomath.Pi / 180.0

	// Spherical to Cartesian conversion
	x := float32(gomath.Cos(latRad) * gomath.Sin(lonRad))
	y := float32(gomath.Sin(latRad))
	z := float32(gomath.Cos(latRad) * gomath.Cos(lonRad))

	return math.Vec3{X: x, Y: y, Z: z}
}

// DirectionalLight is a light at infinity.
type DirectionalLight struct {
	Direction math.Vec3 // direction the light travels, not towards the source
	Intensity float32
}

// FromSunAngles builds a directional light shining from the sun position.
func FromSunAngles(longitude, latitude, intensity float32) DirectionalLight {
	return DirectionalLight{
		Direction: SunDirection(longitude, latitude).Negate(),
		Intensity: intensity,
	}
}

// HemisphericLight is an ambient fill blending ground color below into sky
// color above.
type HemisphericLight struct {
	Intensity   float32
	SkyColor    math.Vec3
	GroundColor math.Vec3
}
