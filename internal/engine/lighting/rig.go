package lighting

import "github.com/Faultbox/meadow/pkg/math"

// Rig is the light setup of a grass scene. It satisfies frame.Rig.
type Rig struct {
	Sun DirectionalLight
	Sky HemisphericLight
}

// DefaultRig returns the reference setup: a low sun from the back left and a
// bluish earth bounce.
func DefaultRig() *Rig {
	return &Rig{
		Sun: DirectionalLight{
			Direction: math.Vec3{X: -0.6, Y: -1.0, Z: -0.2}.Normalize(),
			Intensity: 1.25,
		},
		Sky: HemisphericLight{
			Intensity:   0.5,
			SkyColor:    math.Vec3{X: 1, Y: 1, Z: 1},
			GroundColor: math.Vec3{X: 0.01, Y: 0.01, Z: 0.15},
		},
	}
}

// LightDirection returns the sun direction normalized.
func (r *Rig) LightDirection() math.Vec3 {
	return r.Sun.Direction.Normalize()
}

// SkyIntensity returns the sky fill intensity.
func (r *Rig) SkyIntensity() float32 {
	return r.Sky.Intensity
}

// SkyColor returns the upper hemisphere color.
func (r *Rig) SkyColor() math.Vec3 {
	return r.Sky.SkyColor
}

// GroundColor returns the lower hemisphere color.
func (r *Rig) GroundColor() math.Vec3 {
	return r.Sky.GroundColor
}
