// Package frame publishes the per-frame parameters read by the sway and
// shading stages.
package frame

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meadow/pkg/math"
)

// Params is the parameter set for one frame. It is written once per frame by
// the Updater and read by every vertex and fragment evaluation.
type Params struct {
	Time           float32   // animation time in seconds
	LightDirection math.Vec3 // unit vector, direction the light travels
	SkyIntensity   float32
	SkyColor       math.Vec3
	GroundColor    math.Vec3
}

// DefaultLightDirection is used until a rig supplies a usable direction.
var DefaultLightDirection = math.Vec3{X: 0, Y: -1, Z: 0}

// Clock is a monotonic time source in seconds since an arbitrary epoch.
type Clock interface {
	Seconds() float64
}

// Rig supplies the light and sky values owned by the host scene.
type Rig interface {
	LightDirection() math.Vec3
	SkyIntensity() float32
	SkyColor() math.Vec3
	GroundColor() math.Vec3
}

// SystemClock measures wall time since its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Seconds implements Clock.
func (c *SystemClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}

// Updater reads the clock and rig once per frame and publishes a sanitized
// Params. Update must be called from a single goroutine; Current is safe
// from any goroutine.
type Updater struct {
	clock     Clock
	rig       Rig
	timeScale float32
	log       *zap.Logger

	current atomic.Pointer[Params]
}

// Option configures an Updater.
type Option func(*Updater)

// WithTimeScale multiplies clock seconds into animation time.
func WithTimeScale(scale float32) Option {
	return func(u *Updater) { u.timeScale = scale }
}

// WithLogger sets the logger for sanitizing warnings.
func WithLogger(log *zap.Logger) Option {
	return func(u *Updater) { u.log = log }
}

// NewUpdater creates an Updater. The initial Params hold zero time and the
// default light direction.
func NewUpdater(clock Clock, rig Rig, opts ...Option) *Updater {
	u := &Updater{
		clock:     clock,
		rig:       rig,
		timeScale: 1,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.current.Store(&Params{LightDirection: DefaultLightDirection})
	return u
}

// Update samples the clock and rig, publishes the result and returns it.
// Bad input never fails the frame: the last good value is kept instead.
func (u *Updater) Update() Params {
	last := u.Current()

	next := Params{
		Time:           float32(u.clock.Seconds()) * u.timeScale,
		LightDirection: u.rig.LightDirection(),
		SkyIntensity:   u.rig.SkyIntensity(),
		SkyColor:       u.rig.SkyColor(),
		GroundColor:    u.rig.GroundColor(),
	}
	next = u.sanitize(next, last)

	u.current.Store(&next)
	return next
}

// Current returns the most recently published Params.
func (u *Updater) Current() Params {
	return *u.current.Load()
}

func (u *Updater) sanitize(next, last Params) Params {
	if !math.IsFinite(next.Time) {
		u.log.Warn("non-finite frame time, keeping previous", zap.Float32("previous", last.Time))
		next.Time = last.Time
	}

	dir, ok := NormalizeDirection(next.LightDirection)
	if !ok {
		raw := next.LightDirection.Array()
		u.log.Warn("unusable light direction, keeping previous", zap.Float32s("direction", raw[:]))
		dir = last.LightDirection
	}
	next.LightDirection = dir

	if !math.IsFinite(next.SkyIntensity) || next.SkyIntensity < 0 {
		next.SkyIntensity = last.SkyIntensity
	}
	if !next.SkyColor.IsFinite() {
		next.SkyColor = last.SkyColor
	}
	if !next.GroundColor.IsFinite() {
		next.GroundColor = last.GroundColor
	}
	return next
}

// NormalizeDirection returns d scaled to unit length. ok is false when d is
// zero or not finite.
func NormalizeDirection(d math.Vec3) (math.Vec3, bool) {
	if !d.IsFinite() {
		return math.Vec3{}, false
	}
	n := d.Normalize()
	if n == (math.Vec3{}) || !n.IsFinite() {
		return math.Vec3{}, false
	}
	return n, true
}
