// Package camera positions the viewpoint: a static overview of the whole
// system, or a smoothed follow of one planet.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/olivierh59500/solar/internal/draw"
	"github.com/olivierh59500/solar/internal/randfield"
	"github.com/olivierh59500/solar/internal/universe"
)

// FollowSpeed is the smoothing divisor of follow mode. It must be above 1;
// larger values converge more slowly.
const FollowSpeed = 10.0

// NoFocus means overview mode.
const NoFocus = -1

// minRadius keeps orbit control from collapsing the eye onto the target.
const minRadius = 1.0

// Camera is the viewpoint. Up is -y, so smaller y is higher on screen.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3

	// Focus is NoFocus or an index into the planet collection.
	Focus int
}

// New returns a camera in overview mode at the origin.
func New() *Camera {
	return &Camera{
		Up:    mgl64.Vec3{0, -1, 0},
		Focus: NoFocus,
	}
}

// OverviewEye is the overview position for an entropy value.
func OverviewEye(entropy float64) mgl64.Vec3 {
	return mgl64.Vec3{0, -400 * entropy, 1500 * entropy}
}

// Reset drops any focus and returns to the overview, looking at center.
func (c *Camera) Reset(entropy float64, center mgl64.Vec3) {
	c.Focus = NoFocus
	c.Eye = OverviewEye(entropy)
	c.Target = center
}

// Following reports whether a planet is focused.
func (c *Camera) Following() bool {
	return c.Focus != NoFocus
}

// FocusRandom focuses a uniformly chosen planet out of n. With no planets
// it does nothing and reports false.
func (c *Camera) FocusRandom(n int, field *randfield.Field) bool {
	if n <= 0 {
		return false
	}
	c.Focus = field.Intn(n)
	return true
}

// FollowTarget is where follow mode converges for planet p: above and
// behind it by its diameter times distance, plus offset.
func FollowTarget(p *universe.Planet, distance, offset float64) mgl64.Vec3 {
	back := p.Diameter*distance + offset
	return mgl64.Vec3{
		p.Position[0],
		p.Position[1] - back,
		p.Position[2] + back,
	}
}

// Follow moves the eye 1/FollowSpeed of the way to the follow target and
// aims exactly at the planet.
func (c *Camera) Follow(p *universe.Planet, distance, offset float64) {
	goal := FollowTarget(p, distance, offset)
	c.Eye = c.Eye.Add(goal.Sub(c.Eye).Mul(1 / FollowSpeed))
	c.Target = p.Position
}

// Orbit rotates the eye around the target by yaw and pitch radians. Pitch
// stops just short of the poles.
func (c *Camera) Orbit(yaw, pitch float64) {
	offset := c.Eye.Sub(c.Target)
	r := offset.Len()
	if r == 0 {
		return
	}
	theta := math.Atan2(offset[0], offset[2]) + yaw
	phi := math.Acos(mgl64.Clamp(offset[1]/r, -1, 1)) + pitch
	phi = mgl64.Clamp(phi, 0.01, math.Pi-0.01)

	c.Eye = c.Target.Add(mgl64.Vec3{
		r * math.Sin(phi) * math.Sin(theta),
		r * math.Cos(phi),
		r * math.Sin(phi) * math.Cos(theta),
	})
}

// Dolly scales the eye's distance to the target by factor.
func (c *Camera) Dolly(factor float64) {
	offset := c.Eye.Sub(c.Target)
	r := offset.Len()
	if r == 0 || factor <= 0 {
		return
	}
	scaled := math.Max(r*factor, minRadius)
	c.Eye = c.Target.Add(offset.Mul(scaled / r))
}

// Snapshot captures the camera for one frame of directives.
func (c *Camera) Snapshot(g *universe.GlobalSettings) draw.View {
	return draw.View{
		Eye:    c.Eye,
		Target: c.Target,
		Up:     c.Up,
		FOV:    g.FOV,
		Near:   g.NearPlane,
		Far:    g.FarPlane,
	}
}
