package viz

import (
	"math"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

// Camera projects world-space points onto the canvas with a fixed-target
// perspective projection. World coordinates are pre-scaled by Scale so the
// scenario of interest fits a unit-ish cube regardless of whether it spans
// meters or astronomical units.
type Camera struct {
	RotX, RotY, RotZ float64
	Zoom             float64
	Distance         float64
	Scale            float64
}

func NewCamera(scale float64) *Camera {
	if scale <= 0 {
		scale = 1
	}
	return &Camera{Zoom: 1.0, Distance: 5.0, Scale: scale}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(50, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.02, c.Zoom/1.2) }

func (c *Camera) rotate(p vec.Vec3) vec.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a world point to sub-pixel canvas coordinates. The bool
// reports whether the point lands inside the canvas; depth is returned
// for painter's ordering.
func (c *Camera) Project(p vec.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p.Scale(c.Scale)).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := math.Min(float64(sw), float64(sh))
	pixels := minDim / 3.0
	sx := int(rot.X*persp*pixels) + sw/2
	sy := int(-rot.Y*persp*pixels) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}
