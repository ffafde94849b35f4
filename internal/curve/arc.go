package curve

import (
	"math"

	"github.com/tomz197/bitmappers/internal/raster"
)

// Arc returns the elliptical arc inscribed in the parallelogram with corner k
// that runs from p to q, tangent to kp at p and to kq at q. The arc is traced
// by an incremental rotation with step t radians, so smaller t gives more
// points. t must lie in (0, 1]; otherwise Arc returns nil.
func Arc(p, q, k raster.Point, t float64) []raster.Point {
	if t <= 0 || t > 1 {
		return nil
	}

	vx, vy := float64(k.X-q.X), float64(k.Y-q.Y)
	ux, uy := float64(k.X-p.X), float64(k.Y-p.Y)
	// Center of the ellipse, biased by half a pixel for flooring.
	jx, jy := float64(p.X)-vx+0.5, float64(p.Y)-vy+0.5

	// Stagger u by half a step so the rotation stays on the ellipse.
	s := math.Sqrt(1 - t*t*0.25)
	ux, uy = ux*s-vx*t*0.5, uy*s-vy*t*0.5

	n := int(math.Floor(math.Pi / 2 / t))
	pts := make([]raster.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, raster.Pt(int(math.Floor(vx+jx)), int(math.Floor(vy+jy))))
		ux -= vx * t
		vx += ux * t
		uy -= vy * t
		vy += uy * t
	}
	return pts
}
