// Package curve evaluates Bézier curves and parametric arcs as integer
// point sequences for the raster package.
package curve

import (
	"math"

	"github.com/tomz197/bitmappers/internal/raster"
)

// Bezier evaluates the Bézier curve with the given control polygon at t
// using de Casteljau's algorithm. It reports false for an empty polygon.
func Bezier(points []raster.Point, t float64) (raster.Point, bool) {
	if len(points) == 0 {
		return raster.Point{}, false
	}
	weights := make([]float64, len(points))
	for i := range weights {
		weights[i] = 1
	}
	return Rational(points, weights, t)
}

// Rational evaluates a rational Bézier curve at t. Every reduction level
// replaces consecutive points P1, P2 with weights w1, w2 by
//
//	(w1(1-t)P1 + w2·t·P2) / (w1(1-t) + w2·t)
//
// truncated to integers, and carries the denominator on as the weight of the
// new point. A pair whose denominator is zero or not finite contributes
// nothing: it yields P1 for t < 0.5 and P2 otherwise, with weight zero. So
// zero interior weights still give a curve from the first to the last
// control point along their chord.
//
// It reports false for an empty polygon, a weight count that differs from
// the point count, or a NaN t.
func Rational(points []raster.Point, weights []float64, t float64) (raster.Point, bool) {
	if len(points) == 0 || len(weights) != len(points) || math.IsNaN(t) {
		return raster.Point{}, false
	}

	pts := make([]raster.Point, len(points))
	copy(pts, points)
	w := make([]float64, len(weights))
	copy(w, weights)
	for n := len(pts); n > 1; n-- {
		for i := 0; i < n-1; i++ {
			p1, p2 := pts[i], pts[i+1]
			a, b := w[i]*(1-t), w[i+1]*t
			den := a + b
			if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
				if t >= 0.5 {
					pts[i] = p2
				}
				w[i] = 0
				continue
			}
			pts[i] = raster.Point{
				X: int((a*float64(p1.X) + b*float64(p2.X)) / den),
				Y: int((a*float64(p1.Y) + b*float64(p2.Y)) / den),
			}
			w[i] = den
		}
	}
	return pts[0], true
}

// Sample evaluates f at n+1 evenly spaced parameters from 0 to 1 and
// returns the points it accepted.
func Sample(n int, f func(t float64) (raster.Point, bool)) []raster.Point {
	if n < 1 {
		n = 1
	}
	out := make([]raster.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		if p, ok := f(float64(i) / float64(n)); ok {
			out = append(out, p)
		}
	}
	return out
}
