package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// CatmullRom evaluates the uniform Catmull-Rom segment between p1 and p2 at
// t in [0,1]. Tangents are (p2-p0)/2 and (p3-p1)/2.
func CatmullRom(p0, p1, p2, p3, t float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// PointOnSpline evaluates a spline through path at parameter t in
// [0, len(path)-1]. The first and last points are duplicated to supply the
// outer control points, so the curve passes through every waypoint.
func PointOnSpline(path []dmath.Vec2, t float64) dmath.Vec2 {
	n := len(path)
	switch n {
	case 0:
		return dmath.Vec2{}
	case 1:
		return path[0]
	}

	t = Clamp(t, 0, float64(n-1))
	if t >= float64(n-1) {
		return path[n-1]
	}
	i := int(math.Floor(t))
	local := t - float64(i)
	if local == 0 {
		return path[i]
	}

	p0 := path[clampIndex(i-1, n)]
	p1 := path[i]
	p2 := path[clampIndex(i+1, n)]
	p3 := path[clampIndex(i+2, n)]

	return dmath.Vec2{
		X: CatmullRom(p0.X, p1.X, p2.X, p3.X, local),
		Y: CatmullRom(p0.Y, p1.Y, p2.Y, p3.Y, local),
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
