// This file contains the basic geometry types shared by the parser,
// normalizer and analyzers.
package field

import "math"

// Vec3 is an immutable 3-component vector in Unreal Units (UU).
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference of v and o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(float64(v.X)*float64(v.X) + float64(v.Y)*float64(v.Y) + float64(v.Z)*float64(v.Z))
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Distance2D returns the Euclidean distance between v and o ignoring Z.
func (v Vec3) Distance2D(o Vec3) float64 {
	dx := float64(v.X - o.X)
	dy := float64(v.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// KPH converts a UU/s speed value to kilometers per hour.
// 1 UU ≈ 1 cm (about 100 UU per meter), so UU/s * 0.01 gives m/s, and
// *3.6 gives km/h.
func KPH(uuPerSec float64) float64 {
	return uuPerSec * 0.01 * 3.6
}
