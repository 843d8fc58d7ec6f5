package brep

import "math"

// Box3 is a 3D axis-aligned bounding box.
type Box3 struct {
	Min Point3
	Max Point3
}

// EmptyBox3 returns the box that contains no points: folding points into it
// with [Box3.UnionPoint] yields their enclosing box.
func EmptyBox3() Box3 {
	return Box3{
		Min: Pt3(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: Pt3(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Box3FromPoints returns the smallest box enclosing all given points.
func Box3FromPoints(pts []Point3) Box3 {
	b := EmptyBox3()
	for _, pt := range pts {
		b = b.UnionPoint(pt)
	}
	return b
}

// UnionPoint computes the union with one point.
func (b Box3) UnionPoint(pt Point3) Box3 {
	return Box3{
		Min: Point3{
			X: min(b.Min.X, pt.X),
			Y: min(b.Min.Y, pt.Y),
			Z: min(b.Min.Z, pt.Z),
		},
		Max: Point3{
			X: max(b.Max.X, pt.X),
			Y: max(b.Max.Y, pt.Y),
			Z: max(b.Max.Z, pt.Z),
		},
	}
}

// Union returns the smallest box enclosing b and o.
func (b Box3) Union(o Box3) Box3 {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

func (b Box3) Center() Point3 {
	return b.Min.Midpoint(b.Max)
}

// Diagonal returns the vector from the box's minimum to its maximum corner.
// Its coordinates are the box's extents along each axis.
func (b Box3) Diagonal() Vec3 {
	return b.Max.Sub(b.Min)
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

func (b Box3) Contains(pt Point3) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}
