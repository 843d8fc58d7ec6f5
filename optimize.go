package brep

import (
	"fmt"
	"iter"
	"math"
)

// RemoveUnusedAttrs removes every position, uv coordinate, and normal that no
// face references, and renumbers face indices accordingly. Kept entries are
// ordered by first appearance in the face list. The three attribute kinds are
// compacted independently. The filter is idempotent.
//
// It returns the mesh for chaining.
func (m *PolygonMesh) RemoveUnusedAttrs() *PolygonMesh {
	m.Edit(func(ed MeshEditor) {
		keep := compactIndices(ed.Faces.posIndices(), len(*ed.Positions))
		*ed.Positions = gather(*ed.Positions, keep)
		keep = compactIndices(ed.Faces.uvIndices(), len(*ed.UVCoords))
		*ed.UVCoords = gather(*ed.UVCoords, keep)
		keep = compactIndices(ed.Faces.norIndices(), len(*ed.Normals))
		*ed.Normals = gather(*ed.Normals, keep)
	})
	return m
}

// compactIndices renumbers the indices in first-appearance order, rewriting
// them in place, and returns for each new index the old index it replaces.
func compactIndices(indices iter.Seq[*int], oldLen int) []int {
	var new2old []int
	old2new := make([]int, oldLen)
	for i := range old2new {
		old2new[i] = -1
	}
	for idx := range indices {
		k := old2new[*idx]
		if k < 0 {
			k = len(new2old)
			new2old = append(new2old, *idx)
			old2new[*idx] = k
		}
		*idx = k
	}
	return new2old
}

func gather[T any](attrs []T, idcs []int) []T {
	out := make([]T, len(idcs))
	for i, j := range idcs {
		out[i] = attrs[j]
	}
	return out
}

// RemoveDegenerateFaces removes faces that collapse to fewer effective
// corners than their declared arity. Degeneracy is judged by position-index
// equality, not by geometric coincidence: two distinct indices at identical
// coordinates do not count.
//
// Degenerate triangles are dropped. Quadrangles are dropped when opposite or
// both adjacent corner pairs coincide, and collapse to a triangle when one
// adjacent pair does. General polygons are split at repeated position
// indices into simple loops, resolving self-touching outlines; split pieces
// shorter than a triangle are dropped.
//
// The output groups faces by arity rather than preserving their original
// interleaving; the face collection is semantically unordered.
//
// It returns the mesh for chaining.
func (m *PolygonMesh) RemoveDegenerateFaces() *PolygonMesh {
	m.Edit(func(ed MeshEditor) {
		var faces Faces
		for _, tri := range ed.Faces.Triangles {
			if !degenerateTriangle(tri) {
				faces.Triangles = append(faces.Triangles, tri)
			}
		}
		for _, quad := range ed.Faces.Quads {
			switch kind, tri := classifyQuadrangle(quad); kind {
			case quadTotallyDegenerate:
			case quadTriangle:
				faces.Triangles = append(faces.Triangles, tri)
			case quadNonDegenerate:
				faces.Quads = append(faces.Quads, quad)
			}
		}
		for _, poly := range ed.Faces.Others {
			for _, simple := range splitIntoSimple(poly) {
				if len(simple) >= 3 {
					faces.Push(simple)
				}
			}
		}
		*ed.Faces = faces
	})
	return m
}

func degenerateTriangle(tri [3]Vertex) bool {
	return tri[0].Pos == tri[1].Pos || tri[1].Pos == tri[2].Pos || tri[2].Pos == tri[0].Pos
}

type quadrangleKind int

const (
	quadNonDegenerate quadrangleKind = iota
	quadTriangle
	quadTotallyDegenerate
)

func classifyQuadrangle(quad [4]Vertex) (quadrangleKind, [3]Vertex) {
	switch {
	case quad[0].Pos == quad[2].Pos || quad[1].Pos == quad[3].Pos,
		quad[0].Pos == quad[1].Pos && quad[2].Pos == quad[3].Pos,
		quad[1].Pos == quad[2].Pos && quad[3].Pos == quad[0].Pos:
		return quadTotallyDegenerate, [3]Vertex{}
	case quad[0].Pos == quad[1].Pos || quad[1].Pos == quad[2].Pos:
		return quadTriangle, [3]Vertex{quad[0], quad[2], quad[3]}
	case quad[2].Pos == quad[3].Pos || quad[3].Pos == quad[0].Pos:
		return quadTriangle, [3]Vertex{quad[0], quad[1], quad[2]}
	default:
		return quadNonDegenerate, [3]Vertex{}
	}
}

// splitIntoSimple splits a polygon at its first pair of vertices sharing a
// position index: the vertices between the pair form one loop, the cyclic
// remainder the other. Both are split again until no loop has a repeated
// position index.
func splitIntoSimple(poly []Vertex) [][]Vertex {
	for i := 0; i < len(poly); i++ {
		for j := i + 1; j < len(poly); j++ {
			if poly[i].Pos != poly[j].Pos {
				continue
			}
			inner := make([]Vertex, j-i)
			copy(inner, poly[i:j])
			outer := make([]Vertex, 0, len(poly)-(j-i))
			for k := j - i; k < len(poly); k++ {
				outer = append(outer, poly[(k+i)%len(poly)])
			}
			return append(splitIntoSimple(inner), splitIntoSimple(outer)...)
		}
	}
	return [][]Vertex{poly}
}

// WeldAttrs gives attribute values that coincide within tol a common index,
// kind by kind, by snapping each value to a width-2·tol grid cell and letting
// the first value in a cell represent every later one. Values within tol
// that straddle a cell boundary may keep distinct indices; that is an
// accepted limitation of uniform-grid quantization.
//
// Positions are compared after normalizing the mesh's scale: translated to
// the bounding-box center and divided per axis by half the box's extent
// (clamped to at least 1), so a fixed tolerance behaves consistently
// regardless of the mesh's physical size. UV coordinates and normals are
// compared on their raw values.
//
// Attribute entries that lose all references are not removed; run
// [PolygonMesh.RemoveUnusedAttrs] afterwards for that.
//
// tol must be positive; WeldAttrs panics otherwise. It returns the mesh for
// chaining.
func (m *PolygonMesh) WeldAttrs(tol float64) *PolygonMesh {
	if !(tol > 0) {
		panic(fmt.Sprintf("brep: WeldAttrs tolerance must be positive, got %g", tol))
	}
	m.Edit(func(ed MeshEditor) {
		box := Box3FromPoints(*ed.Positions)
		center := box.Center()
		diag := box.Diagonal()
		dx := max(math.Abs(diag.X), 1.0)
		dy := max(math.Abs(diag.Y), 1.0)
		dz := max(math.Abs(diag.Z), 1.0)
		normalized := make([]Vec3, len(*ed.Positions))
		for i, p := range *ed.Positions {
			normalized[i] = Vec3{
				X: 2.0 * (p.X - center.X) / dx,
				Y: 2.0 * (p.Y - center.Y) / dy,
				Z: 2.0 * (p.Z - center.Z) / dz,
			}
		}
		posMap := weldIndices(normalized, tol, cell3)
		for idx := range ed.Faces.posIndices() {
			*idx = posMap[*idx]
		}
		uvMap := weldIndices(*ed.UVCoords, tol, cell2)
		for idx := range ed.Faces.uvIndices() {
			*idx = uvMap[*idx]
		}
		norMap := weldIndices(*ed.Normals, tol, cell3)
		for idx := range ed.Faces.norIndices() {
			*idx = norMap[*idx]
		}
	})
	return m
}

// weldIndices maps every attribute index to its grid cell's representative:
// the index of the first attribute that landed in the cell.
func weldIndices[T any, K comparable](attrs []T, tol float64, cell func(T, float64) K) []int {
	remap := make([]int, len(attrs))
	reps := make(map[K]int, len(attrs))
	for i, attr := range attrs {
		k := cell(attr, tol)
		rep, ok := reps[k]
		if !ok {
			rep = i
			reps[k] = rep
		}
		remap[i] = rep
	}
	return remap
}

func cell3(v Vec3, tol float64) [3]int64 {
	return [3]int64{cellCoord(v.X, tol), cellCoord(v.Y, tol), cellCoord(v.Z, tol)}
}

func cell2(v Vec2, tol float64) [2]int64 {
	return [2]int64{cellCoord(v.X, tol), cellCoord(v.Y, tol)}
}

// cellCoord snaps a coordinate to its width-2·tol grid cell.
func cellCoord(x, tol float64) int64 {
	return int64((x + tol) / (2.0 * tol))
}
