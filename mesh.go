package brep

import (
	"fmt"
	"iter"
)

// Vertex is one corner of a face: an index into the mesh's positions, and
// optional indices into its uv coordinates and normals. UV and Nor are -1
// when the vertex carries no such attribute.
type Vertex struct {
	Pos int
	UV  int
	Nor int
}

// PosVertex returns a vertex referencing only a position.
func PosVertex(pos int) Vertex {
	return Vertex{Pos: pos, UV: -1, Nor: -1}
}

// Faces is a collection of polygons, partitioned by arity into triangles,
// quadrangles, and general polygons. The collection is semantically
// unordered.
type Faces struct {
	Triangles [][3]Vertex
	Quads     [][4]Vertex
	Others    [][]Vertex
}

// FacesFromPositions builds faces whose vertices reference only positions.
func FacesFromPositions(polys ...[]int) Faces {
	var f Faces
	for _, poly := range polys {
		face := make([]Vertex, len(poly))
		for i, pos := range poly {
			face[i] = PosVertex(pos)
		}
		f.Push(face)
	}
	return f
}

// Push adds a face, dispatching on its arity. The face must have at least 3
// vertices; Push panics otherwise.
func (f *Faces) Push(face []Vertex) {
	switch len(face) {
	case 0, 1, 2:
		panic(fmt.Sprintf("brep: a face needs at least 3 vertices, got %d", len(face)))
	case 3:
		f.Triangles = append(f.Triangles, [3]Vertex(face))
	case 4:
		f.Quads = append(f.Quads, [4]Vertex(face))
	default:
		f.Others = append(f.Others, face)
	}
}

// Len returns the number of faces.
func (f Faces) Len() int {
	return len(f.Triangles) + len(f.Quads) + len(f.Others)
}

// All yields every face as a vertex slice. The yielded slices alias the
// collection's storage.
func (f Faces) All() iter.Seq[[]Vertex] {
	return func(yield func([]Vertex) bool) {
		for i := range f.Triangles {
			if !yield(f.Triangles[i][:]) {
				return
			}
		}
		for i := range f.Quads {
			if !yield(f.Quads[i][:]) {
				return
			}
		}
		for i := range f.Others {
			if !yield(f.Others[i]) {
				return
			}
		}
	}
}

// vertices yields a pointer to every vertex of every face.
func (f *Faces) vertices() iter.Seq[*Vertex] {
	return func(yield func(*Vertex) bool) {
		for face := range f.All() {
			for i := range face {
				if !yield(&face[i]) {
					return
				}
			}
		}
	}
}

// posIndices yields a pointer to every position index of every face.
func (f *Faces) posIndices() iter.Seq[*int] {
	return func(yield func(*int) bool) {
		for v := range f.vertices() {
			if !yield(&v.Pos) {
				return
			}
		}
	}
}

// uvIndices yields a pointer to every present uv index of every face.
func (f *Faces) uvIndices() iter.Seq[*int] {
	return func(yield func(*int) bool) {
		for v := range f.vertices() {
			if v.UV >= 0 && !yield(&v.UV) {
				return
			}
		}
	}
}

// norIndices yields a pointer to every present normal index of every face.
func (f *Faces) norIndices() iter.Seq[*int] {
	return func(yield func(*int) bool) {
		for v := range f.vertices() {
			if v.Nor >= 0 && !yield(&v.Nor) {
				return
			}
		}
	}
}

// PolygonMesh is a polygon mesh with shared, indexed attribute arrays. Every
// face index must stay below the length of the attribute array it refers to;
// the mesh validates this invariant at construction and after every [Edit].
//
// The mesh exclusively owns its attribute arrays and face list. Values
// returned by the read accessors alias that storage and must not be mutated;
// all mutation goes through [PolygonMesh.Edit].
type PolygonMesh struct {
	positions []Point3
	uvCoords  []Vec2
	normals   []Vec3
	faces     Faces
}

// NewPolygonMesh returns a mesh over the given attribute arrays and faces.
// Any attribute array may be nil if no face references it. Out-of-range face
// indices are a programming error: NewPolygonMesh panics on them.
func NewPolygonMesh(positions []Point3, uvCoords []Vec2, normals []Vec3, faces Faces) *PolygonMesh {
	m := &PolygonMesh{
		positions: positions,
		uvCoords:  uvCoords,
		normals:   normals,
		faces:     faces,
	}
	m.mustBeValid()
	return m
}

func (m *PolygonMesh) Positions() []Point3 { return m.positions }
func (m *PolygonMesh) UVCoords() []Vec2    { return m.uvCoords }
func (m *PolygonMesh) Normals() []Vec3     { return m.normals }
func (m *PolygonMesh) Faces() Faces        { return m.faces }

// MeshEditor is the scoped edit handle yielded by [PolygonMesh.Edit]. It
// grants combined mutable access to the attribute arrays and the face list,
// so edits can hold cross-field invariants for their whole duration.
type MeshEditor struct {
	Positions *[]Point3
	UVCoords  *[]Vec2
	Normals   *[]Vec3
	Faces     *Faces
}

// Edit calls f with exclusive mutable access to the whole mesh. No reader
// observes the mesh mid-edit. When f returns, the mesh re-validates its
// index invariant and panics if the edit broke it.
//
// Concurrent use of one mesh is unsupported; independent meshes may be
// edited in parallel.
func (m *PolygonMesh) Edit(f func(ed MeshEditor)) {
	f(MeshEditor{
		Positions: &m.positions,
		UVCoords:  &m.uvCoords,
		Normals:   &m.normals,
		Faces:     &m.faces,
	})
	m.mustBeValid()
}

func (m *PolygonMesh) mustBeValid() {
	for v := range m.faces.vertices() {
		if v.Pos < 0 || v.Pos >= len(m.positions) {
			panic(fmt.Sprintf("brep: face vertex references position %d of %d", v.Pos, len(m.positions)))
		}
		if v.UV >= len(m.uvCoords) {
			panic(fmt.Sprintf("brep: face vertex references uv coordinate %d of %d", v.UV, len(m.uvCoords)))
		}
		if v.Nor >= len(m.normals) {
			panic(fmt.Sprintf("brep: face vertex references normal %d of %d", v.Nor, len(m.normals)))
		}
	}
}
