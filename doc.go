// Package brep provides the numerical robustness core of a
// boundary-representation solid-modeling kernel: locating parameters on
// parametric curves and adaptively tessellating them, and cleaning polygon
// meshes of degenerate and near-duplicate data.
//
// # Curves
//
// [Curve] describes parametrized curves by their value and first two
// derivatives. The package is generic over the curve's coordinate type, so
// the same algorithms serve planar parameter-space curves ([Vec2]) and
// spatial model curves ([Vec3]). The simplest curve is [Segment], a linear
// interpolation between two points.
//
// [Presearch] coarsely samples a curve to seed the Newton refinement in
// [SearchNearestParameter], which finds the parameter nearest a query point.
// [SearchParameter] additionally verifies that the query point lies on the
// curve. [ParameterDivision] approximates a curve by a polyline whose
// deviation stays within a caller-supplied tolerance.
//
// All tolerances are explicit parameters. [DefaultTolerance] is a suitable
// value for model-space coincidence checks.
//
// # Meshes
//
// [PolygonMesh] stores positions, uv coordinates, and normals as shared,
// indexed attribute arrays, with faces partitioned by arity into triangles,
// quadrangles, and general polygons. Three filters restore mesh hygiene:
//
//   - [PolygonMesh.WeldAttrs] gives attribute values that coincide within a
//     tolerance a common index.
//   - [PolygonMesh.RemoveDegenerateFaces] drops, collapses, or splits faces
//     whose corners share position indices.
//   - [PolygonMesh.RemoveUnusedAttrs] drops attribute entries no face
//     references and renumbers the rest.
//
// The filters act on one mesh value and are typically chained in that order;
// each is correct in isolation, but the order affects the result. All
// mutation, including by external collaborators, goes through the scoped
// [PolygonMesh.Edit] handle, which re-validates the mesh's index invariant
// when the edit ends.
package brep
