// Package models provides textured triangle meshes for the scanline demos:
// a glTF/GLB loader, a procedural cube, and an orthographic projection onto
// a render.Canvas.
package models

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/taigrr/scanline/pkg/render"
)

// Vertex is a mesh corner with its texture coordinate. V grows downward,
// matching image rows and render.Canvas.Sample.
type Vertex struct {
	Pos  mgl64.Vec3
	U, V float64
}

// Face is a triangle given as indices into Mesh.Vertices. Front faces wind
// counter-clockwise when seen from outside.
type Face [3]int

// Mesh is a textured triangle mesh.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face

	// Texture is the base colour map, or nil if the mesh has none.
	Texture *render.Canvas

	// Bounding box (calculated on load)
	BoundsMin mgl64.Vec3
	BoundsMax mgl64.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = mgl64.Vec3{}, mgl64.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0].Pos
	m.BoundsMax = m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		for i := range 3 {
			m.BoundsMin[i] = math.Min(m.BoundsMin[i], v.Pos[i])
			m.BoundsMax[i] = math.Max(m.BoundsMax[i], v.Pos[i])
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() mgl64.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Mul(0.5)
}

// Radius returns the distance from Center to the farthest vertex.
func (m *Mesh) Radius() float64 {
	c := m.Center()
	var r float64
	for _, v := range m.Vertices {
		r = math.Max(r, v.Pos.Sub(c).Len())
	}
	return r
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}
