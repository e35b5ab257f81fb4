package gfx

import "github.com/go-gl/mathgl/mgl32"

// VertexStride is the byte distance between consecutive vertices in the
// interleaved layout: vec3 position followed by vec3 color.
const VertexStride = 6 * 4

type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Quad returns the unit quad centered on the origin, built from two
// counter-clockwise triangles over four shared vertices.
func Quad() Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-0.5, -0.5, 0}, Color: mgl32.Vec3{1, 0, 0}}, // bottom left
			{Position: mgl32.Vec3{0.5, -0.5, 0}, Color: mgl32.Vec3{0, 1, 0}},  // bottom right
			{Position: mgl32.Vec3{-0.5, 0.5, 0}, Color: mgl32.Vec3{0, 0, 1}},  // top left
			{Position: mgl32.Vec3{0.5, 0.5, 0}, Color: mgl32.Vec3{0, 1, 0}},   // top right
		},
		Indices: []uint32{2, 0, 1, 3, 2, 1},
	}
}

// Interleave flattens the vertices into the x,y,z,r,g,b stream the vertex
// buffer expects.
func (m Mesh) Interleave() []float32 {
	data := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		data = append(data,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Color.X(), v.Color.Y(), v.Color.Z(),
		)
	}
	return data
}
