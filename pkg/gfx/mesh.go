package gfx

const (
	floatsPerVertex = 6
	floatSize       = 4
	vertexStride    = floatsPerVertex * floatSize

	positionAttrib = 0
	colorAttrib    = 1
	colorOffset    = 3 * floatSize
)

// TriangleVertices holds position (xyz) and color (rgb) per vertex.
var TriangleVertices = []float32{
	// positions       // colors
	0.0, 0.5, 0.0, 0.0, 1.0, 0.0, // top, green
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom left, red
	0.5, -0.5, 0.0, 0.0, 0.0, 1.0, // bottom right, blue
}

// Mesh is a vertex array with one interleaved buffer, uploaded once.
type Mesh struct {
	gl    DrawAPI
	vao   uint32
	vbo   uint32
	count int32
}

// NewMesh uploads interleaved position/color vertices. The current bindings
// are left at zero on return.
func NewMesh(gl DrawAPI, vertices []float32) *Mesh {
	m := &Mesh{gl: gl, count: int32(len(vertices) / floatsPerVertex)}

	m.vao = gl.GenVertexArray()
	m.vbo = gl.GenBuffer()

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(ArrayBuffer, m.vbo)
	gl.BufferData(ArrayBuffer, vertices, StaticDraw)

	gl.VertexAttribPointer(positionAttrib, 3, Float, false, vertexStride, 0)
	gl.EnableVertexAttribArray(positionAttrib)
	gl.VertexAttribPointer(colorAttrib, 3, Float, false, vertexStride, colorOffset)
	gl.EnableVertexAttribArray(colorAttrib)

	gl.BindBuffer(ArrayBuffer, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *Mesh) Count() int32 {
	return m.count
}

// Draw issues one DrawArrays call for the whole mesh.
func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	m.gl.BindVertexArray(m.vao)
	m.gl.DrawArrays(Triangles, 0, m.count)
	m.gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	if m.vbo != 0 {
		m.gl.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		m.gl.DeleteVertexArray(m.vao)
		m.vao = 0
	}
}
