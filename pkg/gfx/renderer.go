package gfx

import "fmt"

// Renderer owns the pipeline and the triangle mesh for one context.
type Renderer struct {
	gl         GL
	pipeline   *Pipeline
	mesh       *Mesh
	clearColor [4]float32
	frames     int
}

// NewRenderer builds the pipeline and uploads the triangle. A shader build
// failure is returned as a *BuildError and leaves nothing allocated.
func NewRenderer(gl GL, conf RendererConfig) (*Renderer, error) {
	vertexSource, fragmentSource, err := conf.glslSources()
	if err != nil {
		return nil, err
	}

	builder := NewBuilder(gl)
	if conf.MaxLogLength > 0 {
		builder.MaxLogLength = conf.MaxLogLength
	}
	pipeline, err := builder.Build(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	return &Renderer{
		gl:         gl,
		pipeline:   pipeline,
		mesh:       NewMesh(gl, TriangleVertices),
		clearColor: conf.ClearColor,
	}, nil
}

func (r *Renderer) Pipeline() *Pipeline {
	return r.pipeline
}

// Render clears the surface and draws the triangle.
func (r *Renderer) Render() error {
	c := r.clearColor
	r.gl.ClearColor(c[0], c[1], c[2], c[3])
	r.gl.Clear(ColorBufferBit)

	if err := r.pipeline.Use(); err != nil {
		return err
	}
	r.mesh.Draw()

	r.frames++
	if r.frames == 1 {
		r.checkFirstFrame()
	}
	return nil
}

// checkFirstFrame reports the error flag left by the first frame. Later
// frames repeat the same calls, so one check is enough.
func (r *Renderer) checkFirstFrame() {
	if code := r.gl.GetError(); code != NoError {
		Logger().Debug("gl error after first frame", "code", fmt.Sprintf("%#x", code))
		return
	}
	Logger().Debug("first frame drawn without gl errors")
}

// Close releases the mesh and the program.
func (r *Renderer) Close() {
	if r.mesh != nil {
		r.mesh.Delete()
	}
	r.pipeline.Teardown()
}
