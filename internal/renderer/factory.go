package renderer

import "github.com/braticpetar/gloom/pkg/gfx"

func NewFactory(conf Config, mesh gfx.Mesh) gfx.RendererFactory {
	return func(w *gfx.Window) gfx.Renderer {
		return newRenderer(w, conf, mesh)
	}
}
