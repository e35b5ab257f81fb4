package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/braticpetar/gloom/pkg/gfx"
)

func TestNewRenderer_DefaultClearColor(t *testing.T) {
	r := newRenderer(nil, Config{}, gfx.Quad())
	if r.conf.ClearColor != defaultClearColor {
		t.Errorf("zero config should use the default clear color, got %v", r.conf.ClearColor)
	}
}

func TestNewRenderer_KeepsExplicitClearColor(t *testing.T) {
	want := mgl32.Vec4{1, 0, 0, 1}
	r := newRenderer(nil, Config{ClearColor: want}, gfx.Quad())
	if r.conf.ClearColor != want {
		t.Errorf("explicit clear color dropped: got %v", r.conf.ClearColor)
	}
}

func TestNewRenderer_IsLazy(t *testing.T) {
	// construction must not touch the GL context; init happens on first Render
	r := newRenderer(nil, Config{}, gfx.Quad())
	if r.initialized {
		t.Error("renderer should not be initialized before the first frame")
	}
	if r.program != 0 || r.vao != 0 {
		t.Error("no GL objects should exist before the first frame")
	}
}

func TestErrorName(t *testing.T) {
	if name := errorName(0x0502); name != "GL_INVALID_OPERATION" {
		t.Errorf("want GL_INVALID_OPERATION, got %s", name)
	}
	if name := errorName(0xbeef); name != "0xbeef" {
		t.Errorf("unknown codes should render as hex, got %s", name)
	}
}
