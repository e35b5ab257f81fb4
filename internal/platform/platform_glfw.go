//go:build !sdl

package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyEscape is the backend key code reported for the escape key.
const KeyEscape = uint64(glfw.KeyEscape)

type glfwWindow struct {
	window *glfw.Window
	queue  []Event
}

// NewWindow creates a hidden window with an OpenGL 4.1 core profile context
// and makes the context current on the calling thread.
func NewWindow(conf WindowConfig) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	window.SetPos(conf.PositionX, conf.PositionY)
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &glfwWindow{window: window}
	w.installCallbacks()
	return w, nil
}

func (w *glfwWindow) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		label := glfw.GetKeyName(key, scancode)
		switch action {
		case glfw.Press:
			w.push(KeyPress{Code: uint64(key), Label: label})
		case glfw.Release:
			w.push(KeyRelease{Code: uint64(key), Label: label})
		}
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.window.GetCursorPos()
		// 1-based button numbering, left button = 1
		b := uint32(button) + 1
		switch action {
		case glfw.Press:
			w.push(ButtonPress{Button: b, X: int(x), Y: int(y)})
		case glfw.Release:
			w.push(ButtonRelease{Button: b, X: int(x), Y: int(y)})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(MotionNotify{X: int(x), Y: int(y)})
	})
	w.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.push(EnterNotify{})
		} else {
			w.push(LeaveNotify{})
		}
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		x, y := w.window.GetCursorPos()
		w.push(MouseWheel{DeltaX: dx, DeltaY: dy, X: int(x), Y: int(y)})
	})
	w.window.SetRefreshCallback(func(_ *glfw.Window) {
		w.push(Expose{})
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.push(DestroyNotify{})
	})
}

func (w *glfwWindow) push(event Event) {
	w.queue = append(w.queue, event)
}

func (w *glfwWindow) Show() {
	w.window.Show()
}

func (w *glfwWindow) Close() {
	w.window.Destroy()
	glfw.Terminate()
}

// PollEvent pumps the native queue once it runs out of buffered events and
// returns EmptyEvent when nothing is pending.
func (w *glfwWindow) PollEvent() Event {
	if len(w.queue) == 0 {
		glfw.PollEvents()
	}
	if len(w.queue) == 0 {
		return EmptyEvent{}
	}
	event := w.queue[0]
	w.queue = w.queue[1:]
	return event
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) DrawableSize() (int, int) {
	return w.window.GetFramebufferSize()
}
