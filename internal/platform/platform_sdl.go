//go:build sdl && cgo

package platform

/*
#cgo pkg-config: sdl2
#include <SDL2/SDL.h>
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// KeyEscape is the backend key code reported for the escape key.
const KeyEscape = uint64(C.SDLK_ESCAPE)

type sdlWindow struct {
	window  *C.SDL_Window
	context C.SDL_GLContext
	title   string
	width   int
	height  int
}

// NewWindow creates a hidden SDL window with an OpenGL 4.1 core profile
// context and makes the context current on the calling thread.
func NewWindow(conf WindowConfig) (Window, error) {
	if C.SDL_Init(C.SDL_INIT_VIDEO) != 0 {
		return nil, fmt.Errorf("SDL_Init: %s", C.GoString(C.SDL_GetError()))
	}

	C.SDL_GL_SetAttribute(C.SDL_GL_CONTEXT_MAJOR_VERSION, 4)
	C.SDL_GL_SetAttribute(C.SDL_GL_CONTEXT_MINOR_VERSION, 1)
	C.SDL_GL_SetAttribute(C.SDL_GL_CONTEXT_PROFILE_MASK, C.SDL_GL_CONTEXT_PROFILE_CORE)
	C.SDL_GL_SetAttribute(C.SDL_GL_DOUBLEBUFFER, 1)
	C.SDL_GL_SetAttribute(C.SDL_GL_DEPTH_SIZE, 24)

	cTitle := C.CString(conf.Title)
	defer C.free(unsafe.Pointer(cTitle))

	window := C.SDL_CreateWindow(cTitle, C.int(conf.PositionX), C.int(conf.PositionY),
		C.int(conf.Width), C.int(conf.Height), C.SDL_WINDOW_OPENGL|C.SDL_WINDOW_HIDDEN)
	if window == nil {
		C.SDL_Quit()
		return nil, fmt.Errorf("SDL_CreateWindow: %s", C.GoString(C.SDL_GetError()))
	}

	context := C.SDL_GL_CreateContext(window)
	if context == nil {
		C.SDL_DestroyWindow(window)
		C.SDL_Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext: %s", C.GoString(C.SDL_GetError()))
	}
	C.SDL_GL_SetSwapInterval(1)

	return &sdlWindow{
		window:  window,
		context: context,
		title:   conf.Title,
		width:   conf.Width,
		height:  conf.Height,
	}, nil
}

func (w *sdlWindow) Show() {
	C.SDL_ShowWindow(w.window)
}

func (w *sdlWindow) Close() {
	C.SDL_GL_DeleteContext(w.context)
	C.SDL_DestroyWindow(w.window)
	C.SDL_Quit()
}

func (w *sdlWindow) PollEvent() Event {
	var e C.SDL_Event
	if C.SDL_PollEvent(&e) == 0 {
		return EmptyEvent{}
	}
	return convert(e)
}

func (w *sdlWindow) SwapBuffers() {
	C.SDL_GL_SwapWindow(w.window)
}

func (w *sdlWindow) DrawableSize() (int, int) {
	var width, height C.int
	C.SDL_GL_GetDrawableSize(w.window, &width, &height)
	return int(width), int(height)
}

func convert(event C.SDL_Event) Event {
	switch eventType := (*(*C.Uint32)(unsafe.Pointer(&event))); eventType {
	case C.SDL_QUIT:
		return DestroyNotify{}
	case C.SDL_KEYDOWN:
		keyEvent := (*C.SDL_KeyboardEvent)(unsafe.Pointer(&event))
		code := uint64(keyEvent.keysym.sym)
		label := C.GoString(C.SDL_GetKeyName(keyEvent.keysym.sym))
		return KeyPress{Code: code, Label: label}
	case C.SDL_KEYUP:
		keyEvent := (*C.SDL_KeyboardEvent)(unsafe.Pointer(&event))
		code := uint64(keyEvent.keysym.sym)
		label := C.GoString(C.SDL_GetKeyName(keyEvent.keysym.sym))
		return KeyRelease{Code: code, Label: label}
	case C.SDL_MOUSEBUTTONDOWN:
		mouseEvent := (*C.SDL_MouseButtonEvent)(unsafe.Pointer(&event))
		return ButtonPress{
			Button: uint32(mouseEvent.button),
			X:      int(mouseEvent.x),
			Y:      int(mouseEvent.y),
		}
	case C.SDL_MOUSEBUTTONUP:
		mouseEvent := (*C.SDL_MouseButtonEvent)(unsafe.Pointer(&event))
		return ButtonRelease{
			Button: uint32(mouseEvent.button),
			X:      int(mouseEvent.x),
			Y:      int(mouseEvent.y),
		}
	case C.SDL_MOUSEMOTION:
		mouseEvent := (*C.SDL_MouseMotionEvent)(unsafe.Pointer(&event))
		return MotionNotify{
			X: int(mouseEvent.x),
			Y: int(mouseEvent.y),
		}
	case C.SDL_MOUSEWHEEL:
		wheelEvent := (*C.SDL_MouseWheelEvent)(unsafe.Pointer(&event))
		dx := float64(wheelEvent.x)
		dy := float64(wheelEvent.y)
		if wheelEvent.direction == C.SDL_MOUSEWHEEL_FLIPPED {
			dx = -dx
			dy = -dy
		}
		var mx, my C.int
		C.SDL_GetMouseState(&mx, &my)
		return MouseWheel{
			DeltaX: dx,
			DeltaY: dy,
			X:      int(mx),
			Y:      int(my),
		}
	case C.SDL_WINDOWEVENT:
		windowEvent := (*C.SDL_WindowEvent)(unsafe.Pointer(&event))
		switch windowEvent.event {
		case C.SDL_WINDOWEVENT_EXPOSED:
			return Expose{}
		case C.SDL_WINDOWEVENT_ENTER:
			return EnterNotify{}
		case C.SDL_WINDOWEVENT_LEAVE:
			return LeaveNotify{}
		case C.SDL_WINDOWEVENT_CLOSE:
			return DestroyNotify{}
		}
		return UnexpectedEvent{}
	default:
		return UnexpectedEvent{}
	}
}
