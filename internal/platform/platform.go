package platform

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
}

// Window owns the native window and its OpenGL context. All methods must be
// called from the locked main OS thread that created it.
type Window interface {
	Show()
	Close()
	PollEvent() Event
	SwapBuffers()
	DrawableSize() (int, int)
}
