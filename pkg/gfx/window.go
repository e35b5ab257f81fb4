package gfx

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/braticpetar/gloom/internal/platform"
)

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{PositionX: w.PositionX, PositionY: w.PositionY, Width: w.Width, Height: w.Height, Title: w.Title}
}

// Window pairs a platform window holding the GL context with the renderer
// that draws into it. Create and run it on the locked main OS thread.
type Window struct {
	platformWindow platform.Window
	renderer       Renderer
	refreshDelay   time.Duration
	width          int
	height         int
	ctx            context.Context
	cancel         context.CancelFunc
}

func NewWindow(conf WindowConfig, factory RendererFactory) (*Window, error) {
	if conf.Width <= 0 || conf.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d is not positive", conf.Width, conf.Height)
	}
	platformWindow, err := platform.NewWindow(conf.convert())
	if err != nil {
		return nil, err
	}
	window := &Window{
		platformWindow: platformWindow,
		refreshDelay:   time.Second / 60,
		width:          conf.Width,
		height:         conf.Height,
	}
	if factory != nil {
		window.renderer = factory(window)
	}
	window.ctx, window.cancel = context.WithCancel(context.Background())
	return window, nil
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// DrawableSize reports the framebuffer size in pixels, which differs from
// Size on high-dpi displays.
func (w *Window) DrawableSize() (int, int) {
	return w.platformWindow.DrawableSize()
}

func (w *Window) Show() {
	w.platformWindow.Show()
}

func (w *Window) RefreshRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	w.refreshDelay = time.Second / time.Duration(fps)
}

func (w *Window) Stop() {
	w.cancel()
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWindow.Close()
}

func (w *Window) SetRenderer(renderer Renderer) {
	if w.renderer != nil {
		w.renderer.Close()
	}
	w.renderer = renderer
}

// Run drains input through the strategy, renders one frame, swaps buffers
// and paces to the configured refresh rate until Stop is called.
func (w *Window) Run(handle func(Event), strategy EventsConsumerStrategy) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if strategy == nil {
		strategy = DrainAll()
	}
	poll := func() (Event, bool) {
		platformEvent := w.platformWindow.PollEvent()
		if _, empty := platformEvent.(platform.EmptyEvent); empty {
			return nil, false
		}
		return convert(platformEvent), true
	}

	frames := 0
	lastReport := time.Now()
	nextRender := time.Now()

	for {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		strategy.Consume(poll, handle)

		if w.renderer != nil {
			w.renderer.Render(w)
		}
		w.platformWindow.SwapBuffers()

		frames++
		now := time.Now()
		if now.Sub(lastReport) >= time.Second {
			log.Printf("%d fps", frames)
			frames = 0
			lastReport = now
		}

		nextRender = nextRender.Add(w.refreshDelay)
		if sleep := time.Until(nextRender); sleep > 0 {
			time.Sleep(sleep)
		} else {
			nextRender = now
		}
	}
}
