package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/braticpetar/gloom/internal/renderer"
	"github.com/braticpetar/gloom/internal/shader"
	"github.com/braticpetar/gloom/pkg/gfx"
)

func init() {
	// window and GL calls must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	conf := gfx.WindowConfig{}

	flag.StringVar(&conf.Title, "window-title", "OpenGL Window", "Window title")
	flag.IntVar(&conf.Width, "window-width", 640, "Window width")
	flag.IntVar(&conf.Height, "window-height", 480, "Window height")
	shaderDir := flag.String("shader-dir", "shaders", "Directory with vert.glsl and frag.glsl; empty uses the built-in pair")
	flag.Parse()

	vert, frag := shader.DefaultVertex, shader.DefaultFragment
	if *shaderDir != "" {
		loadedVert, loadedFrag, err := shader.LoadPair(*shaderDir)
		if err != nil {
			log.Println(err, "- using built-in shaders")
		} else {
			vert, frag = loadedVert, loadedFrag
		}
	}

	factory := renderer.NewFactory(renderer.Config{
		VertexSource:   vert,
		FragmentSource: frag,
	}, gfx.Quad())

	window, err := gfx.NewWindow(conf, factory)
	if err != nil {
		log.Fatalln(err)
	}
	defer window.Close()

	window.Show()
	window.Run(func(event gfx.Event) {
		handleEvent(event, window)
	}, gfx.DrainAll())

	fmt.Println("Program closed")
}

func handleEvent(event gfx.Event, window *gfx.Window) {
	switch e := event.(type) {
	case gfx.KeyPress:
		if e.Code == gfx.KeyEscape {
			fmt.Println("Goodbye!")
			window.Stop()
		}
	case gfx.DestroyNotify:
		fmt.Println("Goodbye!")
		window.Stop()
	}
}
