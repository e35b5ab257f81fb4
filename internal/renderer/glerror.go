package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}

func errorName(code uint32) string {
	if name, ok := glErrorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", code)
}

// clearErrors drains errors left by earlier calls so checkError only sees
// the operation under inspection.
func clearErrors() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// checkError drains the GL error queue and returns the first error tagged
// with the operation name, or nil when the queue was clean.
func checkError(op string) error {
	var first error
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return first
		}
		if first == nil {
			first = fmt.Errorf("gl error %s during %s", errorName(code), op)
		}
	}
}
