// Package shader loads GLSL sources for the fixed vertex/fragment pair and
// carries built-in fallbacks so the demo runs without any files on disk.
package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const DefaultVertex = `#version 410 core

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 vertexColors;

out vec3 v_vertexColors;

void main()
{
	v_vertexColors = vertexColors;
	gl_Position = vec4(position.x, position.y, position.z, 1.0f);
}
`

const DefaultFragment = `#version 410 core

in vec3 v_vertexColors;

out vec4 color;

void main()
{
	color = vec4(v_vertexColors.r, v_vertexColors.g, v_vertexColors.b, 1.0f);
}
`

// LoadSource reads a GLSL file and guarantees the source ends in a newline.
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %s: %w", path, err)
	}
	source := string(data)
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}
	return source, nil
}

// LoadPair reads vert.glsl and frag.glsl from dir.
func LoadPair(dir string) (string, string, error) {
	vert, err := LoadSource(filepath.Join(dir, "vert.glsl"))
	if err != nil {
		return "", "", err
	}
	frag, err := LoadSource(filepath.Join(dir, "frag.glsl"))
	if err != nil {
		return "", "", err
	}
	return vert, frag, nil
}
