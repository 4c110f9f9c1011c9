// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// GrassVertexShader applies wind sway to the static blade mesh.
//
//go:embed grass.vert
var GrassVertexShader string

// GrassFragmentShader shades blades by height gradient, face side and sky.
//
//go:embed grass.frag
var GrassFragmentShader string
