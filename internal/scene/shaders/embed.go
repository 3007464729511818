// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader is the vertex shader for the lit morphing surface.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader implements the directional + point + spot light
// Phong model.
//
//go:embed phong.frag
var PhongFragmentShader string

// LampVertexShader is the vertex shader for light marker cubes.
//
//go:embed lamp.vert
var LampVertexShader string

// LampFragmentShader draws light markers in solid white.
//
//go:embed lamp.frag
var LampFragmentShader string
