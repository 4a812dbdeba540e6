package solar

// StarShader is a GLSL program pair for the starfield point primitive.
//
// Attributes: position (vec3), aPhase (float), aSize (float).
// Uniforms: uTime (seconds), uPixelRatio (device pixel ratio),
// uSpread (starfield radius).
//
// The sources omit the declarations that three.js ShaderMaterial
// injects (position, modelViewMatrix, projectionMatrix).
type StarShader struct {
	Version  int
	Vertex   string
	Fragment string
}

const (
	UniformTime       = "uTime"
	UniformPixelRatio = "uPixelRatio"
	UniformSpread     = "uSpread"

	AttributePosition = "position"
	AttributePhase    = "aPhase"
	AttributeSize     = "aSize"
)

const starVertexShaderV1 = `
attribute float aPhase;
attribute float aSize;
uniform float uTime;
uniform float uPixelRatio;
uniform float uSpread;
varying float vAlpha;
void main() {
	vec3 pos = position;
	float dist = length(pos.xz);
	float tw = 0.5 + 0.5 * sin(uTime * 2.0 + aPhase);
	vAlpha = 0.35 + 0.65 * tw;
	gl_PointSize = (aSize * (2.0 + (1.0 - dist / uSpread) * 2.5)) * uPixelRatio;
	vec4 mvPosition = modelViewMatrix * vec4(pos, 1.0);
	gl_Position = projectionMatrix * mvPosition;
}
`

const starFragmentShaderV1 = `
varying float vAlpha;
void main() {
	float r = length(gl_PointCoord - vec2(0.5));
	float alpha = smoothstep(0.5, 0.0, r) * vAlpha;
	gl_FragColor = vec4(1.0, 1.0, 1.0, alpha);
}
`

// TwinkleShader is the current starfield program. The vertex stage must
// stay in sync with TwinkleAlpha and PointSize.
var TwinkleShader = StarShader{
	Version:  1,
	Vertex:   starVertexShaderV1,
	Fragment: starFragmentShaderV1,
}
