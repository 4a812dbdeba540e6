package solar

import (
	"strings"
	"testing"
)

func TestTwinkleShader_Contract(t *testing.T) {
	for _, name := range []string{UniformTime, UniformPixelRatio, UniformSpread, AttributePhase, AttributeSize} {
		if !strings.Contains(TwinkleShader.Vertex, name) {
			t.Errorf("vertex stage does not reference %s", name)
		}
	}
	if !strings.Contains(TwinkleShader.Fragment, "vAlpha") {
		t.Error("fragment stage does not consume vAlpha")
	}
	if TwinkleShader.Version < 1 {
		t.Errorf("Version = %d", TwinkleShader.Version)
	}
}
