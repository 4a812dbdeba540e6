package solar

import (
	"math"
	"testing"
	"time"
)

func TestTwinkleAlpha_Range(t *testing.T) {
	for ti := 0; ti < 200; ti++ {
		elapsed := float64(ti) * 0.173
		for pi := 0; pi < 64; pi++ {
			phase := float64(pi) / 64.0 * 2 * math.Pi
			alpha := TwinkleAlpha(elapsed, phase)
			if alpha < MinStarAlpha-1e-12 || alpha > MaxStarAlpha+1e-12 {
				t.Fatalf("TwinkleAlpha(%v, %v) = %v out of range", elapsed, phase, alpha)
			}
			want := 0.35 + 0.65*(0.5+0.5*math.Sin(2*elapsed+phase))
			if math.Abs(alpha-want) > 1e-12 {
				t.Fatalf("TwinkleAlpha(%v, %v) = %v, want %v", elapsed, phase, alpha, want)
			}
		}
	}
}

func TestTwinkleAlpha_Extremes(t *testing.T) {
	if got := TwinkleAlpha(0, math.Pi/2); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("peak = %v, want 1.0", got)
	}
	if got := TwinkleAlpha(0, -math.Pi/2); math.Abs(got-0.35) > 1e-12 {
		t.Errorf("trough = %v, want 0.35", got)
	}
}

func TestPointSize(t *testing.T) {
	tests := []struct {
		name  string
		size  float64
		dist  float64
		ratio float64
		want  float64
	}{
		{"center", 2.0, 0.0, 1.0, 9.0},
		{"edge", 2.0, 220.0, 1.0, 4.0},
		{"hidpi", 1.0, 110.0, 2.0, 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointSize(tt.size, tt.dist, 220.0, tt.ratio); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PointSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrameDelta(t *testing.T) {
	if got := FrameDelta(time.Second); math.Abs(got-60.0) > 1e-9 {
		t.Errorf("FrameDelta(1s) = %v, want 60", got)
	}
	if got := FrameDelta(0); got != 0 {
		t.Errorf("FrameDelta(0) = %v, want 0", got)
	}
}
