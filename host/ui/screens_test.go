package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nobonobo/solar-top/solar"
)

func defaultSettings() Settings {
	return Settings{
		Scene:      solar.DefaultConfig(),
		ViewRadius: 12.0,
	}
}

func TestPrepareSolarSystem(t *testing.T) {
	data := &SolarData{}
	creator := &fakeImageCreator{}
	if err := prepareSolarSystem(data, defaultSettings(), creator); err != nil {
		t.Fatalf("prepareSolarSystem() error = %v", err)
	}
	if data.Host == nil || data.Builder == nil {
		t.Fatal("solar system not stored in data")
	}
	if data.Host.stars != data.Builder.Stars() {
		t.Error("builder and host disagree on the starfield")
	}
	if len(creator.images) != 1 {
		t.Errorf("uploads = %d, want 1", len(creator.images))
	}
}

func TestPrepareSolarSystem_Errors(t *testing.T) {
	failure := errors.New("no context")
	tests := []struct {
		name     string
		settings func() Settings
		creator  *fakeImageCreator
		want     error
	}{
		{
			name: "invalid scene",
			settings: func() Settings {
				settings := defaultSettings()
				settings.Scene.Starfield.Spread = 0
				return settings
			},
			creator: &fakeImageCreator{},
			want:    solar.ErrInvalidConfig,
		},
		{
			name:     "upload",
			settings: defaultSettings,
			creator:  &fakeImageCreator{err: failure},
			want:     failure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &SolarData{}
			err := prepareSolarSystem(data, tt.settings(), tt.creator)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if data.Host != nil || data.Builder != nil {
				t.Error("failed preparation left a partial scene")
			}
		})
	}
}

func TestSceneLoad_Finish(t *testing.T) {
	fetchFailure := errors.New("missing asset")
	tests := []struct {
		name      string
		settings  func() Settings
		fetchErr  error
		wantReady bool
		wantErr   error
	}{
		{name: "ready", settings: defaultSettings, wantReady: true},
		{name: "fetch failed", settings: defaultSettings, fetchErr: fetchFailure, wantErr: fetchFailure},
		{
			name: "invalid scene",
			settings: func() Settings {
				settings := defaultSettings()
				settings.Scene.GlowSize = 0
				return settings
			},
			wantErr: solar.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load := sceneLoad{settings: tt.settings()}
			var ready *SolarData
			var failed error
			var data *SolarData
			if tt.fetchErr == nil {
				data = &SolarData{}
			}

			load.finish(data, tt.fetchErr, &fakeImageCreator{},
				func(d *SolarData) { ready = d },
				func(err error) { failed = err },
			)

			if tt.wantReady {
				if ready == nil || ready.Builder == nil || failed != nil {
					t.Fatalf("ready = %v, failed = %v", ready, failed)
				}
				return
			}
			if ready != nil {
				t.Error("onReady called on failure")
			}
			if !errors.Is(failed, tt.wantErr) {
				t.Errorf("failed = %v, want %v", failed, tt.wantErr)
			}
		})
	}
}

func TestErrorScreen_FormatError(t *testing.T) {
	var screen errorScreenComponent
	message := screen.formatError(fmt.Errorf("wrapped: %w", solar.ErrInvalidConfig))
	if !strings.Contains(message, "SOLAR_") {
		t.Errorf("message lacks configuration hint: %q", message)
	}
	if strings.Contains(screen.formatError(errors.New("boom")), "SOLAR_") {
		t.Error("configuration hint shown for unrelated error")
	}
	if !strings.Contains(screen.formatError(nil), "unknown error") {
		t.Error("nil error not reported as unknown")
	}
}
