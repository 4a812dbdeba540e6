package schema

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#3b8eed", 0x3b8eed, false},
		{"0xff2200", 0xff2200, false},
		{"AAA9A9", 0xaaa9a9, false},
		{" #ffd6a6 ", 0xffd6a6, false},
		{"#fff", 0, true},
		{"#zzzzzz", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestColor_RGB(t *testing.T) {
	r, g, b := Color(0xff0080).RGB()
	if r != 1.0 || g != 0.0 || b != 128.0/255.0 {
		t.Errorf("RGB() = (%v, %v, %v)", r, g, b)
	}
}

func TestColor_JSON(t *testing.T) {
	data, err := json.Marshal(Planet{Name: "Earth", Radius: 6.6, Size: 0.36, Color: 0x3b8eed, Speed: 0.01})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"Earth","radius":6.6,"size":0.36,"color":"#3b8eed","speed":0.01}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestParsePlanets(t *testing.T) {
	data := []byte(`[
		{"name": "Jupiter", "radius": 12.5, "size": 0.9, "color": "#d8b48a", "speed": 0.004},
		{"name": "Saturn", "radius": 16, "size": 0.8, "color": "0xe3cf9a", "speed": 0.003, "angle": 1.5}
	]`)

	planets, err := ParsePlanets(data)
	if err != nil {
		t.Fatalf("ParsePlanets() error = %v", err)
	}
	if len(planets) != 2 {
		t.Fatalf("len = %d, want 2", len(planets))
	}
	if planets[0].Color != 0xd8b48a {
		t.Errorf("Jupiter color = %s", planets[0].Color.Hex())
	}
	if planets[1].Angle != 1.5 {
		t.Errorf("Saturn angle = %v, want 1.5", planets[1].Angle)
	}
}

func TestParsePlanets_Invalid(t *testing.T) {
	tests := map[string]string{
		"no name":   `[{"radius": 1, "size": 1, "color": "#ffffff", "speed": 0.1}]`,
		"negative":  `[{"name": "X", "radius": -1, "size": 1, "color": "#ffffff", "speed": 0.1}]`,
		"zero size": `[{"name": "X", "radius": 1, "size": 0, "color": "#ffffff", "speed": 0.1}]`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePlanets([]byte(data))
			if !errors.Is(err, ErrInvalidPlanet) {
				t.Errorf("error = %v, want ErrInvalidPlanet", err)
			}
		})
	}

	if _, err := ParsePlanets([]byte(`[{"name": "X", "color": "red"}]`)); err == nil {
		t.Error("expected decode error for bad color")
	}
}

func TestDefaultPlanets(t *testing.T) {
	for _, planet := range DefaultPlanets() {
		if err := planet.Validate(); err != nil {
			t.Errorf("%s: %v", planet.Name, err)
		}
	}
}
