package pixel

import (
	"errors"
	"math"
	"testing"
)

func TestNewValidatesComponentCount(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		vals  []float64
		want  Color
		isErr error
	}{
		{"RGB ok", ModeRGB, []float64{1, 2, 3}, RGB{1, 2, 3}, nil},
		{"RGB short", ModeRGB, []float64{1, 2}, nil, ErrInvalidColorComponents},
		{"RGBA ok", ModeRGBA, []float64{10, 20, 30, 0.5}, RGBA{10, 20, 30, 0.5}, nil},
		{"RGBA missing alpha", ModeRGBA, []float64{10, 20, 30}, nil, ErrInvalidColorComponents},
		{"RGBA alpha range", ModeRGBA, []float64{10, 20, 30, 2}, nil, ErrInvalidColorComponents},
		{"HSV ok", ModeHSV, []float64{120, 50, 50}, HSV{120, 50, 50}, nil},
		{"HSV hue range", ModeHSV, []float64{360, 50, 50}, nil, ErrInvalidColorComponents},
		{"Gray ok", ModeGray, []float64{42}, Gray{42}, nil},
		{"Gray extra", ModeGray, []float64{42, 1}, nil, ErrInvalidColorComponents},
		{"Channel range", ModeRGB, []float64{256, 0, 0}, nil, ErrInvalidColorComponents},
		{"Unknown mode", Mode(9), []float64{1}, nil, ErrUnsupportedMode},
		{"RGB NaN", ModeRGB, []float64{math.NaN(), 0, 0}, nil, ErrInvalidColorComponents},
		{"RGBA NaN alpha", ModeRGBA, []float64{1, 2, 3, math.NaN()}, nil, ErrInvalidColorComponents},
		{"HSV NaN", ModeHSV, []float64{120, math.NaN(), 50}, nil, ErrInvalidColorComponents},
		{"HSV Inf", ModeHSV, []float64{math.Inf(1), 50, 50}, nil, ErrInvalidColorComponents},
		{"Gray NaN", ModeGray, []float64{math.NaN()}, nil, ErrInvalidColorComponents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.mode, tt.vals...)
			if tt.isErr != nil {
				if !errors.Is(err, tt.isErr) {
					t.Fatalf("Expected error %v, got %v", tt.isErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want RGB
	}{
		{"RGB passthrough", RGB{1, 2, 3}, RGB{1, 2, 3}},
		{"RGBA drops alpha", RGBA{4, 5, 6, 0.1}, RGB{4, 5, 6}},
		{"Gray replicates", Gray{9}, RGB{9, 9, 9}},
		{"HSV red", HSV{0, 100, 100}, Red},
		{"HSV green", HSV{120, 100, 100}, Green},
		{"HSV blue", HSV{240, 100, 100}, Blue},
		{"HSV no saturation", HSV{200, 0, 100}, White},
		{"HSV black", HSV{10, 80, 0}, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGB(tt.in); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRGBToHSVRoundTrip(t *testing.T) {
	for _, c := range []RGB{Red, Green, Blue, Yellow, Purple, White, Black} {
		back := HSVToRGB(RGBToHSV(c))
		if back != c {
			t.Errorf("Expected %v after round trip, got %v", c, back)
		}
	}
}

func TestBlend(t *testing.T) {
	base := RGB{0, 0, 0}

	if got := Blend(base, WithAlpha(White, 0)); got != base {
		t.Errorf("Expected alpha 0 to keep base, got %v", got)
	}
	if got := Blend(base, Opaque(Red)); got != Red {
		t.Errorf("Expected alpha 1 to replace, got %v", got)
	}

	half := Blend(base, WithAlpha(RGB{200, 100, 50}, 0.5))
	if half.R < 99 || half.R > 101 || half.G < 49 || half.G > 51 || half.B < 24 || half.B > 26 {
		t.Errorf("Expected roughly (100,50,25), got %v", half)
	}
}

func TestScale(t *testing.T) {
	if got := Scale(RGB{100, 200, 50}, 0.5); got != (RGB{50, 100, 25}) {
		t.Errorf("Expected (50,100,25), got %v", got)
	}
	if got := Scale(RGB{200, 200, 200}, 2); got != White {
		t.Errorf("Expected clamp to white, got %v", got)
	}
	if got := Scale(White, -1); got != Black {
		t.Errorf("Expected black for negative factor, got %v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"0,0,255", Blue, false},
		{" 10, 20 ,30 ", RGB{10, 20, 30}, false},
		{"#ff8000", RGB{255, 128, 0}, false},
		{"black", Black, false},
		{"Red", Red, false},
		{"navy", RGB{0, 0, 128}, false},
		{"1,2", RGB{}, true},
		{"1,2,300", RGB{}, true},
		{"not-a-color", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeHSV.String() != "HSV" {
		t.Errorf("Expected HSV, got %s", ModeHSV.String())
	}
	if (RGB{1, 2, 3}).String() != "1,2,3" {
		t.Errorf("Expected 1,2,3, got %s", RGB{1, 2, 3}.String())
	}
}
