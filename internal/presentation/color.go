// Package presentation maps temperatures to the visual encoding shared by
// the terminal client and the snapshot stream.
package presentation

import (
	"math"

	"heat_capacity_game/internal/thermal"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	HueCold    = 210.0 // degrees, vessel at ambient
	HueHot     = 20.0  // degrees, HueSpanC above ambient and hotter
	HueSpanC   = 80.0  // °C above ambient over which the hue sweeps
	Saturation = 0.80
	LightCold  = 0.55
	LightDrop  = 0.10 // lightness lost at full heat
)

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Heat returns how far along the cold→hot sweep temp is, in 0..1.
func Heat(temp float64) float64 {
	return clamp01((temp - thermal.AmbientC) / HueSpanC)
}

// Hue interpolates between HueCold and HueHot.
func Hue(temp float64) float64 {
	return lerp(HueCold, HueHot, Heat(temp))
}

// Lightness darkens the liquid slightly as it heats.
func Lightness(temp float64) float64 {
	return LightCold - Heat(temp)*LightDrop
}

// Color is the liquid colour for temp.
func Color(temp float64) colorful.Color {
	return colorful.Hsl(Hue(temp), Saturation, Lightness(temp)).Clamped()
}

// Hex is Color encoded as #rrggbb.
func Hex(temp float64) string {
	return Color(temp).Hex()
}

// FillRows converts the shared progress fraction to whole rows of a
// beaker that is height rows tall.
func FillRows(temp float64, height int) int {
	if height <= 0 {
		return 0
	}
	return int(math.Round(thermal.Progress(temp) * float64(height)))
}
