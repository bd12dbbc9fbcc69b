package chart

import (
	"fmt"
	"math"
)

// ResolveColor returns the fill for item at index following the order
// GetColor, Colors, ColorFunc, Color, DefaultColor.
func ResolveColor[T Datum](cfg Config[T], item T, index int) string {
	switch {
	case cfg.GetColor != nil:
		return cfg.GetColor(item)
	case len(cfg.Colors) > 0:
		i := index % len(cfg.Colors)
		if i < 0 {
			i += len(cfg.Colors)
		}
		return cfg.Colors[i]
	case cfg.ColorFunc != nil:
		return cfg.ColorFunc(item)
	}
	return literalColor(cfg)
}

// fallbackColor resolves a color without an item to pass to the functions.
func fallbackColor[T Datum](cfg Config[T]) string {
	if len(cfg.Colors) > 0 {
		return cfg.Colors[0]
	}
	return literalColor(cfg)
}

func literalColor[T Datum](cfg Config[T]) string {
	if cfg.Color != "" {
		return cfg.Color
	}
	return DefaultColor
}

// PieLabel formats a slice label as "<name>: <pct>%". Names longer than 15
// characters are cut to 15 and suffixed with "...".
func PieLabel(name string, percent float64) string {
	runes := []rune(name)
	if len(runes) > pieLabelMaxRunes {
		name = string(runes[:pieLabelMaxRunes]) + "..."
	}
	return fmt.Sprintf("%s: %d%%", name, int(math.Round(percent*100)))
}
