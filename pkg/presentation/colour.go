package presentation

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var defaultColour = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// ParseColour parses "#RRGGBB" or "#RGB". An empty string gives the default colour.
func ParseColour(hex string) (color.RGBA, error) {
	if hex == "" {
		return defaultColour, nil
	}

	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", hex)
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}

	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, nil
}
