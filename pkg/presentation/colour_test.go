package presentation_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/punctuality/pkg/presentation"
)

func TestParseColour(t *testing.T) {
	testCases := []struct {
		Hex      string
		Expected color.RGBA
		Error    bool
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}, false},
		{"#1A2b3C", color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, false},
		{"#0f8", color.RGBA{G: 0xff, B: 0x88, A: 0xff}, false},
		{"00ff00", color.RGBA{G: 0xff, A: 0xff}, false},
		{"", color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Hex, func(t *testing.T) {
			colour, err := presentation.ParseColour(testCase.Hex)
			if testCase.Error {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testCase.Expected, colour)
		})
	}
}
