package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
)

func TestConvertCommand(t *testing.T) {
	expected := "HEX   #336699\nRGB   51, 102, 153\nHSL   210, 50, 40\nCMYK  67, 33, 0, 40\n"

	for _, input := range []string{"#336699", "336699", "210,50,40", "570, 50, 40"} {
		t.Run(input, func(t *testing.T) {
			res, err := executeCommand(t, "convert", input)
			require.NoError(t, err)
			require.Equal(t, expected, res.stdout)
		})
	}
}

func TestConvertCommand_JSONOutput(t *testing.T) {
	res, err := executeCommand(t, "convert", "#F75BA8", "--json")
	require.NoError(t, err)

	var sw color.Swatch
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &sw))
	require.Equal(t, "#f75ba8", sw.Hex)
	require.Equal(t, color.RGB{R: 247, G: 91, B: 168}, sw.RGB)
}

func TestConvertCommand_RejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"#12345", "blue", "10,20", "10,20,101"} {
		t.Run(input, func(t *testing.T) {
			_, err := executeCommand(t, "convert", input)
			require.Error(t, err)
			require.Contains(t, err.Error(), "Failed to convert color")
		})
	}
}

func TestHarmoniesCommand(t *testing.T) {
	res, err := executeCommand(t, "harmonies")
	require.NoError(t, err)

	require.Contains(t, res.stdout, "RULE")
	require.Contains(t, res.stdout, "split-complementary")
	require.Contains(t, res.stdout, "Split Complementary")
	require.Contains(t, res.stdout, "Lightness variations of a single hue.")
}
