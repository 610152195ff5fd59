package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeByID(t *testing.T) {
	assert.Equal(t, "vintage", ThemeByID("vintage").ID)
	assert.Equal(t, "minimalist", ThemeByID("minimalist").ID)
	assert.Equal(t, "modern", ThemeByID("modern").ID)
}

func TestThemeByID_UnknownFallsBackToModern(t *testing.T) {
	for _, id := range []string{"", "neon", "MODERN"} {
		theme := ThemeByID(id)
		assert.Equal(t, "modern", theme.ID, "input %q", id)
	}
}

func TestRGB_LaTeX(t *testing.T) {
	c := RGB{0.15, 0.39, 0.92}
	assert.Equal(t, "0.15, 0.39, 0.92", c.LaTeX())
}

func TestRGB_Bytes(t *testing.T) {
	r, g, b := RGB{1, 0, 0.5}.Bytes()
	assert.Equal(t, 255, r)
	assert.Equal(t, 0, g)
	assert.Equal(t, 128, b)
}

func TestThemesAreComplete(t *testing.T) {
	for id, theme := range themes {
		assert.Equal(t, id, theme.ID)
		assert.NotEmpty(t, theme.Name)
		assert.NotEmpty(t, theme.Geometry)
		assert.NotEmpty(t, theme.FontPackage)
	}
}
