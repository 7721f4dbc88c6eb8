package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectThemeDarkMode(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("PORTSENTINEL_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
}

func TestDetectThemeColorFgBg(t *testing.T) {
	t.Setenv("PORTSENTINEL_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)
}

func TestRenderDividerWidth(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.Equal(t, 10, strings.Count(s.RenderDivider(10), "─"))
	assert.Equal(t, 1, strings.Count(s.RenderDivider(0), "─"))
}

func TestBadgeForFallsBackToAccent(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.Equal(t, s.BadgeError, s.BadgeFor("red"))
	assert.Equal(t, s.Badge, s.BadgeFor("teal"))
}
