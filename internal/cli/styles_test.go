package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestApplyTheme(t *testing.T) {
	t.Cleanup(func() { ApplyTheme(false) })

	ApplyTheme(true)
	assert.Equal(t, lipgloss.Color("#8A8A8A"), SubtleColor)
	assert.Equal(t, lipgloss.Color("#8A8A8A"), SubtleStyle.GetForeground())
	assert.Equal(t, lipgloss.Color("#555"), TableHeaderStyle.GetBorderBottomForeground())

	ApplyTheme(false)
	assert.Equal(t, lipgloss.Color("#666666"), SubtleColor)
	assert.Equal(t, lipgloss.Color("#666666"), SubtleStyle.GetForeground())
	assert.Equal(t, lipgloss.Color("#333"), TableHeaderStyle.GetBorderBottomForeground())
}
