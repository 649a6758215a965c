package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// heatRamp maps cold to hot, used for per-body bar coloring.
var heatRamp = []string{
	"#2158d0", "#2f7bd9", "#3fa0d9", "#5ec4c9",
	"#8fd688", "#cde05a", "#f2c94c", "#f2a33c",
	"#ef7b33", "#e5502c", "#d42a2a",
}

func rampColor(frac float64) lipgloss.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	idx := int(frac * float64(len(heatRamp)-1))
	return lipgloss.Color(heatRamp[idx])
}
