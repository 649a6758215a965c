package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heatgrid/internal/sim"
)

const (
	barWidth        = 40
	maxBars         = 24
	historyCapacity = 600
)

type TickMsg time.Time

// Model drives the live terminal view of an exchange network.
type Model struct {
	sched         *sim.Scheduler
	scenario      string
	dt            float64
	t             float64
	step          int
	speed         int
	running       bool
	initialTemps  []float64
	initialEnergy float64
	tLow, tHigh   float64
	spreadHistory []float64
}

// NewModel takes ownership of a prepared scheduler for interactive
// stepping.
func NewModel(sched *sim.Scheduler, dt float64, scenario string) Model {
	temps := sched.Temps()
	lo, hi := tempRange(temps)

	return Model{
		sched:         sched,
		scenario:      scenario,
		dt:            dt,
		speed:         1,
		running:       true,
		initialTemps:  temps,
		initialEnergy: sched.Energy(),
		tLow:          lo,
		tHigh:         hi,
		spreadHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sched.SetTemps(m.initialTemps)
			m.t = 0
			m.step = 0
			m.spreadHistory = m.spreadHistory[:0]
		case "]":
			if m.speed < 64 {
				m.speed *= 2
			}
		case "[":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.speed; i++ {
				m.sched.Tick(m.dt)
				m.t += m.dt
				m.step++
			}
			lo, hi := tempRange(m.sched.Temps())
			m.spreadHistory = append(m.spreadHistory, hi-lo)
			if len(m.spreadHistory) > historyCapacity {
				m.spreadHistory = m.spreadHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	temps := m.sched.Temps()
	lo, hi := tempRange(temps)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("heatgrid live — %s", m.scenario)))
	b.WriteString("\n")
	b.WriteString(m.renderBars(temps))
	b.WriteString("\n")
	b.WriteString(m.renderStats(lo, hi))

	if len(m.spreadHistory) > 2 {
		graph := asciigraph.Plot(m.spreadHistory,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("temperature spread (K)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r reset · [ ] speed · q quit"))
	return b.String()
}

// renderBars draws one heat bar per body, sampling evenly when the
// network has more bodies than rows.
func (m Model) renderBars(temps []float64) string {
	n := len(temps)
	rows := n
	if rows > maxBars {
		rows = maxBars
	}

	span := m.tHigh - m.tLow
	if span <= 0 {
		span = 1
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		i := r * n / rows
		frac := (temps[i] - m.tLow) / span
		fill := int(frac * barWidth)
		if fill < 0 {
			fill = 0
		}
		if fill > barWidth {
			fill = barWidth
		}

		bar := lipgloss.NewStyle().Foreground(rampColor(frac)).
			Render(strings.Repeat("█", fill) + strings.Repeat("░", barWidth-fill))
		fmt.Fprintf(&b, "%s %s %7.2fK\n", labelStyle.Render(fmt.Sprintf("body %d", i)), bar, temps[i])
	}
	return b.String()
}

func (m Model) renderStats(lo, hi float64) string {
	status := "running"
	if !m.running {
		status = pausedStyle.Render("paused")
	}

	drift := 0.0
	if m.initialEnergy != 0 {
		drift = math.Abs(m.sched.Energy()-m.initialEnergy) / math.Abs(m.initialEnergy)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("status"), valueStyle.Render(status))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("time"), valueStyle.Render(fmt.Sprintf("%.2fs (step %d, x%d)", m.t, m.step, m.speed)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("spread"), valueStyle.Render(fmt.Sprintf("%.3fK", hi-lo)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("drift"), valueStyle.Render(fmt.Sprintf("%.2e", drift)))
	return b.String()
}

func tempRange(temps []float64) (float64, float64) {
	if len(temps) == 0 {
		return 0, 0
	}
	lo, hi := temps[0], temps[0]
	for _, v := range temps {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
