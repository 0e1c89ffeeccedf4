// Package tui is the interactive stream explorer: a bubbletea app for
// picking a catalogue function, configuring its query, and watching
// the trace fill in as t advances, with a menu -> config -> live
// three-state machine, tick-driven stepping, and a sparkline readout
// of the sampled catalogue function's solved stream.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/odeflow/internal/registry"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var functionInfo = map[string]string{
	"exp":        "y'=y",
	"log":        "y'=1/t",
	"sin":        "coupled sin/cos",
	"cos":        "coupled sin/cos",
	"erf":        "error function",
	"erfc":       "complementary error function",
	"airyAi":     "y''=t*y",
	"airyBi":     "y''=t*y (2nd kind)",
	"ellipticK":  "complete elliptic integral K",
	"ellipticE":  "complete elliptic integral E",
	"besselJ2":   "Bessel J, integral form",
	"besselY2":   "Bessel Y, integral form",
	"polygamma2": "polygamma via lim2_integrate",
	"fresnelC":   "Fresnel cosine integral",
	"fresnelS":   "Fresnel sine integral",
	"sinc":       "sin(t)/t",
	"si":         "sine integral",
	"ein":        "entire exponential integral",
	"cin":        "cosine integral complement",
	"chin":       "hyperbolic cosine integral complement",
}

type state int

const (
	stateMenu state = iota
	stateConfig
	stateLive
)

type model struct {
	state    state
	cursor   int
	names    []string
	selected string

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	running   bool
	paused    bool
	fn        registry.ScalarFunc
	t         float64
	dt        float64
	speed     float64
	history   []float64
	lastFrame time.Time
	fps       float64

	width  int
	height int
}

func NewInteractiveApp() *model {
	reg := registry.New()
	names := reg.ListFunctions()
	return &model{
		state: stateMenu,
		names: names,
		params: map[string]float64{
			"t0": 0.0, "t1": 10.0, "samples": 200, "a": 0.0,
		},
		paramNames: []string{"t0", "t1", "samples", "a"},
		speed:      1.0,
		history:    make([]float64, 0, 120),
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateLive {
			return m, nil
		}
		if m.running && !m.paused && m.fn != nil {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				dt := now.Sub(m.lastFrame).Seconds()
				if dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now
			steps := int(m.speed)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				m.step()
			}
		}
		if m.running && m.state == stateLive {
			return m, tick()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateLive:
		return m.liveKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.names[m.cursor]
		m.state = stateConfig
		m.paramCursor = 0
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.params[m.paramNames[m.paramCursor]])
	case "s":
		m.start()
		m.state = stateLive
		return m, tea.Batch(tea.ClearScreen, tick())
	case "left", "h":
		m.params[m.paramNames[m.paramCursor]] -= 0.1
	case "right", "l":
		m.params[m.paramNames[m.paramCursor]] += 0.1
	}
	return m, nil
}

func (m model) liveKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.running = false
		m.state = stateMenu
		m.reset()
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.start()
		return m, tea.ClearScreen
	case "c":
		m.running = false
		m.state = stateConfig
		m.reset()
		return m, tea.ClearScreen
	case "+", "=":
		m.speed = math.Min(m.speed*2, 16)
	case "-", "_":
		m.speed = math.Max(m.speed/2, 0.25)
	case "0":
		m.speed = 1.0
	}
	return m, nil
}

func (m *model) start() {
	reg := registry.New()
	fn, err := reg.Function(m.selected, registry.Params{A: m.params["a"]})
	if err != nil {
		fn = nil
	}
	m.fn = fn

	t0 := m.params["t0"]
	t1 := m.params["t1"]
	samples := m.params["samples"]
	if samples < 1 {
		samples = 200
	}
	m.dt = (t1 - t0) / samples
	m.t = t0
	m.history = make([]float64, 0, 120)
	m.speed = 1.0
	m.lastFrame = time.Time{}
	m.running = true
	m.paused = false
}

func (m *model) reset() {
	m.history = nil
	m.fn = nil
	m.t = 0
}

func (m *model) step() {
	t1 := m.params["t1"]
	if (m.dt > 0 && m.t >= t1) || (m.dt < 0 && m.t <= t1) || m.fn == nil {
		m.paused = true
		return
	}
	y := m.fn(m.t)
	m.t += m.dt
	m.history = append(m.history, y)
	if len(m.history) > 120 {
		m.history = m.history[1:]
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateLive:
		return m.viewLive()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("o d e f l o w") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.names {
		desc := functionInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render(functionInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.3f", m.params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s start  esc back") + "\n")

	return b.String()
}

func (m model) viewLive() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n",
		statusIcon, cyan.Render(m.selected), statusText))

	t0, t1 := m.params["t0"], m.params["t1"]
	progress := 0.0
	if t1 != t0 {
		progress = (m.t - t0) / (t1 - t0)
	}
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	timeStr := fmt.Sprintf("t=%.3f", m.t)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar, dim.Render(timeStr), dim.Render(fmt.Sprintf("%.0ffps", m.fps))))

	width := m.width - 6
	if width < 24 {
		width = 24
	}
	if len(m.history) > 1 {
		b.WriteString("   " + cyan.Render(m.sparkline(m.history, width)) + "\n")
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("y="), white.Render(fmt.Sprintf("%.6f", m.history[len(m.history)-1]))))
	}

	b.WriteString("\n" + dim.Render("   space pause  ±speed  r reset  c config  q quit") + "\n")

	return b.String()
}

func (m model) sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
