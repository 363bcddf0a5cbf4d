// Package tui is an interactive terminal explorer: pick a transform, move its
// parameter and watch the distribution change, then draw samples from it.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/papercomputeco/explorer/pkg/distribution"
	"github.com/papercomputeco/explorer/pkg/explorer"
	"github.com/papercomputeco/explorer/pkg/llm"
	"github.com/papercomputeco/explorer/pkg/preset"
	"github.com/papercomputeco/explorer/pkg/render"
)

const (
	defaultWidth = 80
	sampleCount  = 100
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	idleStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	boxStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Model is the bubbletea model of the explorer.
type Model struct {
	svc     *explorer.Service
	logger  *zap.Logger
	presets []preset.Preset
	current int

	sliders []slider
	active  int

	transformed []float64
	empirical   []float64
	samples     []string
	err         error

	width int
	help  help.Model
	keys  keyMap
}

// New creates a model starting at the preset named start, or the first preset
// when start is empty.
func New(svc *explorer.Service, start string, logger *zap.Logger) (*Model, error) {
	presets := svc.Presets()
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets registered")
	}

	current := 0
	if start != "" {
		current = -1
		for i, p := range presets {
			if p.Name == start {
				current = i
			}
		}
		if current < 0 {
			return nil, fmt.Errorf("%w: %s", explorer.ErrUnknownPreset, start)
		}
	}

	m := &Model{
		svc:     svc,
		logger:  logger,
		presets: presets,
		current: current,
		width:   defaultWidth,
		help:    help.New(),
		keys:    keys,
	}
	m.resetSliders()
	m.recompute()
	return m, nil
}

func (m *Model) preset() preset.Preset {
	return m.presets[m.current]
}

func (m *Model) resetSliders() {
	m.sliders = newSliders(len(m.preset().Vocabulary))
}

// recompute applies the active slider to the current preset and drops any
// samples drawn from the previous distribution.
func (m *Model) recompute() {
	m.samples, m.empirical = nil, nil

	t, err := m.sliders[m.active].transform()
	if err == nil {
		var resp *llm.TransformResponse
		resp, err = m.svc.Transform(context.Background(), llm.TransformRequest{
			Base:      llm.Base{Preset: m.preset().Name},
			Transform: m.sliders[m.active].kind,
			Value:     m.sliders[m.active].value,
		})
		if err == nil {
			m.transformed = resp.Transformed
			m.logger.Debug("tui transform", zap.String("transform", t.String()))
		}
	}
	m.err = err
}

func (m *Model) sample() {
	s := m.sliders[m.active]
	opts := &llm.Options{}
	switch s.kind {
	case distribution.KindTemperature:
		opts.Temperature = &s.value
	case distribution.KindTopK:
		k := int(s.value)
		opts.TopK = &k
	case distribution.KindTopP:
		opts.TopP = &s.value
	case distribution.KindMinP:
		opts.MinP = &s.value
	}

	resp, err := m.svc.Sample(context.Background(), llm.SampleRequest{
		Base:    llm.Base{Preset: m.preset().Name},
		Options: opts,
		Samples: sampleCount,
	})
	if err != nil {
		m.err = err
		return
	}
	m.samples, m.empirical = resp.Samples, resp.Empirical
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Next):
			m.active = (m.active + 1) % len(m.sliders)
			m.recompute()
		case key.Matches(msg, m.keys.Prev):
			m.active = (m.active + len(m.sliders) - 1) % len(m.sliders)
			m.recompute()
		case key.Matches(msg, m.keys.Increase):
			m.sliders[m.active].move(1)
			m.recompute()
		case key.Matches(msg, m.keys.Decrease):
			m.sliders[m.active].move(-1)
			m.recompute()
		case key.Matches(msg, m.keys.Preset):
			m.current = (m.current + 1) % len(m.presets)
			m.resetSliders()
			m.recompute()
		case key.Matches(msg, m.keys.Sample):
			m.sample()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	p := m.preset()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%q → ?", p.Prompt)))
	b.WriteString("  ")
	b.WriteString(idleStyle.Render(p.Name))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.sliders))
	for i, s := range m.sliders {
		label := fmt.Sprintf("%s %s", s.title, formatValue(s))
		if i == m.active {
			tabs[i] = activeStyle.Render(label)
		} else {
			tabs[i] = idleStyle.Render(label)
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	barWidth := max(10, m.width-32)
	series := []render.Series{
		{Name: "initial", Values: p.Probabilities},
		{Name: m.sliders[m.active].title, Values: m.transformed},
	}
	if m.empirical != nil {
		series = append(series, render.Series{Name: fmt.Sprintf("empirical (%d draws)", len(m.samples)), Values: m.empirical})
	}
	b.WriteString(render.Bars(p.Vocabulary, barWidth, series...))

	if m.samples != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s", p.Prompt, titleStyle.Render(m.samples[0])))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return boxStyle.Render(b.String())
}

func formatValue(s slider) string {
	if s.kind == distribution.KindTopK {
		return fmt.Sprintf("%d", int(s.value))
	}
	return fmt.Sprintf("%.2f", s.value)
}
