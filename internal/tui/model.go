// SPDX-License-Identifier: Unlicense OR MIT

// Package tui hosts a progress button in an interactive terminal program.
package tui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trendit/progressbutton"
	"github.com/trendit/progressbutton/internal/termimg"
)

const (
	step         = 10
	autoInterval = 150 * time.Millisecond
	maxCols      = 60
)

// Options configure the program.
type Options struct {
	Label     string
	TextColor color.NRGBA
	// Size is the button size in pixels before scaling to the terminal.
	Size image.Point
	// Cols is the initial width in terminal columns.
	Cols int
}

type tickMsg time.Time

// Model is the bubbletea model driving a button.
type Model struct {
	button *progressbutton.Button
	opts   Options

	cols    int
	auto    bool
	redraws int

	keys   keyMap
	help   help.Model
	styles styles
}

type styles struct {
	Title  lipgloss.Style
	Status lipgloss.Style
	Label  lipgloss.Style
}

func defaultStyles(label color.NRGBA) styles {
	base := lipgloss.NewStyle()
	return styles{
		Title:  base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Status: base.Faint(true),
		Label:  base.Bold(true).Foreground(termimg.Hex(label)),
	}
}

// NewModel returns a model driving b.
func NewModel(b *progressbutton.Button, opts Options) *Model {
	if opts.Size.X <= 0 || opts.Size.Y <= 0 {
		opts.Size = image.Pt(240, 48)
	}
	if opts.Cols <= 0 {
		opts.Cols = 40
	}
	m := &Model{
		button: b,
		opts:   opts,
		cols:   opts.Cols,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles(opts.TextColor),
	}
	b.Invalidate = func() { m.redraws++ }
	return m
}

// Run runs the program until the user quits or ctx is done.
func Run(ctx context.Context, b *progressbutton.Button, opts Options) error {
	_, err := tea.NewProgram(NewModel(b, opts), tea.WithContext(ctx)).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = clamp(msg.Width-2, 1, maxCols)
		m.help.Width = msg.Width
	case tickMsg:
		if !m.auto {
			return m, nil
		}
		return m, m.advance(step / 2)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Advance):
			return m, m.advance(step)
		case key.Matches(msg, m.keys.Back):
			m.button.SetProgress(m.button.State().Percent() - step)
		case key.Matches(msg, m.keys.Success):
			m.auto = false
			m.button.SetSuccess()
		case key.Matches(msg, m.keys.Fail):
			m.auto = false
			m.button.SetFail()
		case key.Matches(msg, m.keys.Reset):
			m.auto = false
			m.button.Reset()
		case key.Matches(msg, m.keys.Disable):
			m.button.SetDisabled(!m.button.Disabled())
		case key.Matches(msg, m.keys.Auto):
			m.auto = !m.auto
			if m.auto {
				return m, tick()
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// advance moves the progress forward by delta, finishing with success at
// 100%. While auto progress is on it schedules the next tick.
func (m *Model) advance(delta int) tea.Cmd {
	s := m.button.State()
	if s.Kind() != progressbutton.InProgress {
		m.button.SetProgress(0)
		s = m.button.State()
	}
	if s.Percent() >= 100 {
		m.auto = false
		m.button.SetSuccess()
		return nil
	}
	m.button.SetProgress(s.Percent() + delta)
	if m.auto {
		return tick()
	}
	return nil
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("progress button"))
	sb.WriteString("\n\n")
	f := m.button.Frame(m.opts.Label, m.opts.TextColor)
	if img := m.button.Renderer().Background(f, m.opts.Size); img != nil {
		sb.WriteString(termimg.Render(img, m.cols))
		sb.WriteString("\n")
	}
	sb.WriteString(lipgloss.PlaceHorizontal(m.cols, lipgloss.Center, m.styles.Label.Render(m.opts.Label)))
	sb.WriteString("\n\n")
	status := fmt.Sprintf("state: %v", m.button.State())
	if m.button.Disabled() {
		status += " (disabled)"
	}
	if m.auto {
		status += " auto"
	}
	sb.WriteString(m.styles.Status.Render(status))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

func tick() tea.Cmd {
	return tea.Tick(autoInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
