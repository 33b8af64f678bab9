// Package browse implements an interactive picker over the sections of a
// document.
package browse

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/multitext/doc"
	"github.com/ardnew/multitext/log"
)

const (
	prompt       = "▸ "
	emptyName    = "(unnamed)"
	defaultWidth = 80
	previewLines = 8
)

// Styles.
var (
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	previewStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedMatchStyle = selectedStyle.Bold(true)
)

// model is the Bubble Tea model for the section picker.
type model struct {
	ctxFunc  func() context.Context
	logger   log.Logger
	doc      *doc.Document
	input    textinput.Model
	names    []string
	matches  fuzzy.Matches
	chosen   string
	selected int
	width    int
	done     bool
	quitting bool
}

// Run lets the user pick a section of d and writes its body to w. It returns
// without writing if the user cancels. Chosen names are remembered in
// cacheDir, if not empty, and offered first next time. A document without
// sections shows an empty candidate bar until the user cancels.
func Run(ctx context.Context, d *doc.Document, w io.Writer, cacheDir string, logger log.Logger, opts ...tea.ProgramOption) error {
	rec, err := loadRecent(cacheDir)
	if err != nil {
		logger.WarnContext(ctx, "browse history unavailable", slog.String("error", err.Error()))
	}

	m := newModel(ctx, d, rec.order(slices.Collect(d.Names())), logger)

	final, err := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...).Run()
	if err != nil {
		return err
	}

	fm, ok := final.(model)
	if !ok || !fm.done {
		logger.TraceContext(ctx, "browse cancelled")

		return nil
	}

	body, _ := d.Get(fm.chosen)

	logger.TraceContext(ctx, "browse selected",
		slog.String("name", fm.chosen),
		slog.Int("bytes", len(body)),
	)

	if err := rec.add(fm.chosen); err != nil {
		logger.WarnContext(ctx, "browse history not saved", slog.String("error", err.Error()))
	}

	_, err = io.WriteString(w, body)

	return err
}

func newModel(ctx context.Context, d *doc.Document, names []string, logger log.Logger) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "filter sections"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	m := model{
		ctxFunc: func() context.Context { return ctx },
		logger:  logger,
		doc:     d,
		input:   ti,
		names:   names,
		width:   defaultWidth,
	}
	m.refresh()

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.matches) == 0 {
			return m, nil
		}

		m.chosen, m.done, m.quitting = m.matches[m.selected].Str, true, true

		return m, tea.Quit

	case tea.KeyTab, tea.KeyDown, tea.KeyRight:
		if msg.Type == tea.KeyRight && m.input.Position() < len(m.input.Value()) {
			break
		}

		m.move(1)

		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.move(-1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// move cycles the selection by delta.
func (m *model) move(delta int) {
	if n := len(m.matches); n > 0 {
		m.selected = (m.selected + delta + n) % n
	}
}

// refresh recomputes the matches for the current query.
func (m *model) refresh() {
	m.matches = findMatches(m.input.Value(), m.names)
	m.selected = 0

	m.logger.TraceContext(m.ctxFunc(), "browse filter",
		slog.String("query", m.input.Value()),
		slog.Int("matches", len(m.matches)),
	)
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString(hintStyle.Render("no matching sections"))
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString(renderCandidateBar(m.matches, m.selected, m.width))
	b.WriteString("\n")

	body, _ := m.doc.Get(m.matches[m.selected].Str)
	for _, line := range preview(body, previewLines) {
		b.WriteString(previewStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("tab/↑↓ select · enter print · esc cancel"))
	b.WriteString("\n")

	return b.String()
}
