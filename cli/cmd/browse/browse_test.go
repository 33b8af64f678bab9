package browse

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/multitext/doc"
	"github.com/ardnew/multitext/log"
)

func testDocument() *doc.Document {
	return doc.NewDocument("#",
		doc.Section{Name: doc.HeaderSection, Body: "about\n"},
		doc.Section{Name: "install", Body: "go install\n"},
		doc.Section{Name: "usage", Body: "run it\nthen stop\n"},
		doc.Section{Name: "license", Body: "MIT\n"},
	)
}

func newTestModel() model {
	d := testDocument()

	return newModel(context.Background(), d, slices.Collect(d.Names()), log.Logger{})
}

func typeText(m model, s string) model {
	for _, r := range s {
		m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return m
}

func TestModel_InitialMatchesAll(t *testing.T) {
	m := newTestModel()

	if len(m.matches) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(m.matches))
	}

	if m.matches[0].Str != doc.HeaderSection {
		t.Errorf("expected document order, got %q first", m.matches[0].Str)
	}
}

func TestModel_Filter(t *testing.T) {
	m := typeText(newTestModel(), "lic")

	if len(m.matches) != 1 || m.matches[0].Str != "license" {
		t.Fatalf("expected only license, got %v", m.matches)
	}

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	if !m.done || m.chosen != "license" {
		t.Errorf("expected license chosen, got %q (done=%v)", m.chosen, m.done)
	}

	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestModel_Selection(t *testing.T) {
	m := newTestModel()

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})

	if m.selected != 2 {
		t.Fatalf("expected selection 2, got %d", m.selected)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})

	if m.selected != 3 {
		t.Errorf("expected selection to wrap to 3, got %d", m.selected)
	}

	if !strings.Contains(m.View(), "MIT") {
		t.Errorf("expected preview of selected section:\n%s", m.View())
	}
}

func TestModel_Cancel(t *testing.T) {
	m := typeText(newTestModel(), "us")

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	if m.done || m.chosen != "" {
		t.Errorf("expected nothing chosen, got %q", m.chosen)
	}
}

func TestModel_NoMatches(t *testing.T) {
	m := typeText(newTestModel(), "zzz")

	if len(m.matches) != 0 {
		t.Fatalf("expected no matches, got %v", m.matches)
	}

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.done {
		t.Error("expected enter to do nothing without matches")
	}

	if !strings.Contains(m.View(), "no matching sections") {
		t.Errorf("expected hint in view:\n%s", m.View())
	}
}

func TestModel_EmptyDocument(t *testing.T) {
	m := newModel(context.Background(), doc.NewDocument("#"), nil, log.Logger{})

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.done {
		t.Error("expected enter to do nothing without sections")
	}

	if !strings.Contains(m.View(), "no matching sections") {
		t.Errorf("expected hint in view:\n%s", m.View())
	}
}

func TestRenderCandidateBar(t *testing.T) {
	names := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	matches := findMatches("", names)

	wide := renderCandidateBar(matches, 0, 200)
	for _, name := range names {
		if !strings.Contains(wide, name) {
			t.Errorf("expected %q in wide bar", name)
		}
	}

	narrow := renderCandidateBar(matches, 0, 16)
	if !strings.Contains(narrow, "...") {
		t.Errorf("expected ellipsis in narrow bar: %q", narrow)
	}

	if renderCandidateBar(nil, 0, 80) != "" {
		t.Error("expected empty bar without matches")
	}
}

func TestPreview(t *testing.T) {
	if got := preview("", 3); got != nil {
		t.Errorf("expected nil, got %q", got)
	}

	got := preview("a\nb\nc\nd\n", 2)
	if !slices.Equal(got, []string{"a", "b", "..."}) {
		t.Errorf("unexpected preview %q", got)
	}
}

func TestRecent(t *testing.T) {
	dir := t.TempDir()

	r, err := loadRecent(dir)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"usage", "license", "usage"} {
		if err := r.add(name); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, baseRecent)); err != nil {
		t.Fatalf("expected history file: %v", err)
	}

	again, err := loadRecent(dir)
	if err != nil {
		t.Fatal(err)
	}

	got := again.order([]string{doc.HeaderSection, "install", "usage", "license"})
	want := []string{"usage", "license", doc.HeaderSection, "install"}

	if !slices.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}
