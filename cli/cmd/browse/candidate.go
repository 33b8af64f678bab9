package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// findMatches returns the names matching query. An empty query matches every
// name in the given order with nothing highlighted.
func findMatches(query string, names []string) fuzzy.Matches {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make(fuzzy.Matches, len(names))
		for i, name := range names {
			all[i] = fuzzy.Match{Str: name, Index: i}
		}

		return all
	}

	return fuzzy.Find(query, names)
}

// renderCandidateBar lays out matches on a single line no wider than width,
// ending in an ellipsis when some do not fit.
func renderCandidateBar(matches fuzzy.Matches, selected, width int) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, i == selected)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		last := i == len(matches)-1

		reserve := ellipsisWidth
		if last {
			reserve = 0
		}

		if i > 0 && used+entryWidth+reserve > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a section name with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, matchStyle
	if selected {
		base, highlight = selectedStyle, selectedMatchStyle
	}

	if match.Str == "" {
		return base.Render(emptyName)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}

// preview returns at most n lines of body, marking a cut with an ellipsis.
func preview(body string, n int) []string {
	if body == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")

	if len(lines) > n {
		lines = append(lines[:n:n], "...")
	}

	return lines
}
