package clean

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary)

	styleMuted = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary)

	styleSuccess = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	styleWarning = lipgloss.NewStyle().Foreground(ui.ColorWarning)
	styleError   = lipgloss.NewStyle().Foreground(ui.ColorError)
)

func (m Model) renderView() string {
	var s strings.Builder

	title := "  Developer caches"
	if m.dryRun {
		title += styleWarning.Render("  (dry run)")
	}
	s.WriteString(styleTitle.Render(title))
	s.WriteString("\n")
	s.WriteString(styleMuted.Render("  " + strings.Repeat("─", 58)))
	s.WriteString("\n\n")

	if m.done {
		s.WriteString(m.renderResults())
		return s.String()
	}

	for i, it := range m.items {
		s.WriteString(m.renderItem(i, it))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderItem(i int, it CleanItem) string {
	cursor := "  "
	if i == m.cursor {
		cursor = styleSelected.Render("> ")
	}

	check := "[ ]"
	if it.Selected {
		check = styleSelected.Render("[x]")
	}
	if !it.Exists {
		check = styleMuted.Render(" — ")
	}

	size := m.renderSize(it)

	name := it.Name
	if i == m.cursor {
		name = styleSelected.Render(name)
	}

	line := fmt.Sprintf("%s%s %-22s %10s  %s",
		cursor, check, name, size, styleMuted.Render(it.Description))
	return line
}

// renderSize distinguishes three states the caller must not conflate:
// absent cache (zero), pending/failed measurement (spinner / "?"), and a
// measured size.
func (m Model) renderSize(it CleanItem) string {
	switch {
	case !it.Exists:
		return styleMuted.Render("not found")
	case it.Sized:
		return core.FormatSize(it.Size)
	case it.SizeErr != "":
		return styleError.Render("?")
	default:
		return m.spin.View()
	}
}

func (m Model) renderFooter() string {
	if m.cleaning {
		return "  " + m.spin.View() + " Cleaning…"
	}
	if m.confirmClean {
		n := len(m.selectedItems())
		return styleWarning.Render(
			fmt.Sprintf("  Delete %d cache(s)? Enter to confirm, any other key to cancel.", n))
	}

	keys := "  ↑/↓ move · space select · a all · n none · enter clean · q quit"
	if m.measuringCount() > 0 {
		keys += "   " + m.spin.View() + " measuring"
	}
	return styleMuted.Render(keys)
}

func (m Model) renderResults() string {
	var s strings.Builder

	for _, r := range m.results {
		switch {
		case r.Err == nil:
			verb := "freed"
			if m.dryRun {
				verb = "would free"
			}
			s.WriteString(fmt.Sprintf("  %s %-22s %s %s\n",
				styleSuccess.Render("✓"), r.Name, verb, core.FormatSize(r.Freed)))
		case r.NotFound():
			s.WriteString(fmt.Sprintf("  %s %-22s %s\n",
				styleMuted.Render("·"), r.Name, styleMuted.Render("not found")))
		default:
			s.WriteString(fmt.Sprintf("  %s %-22s %s\n",
				styleError.Render("✗"), r.Name, styleError.Render(r.Err.Error())))
		}
	}

	s.WriteString("\n")
	total := core.FormatSize(TotalFreed(m.results))
	if m.dryRun {
		s.WriteString(styleTitle.Render(fmt.Sprintf("  Would free %s", total)))
	} else {
		s.WriteString(styleTitle.Render(fmt.Sprintf("  Freed %s", total)))
	}
	s.WriteString("\n\n")
	s.WriteString(styleMuted.Render("  Press q to exit."))
	return s.String()
}
