package clean

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/devmole/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

// sizeMsg carries one finished size measurement back to the model.
type sizeMsg struct {
	index int
	item  CleanItem
}

// cleanDoneMsg carries the batch outcome back to the model.
type cleanDoneMsg struct {
	results []CleanResult
}

// measureItem measures one cache size off the UI loop.
func measureItem(index int, item CleanItem) tea.Cmd {
	return func() tea.Msg {
		item.Measure()
		return sizeMsg{index: index, item: item}
	}
}

// runClean deletes the selected items off the UI loop.
func runClean(items []CleanItem, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		return cleanDoneMsg{results: Execute(items, dryRun)}
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for the interactive cache picker.
type Model struct {
	items  []CleanItem
	cursor int
	width  int
	height int
	dryRun bool

	spin         spinner.Model
	confirmClean bool // two-key confirm: c then Enter
	cleaning     bool
	done         bool
	results      []CleanResult
	quitting     bool
}

// NewModel creates a picker over the given cache items. Sizes are measured
// asynchronously after the program starts.
func NewModel(items []CleanItem, dryRun bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return Model{
		items:  items,
		width:  80,
		height: 24,
		dryRun: dryRun,
		spin:   sp,
	}
}

// Results returns the batch outcome, nil if no clean ran.
func (m Model) Results() []CleanResult {
	return m.results
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	for i, it := range m.items {
		if it.Sized {
			continue
		}
		cmds = append(cmds, measureItem(i, it))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sizeMsg:
		if msg.index >= 0 && msg.index < len(m.items) {
			// Preserve selection made while the measurement was running.
			selected := m.items[msg.index].Selected
			m.items[msg.index] = msg.item
			m.items[msg.index].Selected = selected
		}
		return m, nil

	case cleanDoneMsg:
		m.cleaning = false
		m.done = true
		m.results = msg.results
		return m, nil

	case tea.KeyMsg:
		if m.cleaning {
			return m, nil // Ignore input while the batch runs.
		}

		if m.done {
			switch msg.String() {
			case "q", "esc", "ctrl+c", "enter":
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		// Awaiting confirmation: only Enter proceeds, anything else cancels.
		if m.confirmClean {
			m.confirmClean = false
			if msg.String() == "enter" {
				m.cleaning = true
				return m, tea.Batch(m.spin.Tick, runClean(m.selectedItems(), m.dryRun))
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case " ", "space":
			if m.cursor >= 0 && m.cursor < len(m.items) {
				it := &m.items[m.cursor]
				if it.Exists {
					it.Selected = !it.Selected
				}
			}

		case "a":
			for i := range m.items {
				if m.items[i].Exists {
					m.items[i].Selected = true
				}
			}

		case "n":
			for i := range m.items {
				m.items[i].Selected = false
			}

		case "c", "enter":
			if len(m.selectedItems()) > 0 {
				m.confirmClean = true
			}
		}

		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

// selectedItems returns the items marked for deletion.
func (m Model) selectedItems() []CleanItem {
	var out []CleanItem
	for _, it := range m.items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

// measuringCount returns how many size measurements are still pending.
func (m Model) measuringCount() int {
	n := 0
	for _, it := range m.items {
		if !it.Sized && it.SizeErr == "" {
			n++
		}
	}
	return n
}
