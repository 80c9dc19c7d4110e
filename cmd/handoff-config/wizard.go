package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theimaginaryfoundation/handoff-analytics/settings"
)

// step identifies which menu the wizard is showing.
type step int

const (
	stepConfirm step = iota
	stepMethod
	stepDelivery
	stepScope
	stepDone
)

// outcome is how the wizard ended.
type outcome int

const (
	outcomePending outcome = iota
	outcomeSaved
	outcomeDeclined // user chose not to configure
	outcomeAborted  // user cancelled mid-flight
)

// ScopeProject and ScopeGlobal select where the settings file is written.
const (
	ScopeProject = "project"
	ScopeGlobal  = "global"
)

type menuItem struct {
	title string
	desc  string
	value string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6BCB77")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

// wizardModel walks the user through the settings menus. It never touches the
// filesystem; main saves the result after the program exits.
type wizardModel struct {
	step    step
	outcome outcome
	menu    list.Model

	result settings.Settings
	scope  string

	width  int
	height int
}

func newWizard(existing settings.Settings) wizardModel {
	m := wizardModel{
		step:   stepConfirm,
		result: existing,
		scope:  ScopeProject,
	}
	m.menu = newMenu("Do you want to configure handoff-prompt now?", confirmItems())
	return m
}

func newMenu(title string, items []list.Item) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)
	menu := list.New(items, delegate, 0, 0)
	menu.Title = title
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)
	return menu
}

func confirmItems() []list.Item {
	return []list.Item{
		menuItem{title: "Yes, configure now", value: "yes"},
		menuItem{title: "No, exit", value: "no"},
	}
}

func methodItems() []list.Item {
	return []list.Item{
		menuItem{
			title: "Compact",
			desc:  "Built-in context summarization. Faster, less detailed.",
			value: settings.MethodCompact,
		},
		menuItem{
			title: "Handoff",
			desc:  "Structured continuation document. Better for long-term work.",
			value: settings.MethodHandoff,
		},
	}
}

func deliveryItems() []list.Item {
	return []list.Item{
		menuItem{
			title: "Clipboard",
			desc:  "Resume prompt is copied. You paste it manually.",
			value: settings.ModeClipboard,
		},
		menuItem{
			title: "Auto-paste",
			desc:  "Resume prompt executes automatically after a clear.",
			value: settings.ModeAutoPaste,
		},
	}
}

func scopeItems() []list.Item {
	return []list.Item{
		menuItem{
			title: "Project",
			desc:  "Only affects this project.",
			value: ScopeProject,
		},
		menuItem{
			title: "Global",
			desc:  "Applies to all projects.",
			value: ScopeGlobal,
		},
	}
}

func (m wizardModel) Init() tea.Cmd {
	return nil
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.outcome = outcomeAborted
			return m, tea.Quit
		case "enter":
			return m.selectCurrent()
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// selectCurrent applies the highlighted choice and advances to the next menu.
func (m wizardModel) selectCurrent() (tea.Model, tea.Cmd) {
	item, ok := m.menu.SelectedItem().(menuItem)
	if !ok {
		return m, nil
	}

	switch m.step {
	case stepConfirm:
		if item.value == "no" {
			m.outcome = outcomeDeclined
			return m, tea.Quit
		}
		m.step = stepMethod
		m.menu = newMenu("Choose continuation method:", methodItems())

	case stepMethod:
		m.result.ContinuationMethod = item.value
		if item.value == settings.MethodHandoff {
			m.step = stepDelivery
			m.menu = newMenu("Choose resume prompt delivery:", deliveryItems())
		} else {
			// Compact has no delivery choice; keep the existing mode.
			m.step = stepScope
			m.menu = newMenu("Save configuration globally or for this project only?", scopeItems())
		}

	case stepDelivery:
		m.result.HandoffMode = item.value
		m.step = stepScope
		m.menu = newMenu("Save configuration globally or for this project only?", scopeItems())

	case stepScope:
		m.scope = item.value
		m.step = stepDone
		m.outcome = outcomeSaved
		return m, tea.Quit
	}

	m.menu.SetSize(m.width-4, m.height-6)
	return m, nil
}

func (m wizardModel) View() string {
	if m.step == stepDone || m.outcome != outcomePending {
		return ""
	}
	header := titleStyle.Render("⬡ HANDOFF-PROMPT SETUP")
	help := helpStyle.Render("enter select · ↑/↓ move · esc cancel")
	return fmt.Sprintf("%s\n%s\n%s", header, m.menu.View(), help)
}
