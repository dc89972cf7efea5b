package tui

import "github.com/charmbracelet/lipgloss"

// Style definitions for the dashboard UI
// These styles follow Lipgloss conventions for composable terminal styling

var (
	// Tab colors
	highlight = lipgloss.Color("#874BFD")
	subtle    = lipgloss.Color("#D9DCCF")

	// Tab borders - active tab has no bottom border to "open" into content
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle = lipgloss.NewStyle().
			Border(tabBorder, true).
			BorderForeground(highlight).
			Padding(0, 1)

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	// TitleStyle defines section headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// MetricStyle defines the overview metric boxes
	MetricStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			MarginRight(1)

	// AlertStyle highlights expiring and low-stock warnings
	AlertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// ErrorStyle renders failures in the status line
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// StatusStyle renders confirmation messages in the status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// SelectedItemStyle marks the highlighted row in menus
	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(highlight)

	// DimStyle renders secondary text (descriptions, help)
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	// FormBoxStyle frames the manage-tab forms
	FormBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(1, 2)

	// HelpStyle renders the bottom help bar
	HelpStyle = lipgloss.NewStyle().
			Foreground(subtle)
)
