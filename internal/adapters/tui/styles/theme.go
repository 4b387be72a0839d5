package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	ErrorCol  = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Directory = lipgloss.NewStyle().
			Foreground(Secondary)

	Rank = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// File list
	FileSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	FileEntry = lipgloss.NewStyle()

	// Panes
	PaneBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	RelatedHeader = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Messages
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorCol).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
