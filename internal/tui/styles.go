package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent   = lipgloss.Color("#6200ee")
	chipBg   = lipgloss.Color("#e0f7fa")
	dim      = lipgloss.Color("245")
	dealRed  = lipgloss.Color("#ff4757")
	starGold = lipgloss.Color("#ffaa00")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
	placeholderStyle = lipgloss.NewStyle().Foreground(dim)

	suggestionStyle       = lipgloss.NewStyle().PaddingLeft(2)
	activeSuggestionStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(accent).Bold(true)
	kindStyle             = lipgloss.NewStyle().Foreground(dim).Italic(true)

	facetStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(dim)
	activeFacetStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#ffffff")).Background(accent)

	chipStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#333333")).Background(chipBg)
	locationChipStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(accent).Background(chipBg)
	selectedChipStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#ffffff")).Background(accent)
	cursorChipStyle   = lipgloss.NewStyle().Underline(true)

	nameStyle  = lipgloss.NewStyle().Bold(true)
	metaStyle  = lipgloss.NewStyle().Foreground(dim)
	dealStyle  = lipgloss.NewStyle().Foreground(dealRed)
	starStyle  = lipgloss.NewStyle().Foreground(starGold)
	emptyStyle = lipgloss.NewStyle().Foreground(dim).Italic(true).PaddingLeft(2)
	helpStyle  = lipgloss.NewStyle().Foreground(dim)
)
