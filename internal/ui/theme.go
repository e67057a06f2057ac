package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/inflight/internal/provider"
)

// Styles holds the lipgloss styles derived from an airline's theme
// colors.
type Styles struct {
	Logo      lipgloss.Style
	Badge     lipgloss.Style
	BadgeOK   lipgloss.Style
	BadgeWarn lipgloss.Style
	BadgeErr  lipgloss.Style

	Card      lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Route     lipgloss.Style
	Muted     lipgloss.Style
	ErrBanner lipgloss.Style
	InfoLine  lipgloss.Style
}

// newStyles builds the style set for one provider's colors.
func newStyles(theme provider.Theme) Styles {
	primary := lipgloss.Color(theme.Primary)
	secondary := lipgloss.Color(theme.Secondary)

	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Styles{
		Logo: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Badge:     badge.Foreground(lipgloss.Color("255")).Background(secondary),
		BadgeOK:   badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
		BadgeWarn: badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
		BadgeErr:  badge.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		Value: lipgloss.NewStyle().
			Bold(true),

		Route: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),

		ErrBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("160")).
			Padding(0, 1),

		InfoLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
	}
}
