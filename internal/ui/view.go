package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/inflight/internal/payload"
	"github.com/five82/inflight/internal/portal"
)

// placeholder renders absent fields; missing data is normal, not an
// error.
const placeholder = "--"

// View renders the whole screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderCard())
	b.WriteString("\n")
	if banner := m.renderBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	badgeStyle := m.styles.Badge
	switch {
	case m.refreshing:
		badgeStyle = m.styles.BadgeWarn
	case !m.snapshot.HasResult:
		badgeStyle = m.styles.BadgeWarn
	case m.snapshot.Result.Source == portal.SourceLive:
		badgeStyle = m.styles.BadgeOK
	case m.snapshot.Result.Source == portal.SourceError:
		badgeStyle = m.styles.BadgeErr
	case m.snapshot.Result.Offline:
		badgeStyle = m.styles.BadgeErr
	}

	badge := badgeStyle.Render(m.badgeText())
	header := m.styles.Logo.Render(m.prov.Logo) + "  " + badge
	if m.refreshing {
		header += " " + m.spin.View()
	}
	return header
}

// badgeText maps the latest result to the user-facing status marker.
func (m Model) badgeText() string {
	if m.refreshing {
		return "Updating..."
	}
	if !m.snapshot.HasResult {
		return "Loading..."
	}
	res := m.snapshot.Result
	if res.Offline {
		return "Offline Mode"
	}
	switch res.Source {
	case portal.SourceLive:
		return "Connected"
	case portal.SourceCached:
		return "Cached"
	case portal.SourceDemo:
		return "Demo Mode"
	default:
		return "Not Connected"
	}
}

// displayStatus returns the record to draw. During an error cycle the
// last good values stay up rather than blanking the card.
func (m Model) displayStatus() payload.FlightStatus {
	if m.snapshot.HasResult && m.snapshot.Result.Source != portal.SourceError {
		return m.snapshot.Result.Status
	}
	if m.lastGood != nil {
		return *m.lastGood
	}
	return payload.FlightStatus{}
}

func (m Model) renderCard() string {
	st := m.displayStatus()

	route := fmt.Sprintf("%s → %s", textOr(st.Origin), textOr(st.Destination))

	rows := []string{
		m.cardRow("Flight", textOr(st.FlightNumber)),
		m.styles.Route.Render(route),
		"",
		m.cardRow("Altitude", textOr(st.AltitudeDisplay)),
		m.cardRow("Speed", textOr(st.SpeedDisplay)),
		m.cardRow("Time left", textOr(st.TimeRemainingDisplay)),
		"",
		m.bar.ViewAs(st.ProgressPercent / 100),
	}

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) cardRow(label, value string) string {
	return m.styles.Label.Render(fmt.Sprintf("%-10s", label)) + m.styles.Value.Render(value)
}

func (m Model) renderBanner() string {
	if !m.snapshot.HasResult || m.snapshot.Result.Message == "" {
		return ""
	}
	if m.snapshot.Result.Source == portal.SourceError {
		return m.styles.ErrBanner.Render(m.snapshot.Result.Message)
	}
	return m.styles.InfoLine.Render(m.snapshot.Result.Message)
}

func (m Model) renderFooter() string {
	var parts []string
	if m.snapshot.HasResult {
		parts = append(parts, m.styles.Muted.Render(
			"Last updated: "+m.snapshot.Result.FetchedAt.Format("15:04:05")))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

// textOr substitutes the placeholder for absent values.
func textOr(v *string) string {
	if v == nil || *v == "" {
		return placeholder
	}
	return *v
}
