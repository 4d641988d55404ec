// Package ui implements the interactive almanac dashboard.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sigfpe8/astrolib/internal/caltime"
	"github.com/sigfpe8/astrolib/internal/catalog"
	"github.com/sigfpe8/astrolib/internal/coords"
	"github.com/sigfpe8/astrolib/internal/locations"
	"github.com/sigfpe8/astrolib/internal/version"
)

// Panel styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the dashboard state: a selected site, a selected star, and
// the fixed universal instant the page is computed for. The site and
// star are held as values so a caller-supplied variant (a timezone
// override, say) survives until the user navigates away from it.
type Model struct {
	width  int
	height int

	siteIdx int
	starIdx int
	site    locations.Location
	star    catalog.Star
	ut      caltime.DateTime
	epoch   coords.Epoch
}

// New creates a dashboard model for a universal instant, opened on the
// given site and star.
func New(ut caltime.DateTime, site locations.Location, star catalog.Star, epoch coords.Epoch) Model {
	m := Model{
		ut:    ut,
		site:  site,
		star:  star,
		epoch: epoch,
	}
	for i, loc := range locations.Table {
		if strings.EqualFold(loc.Name, site.Name) {
			m.siteIdx = i
		}
	}
	for i, s := range catalog.Stars {
		if strings.EqualFold(s.Name, star.Name) {
			m.starIdx = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.siteIdx = (m.siteIdx + len(locations.Table) - 1) % len(locations.Table)
			m.site = locations.Table[m.siteIdx]
		case "right", "l":
			m.siteIdx = (m.siteIdx + 1) % len(locations.Table)
			m.site = locations.Table[m.siteIdx]
		case "up", "k":
			m.starIdx = (m.starIdx + len(catalog.Stars) - 1) % len(catalog.Stars)
			m.star = catalog.Stars[m.starIdx]
		case "down", "j":
			m.starIdx = (m.starIdx + 1) % len(catalog.Stars)
			m.star = catalog.Stars[m.starIdx]
		case "e":
			if m.epoch.Name == coords.J2000.Name {
				m.epoch = coords.B1950
			} else {
				m.epoch = coords.J2000
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	r := BuildReport(m.site, m.star, m.ut, m.epoch)

	header := titleStyle.Render("astrolib almanac") +
		dimStyle.Render("  v"+version.Version+"  epoch "+m.epoch.Name)

	left := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(renderSitePanel(r)),
		panelStyle.Render(renderClockPanel(r)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(renderStarPanel(r)),
		panelStyle.Render(renderRiseSetPanel(r)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	help := dimStyle.Render("←/→ site   ↑/↓ star   e epoch   q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func renderSitePanel(r Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Observer") + "\n")
	row(&b, "Site", fmt.Sprintf("%s, %s", r.Site.Name, r.Site.Country))
	row(&b, "Coord", r.Site.Coord.String())
	row(&b, "Zone", r.Site.Zone.String())
	return strings.TrimRight(b.String(), "\n")
}

func renderClockPanel(r Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Clocks") + "\n")
	row(&b, "Local", fmt.Sprintf("%s %s", r.LCT.Date, r.LCT.Time))
	row(&b, "Day", r.Weekday)
	row(&b, "UT", fmt.Sprintf("%s %s", r.UT.Date, r.UT.Time))
	row(&b, "JD", fmt.Sprintf("%.5f", r.JD))
	row(&b, "Unix", fmt.Sprintf("%d", r.Unix))
	row(&b, "GST", r.GST.String())
	row(&b, "LST", r.LST.String())
	return strings.TrimRight(b.String(), "\n")
}

func renderStarPanel(r Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Target "+altitudeGlyph(r.Horiz.Alt)) + "\n")
	row(&b, "Star", fmt.Sprintf("%s (mag %.2f)", r.Star.Name, r.Star.Mag))
	row(&b, "RA", r.Star.Pos.RA.HMS().String())
	row(&b, "Dec", r.Star.Pos.Dec.DMS().String())
	row(&b, "Az", r.Horiz.Az.DMS().String())
	row(&b, "Alt", r.Horiz.Alt.DMS().String())
	row(&b, "Ecl", fmt.Sprintf("β %s  λ %s", r.Ecliptic.Lat, r.Ecliptic.Lon))
	row(&b, "Gal", fmt.Sprintf("b %s  l %s", r.Galactic.Lat, r.Galactic.Lon))
	return strings.TrimRight(b.String(), "\n")
}

func renderRiseSetPanel(r Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Horizon") + "\n")

	if r.RiseSetErr != nil {
		b.WriteString(warnStyle.Render(r.RiseSetErr.Error()))
		return b.String()
	}

	row(&b, "Rise", fmt.Sprintf("%s %s  az %s", r.RiseSet.Rise.Date, r.RiseSet.Rise.Time, r.RiseSet.RiseAz.DMS()))
	row(&b, "Set", fmt.Sprintf("%s %s  az %s", r.RiseSet.Set.Date, r.RiseSet.Set.Time, r.RiseSet.SetAz.DMS()))
	return strings.TrimRight(b.String(), "\n")
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-6s", label)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
