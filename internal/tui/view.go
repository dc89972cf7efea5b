package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bsan5566/food-waste/internal/models"
)

// View renders the active pane under the tab row
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(FormBoxStyle.Render(m.form.View()))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("esc cancel"))
		return b.String()
	}

	switch m.activeTab {
	case tabOverview:
		b.WriteString(m.renderOverview())
	case tabReports:
		b.WriteString(m.renderReports())
	case tabManage:
		b.WriteString(m.renderManage())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(StatusStyle.Render("✓ " + m.status))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.activeTab {
			rendered = append(rendered, ActiveTabStyle.Render(name))
		} else {
			rendered = append(rendered, TabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderOverview() string {
	var b strings.Builder

	if m.overview == nil {
		b.WriteString(DimStyle.Render("Loading..."))
		return b.String()
	}

	metrics := []string{
		MetricStyle.Render(fmt.Sprintf("Providers\n%d", m.overview.Providers)),
		MetricStyle.Render(fmt.Sprintf("Receivers\n%d", m.overview.Receivers)),
		MetricStyle.Render(fmt.Sprintf("Listings\n%d", m.overview.Listings)),
		MetricStyle.Render(fmt.Sprintf("Claims\n%d", m.overview.Claims)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, metrics...))
	b.WriteString("\n\n")

	if len(m.expiring) > 0 {
		b.WriteString(AlertStyle.Render(fmt.Sprintf("⚠ %d listing(s) expiring within %d days",
			len(m.expiring), m.app.Config.Reports.ExpiryWindowDays)))
		b.WriteString("\n")
		for _, l := range limitListings(m.expiring, 3) {
			b.WriteString(fmt.Sprintf("    [%d] %s x%d expires %s\n",
				l.ID, l.FoodName, l.Quantity, l.ExpiryDate))
		}
	}
	if len(m.lowStock) > 0 {
		b.WriteString(AlertStyle.Render(fmt.Sprintf("⚠ %d listing(s) at or below %d units",
			len(m.lowStock), m.app.Config.Reports.LowStockThreshold)))
		b.WriteString("\n")
	}
	if len(m.pending) > 0 {
		b.WriteString(AlertStyle.Render(fmt.Sprintf("⚠ %d pending claim(s)", len(m.pending))))
		b.WriteString("\n")
		for i, p := range m.pending {
			if i == 3 {
				break
			}
			b.WriteString(fmt.Sprintf("    [%d] %s wants %s since %s\n",
				p.ClaimID, p.Receiver, p.FoodName, p.Timestamp))
		}
	}
	if len(m.expiring)+len(m.lowStock)+len(m.pending) == 0 {
		b.WriteString(DimStyle.Render("No alerts"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(TitleStyle.Render("Recent listings"))
	b.WriteString("\n")
	if len(m.recent) == 0 {
		b.WriteString(DimStyle.Render("  (none yet - run 'foodwaste load' or add one in Manage)"))
		b.WriteString("\n")
	}
	for _, l := range m.recent {
		b.WriteString(fmt.Sprintf("  [%d] %s x%d expires %s (%s)\n",
			l.ID, l.FoodName, l.Quantity, l.ExpiryDate, l.Location))
	}

	return b.String()
}

func (m Model) renderReports() string {
	if m.showingTable && m.result != nil {
		var b strings.Builder
		b.WriteString(TitleStyle.Render(m.result.Name))
		b.WriteString("\n")
		if len(m.result.Rows) == 0 {
			b.WriteString(DimStyle.Render("(no rows)"))
		} else {
			b.WriteString(m.resultTable.View())
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Reports"))
	b.WriteString("\n\n")
	for i, info := range m.catalog {
		line := fmt.Sprintf("%-28s %s", info.Name, info.Description)
		if i == m.reportCursor {
			b.WriteString(SelectedItemStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderManage() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Manage"))
	b.WriteString("\n\n")
	for i, action := range manageActions {
		if i == m.manageCursor {
			b.WriteString(SelectedItemStyle.Render("> " + action.Label))
		} else {
			b.WriteString("  " + action.Label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	switch {
	case m.activeTab == tabReports && m.showingTable:
		return "j/k scroll • esc back • tab switch pane • q quit"
	case m.activeTab == tabOverview:
		return "r refresh • tab switch pane • q quit"
	default:
		return "j/k move • enter select • tab switch pane • q quit"
	}
}

func limitListings(listings []*models.FoodListing, n int) []*models.FoodListing {
	if len(listings) > n {
		return listings[:n]
	}
	return listings
}
