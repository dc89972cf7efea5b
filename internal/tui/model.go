// Package tui implements the interactive dashboard.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"

	"github.com/bsan5566/food-waste/internal/app"
	"github.com/bsan5566/food-waste/internal/models"
	reportservice "github.com/bsan5566/food-waste/internal/services/report"
)

// tab identifies one of the three dashboard panes
type tab int

const (
	tabOverview tab = iota
	tabReports
	tabManage
)

var tabNames = []string{"Overview", "Reports", "Manage"}

// formKind identifies which manage-tab form is open
type formKind int

const (
	formNone formKind = iota
	formAddProvider
	formAddReceiver
	formAddListing
	formAddClaim
	formDeleteProvider
	formDeleteReceiver
	formDeleteListing
	formDeleteClaim
	formReportCity
)

// manageActions lists the manage-tab menu in display order
var manageActions = []struct {
	Label string
	Kind  formKind
}{
	{"Add provider", formAddProvider},
	{"Add receiver", formAddReceiver},
	{"Add food listing", formAddListing},
	{"Add claim", formAddClaim},
	{"Delete provider", formDeleteProvider},
	{"Delete receiver", formDeleteReceiver},
	{"Delete food listing", formDeleteListing},
	{"Delete claim", formDeleteClaim},
}

// formValues backs the huh form fields. Numeric fields are captured as
// strings and parsed when the form completes.
type formValues struct {
	name     string
	ptype    string
	address  string
	city     string
	contact  string
	food     string
	quantity string
	expiry   string
	provider string
	location string
	foodType string
	mealType string
	listing  string
	receiver string
	status   string
	id       string
	confirm  bool
}

// Model is the Bubble Tea model for the whole dashboard
type Model struct {
	app *app.App
	ctx context.Context

	width  int
	height int

	activeTab tab

	// Overview pane
	overview *models.Overview
	expiring []*models.FoodListing
	lowStock []*models.FoodListing
	pending  []*models.PendingClaim
	recent   []*models.FoodListing

	// Reports pane
	catalog      []reportservice.Info
	reportCursor int
	result       *reportservice.Result
	resultTable  table.Model
	showingTable bool

	// Manage pane
	manageCursor int
	form         *huh.Form
	formKind     formKind

	// values is shared across Model copies so the huh field pointers
	// stay valid while Bubble Tea passes the model by value
	values *formValues

	status string
	err    error
}

// InitialModel creates the dashboard model backed by the given app container
func InitialModel(a *app.App) Model {
	return Model{
		app:     a,
		ctx:     context.Background(),
		catalog: reportservice.Catalog(),
		values:  &formValues{},
	}
}

// resultToTable converts a report result into a bubbles table sized to fit
// the current terminal.
func (m *Model) resultToTable(res *reportservice.Result) table.Model {
	widths := make([]int, len(res.Columns))
	for i, col := range res.Columns {
		widths[i] = len(col)
	}
	for _, row := range res.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cols := make([]table.Column, len(res.Columns))
	for i, col := range res.Columns {
		cols[i] = table.Column{Title: col, Width: widths[i] + 2}
	}

	rows := make([]table.Row, len(res.Rows))
	for i, row := range res.Rows {
		rows[i] = table.Row(row)
	}

	height := m.height - 8
	if height < 5 {
		height = 5
	}
	if len(rows)+1 < height {
		height = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(highlight)
	s.Selected = s.Selected.Foreground(subtle).Background(highlight)
	t.SetStyles(s)

	return t
}
