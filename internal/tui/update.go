package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/bsan5566/food-waste/internal/models"
	claimservice "github.com/bsan5566/food-waste/internal/services/claim"
	listingservice "github.com/bsan5566/food-waste/internal/services/listing"
	providerservice "github.com/bsan5566/food-waste/internal/services/provider"
	receiverservice "github.com/bsan5566/food-waste/internal/services/receiver"
	reportservice "github.com/bsan5566/food-waste/internal/services/report"
	"github.com/bsan5566/food-waste/internal/tui/huhforms"
)

// overviewMsg carries the data behind the overview pane
type overviewMsg struct {
	overview *models.Overview
	expiring []*models.FoodListing
	lowStock []*models.FoodListing
	pending  []*models.PendingClaim
	recent   []*models.FoodListing
}

// reportMsg carries a finished report run
type reportMsg struct {
	result *reportservice.Result
}

// actionDoneMsg reports a completed manage-tab action
type actionDoneMsg struct {
	status string
}

// errMsg wraps any failed command
type errMsg struct {
	err error
}

// Init loads the overview data
func (m Model) Init() tea.Cmd {
	return m.loadOverviewCmd()
}

func (m Model) loadOverviewCmd() tea.Cmd {
	return func() tea.Msg {
		repo := m.app.Repo()
		cfg := m.app.Config

		overview, err := repo.Overview(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		expiring, err := repo.ListingsNearingExpiry(m.ctx, cfg.Reports.ExpiryWindowDays)
		if err != nil {
			return errMsg{err}
		}
		lowStock, err := repo.LowStockListings(m.ctx, cfg.Reports.LowStockThreshold)
		if err != nil {
			return errMsg{err}
		}
		pending, err := repo.PendingClaims(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		recent, err := repo.GetRecentListings(m.ctx, 5)
		if err != nil {
			return errMsg{err}
		}

		return overviewMsg{
			overview: overview,
			expiring: expiring,
			lowStock: lowStock,
			pending:  pending,
			recent:   recent,
		}
	}
}

func (m Model) runReportCmd(name string, opts reportservice.Options) tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.ReportService.Run(m.ctx, name, opts)
		if err != nil {
			return errMsg{err}
		}
		return reportMsg{result}
	}
}

// Update routes messages to the active pane
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case overviewMsg:
		m.overview = msg.overview
		m.expiring = msg.expiring
		m.lowStock = msg.lowStock
		m.pending = msg.pending
		m.recent = msg.recent
		m.err = nil
		return m, nil

	case reportMsg:
		m.result = msg.result
		m.resultTable = m.resultToTable(msg.result)
		m.showingTable = true
		m.err = nil
		return m, nil

	case actionDoneMsg:
		m.status = msg.status
		m.err = nil
		// Refresh the overview so counts and alerts stay current
		return m, m.loadOverviewCmd()

	case errMsg:
		m.err = msg.err
		m.status = ""
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.activeTab = (m.activeTab + 1) % tab(len(tabNames))
		m.status = ""
		return m, nil

	case "shift+tab":
		m.activeTab = (m.activeTab + tab(len(tabNames)) - 1) % tab(len(tabNames))
		m.status = ""
		return m, nil

	case "1", "2", "3":
		n, _ := strconv.Atoi(msg.String())
		m.activeTab = tab(n - 1)
		m.status = ""
		return m, nil

	case "r":
		if m.activeTab == tabOverview {
			return m, m.loadOverviewCmd()
		}
	}

	switch m.activeTab {
	case tabReports:
		return m.handleReportsKey(msg)
	case tabManage:
		return m.handleManageKey(msg)
	}

	return m, nil
}

func (m Model) handleReportsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showingTable {
		switch msg.String() {
		case "esc", "backspace":
			m.showingTable = false
			return m, nil
		}
		var cmd tea.Cmd
		m.resultTable, cmd = m.resultTable.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if m.reportCursor < len(m.catalog)-1 {
			m.reportCursor++
		}
	case "k", "up":
		if m.reportCursor > 0 {
			m.reportCursor--
		}
	case "enter":
		name := m.catalog[m.reportCursor].Name
		if name == "provider-contacts" {
			// City is required; collect it with a small form first
			m.values = &formValues{}
			m.formKind = formReportCity
			m.form = huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Key("city").
					Title("City").
					Placeholder("Enter city name...").
					Value(&m.values.city),
			))
			return m, m.form.Init()
		}
		return m, m.runReportCmd(name, m.defaultOptions())
	}

	return m, nil
}

func (m Model) handleManageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.manageCursor < len(manageActions)-1 {
			m.manageCursor++
		}
	case "k", "up":
		if m.manageCursor > 0 {
			m.manageCursor--
		}
	case "enter":
		return m.openManageForm(manageActions[m.manageCursor].Kind)
	}
	return m, nil
}

func (m Model) openManageForm(kind formKind) (tea.Model, tea.Cmd) {
	m.values = &formValues{}
	m.formKind = kind

	v := m.values
	switch kind {
	case formAddProvider:
		m.form = huhforms.CreateProviderForm(&v.name, &v.ptype, &v.address, &v.city, &v.contact)
	case formAddReceiver:
		m.form = huhforms.CreateReceiverForm(&v.name, &v.ptype, &v.city, &v.contact)
	case formAddListing:
		m.form = huhforms.CreateListingForm(&v.food, &v.quantity, &v.expiry, &v.provider,
			&v.location, &v.foodType, &v.mealType)
	case formAddClaim:
		v.status = models.StatusPending
		m.form = huhforms.CreateClaimForm(&v.listing, &v.receiver, &v.status)
	case formDeleteProvider:
		m.form = huhforms.CreateDeleteForm("provider", &v.id, &v.confirm)
	case formDeleteReceiver:
		m.form = huhforms.CreateDeleteForm("receiver", &v.id, &v.confirm)
	case formDeleteListing:
		m.form = huhforms.CreateDeleteForm("listing", &v.id, &v.confirm)
	case formDeleteClaim:
		m.form = huhforms.CreateDeleteForm("claim", &v.id, &v.confirm)
	default:
		m.formKind = formNone
		return m, nil
	}

	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.formKind = formNone
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		kind := m.formKind
		m.form = nil
		m.formKind = formNone
		return m.submitForm(kind)
	case huh.StateAborted:
		m.form = nil
		m.formKind = formNone
		return m, nil
	}

	return m, cmd
}

func (m Model) submitForm(kind formKind) (tea.Model, tea.Cmd) {
	v := *m.values

	switch kind {
	case formReportCity:
		return m, m.runReportCmd("provider-contacts", reportservice.Options{City: v.city})

	case formAddProvider:
		return m, func() tea.Msg {
			p, err := m.app.ProviderService.CreateProvider(m.ctx, providerservice.CreateRequest{
				Name:    v.name,
				Type:    v.ptype,
				Address: v.address,
				City:    v.city,
				Contact: v.contact,
			})
			if err != nil {
				return errMsg{err}
			}
			return actionDoneMsg{fmt.Sprintf("Provider '%s' added (ID %d)", p.Name, p.ID)}
		}

	case formAddReceiver:
		return m, func() tea.Msg {
			r, err := m.app.ReceiverService.CreateReceiver(m.ctx, receiverservice.CreateRequest{
				Name:    v.name,
				Type:    v.ptype,
				City:    v.city,
				Contact: v.contact,
			})
			if err != nil {
				return errMsg{err}
			}
			return actionDoneMsg{fmt.Sprintf("Receiver '%s' added (ID %d)", r.Name, r.ID)}
		}

	case formAddListing:
		return m, func() tea.Msg {
			quantity, err := strconv.Atoi(strings.TrimSpace(v.quantity))
			if err != nil {
				return errMsg{fmt.Errorf("quantity must be a number: %q", v.quantity)}
			}
			providerID, err := strconv.Atoi(strings.TrimSpace(v.provider))
			if err != nil {
				return errMsg{fmt.Errorf("provider ID must be a number: %q", v.provider)}
			}
			l, err := m.app.ListingService.CreateListing(m.ctx, listingservice.CreateRequest{
				FoodName:   v.food,
				Quantity:   quantity,
				ExpiryDate: strings.TrimSpace(v.expiry),
				ProviderID: providerID,
				Location:   v.location,
				FoodType:   v.foodType,
				MealType:   v.mealType,
			})
			if err != nil {
				return errMsg{err}
			}
			return actionDoneMsg{fmt.Sprintf("Listing '%s' added (ID %d)", l.FoodName, l.ID)}
		}

	case formAddClaim:
		return m, func() tea.Msg {
			foodID, err := strconv.Atoi(strings.TrimSpace(v.listing))
			if err != nil {
				return errMsg{fmt.Errorf("listing ID must be a number: %q", v.listing)}
			}
			receiverID, err := strconv.Atoi(strings.TrimSpace(v.receiver))
			if err != nil {
				return errMsg{fmt.Errorf("receiver ID must be a number: %q", v.receiver)}
			}
			c, err := m.app.ClaimService.CreateClaim(m.ctx, claimservice.CreateRequest{
				FoodID:     foodID,
				ReceiverID: receiverID,
				Status:     v.status,
			})
			if err != nil {
				return errMsg{err}
			}
			return actionDoneMsg{fmt.Sprintf("Claim added (ID %d)", c.ID)}
		}

	case formDeleteProvider, formDeleteReceiver, formDeleteListing, formDeleteClaim:
		if !v.confirm {
			return m, nil
		}
		return m, func() tea.Msg {
			id, err := strconv.Atoi(strings.TrimSpace(v.id))
			if err != nil {
				return errMsg{fmt.Errorf("ID must be a number: %q", v.id)}
			}
			switch kind {
			case formDeleteProvider:
				err = m.app.ProviderService.DeleteProvider(m.ctx, id)
			case formDeleteReceiver:
				err = m.app.ReceiverService.DeleteReceiver(m.ctx, id)
			case formDeleteListing:
				err = m.app.ListingService.DeleteListing(m.ctx, id)
			case formDeleteClaim:
				err = m.app.ClaimService.DeleteClaim(m.ctx, id)
			}
			if err != nil {
				return errMsg{err}
			}
			return actionDoneMsg{fmt.Sprintf("Deleted record %d", id)}
		}
	}

	return m, nil
}

// defaultOptions fills report options from the loaded configuration
func (m Model) defaultOptions() reportservice.Options {
	return reportservice.Options{
		Days:      m.app.Config.Reports.ExpiryWindowDays,
		Threshold: m.app.Config.Reports.LowStockThreshold,
	}
}
