package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/ebisa/contabil/cmd/tui/internal/view"
	"github.com/ebisa/contabil/internal/chartofaccounts"
	coaStore "github.com/ebisa/contabil/internal/chartofaccounts/store"
	"github.com/ebisa/contabil/internal/company"
	companyStore "github.com/ebisa/contabil/internal/company/store"
	"github.com/ebisa/contabil/internal/config"
	"github.com/ebisa/contabil/internal/database"
	"github.com/ebisa/contabil/internal/export"
	"github.com/ebisa/contabil/internal/importer"
	"github.com/ebisa/contabil/internal/logging"
	"github.com/ebisa/contabil/internal/trialbalance"
	tbStore "github.com/ebisa/contabil/internal/trialbalance/store"
)

type model struct {
	user                string
	companyService      *company.Service
	trialBalanceService *trialbalance.Service
	chartService        *chartofaccounts.Service
	importService       *importer.Service
	exportService       *export.Service

	currentView View

	importView    view.ImportModel
	listView      view.ListModel
	companiesView view.CompaniesModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewImport    View = 1
	ViewList      View = 2
	ViewCompanies View = 3
	ViewExport    View = 4
)

func initialModel() (model, func()) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// stderr belongs to the renderer, so the TUI only logs to LOG_FILE.
	log, closer, err := logging.NewFileOnly(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(log)

	db, err := database.New(cfg.ConnectionString(), database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	companySvc := company.NewService(companyStore.New(db))
	tbSvc := trialbalance.NewService(tbStore.New(db, cfg.Import.BatchSize), companySvc)
	coaSvc := chartofaccounts.NewService(coaStore.New(db, cfg.Import.BatchSize), companySvc)
	impSvc := importer.NewService(tbSvc, coaSvc, log)
	expSvc := export.NewService(tbSvc)

	cleanup := func() {
		db.Close()
		closer.Close()
	}

	return model{
		user:                cfg.App.User,
		companyService:      companySvc,
		trialBalanceService: tbSvc,
		chartService:        coaSvc,
		importService:       impSvc,
		exportService:       expSvc,
		currentView:         ViewMenu,
	}, cleanup
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.companyService, m.user)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.trialBalanceService, m.chartService)

				return m, m.listView.Init()
			case "3":
				m.currentView = ViewCompanies
				m.companiesView = view.NewCompaniesModel(m.companyService)

				return m, m.companiesView.Init()
			}
		}
	case view.ExportRequestMsg:
		m.currentView = ViewExport
		m.exportView = view.NewExportModel(m.exportService, msg.Batch)

		return m, m.exportView.Init()
	case view.BackMsg:
		if m.currentView == ViewExport {
			m.currentView = ViewList
			return m, m.listView.Init()
		}

		m.currentView = ViewMenu

		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewCompanies:
		var newModel tea.Model
		newModel, cmd = m.companiesView.Update(msg)
		m.companiesView = newModel.(view.CompaniesModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Contabil\n\n" +
				"1. Importar balancete ou plano de contas\n" +
				"2. Consultar importações\n" +
				"3. Empresas\n\n" +
				"q. Sair",
		)
	case ViewImport:
		return m.importView.View()
	case ViewList:
		return m.listView.View()
	case ViewCompanies:
		return m.companiesView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	m, cleanup := initialModel()
	defer cleanup()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		cleanup()
		os.Exit(1)
	}
}
