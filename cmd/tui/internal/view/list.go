package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebisa/contabil/internal/chartofaccounts"
	"github.com/ebisa/contabil/internal/trialbalance"
)

type listTab int

const (
	tabTrialBalances listTab = iota
	tabVigencies
	tabItems
)

// ExportRequestMsg asks the root model to open the export screen for a batch.
type ExportRequestMsg struct {
	Batch *trialbalance.Batch
}

type ListModel struct {
	CommonModel
	trialBalances *trialbalance.Service
	charts        *chartofaccounts.Service

	tab       listTab
	table     table.Model
	batches   []*trialbalance.Batch
	vigencies []*chartofaccounts.Vigency
	detail    *trialbalance.Batch
	items     []*trialbalance.Item

	// activeOnly hides deactivated vigencies.
	activeOnly bool
	loading    bool
	err        error
}

var (
	batchColumns = []table.Column{
		{Title: "Empresa", Width: 30},
		{Title: "Período", Width: 9},
		{Title: "Itens", Width: 7},
		{Title: "Usuário", Width: 24},
		{Title: "Importado em", Width: 17},
	}
	vigencyColumns = []table.Column{
		{Title: "Empresa", Width: 30},
		{Title: "Ano", Width: 6},
		{Title: "Plano", Width: 36},
		{Title: "Ativa", Width: 6},
		{Title: "Criada em", Width: 17},
	}
	itemColumns = []table.Column{
		{Title: "Conta", Width: 16},
		{Title: "Descrição", Width: 34},
		{Title: "Saldo anterior", Width: 16},
		{Title: "Débito", Width: 16},
		{Title: "Crédito", Width: 16},
		{Title: "Saldo atual", Width: 16},
	}
)

func NewListModel(tbSvc *trialbalance.Service, coaSvc *chartofaccounts.Service) ListModel {
	t := table.New(
		table.WithColumns(batchColumns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		trialBalances: tbSvc,
		charts:        coaSvc,
		table:         t,
		activeOnly:    true,
		loading:       true,
	}
}

func (m ListModel) Title() string { return "Importações" }

func (m ListModel) ShortHelp() string {
	switch m.tab {
	case tabItems:
		return "Esc: voltar à lista | x: exportar XLSX"
	case tabVigencies:
		return "Esc: voltar | Tab: balancetes | a: ativas/todas | r: atualizar"
	}

	return "Esc: voltar | Tab: vigências | Enter: itens | x: exportar XLSX | r: atualizar"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.batches = msg.batches
			m.vigencies = msg.vigencies
			m.items = msg.items
			m.refreshTable()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.tab == tabItems {
				m.tab, m.detail = tabTrialBalances, nil
				m.loading = true

				return m, m.loadCmd()
			}

			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "tab":
			if m.tab == tabItems {
				return m, nil
			}

			m.tab = (m.tab + 1) % 2
			m.loading = true

			return m, m.loadCmd()
		case "enter":
			if batch := m.selectedBatch(); batch != nil {
				m.tab, m.detail = tabItems, batch
				m.loading = true

				return m, m.loadCmd()
			}
		case "a":
			if m.tab == tabVigencies {
				m.activeOnly = !m.activeOnly
				m.loading = true

				return m, m.loadCmd()
			}
		case "x":
			batch := m.detail
			if m.tab == tabTrialBalances {
				batch = m.selectedBatch()
			}

			if batch != nil {
				return m, func() tea.Msg { return ExportRequestMsg{Batch: batch} }
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Erro: %v", m.err)))
	}

	var header string
	if m.tab == tabItems {
		header = activeStyle.Render(fmt.Sprintf("Balancete %s %02d/%d", m.detail.CompanyName, m.detail.Month, m.detail.Year))
	} else {
		tabs := []string{"Balancetes", "Vigências"}
		tabs[m.tab] = activeStyle.Render("[" + tabs[m.tab] + "]")

		header = tabs[0] + "  " + tabs[1]
		if m.tab == tabVigencies && !m.activeOnly {
			header += faintStyle.Render("  (incluindo inativas)")
		}
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		faintStyle.Render(m.ShortHelp()),
	))
}

func (m ListModel) selectedBatch() *trialbalance.Batch {
	idx := m.table.Cursor()
	if m.tab != tabTrialBalances || idx < 0 || idx >= len(m.batches) {
		return nil
	}

	return m.batches[idx]
}

func (m *ListModel) refreshTable() {
	// Columns change with the tab, so clear rows first to keep them in range.
	m.table.SetRows(nil)

	if m.tab == tabItems {
		m.table.SetColumns(itemColumns)
		m.table.SetRows(itemRows(m.items))
		m.table.SetCursor(0)

		return
	}

	if m.tab == tabVigencies {
		m.table.SetColumns(vigencyColumns)

		rows := make([]table.Row, 0, len(m.vigencies))
		for _, v := range m.vigencies {
			active := "não"
			if v.Active {
				active = "sim"
			}

			rows = append(rows, table.Row{
				v.CompanyName,
				strconv.Itoa(v.Year),
				v.ChartName,
				active,
				v.CreatedAt.Format("02/01/2006 15:04"),
			})
		}

		m.table.SetRows(rows)

		return
	}

	m.table.SetColumns(batchColumns)

	rows := make([]table.Row, 0, len(m.batches))
	for _, b := range m.batches {
		rows = append(rows, table.Row{
			b.CompanyName,
			fmt.Sprintf("%02d/%d", b.Month, b.Year),
			strconv.Itoa(b.ItemCount),
			b.User,
			b.ImportedAt.Format("02/01/2006 15:04"),
		})
	}

	m.table.SetRows(rows)
}

func itemRows(items []*trialbalance.Item) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, table.Row{
			it.AccountCode,
			it.AccountName,
			FormatAmount(it.PriorBalance),
			FormatAmount(it.Debit),
			FormatAmount(it.Credit),
			FormatAmount(it.CurrentBalance),
		})
	}

	return rows
}

// Messages

type loadListMsg struct {
	batches   []*trialbalance.Batch
	vigencies []*chartofaccounts.Vigency
	items     []*trialbalance.Item
	err       error
}

func (m ListModel) loadCmd() tea.Cmd {
	tab, activeOnly, detail := m.tab, m.activeOnly, m.detail

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if tab == tabItems {
			items, err := m.trialBalances.Items(ctx, detail.ID)
			return loadListMsg{items: items, err: err}
		}

		if tab == tabVigencies {
			vs, err := m.charts.ListVigencies(ctx, chartofaccounts.VigencyFilter{ActiveOnly: activeOnly})
			return loadListMsg{vigencies: vs, err: err}
		}

		bs, err := m.trialBalances.List(ctx, trialbalance.ListFilter{})

		return loadListMsg{batches: bs, err: err}
	}
}
