package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebisa/contabil/internal/chartofaccounts"
	"github.com/ebisa/contabil/internal/company"
	"github.com/ebisa/contabil/internal/importer"
)

const importTimeout = 2 * time.Minute

type importKind string

const (
	kindTrialBalance importKind = "balancete"
	kindChart        importKind = "plano"
)

type importState int

const (
	importStateLoading importState = iota
	importStateForm
	importStateChecking
	importStateConfirm
	importStateFilePick
	importStateImporting
	importStateResult
)

// importFields lives on the heap so the form keeps writing to the same
// values while the model is copied around by bubbletea.
type importFields struct {
	kind        importKind
	company     string
	month       string
	year        string
	name        string
	description string
	overwrite   bool
}

type ImportModel struct {
	CommonModel
	importService  *importer.Service
	companyService *company.Service
	user           string

	state      importState
	fields     *importFields
	form       *huh.Form
	filePicker filepicker.Model
	spinner    spinner.Model

	vigency chartofaccounts.VigencyStatus
	result  importer.Result
	err     error
}

func NewImportModel(impSvc *importer.Service, companySvc *company.Service, user string) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt", ".xlsx", ".xls"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = activeStyle

	return ImportModel{
		importService:  impSvc,
		companyService: companySvc,
		user:           user,
		fields:         &importFields{kind: kindTrialBalance, year: strconv.Itoa(time.Now().Year())},
		filePicker:     fp,
		spinner:        s,
	}
}

func (m ImportModel) Title() string { return "Importar" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateFilePick:
		return "Esc: voltar ao formulário | Enter: selecionar"
	case importStateResult:
		return "Esc: nova importação"
	}

	return "Esc: voltar"
}

func (m ImportModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCompaniesCmd())
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.handleEsc()
	}

	switch msg := msg.(type) {
	case companiesMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err

			return m, nil
		}

		m.form = m.buildForm(msg.names)
		m.state = importStateForm

		return m, m.form.Init()

	case vigencyMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err

			return m, nil
		}

		m.vigency = msg.status
		if !msg.status.Exists {
			m.state = importStateFilePick
			return m, m.filePicker.Init()
		}

		m.fields.overwrite = false
		m.form = m.buildConfirmForm()
		m.state = importStateConfirm

		return m, m.form.Init()

	case importDoneMsg:
		m.state = importStateResult
		m.result = msg.result
		m.err = nil

		return m, nil
	}

	switch m.state {
	case importStateForm:
		return m.updateForm(msg)
	case importStateConfirm:
		return m.updateConfirm(msg)
	case importStateFilePick:
		return m.updateFilePick(msg)
	case importStateLoading, importStateChecking, importStateImporting:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick, importStateConfirm, importStateResult:
		m.state = importStateLoading
		m.err = nil
		m.result = importer.Result{}

		return m, tea.Batch(m.spinner.Tick, m.loadCompaniesCmd())
	case importStateImporting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.fields.kind == kindChart {
		m.state = importStateChecking
		return m, tea.Batch(m.spinner.Tick, m.checkVigencyCmd())
	}

	m.state = importStateFilePick

	return m, m.filePicker.Init()
}

func (m ImportModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.fields.overwrite {
		return m.handleEsc()
	}

	m.state = importStateFilePick

	return m, m.filePicker.Init()
}

func (m ImportModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		return m, tea.Batch(m.spinner.Tick, m.importCmd(path))
	}

	return m, cmd
}

func validYear(s string) error {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1900 || y > 9999 {
		return fmt.Errorf("ano inválido")
	}

	return nil
}

func validMonth(s string) error {
	mo, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || mo < 1 || mo > 12 {
		return fmt.Errorf("mês deve estar entre 1 e 12")
	}

	return nil
}

func (m ImportModel) buildForm(companies []string) *huh.Form {
	f := m.fields
	isChart := func() bool { return f.kind == kindChart }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[importKind]().
				Title("Arquivo").
				Options(
					huh.NewOption("Balancete mensal", kindTrialBalance),
					huh.NewOption("Plano de contas", kindChart),
				).
				Value(&f.kind),
			huh.NewSelect[string]().
				Title("Empresa").
				Options(huh.NewOptions(companies...)...).
				Value(&f.company).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("cadastre uma empresa primeiro")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().Title("Mês").Placeholder("1-12").Value(&f.month).Validate(validMonth),
			huh.NewInput().Title("Ano").Value(&f.year).Validate(validYear),
		).WithHideFunc(isChart),
		huh.NewGroup(
			huh.NewInput().Title("Ano de vigência").Value(&f.year).Validate(validYear),
			huh.NewInput().Title("Nome do plano").Placeholder("opcional").Value(&f.name),
			huh.NewText().Title("Descrição").Value(&f.description),
		).WithHideFunc(func() bool { return !isChart() }),
	).WithWidth(60).WithShowHelp(false)
}

func (m ImportModel) buildConfirmForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s já tem plano de contas vigente em %s.", m.fields.company, m.fields.year)).
				Description("A vigência atual será desativada.").
				Affirmative("Substituir").
				Negative("Cancelar").
				Value(&m.fields.overwrite),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ImportModel) View() string {
	pad := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case importStateLoading:
		return pad.Render(m.spinner.View() + " Carregando empresas...")
	case importStateForm, importStateConfirm:
		return pad.Render(m.form.View())
	case importStateChecking:
		return pad.Render(m.spinner.View() + " Verificando vigência...")
	case importStateFilePick:
		return pad.Render(fmt.Sprintf("Selecione o arquivo (%s, %s):\n\n%s",
			m.fields.kind, m.fields.company, m.filePicker.View()))
	case importStateImporting:
		return pad.Render(m.spinner.View() + " Importando...")
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Erro: %v", m.err)) + "\n\n(Esc para voltar)")
	}

	if !m.result.Success {
		return style.Render(errorStyle.Render(m.result.Message) + "\n\n(Esc para voltar)")
	}

	lines := []string{successStyle.Render(m.result.Message), ""}
	lines = append(lines, fmt.Sprintf("Linhas gravadas: %d", m.result.Rows))

	if m.result.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Linhas ignoradas: %d", m.result.Skipped))
	}

	if len(m.result.Dropped) > 0 {
		lines = append(lines, faintStyle.Render("Colunas ignoradas: "+strings.Join(m.result.Dropped, ", ")))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n\n(Esc para voltar)")
}

// Messages

type companiesMsg struct {
	names []string
	err   error
}

type vigencyMsg struct {
	status chartofaccounts.VigencyStatus
	err    error
}

type importDoneMsg struct {
	result importer.Result
}

func (m ImportModel) loadCompaniesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		companies, err := m.companyService.List(ctx)
		if err != nil {
			return companiesMsg{err: err}
		}

		names := make([]string, len(companies))
		for i, c := range companies {
			names[i] = c.Name
		}

		return companiesMsg{names: names}
	}
}

func (m ImportModel) checkVigencyCmd() tea.Cmd {
	company := m.fields.company
	year, _ := strconv.Atoi(strings.TrimSpace(m.fields.year))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		status, err := m.importService.CheckVigency(ctx, company, year)

		return vigencyMsg{status: status, err: err}
	}
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	f := *m.fields
	month, _ := strconv.Atoi(strings.TrimSpace(f.month))
	year, _ := strconv.Atoi(strings.TrimSpace(f.year))

	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return importDoneMsg{result: importer.Result{Message: err.Error(), Err: err}}
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		if f.kind == kindChart {
			return importDoneMsg{result: m.importService.ImportChart(ctx, importer.ChartRequest{
				Company:          f.company,
				Year:             year,
				Name:             strings.TrimSpace(f.name),
				Description:      strings.TrimSpace(f.description),
				ConfirmOverwrite: f.overwrite,
				User:             m.user,
				FileName:         filepath.Base(path),
				File:             file,
			})}
		}

		return importDoneMsg{result: m.importService.ImportTrialBalance(ctx, importer.TrialBalanceRequest{
			Company:  f.company,
			Month:    month,
			Year:     year,
			User:     m.user,
			FileName: filepath.Base(path),
			File:     file,
		})}
	}
}
