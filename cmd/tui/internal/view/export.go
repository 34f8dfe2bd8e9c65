package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebisa/contabil/internal/export"
	"github.com/ebisa/contabil/internal/trialbalance"
)

const exportTimeout = 2 * time.Minute

type exportState int

const (
	exportStatePath exportState = iota
	exportStateExporting
	exportStateResult
)

type ExportModel struct {
	CommonModel
	exportService *export.Service
	batch         *trialbalance.Batch

	state   exportState
	form    *huh.Form
	dir     *string
	spinner spinner.Model
	written string
	err     error
}

func NewExportModel(svc *export.Service, batch *trialbalance.Batch) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = activeStyle

	dir := "./exports"

	m := ExportModel{
		exportService: svc,
		batch:         batch,
		dir:           &dir,
		spinner:       s,
	}
	m.form = m.buildPathForm()

	return m
}

func (m ExportModel) Title() string { return "Exportar balancete" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: voltar"
	case exportStateExporting:
		return "Exportando..."
	}

	return "Esc: voltar | Enter: confirmar"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.state != exportStateExporting {
		return m, Back
	}

	switch m.state {
	case exportStatePath:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = exportStateExporting

		return m, tea.Batch(m.spinner.Tick, m.runExportCmd(*m.dir))

	case exportStateExporting:
		if result, ok := msg.(exportResultMsg); ok {
			m.state = exportStateResult
			m.written = result.path
			m.err = result.err

			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ExportModel) buildPathForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Pasta de destino").
				Description("Será criada se não existir").
				Placeholder("./exports").
				Value(m.dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	pad := lipgloss.NewStyle().Padding(1)
	title := fmt.Sprintf("Balancete %s %02d/%d\n\n", m.batch.CompanyName, m.batch.Month, m.batch.Year)

	switch m.state {
	case exportStatePath:
		return pad.Render(title + m.form.View())
	case exportStateExporting:
		return pad.Render(title + m.spinner.View() + " Gerando planilha...")
	case exportStateResult:
		if m.err != nil {
			return pad.Render(title + errorStyle.Render(fmt.Sprintf("Erro: %v", m.err)))
		}

		return pad.Render(title + successStyle.Render("Planilha gravada em "+m.written))
	}

	return ""
}

type exportResultMsg struct {
	path string
	err  error
}

func (m ExportModel) runExportCmd(dir string) tea.Cmd {
	batch := m.batch

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportResultMsg{err: fmt.Errorf("creating output directory: %w", err)}
		}

		path := filepath.Join(dir, export.FileName(batch))

		f, err := os.Create(path)
		if err != nil {
			return exportResultMsg{err: fmt.Errorf("creating file: %w", err)}
		}

		if err := m.exportService.TrialBalanceXLSX(ctx, batch.ID, f); err != nil {
			f.Close()
			_ = os.Remove(path)

			return exportResultMsg{err: err}
		}

		if err := f.Close(); err != nil {
			return exportResultMsg{err: fmt.Errorf("writing file: %w", err)}
		}

		return exportResultMsg{path: path}
	}
}
