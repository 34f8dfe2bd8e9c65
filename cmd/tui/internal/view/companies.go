package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebisa/contabil/internal/company"
)

type companyForm struct {
	name string
	cnpj string
}

type CompaniesModel struct {
	CommonModel
	companyService *company.Service

	companies []*company.Company
	form      *huh.Form
	fields    *companyForm
	status    string
	err       error
}

func NewCompaniesModel(svc *company.Service) CompaniesModel {
	return CompaniesModel{companyService: svc}
}

func (m CompaniesModel) Title() string { return "Empresas" }

func (m CompaniesModel) ShortHelp() string {
	if m.form != nil {
		return "Esc: cancelar"
	}

	return "Esc: voltar | n: nova empresa"
}

func (m CompaniesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CompaniesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case companyListMsg:
		m.companies, m.err = msg.companies, msg.err
		return m, nil

	case companySavedMsg:
		m.form = nil
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Erro: %v", msg.err))
			return m, nil
		}

		m.status = successStyle.Render(fmt.Sprintf("%s cadastrada.", msg.company.Name))

		return m, m.loadCmd()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.form != nil {
				m.form = nil
				return m, nil
			}

			return m, Back
		}

		if m.form == nil && msg.String() == "n" {
			m.fields = &companyForm{}
			m.form = m.buildForm()
			m.status = ""

			return m, m.form.Init()
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m CompaniesModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome").
				Value(&m.fields.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("nome obrigatório")
					}
					return nil
				}),
			huh.NewInput().
				Title("CNPJ").
				Placeholder("00.000.000/0000-00").
				Value(&m.fields.cnpj).
				Validate(func(s string) error {
					if !company.ValidCNPJ(company.NormalizeCNPJ(s)) {
						return fmt.Errorf("CNPJ inválido")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m CompaniesModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Erro: %v", m.err)))
	}

	var sb strings.Builder

	for _, c := range m.companies {
		fmt.Fprintf(&sb, "%-40s %s\n", c.Name, formatCNPJ(c.CNPJ))
	}

	if len(m.companies) == 0 {
		sb.WriteString(faintStyle.Render("Nenhuma empresa cadastrada.") + "\n")
	}

	content := sb.String()
	if m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render("Nova empresa\n\n"+m.form.View()))
	}

	if m.status != "" {
		content = m.status + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n" + faintStyle.Render(m.ShortHelp()))
}

// formatCNPJ renders 14 digits as 00.000.000/0000-00.
func formatCNPJ(d string) string {
	if len(d) != 14 {
		return d
	}

	return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
}

type companyListMsg struct {
	companies []*company.Company
	err       error
}

type companySavedMsg struct {
	company *company.Company
	err     error
}

func (m CompaniesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cs, err := m.companyService.List(ctx)

		return companyListMsg{companies: cs, err: err}
	}
}

func (m CompaniesModel) saveCmd() tea.Cmd {
	params := company.RegisterParams{Name: m.fields.name, CNPJ: m.fields.cnpj}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.companyService.Register(ctx, params)

		return companySavedMsg{company: c, err: err}
	}
}
