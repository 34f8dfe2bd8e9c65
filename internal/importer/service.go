// Package importer is the boundary between callers (HTTP, TUI) and the import
// pipeline. It picks the reader for an upload, runs the transactional import
// and folds every outcome into a Result.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/chartofaccounts"
	"github.com/ebisa/contabil/internal/importer/balancete"
	"github.com/ebisa/contabil/internal/importer/planocontas"
	"github.com/ebisa/contabil/internal/spreadsheet"
	"github.com/ebisa/contabil/internal/trialbalance"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer

type TrialBalanceImporter interface {
	Import(ctx context.Context, params trialbalance.ImportParams) (*trialbalance.ImportResult, error)
}

type ChartImporter interface {
	CheckVigency(ctx context.Context, companyName string, year int) (chartofaccounts.VigencyStatus, error)
	Import(ctx context.Context, params chartofaccounts.ImportParams) (*chartofaccounts.ImportResult, error)
}

// Result is the outcome of one import as shown to the user.
type Result struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Rows      int      `json:"rows,omitempty"`
	Skipped   int      `json:"linhas_ignoradas,omitempty"`
	BatchID   *int64   `json:"balancete_id,omitempty"`
	ChartID   *int64   `json:"plano_contas_id,omitempty"`
	VigencyID *int64   `json:"vigencia_id,omitempty"`
	Dropped   []string `json:"colunas_ignoradas,omitempty"`

	// Err is the cause of a failed import.
	Err error `json:"-"`
}

type TrialBalanceRequest struct {
	Company  string    `validate:"required"`
	Month    int       `validate:"min=1,max=12"`
	Year     int       `validate:"min=1900,max=9999"`
	User     string    `validate:"required"`
	FileName string    `validate:"required"`
	File     io.Reader `validate:"required"`
}

type ChartRequest struct {
	Company     string `validate:"required"`
	Year        int    `validate:"min=1900,max=9999"`
	Name        string `validate:"max=200"`
	Description string
	// ChartID re-imports into an existing chart.
	ChartID *int64
	// ConfirmOverwrite must be set when the year already has an active vigency.
	ConfirmOverwrite bool
	User             string    `validate:"required"`
	FileName         string    `validate:"required"`
	File             io.Reader `validate:"required"`
}

type Service struct {
	trialBalances TrialBalanceImporter
	charts        ChartImporter
	parser        *balancete.Parser
	reader        *planocontas.Reader
	validate      *validator.Validate
	log           *slog.Logger
}

func NewService(trialBalances TrialBalanceImporter, charts ChartImporter, log *slog.Logger) *Service {
	return &Service{
		trialBalances: trialBalances,
		charts:        charts,
		parser:        balancete.NewParser(),
		reader:        planocontas.NewReader(),
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		log:           log,
	}
}

// CheckVigency tells the caller whether a chart import needs confirmation.
func (s *Service) CheckVigency(ctx context.Context, company string, year int) (chartofaccounts.VigencyStatus, error) {
	return s.charts.CheckVigency(ctx, company, year)
}

func (s *Service) ImportTrialBalance(ctx context.Context, req TrialBalanceRequest) Result {
	log := s.log.With(
		"import_id", uuid.NewString(),
		"kind", "balancete",
		"company", req.Company,
		"month", req.Month,
		"year", req.Year,
		"file", req.FileName,
	)

	res, err := s.importTrialBalance(ctx, req)
	if err != nil {
		return s.failure(log, err)
	}

	log.Info("trial balance imported", "rows", res.Rows, "skipped", res.Skipped, "batch_id", *res.BatchID)

	return res
}

func (s *Service) importTrialBalance(ctx context.Context, req TrialBalanceRequest) (Result, error) {
	if err := s.validate.Struct(req); err != nil {
		return Result{}, invalid(err)
	}

	want := balancete.Expectation{Company: req.Company, Month: req.Month, Year: req.Year}

	format, err := spreadsheet.FormatOf(req.FileName)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}

	var items []trialbalance.ItemParams

	if format == spreadsheet.FormatCSV {
		items, err = s.parser.ParseReader(req.File, want)
	} else {
		var rows [][]string

		rows, err = spreadsheet.Rows(req.File, format)
		if err == nil {
			items, err = s.parser.Parse(rows, want)
		}
	}

	if err != nil {
		return Result{}, err
	}

	out, err := s.trialBalances.Import(ctx, trialbalance.ImportParams{
		CompanyName: req.Company,
		Month:       req.Month,
		Year:        req.Year,
		User:        req.User,
		Items:       items,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Balancete %02d/%d importado com sucesso.", req.Month, req.Year),
		Rows:    out.Inserted,
		Skipped: out.Skipped,
		BatchID: &out.Batch.ID,
	}, nil
}

func (s *Service) ImportChart(ctx context.Context, req ChartRequest) Result {
	log := s.log.With(
		"import_id", uuid.NewString(),
		"kind", "plano_contas",
		"company", req.Company,
		"year", req.Year,
		"file", req.FileName,
	)

	res, err := s.importChart(ctx, req)
	if err != nil {
		return s.failure(log, err)
	}

	log.Info("chart of accounts imported",
		"rows", res.Rows, "chart_id", *res.ChartID, "vigency_id", *res.VigencyID, "dropped", res.Dropped)

	return res
}

func (s *Service) importChart(ctx context.Context, req ChartRequest) (Result, error) {
	if err := s.validate.Struct(req); err != nil {
		return Result{}, invalid(err)
	}

	status, err := s.charts.CheckVigency(ctx, req.Company, req.Year)
	if err != nil {
		return Result{}, err
	}

	if status.Exists && !req.ConfirmOverwrite {
		return Result{}, apperr.ErrVigencyExists
	}

	format, err := spreadsheet.FormatOf(req.FileName)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}

	sheet, err := s.reader.Read(req.File, format)
	if err != nil {
		return Result{}, err
	}

	out, err := s.charts.Import(ctx, chartofaccounts.ImportParams{
		CompanyName: req.Company,
		Year:        req.Year,
		Name:        req.Name,
		Description: req.Description,
		ChartID:     req.ChartID,
		User:        req.User,
		Items:       sheet.Items,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success:   true,
		Message:   "Plano importado e vigência atualizada com sucesso.",
		Rows:      out.Upserted,
		Skipped:   sheet.Skipped,
		ChartID:   &out.Chart.ID,
		VigencyID: &out.Vigency.ID,
		Dropped:   sheet.Dropped,
	}, nil
}

// failure maps err to a user-facing message. Errors outside the import
// taxonomy are logged and reported without detail.
func (s *Service) failure(log *slog.Logger, err error) Result {
	var (
		mismatch *apperr.ContextMismatchError
		schema   *apperr.SchemaError
		format   *apperr.FormatError
		persist  *apperr.PersistenceError
		msg      string
	)

	switch {
	case errors.As(err, &mismatch):
		msg = fmt.Sprintf("O arquivo não corresponde à importação: %s esperado %q, encontrado %q.",
			mismatch.Field, mismatch.Expected, mismatch.Got)
	case errors.As(err, &schema):
		msg = "Colunas obrigatórias ausentes: " + strings.Join(schema.Missing, ", ") + "."
		for _, m := range schema.Missing {
			if hint, ok := schema.Hints[m]; ok {
				msg += fmt.Sprintf(" Para %s, a coluna %q é a mais próxima.", m, hint)
			}
		}
	case errors.As(err, &format):
		msg = fmt.Sprintf("Arquivo mal formatado na linha %d: %s.", format.Line, format.Msg)
	case errors.Is(err, apperr.ErrDecode):
		msg = "Não foi possível decodificar o arquivo."
	case errors.Is(err, apperr.ErrCompanyNotFound):
		msg = "Empresa não encontrada."
	case errors.Is(err, apperr.ErrVigencyExists):
		msg = "Já existe vigência ativa para a empresa neste ano. Confirme a substituição para continuar."
	case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrMalformed):
		msg = err.Error()
	case errors.As(err, &persist):
		log.Error("import rolled back", "op", persist.Op, "error", persist.Err)
		return Result{Message: "Erro ao gravar a importação: " + persist.Err.Error(), Err: err}
	default:
		log.Error("import failed", "error", err)
		return Result{Message: "Erro inesperado na importação.", Err: err}
	}

	log.Warn("import rejected", "error", err)

	return Result{Message: msg, Err: err}
}

// invalid names the request fields that failed validation.
func invalid(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}

	return fmt.Errorf("%w: %s", apperr.ErrInvalidInput, strings.Join(fields, ", "))
}
