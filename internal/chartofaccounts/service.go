package chartofaccounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebisa/contabil/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=chartofaccounts

type CompanyResolver interface {
	IDByName(ctx context.Context, name string) (int64, error)
}

type Repository interface {
	// ActiveVigency returns nil without error when the company has no active
	// vigency for the year.
	ActiveVigency(ctx context.Context, companyID int64, year int) (*Vigency, error)
	ListVigencies(ctx context.Context, filter VigencyFilter) ([]*Vigency, error)
	ListItems(ctx context.Context, chartID int64) ([]*Item, error)

	BeginImport(ctx context.Context, companyID int64, year int) (ImportTx, error)
}

type ImportTx interface {
	DeactivateVigencies(ctx context.Context, companyID int64, year int) (int64, error)
	CreateChart(ctx context.Context, c *Chart) error
	UpsertItems(ctx context.Context, chartID int64, items []ItemParams) error
	CreateVigency(ctx context.Context, v *Vigency) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo      Repository
	companies CompanyResolver
}

func NewService(repo Repository, companies CompanyResolver) *Service {
	return &Service{repo: repo, companies: companies}
}

type VigencyFilter struct {
	CompanyName *string
	Year        *int
	ActiveOnly  bool
}

type ImportParams struct {
	CompanyName string
	Year        int
	Name        string
	Description string
	// ChartID re-imports into an existing chart instead of creating one.
	ChartID *int64
	User    string
	Items   []ItemParams
}

type ImportResult struct {
	Chart       *Chart
	Vigency     *Vigency
	Upserted    int
	Deactivated int64
}

// CheckVigency reports the active vigency of a company for a year. An
// unknown company is not an error: it simply has no vigency.
func (s *Service) CheckVigency(ctx context.Context, companyName string, year int) (VigencyStatus, error) {
	companyID, err := s.companies.IDByName(ctx, companyName)
	if err != nil {
		if errors.Is(err, apperr.ErrCompanyNotFound) {
			return VigencyStatus{}, nil
		}

		return VigencyStatus{}, fmt.Errorf("resolving company %q: %w", companyName, err)
	}

	status := VigencyStatus{CompanyID: &companyID}

	v, err := s.repo.ActiveVigency(ctx, companyID, year)
	if err != nil {
		return VigencyStatus{}, fmt.Errorf("looking up vigency: %w", err)
	}

	if v != nil {
		status.Exists = true
		status.VigencyID = &v.ID
		status.ChartID = &v.ChartID
	}

	return status, nil
}

func (s *Service) ListVigencies(ctx context.Context, filter VigencyFilter) ([]*Vigency, error) {
	return s.repo.ListVigencies(ctx, filter)
}

func (s *Service) Items(ctx context.Context, chartID int64) ([]*Item, error) {
	return s.repo.ListItems(ctx, chartID)
}

// Import writes a chart and makes it the active vigency of the company for
// the year. Any previously active vigency for that year is deactivated in the
// same transaction.
func (s *Service) Import(ctx context.Context, params ImportParams) (*ImportResult, error) {
	if params.Year < 1900 {
		return nil, fmt.Errorf("%w: year %d", apperr.ErrInvalidInput, params.Year)
	}

	items := Dedupe(params.Items)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no valid rows", apperr.ErrInvalidInput)
	}

	companyID, err := s.companies.IDByName(ctx, params.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("resolving company %q: %w", params.CompanyName, err)
	}

	itx, err := s.repo.BeginImport(ctx, companyID, params.Year)
	if err != nil {
		return nil, apperr.Persist("begin import", err)
	}
	defer itx.Rollback()

	deactivated, err := itx.DeactivateVigencies(ctx, companyID, params.Year)
	if err != nil {
		return nil, apperr.Persist("deactivate vigency", err)
	}

	chart := &Chart{Name: params.Name, Description: params.Description}
	if chart.Name == "" {
		chart.Name = fmt.Sprintf("Plano de contas %s %d", params.CompanyName, params.Year)
	}

	if params.ChartID != nil {
		chart.ID = *params.ChartID
	} else if err := itx.CreateChart(ctx, chart); err != nil {
		return nil, apperr.Persist("create chart", err)
	}

	if err := itx.UpsertItems(ctx, chart.ID, items); err != nil {
		return nil, apperr.Persist("upsert chart items", err)
	}

	vigency := &Vigency{
		CompanyID:   companyID,
		CompanyName: params.CompanyName,
		ChartID:     chart.ID,
		ChartName:   chart.Name,
		Year:        params.Year,
		Active:      true,
		User:        params.User,
	}
	if err := itx.CreateVigency(ctx, vigency); err != nil {
		return nil, apperr.Persist("create vigency", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, apperr.Persist("commit import", err)
	}

	return &ImportResult{
		Chart:       chart,
		Vigency:     vigency,
		Upserted:    len(items),
		Deactivated: deactivated,
	}, nil
}

// Dedupe keeps one item per account code. The last occurrence wins but keeps
// the position of the first, since a single upsert statement cannot touch
// the same row twice.
func Dedupe(items []ItemParams) []ItemParams {
	pos := make(map[string]int, len(items))
	out := make([]ItemParams, 0, len(items))

	for _, it := range items {
		if i, ok := pos[it.AccountCode]; ok {
			out[i] = it
			continue
		}

		pos[it.AccountCode] = len(out)
		out = append(out, it)
	}

	return out
}
