package trialbalance

import (
	"context"
	"fmt"

	"github.com/ebisa/contabil/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=trialbalance

// CompanyResolver looks a company up by its exact registered name and
// returns apperr.ErrCompanyNotFound when there is none.
type CompanyResolver interface {
	IDByName(ctx context.Context, name string) (int64, error)
}

type Repository interface {
	GetBatch(ctx context.Context, id int64) (*Batch, error)
	ListBatches(ctx context.Context, filter ListFilter) ([]*Batch, error)
	ListItems(ctx context.Context, batchID int64) ([]*Item, error)

	// BeginImport opens a transaction holding the import lock for the period.
	BeginImport(ctx context.Context, companyID int64, month, year int) (ImportTx, error)
}

type ImportTx interface {
	// DeletePeriod removes the batches and items of the period and returns
	// the number of items removed.
	DeletePeriod(ctx context.Context, companyID int64, month, year int) (int64, error)
	CreateBatch(ctx context.Context, b *Batch) error
	CreateItems(ctx context.Context, batchID int64, items []ItemParams) error
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

type ListFilter struct {
	CompanyName *string
	Year        *int
	Month       *int
}

type ImportParams struct {
	CompanyName string
	Month       int
	Year        int
	User        string
	Items       []ItemParams
}

type ImportResult struct {
	Batch    *Batch
	Inserted int
	// Skipped counts rows without movement.
	Skipped  int
	Replaced int64
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Batch, error) {
	return s.repo.ListBatches(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (*Batch, error) {
	return s.repo.GetBatch(ctx, id)
}

func (s *Service) Items(ctx context.Context, batchID int64) ([]*Item, error) {
	return s.repo.ListItems(ctx, batchID)
}

// Import replaces the trial balance of a period. The previous batch is
// deleted and the new one written in a single transaction; only rows with
// movement are stored.
func (s *Service) Import(ctx context.Context, params ImportParams) (*ImportResult, error) {
	if params.Month < 1 || params.Month > 12 {
		return nil, fmt.Errorf("%w: month %d", apperr.ErrInvalidInput, params.Month)
	}

	companyID, err := s.companies.IDByName(ctx, params.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("resolving company %q: %w", params.CompanyName, err)
	}

	var (
		rows    = make([]ItemParams, 0, len(params.Items))
		skipped int
	)

	for _, it := range params.Items {
		if !it.HasMovement() {
			skipped++
			continue
		}

		rows = append(rows, it)
	}

	itx, err := s.repo.BeginImport(ctx, companyID, params.Month, params.Year)
	if err != nil {
		return nil, apperr.Persist("begin import", err)
	}
	defer itx.Rollback()

	replaced, err := itx.DeletePeriod(ctx, companyID, params.Month, params.Year)
	if err != nil {
		return nil, apperr.Persist("delete previous trial balance", err)
	}

	batch := &Batch{
		CompanyID:   companyID,
		CompanyName: params.CompanyName,
		Month:       params.Month,
		Year:        params.Year,
		User:        params.User,
	}
	if err := itx.CreateBatch(ctx, batch); err != nil {
		return nil, apperr.Persist("create trial balance", err)
	}

	if len(rows) > 0 {
		if err := itx.CreateItems(ctx, batch.ID, rows); err != nil {
			return nil, apperr.Persist("create trial balance items", err)
		}
	}

	if err := itx.Commit(); err != nil {
		return nil, apperr.Persist("commit import", err)
	}

	batch.ItemCount = len(rows)

	return &ImportResult{
		Batch:    batch,
		Inserted: len(rows),
		Skipped:  skipped,
		Replaced: replaced,
	}, nil
}
