package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ebisa/contabil/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=company

type Repository interface {
	List(ctx context.Context) ([]*Company, error)
	// GetByName returns apperr.ErrNotFound when no company has that name.
	GetByName(ctx context.Context, name string) (*Company, error)
	Create(ctx context.Context, c *Company) error
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return ValidCNPJ(NormalizeCNPJ(fl.Field().String()))
	})

	return &Service{repo: repo, validate: validate}
}

type RegisterParams struct {
	Name string `validate:"required,max=200"`
	CNPJ string `validate:"required,cnpj"`
}

func (s *Service) List(ctx context.Context) ([]*Company, error) {
	return s.repo.List(ctx)
}

// Register stores a new company with its CNPJ normalized to digits.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Company, error) {
	params.Name = strings.TrimSpace(params.Name)

	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}

	c := &Company{Name: params.Name, CNPJ: NormalizeCNPJ(params.CNPJ)}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperr.Persist("create company", err)
	}

	return c, nil
}

// IDByName resolves the exact registered name of a company.
func (s *Service) IDByName(ctx context.Context, name string) (int64, error) {
	c, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return 0, apperr.ErrCompanyNotFound
		}

		return 0, apperr.Persist("get company", err)
	}

	return c.ID, nil
}
