package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/company"
)

func TestService_Register(t *testing.T) {
	tests := []struct {
		name    string
		params  company.RegisterParams
		setup   func(repo *company.MockRepository)
		wantErr error
	}{
		{
			name:   "NormalizesCNPJ",
			params: company.RegisterParams{Name: "  Acme Ltda ", CNPJ: "11.222.333/0001-81"},
			setup: func(repo *company.MockRepository) {
				repo.EXPECT().Create(gomock.Any(), &company.Company{Name: "Acme Ltda", CNPJ: "11222333000181"}).
					DoAndReturn(func(_ context.Context, c *company.Company) error {
						c.ID = 3
						return nil
					})
			},
		},
		{
			name:    "InvalidCheckDigit",
			params:  company.RegisterParams{Name: "Acme", CNPJ: "11.222.333/0001-80"},
			setup:   func(repo *company.MockRepository) {},
			wantErr: apperr.ErrInvalidInput,
		},
		{
			name:    "MissingName",
			params:  company.RegisterParams{Name: "   ", CNPJ: "11222333000181"},
			setup:   func(repo *company.MockRepository) {},
			wantErr: apperr.ErrInvalidInput,
		},
		{
			name:   "DuplicateName",
			params: company.RegisterParams{Name: "Acme", CNPJ: "11222333000181"},
			setup: func(repo *company.MockRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("unique violation"))
			},
			wantErr: apperr.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := company.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := company.NewService(repo).Register(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(3), got.ID)
		})
	}
}

func TestService_IDByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := company.NewMockRepository(ctrl)
	svc := company.NewService(repo)

	repo.EXPECT().GetByName(gomock.Any(), "Acme").Return(&company.Company{ID: 7, Name: "Acme"}, nil)
	repo.EXPECT().GetByName(gomock.Any(), "Nobody").Return(nil, apperr.ErrNotFound)
	repo.EXPECT().GetByName(gomock.Any(), "Broken").Return(nil, errors.New("connection reset"))

	id, err := svc.IDByName(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = svc.IDByName(context.Background(), "Nobody")
	assert.ErrorIs(t, err, apperr.ErrCompanyNotFound)

	_, err = svc.IDByName(context.Background(), "Broken")
	assert.ErrorIs(t, err, apperr.ErrPersistence)
}
