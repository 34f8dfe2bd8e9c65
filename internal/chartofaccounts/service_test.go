package chartofaccounts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/chartofaccounts"
)

type mocks struct {
	repo      *chartofaccounts.MockRepository
	companies *chartofaccounts.MockCompanyResolver
	itx       *chartofaccounts.MockImportTx
}

func newMocks(t *testing.T) mocks {
	ctrl := gomock.NewController(t)

	return mocks{
		repo:      chartofaccounts.NewMockRepository(ctrl),
		companies: chartofaccounts.NewMockCompanyResolver(ctrl),
		itx:       chartofaccounts.NewMockImportTx(ctrl),
	}
}

func TestService_CheckVigency(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m mocks)
		want    chartofaccounts.VigencyStatus
		wantErr bool
	}{
		{
			name: "UnknownCompany",
			setup: func(m mocks) {
				m.companies.EXPECT().IDByName(gomock.Any(), "Acme").Return(int64(0), apperr.ErrCompanyNotFound)
			},
			want: chartofaccounts.VigencyStatus{},
		},
		{
			name: "NoActiveVigency",
			setup: func(m mocks) {
				m.companies.EXPECT().IDByName(gomock.Any(), "Acme").Return(int64(3), nil)
				m.repo.EXPECT().ActiveVigency(gomock.Any(), int64(3), 2025).Return(nil, nil)
			},
			want: chartofaccounts.VigencyStatus{CompanyID: new(int64(3))},
		},
		{
			name: "ActiveVigency",
			setup: func(m mocks) {
				m.companies.EXPECT().IDByName(gomock.Any(), "Acme").Return(int64(3), nil)
				m.repo.EXPECT().ActiveVigency(gomock.Any(), int64(3), 2025).
					Return(&chartofaccounts.Vigency{ID: 11, ChartID: 8, CompanyID: 3, Year: 2025, Active: true}, nil)
			},
			want: chartofaccounts.VigencyStatus{
				Exists:    true,
				VigencyID: new(int64(11)),
				ChartID:   new(int64(8)),
				CompanyID: new(int64(3)),
			},
		},
		{
			name: "LookupFailure",
			setup: func(m mocks) {
				m.companies.EXPECT().IDByName(gomock.Any(), "Acme").Return(int64(0), errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMocks(t)
			tt.setup(m)

			svc := chartofaccounts.NewService(m.repo, m.companies)
			got, err := svc.CheckVigency(context.Background(), "Acme", 2025)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func items() []chartofaccounts.ItemParams {
	return []chartofaccounts.ItemParams{
		{AccountCode: "1", AccountName: "Ativo", Active: true},
		{AccountCode: "1.1", AccountName: "Circulante", Active: true},
	}
}

func TestService_Import(t *testing.T) {
	t.Run("ReplacesActiveVigency", func(t *testing.T) {
		m := newMocks(t)

		m.companies.EXPECT().IDByName(gomock.Any(), "Acme").Return(int64(3), nil)
		m.repo.EXPECT().BeginImport(gomock.Any(), int64(3), 2025).Return(m.itx, nil)

		gomock.InOrder(
			m.itx.EXPECT().DeactivateVigencies(gomock.Any(), int64(3), 2025).Return(int64(1), nil),
			m.itx.EXPECT().CreateChart(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c *chartofaccounts.Chart) error {
					assert.Equal(t, "Plano de contas Acme 2025", c.Name)
					c.ID = 8
					return nil
				}),
			m.itx.EXPECT().UpsertItems(gomock.Any(), int64(8), items()).Return(nil),
			m.itx.EXPECT().CreateVigency(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, v *chartofaccounts.Vigency) error {
					assert.Equal(t, int64(8), v.ChartID)
					assert.True(t, v.Active)
					v.ID = 12
					return nil
				}),
			m.itx.EXPECT().Commit().Return(nil),
		)
		m.itx.EXPECT().Rollback().Return(nil)

		svc := chartofaccounts.NewService(m.repo, m.companies)
		got, err := svc.Import(context.Background(), chartofaccounts.ImportParams{
			CompanyName: "Acme", Year: 2025, User: "auditor@acme.com", Items: items(),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(8), got.Chart.ID)
		assert.Equal(t, int64(12), got.Vigency.ID)
		assert.Equal(t, 2, got.Upserted)
		assert.Equal(t, int64(1), got.Deactivated)
	})

	t.Run("ReusesExistingChart", func(t *testing.T) {
		m := newMocks(t)
		chartID := int64(8)

		m.companies.EXPECT().IDByName(gomock.Any(), "Acme").Return(int64(3), nil)
		m.repo.EXPECT().BeginImport(gomock.Any(), int64(3), 2026).Return(m.itx, nil)
		m.itx.EXPECT().DeactivateVigencies(gomock.Any(), int64(3), 2026).Return(int64(0), nil)
		m.itx.EXPECT().CreateChart(gomock.Any(), gomock.Any()).Times(0)
		m.itx.EXPECT().UpsertItems(gomock.Any(), chartID, gomock.Any()).Return(nil)
		m.itx.EXPECT().CreateVigency(gomock.Any(), gomock.Any()).Return(nil)
		m.itx.EXPECT().Commit().Return(nil)
		m.itx.EXPECT().Rollback().Return(nil)

		svc := chartofaccounts.NewService(m.repo, m.companies)
		got, err := svc.Import(context.Background(), chartofaccounts.ImportParams{
			CompanyName: "Acme", Year: 2026, Name: "Plano 2026", ChartID: &chartID, Items: items(),
		})
		require.NoError(t, err)
		assert.Equal(t, chartID, got.Vigency.ChartID)
	})

	t.Run("UpsertFailureRollsBack", func(t *testing.T) {
		m := newMocks(t)

		m.companies.EXPECT().IDByName(gomock.Any(), "Acme").Return(int64(3), nil)
		m.repo.EXPECT().BeginImport(gomock.Any(), int64(3), 2025).Return(m.itx, nil)
		m.itx.EXPECT().DeactivateVigencies(gomock.Any(), int64(3), 2025).Return(int64(1), nil)
		m.itx.EXPECT().CreateChart(gomock.Any(), gomock.Any()).Return(nil)
		m.itx.EXPECT().UpsertItems(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("constraint violation"))
		m.itx.EXPECT().CreateVigency(gomock.Any(), gomock.Any()).Times(0)
		m.itx.EXPECT().Commit().Times(0)
		m.itx.EXPECT().Rollback().Return(nil)

		svc := chartofaccounts.NewService(m.repo, m.companies)
		_, err := svc.Import(context.Background(), chartofaccounts.ImportParams{
			CompanyName: "Acme", Year: 2025, Items: items(),
		})
		require.ErrorIs(t, err, apperr.ErrPersistence)

		var perr *apperr.PersistenceError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "upsert chart items", perr.Op)
	})

	t.Run("UnknownCompany", func(t *testing.T) {
		m := newMocks(t)
		m.companies.EXPECT().IDByName(gomock.Any(), "Nope").Return(int64(0), apperr.ErrCompanyNotFound)

		svc := chartofaccounts.NewService(m.repo, m.companies)
		_, err := svc.Import(context.Background(), chartofaccounts.ImportParams{
			CompanyName: "Nope", Year: 2025, Items: items(),
		})
		assert.ErrorIs(t, err, apperr.ErrCompanyNotFound)
	})

	t.Run("NoRows", func(t *testing.T) {
		m := newMocks(t)

		svc := chartofaccounts.NewService(m.repo, m.companies)
		_, err := svc.Import(context.Background(), chartofaccounts.ImportParams{CompanyName: "Acme", Year: 2025})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
}

func TestDedupe(t *testing.T) {
	in := []chartofaccounts.ItemParams{
		{AccountCode: "1", AccountName: "Ativo"},
		{AccountCode: "2", AccountName: "Passivo"},
		{AccountCode: "1", AccountName: "Ativo Total"},
	}

	got := chartofaccounts.Dedupe(in)

	require.Len(t, got, 2)
	assert.Equal(t, "Ativo Total", got[0].AccountName)
	assert.Equal(t, "2", got[1].AccountCode)
}
