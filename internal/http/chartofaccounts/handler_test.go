package chartofaccounts_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ebisa/contabil/internal/chartofaccounts"
	"github.com/ebisa/contabil/internal/http/auth"
	handler "github.com/ebisa/contabil/internal/http/chartofaccounts"
	"github.com/ebisa/contabil/internal/importer"
)

const planCSV = "Código Contábil;Descrição;Código Reduzido;Grupo de conta;Ativa\n" +
	"1;ATIVO;1;1;Sim\n" +
	"1.1;CAIXA;2;1;Sim\n"

type fixture struct {
	router http.Handler
	charts *importer.MockChartImporter
	repo   *chartofaccounts.MockRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		charts: importer.NewMockChartImporter(ctrl),
		repo:   chartofaccounts.NewMockRepository(ctrl),
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHandler(
		importer.NewService(importer.NewMockTrialBalanceImporter(ctrl), f.charts, log),
		chartofaccounts.NewService(f.repo, chartofaccounts.NewMockCompanyResolver(ctrl)),
		1<<20,
	)

	r := chi.NewRouter()
	r.Use(auth.Middleware(nil, "auditor@acme.com"))
	r.Route("/planos", h.Routes)
	f.router = r

	return f
}

func upload(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	fw, err := mw.CreateFormFile("file", "plano.csv")
	require.NoError(t, err)
	_, err = io.WriteString(fw, planCSV)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/planos/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func int64Ptr(v int64) *int64 { return &v }

func TestHandler_Import(t *testing.T) {
	active := chartofaccounts.VigencyStatus{Exists: true, VigencyID: int64Ptr(3), ChartID: int64Ptr(1)}

	tests := []struct {
		name       string
		confirm    string
		setup      func(f fixture)
		wantStatus int
	}{
		{
			name:    "NeedsConfirmation",
			confirm: "",
			setup: func(f fixture) {
				f.charts.EXPECT().CheckVigency(gomock.Any(), "Acme", 2025).Return(active, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:    "Confirmed",
			confirm: "true",
			setup: func(f fixture) {
				f.charts.EXPECT().CheckVigency(gomock.Any(), "Acme", 2025).Return(active, nil)
				f.charts.EXPECT().Import(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p chartofaccounts.ImportParams) (*chartofaccounts.ImportResult, error) {
						assert.Equal(t, "Plano 2025", p.Name)
						assert.Equal(t, "auditor@acme.com", p.User)
						return &chartofaccounts.ImportResult{
							Chart:    &chartofaccounts.Chart{ID: 2},
							Vigency:  &chartofaccounts.Vigency{ID: 4},
							Upserted: 2,
						}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, upload(t, map[string]string{
				"empresa": "Acme", "ano": "2025", "nome": "Plano 2025", "confirmar": tt.confirm,
			}))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_Vigency(t *testing.T) {
	f := newFixture(t)
	f.charts.EXPECT().CheckVigency(gomock.Any(), "Acme", 2025).Return(chartofaccounts.VigencyStatus{}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planos/vigencia?empresa=Acme&ano=2025", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"exists":false,"vigencia_id":null,"plano_contas_id":null,"empresa_id":null}`, rec.Body.String())

	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planos/vigencia?empresa=Acme", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_List(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ListVigencies(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter chartofaccounts.VigencyFilter) ([]*chartofaccounts.Vigency, error) {
			assert.True(t, filter.ActiveOnly)
			require.NotNil(t, filter.CompanyName)
			return []*chartofaccounts.Vigency{{ID: 4, CompanyName: "Acme", ChartID: 2, Year: 2025, Active: true}}, nil
		})

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planos?empresa=Acme", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ano_vigencia":2025`)
}
