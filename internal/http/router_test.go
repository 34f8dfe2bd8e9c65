package http_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ebisa/contabil/internal/chartofaccounts"
	"github.com/ebisa/contabil/internal/company"
	"github.com/ebisa/contabil/internal/export"
	api "github.com/ebisa/contabil/internal/http"
	"github.com/ebisa/contabil/internal/http/auth"
	httpcoa "github.com/ebisa/contabil/internal/http/chartofaccounts"
	httpcompany "github.com/ebisa/contabil/internal/http/company"
	httptb "github.com/ebisa/contabil/internal/http/trialbalance"
	"github.com/ebisa/contabil/internal/importer"
	"github.com/ebisa/contabil/internal/trialbalance"
)

func newRouter(t *testing.T, secret string) (http.Handler, *company.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	companies := company.NewMockRepository(ctrl)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	importSvc := importer.NewService(importer.NewMockTrialBalanceImporter(ctrl), importer.NewMockChartImporter(ctrl), log)

	router := api.New(
		api.Options{CORSOrigins: []string{"http://app.local"}, JWTSecret: secret},
		httptb.NewHandler(
			importSvc,
			trialbalance.NewService(trialbalance.NewMockRepository(ctrl), trialbalance.NewMockCompanyResolver(ctrl)),
			export.NewService(export.NewMockTrialBalances(ctrl)),
			1<<20,
		),
		httpcoa.NewHandler(
			importSvc,
			chartofaccounts.NewService(chartofaccounts.NewMockRepository(ctrl), chartofaccounts.NewMockCompanyResolver(ctrl)),
			1<<20,
		),
		httpcompany.NewHandler(company.NewService(companies)),
	)

	return router, companies
}

func TestRouter_RequiresToken(t *testing.T) {
	router, companies := newRouter(t, "s3cret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/empresas", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.Sign([]byte("s3cret"), "auditor@acme.com", nil)
	assert.NoError(t, err)

	companies.EXPECT().List(gomock.Any()).Return([]*company.Company{{ID: 1, Name: "Acme"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/empresas", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_HealthAndCORS(t *testing.T) {
	router, _ := newRouter(t, "s3cret")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/empresas", nil)
	req.Header.Set("Origin", "http://app.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "http://app.local", rec.Header().Get("Access-Control-Allow-Origin"))
}
