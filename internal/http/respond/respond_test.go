package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/http/respond"
	"github.com/ebisa/contabil/internal/importer"
)

func TestImportStatus(t *testing.T) {
	tests := []struct {
		name string
		res  importer.Result
		want int
	}{
		{"Success", importer.Result{Success: true}, http.StatusCreated},
		{"VigencyExists", importer.Result{Err: apperr.ErrVigencyExists}, http.StatusConflict},
		{"CompanyNotFound", importer.Result{Err: fmt.Errorf("resolving: %w", apperr.ErrCompanyNotFound)}, http.StatusNotFound},
		{"Mismatch", importer.Result{Err: &apperr.ContextMismatchError{Field: "empresa"}}, http.StatusUnprocessableEntity},
		{"Schema", importer.Result{Err: &apperr.SchemaError{Missing: []string{"cod_conta"}}}, http.StatusUnprocessableEntity},
		{"Persistence", importer.Result{Err: apperr.Persist("commit", errors.New("x"))}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, respond.ImportStatus(tt.res))
		})
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, apperr.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	respond.Error(rec, errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
