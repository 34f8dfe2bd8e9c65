package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ebisa/contabil/internal/apperr"
)

func TestTypedErrors_MatchSentinels(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "context mismatch", err: &apperr.ContextMismatchError{Field: "empresa"}, sentinel: apperr.ErrContextMismatch},
		{name: "schema", err: &apperr.SchemaError{Missing: []string{"cod_conta"}}, sentinel: apperr.ErrSchema},
		{name: "persistence", err: apperr.Persist("insert items", cause), sentinel: apperr.ErrPersistence},
		{name: "format", err: &apperr.FormatError{Line: 3, Msg: "bad period"}, sentinel: apperr.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("import: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := apperr.Persist("delete period", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "delete period: deadlock detected", err.Error())
	assert.NoError(t, apperr.Persist("noop", nil))
}

func TestSchemaError_Message(t *testing.T) {
	err := &apperr.SchemaError{
		Missing: []string{"fl_ativa"},
		Columns: []string{"cod_conta", "nome_conta"},
		Hints:   map[string]string{"fl_ativa": "ativa_conta"},
	}

	assert.Equal(t,
		`missing required columns: fl_ativa (fl_ativa: did you mean "ativa_conta"?); columns found: cod_conta, nome_conta`,
		err.Error())
}
