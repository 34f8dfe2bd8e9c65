package company_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ebisa/contabil/internal/company"
)

func TestValidCNPJ(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"11.222.333/0001-81", true},
		{"11444777000161", true},
		{"11.222.333/0001-82", false},
		{"1122233300018", false},
		{"00000000000000", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, company.ValidCNPJ(company.NormalizeCNPJ(tt.in)))
		})
	}
}
