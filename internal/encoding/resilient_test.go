package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ebisa/contabil/internal/encoding"
)

func TestDecodeResilient(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("Período;01/01/2025 a 31/01/2025"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    []byte
		wantText string
		wantEnc  string
	}{
		{
			name:     "utf-8",
			input:    []byte("Empresa;1 - Acme Ltda"),
			wantText: "Empresa;1 - Acme Ltda",
			wantEnc:  "utf-8",
		},
		{
			name:     "utf-8 with bom",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("Período")...),
			wantText: "Período",
			wantEnc:  "utf-8",
		},
		{
			name:     "latin-1",
			input:    latin1,
			wantText: "Período;01/01/2025 a 31/01/2025",
			wantEnc:  "iso-8859-1",
		},
		{
			name:     "empty",
			input:    nil,
			wantText: "",
			wantEnc:  "utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encoding.DecodeResilient(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantEnc, got.Encoding)
		})
	}
}
