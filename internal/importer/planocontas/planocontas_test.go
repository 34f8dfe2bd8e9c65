package planocontas_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/importer/planocontas"
	"github.com/ebisa/contabil/internal/spreadsheet"
)

const siengeCSV = `Código Contábil;Descrição;Código Reduzido;Grupo de conta;Tipo de Conta;Redutora;Data Cadastramento;Ativa;Observação
1;ATIVO;1;1;Sintética;Não;15/03/2024;Sim;x
1.1;ATIVO CIRCULANTE;2;1;Sintética;N;2024-03-15;S;
1.1.1;CAIXA;;1;Analítica;N;;S;
;SEM CODIGO;4;1;;;;S;
2;PASSIVO;5.0;2;Sintética;sim;;não;
`

func TestReader_CSV(t *testing.T) {
	sheet, err := planocontas.NewReader().Read(strings.NewReader(siengeCSV), spreadsheet.FormatCSV)
	require.NoError(t, err)

	require.Len(t, sheet.Items, 3)
	assert.Equal(t, 2, sheet.Skipped)
	assert.Equal(t, []string{"Observação"}, sheet.Dropped)

	ativo := sheet.Items[0]
	assert.Equal(t, "1", ativo.AccountCode)
	assert.Equal(t, "ATIVO", ativo.AccountName)
	assert.Equal(t, 1, *ativo.ReducedCode)
	assert.Equal(t, 1, *ativo.GroupCode)
	assert.Equal(t, "Sintética", ativo.AccountType)
	assert.False(t, ativo.Contra)
	assert.True(t, ativo.Active)
	require.NotNil(t, ativo.RegisteredAt)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *ativo.RegisteredAt)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *sheet.Items[1].RegisteredAt)

	passivo := sheet.Items[2]
	assert.Equal(t, 5, *passivo.ReducedCode)
	assert.True(t, passivo.Contra)
	assert.False(t, passivo.Active)
	assert.Nil(t, passivo.RegisteredAt)
}

func TestReader_CommaSeparatedLatin1(t *testing.T) {
	csv := "cod_conta,nome_conta,cod_reduzido,grupo_contas,fl_ativa\n3.1,RECEITA DE SERVIÇOS,30,3,1\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(csv)
	require.NoError(t, err)

	sheet, err := planocontas.NewReader().Read(strings.NewReader(latin1), spreadsheet.FormatCSV)
	require.NoError(t, err)
	require.Len(t, sheet.Items, 1)
	assert.Equal(t, "RECEITA DE SERVIÇOS", sheet.Items[0].AccountName)
	assert.Empty(t, sheet.Dropped)
}

func TestReader_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"Conta", "Nome da Conta", "Reduzido", "Grupo", "Status", "Data Cadastramento"},
		{"4.1", "DESPESAS", 41, 4, "true", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	sheet, err := planocontas.NewReader().Read(&buf, spreadsheet.FormatXLSX)
	require.NoError(t, err)
	require.Len(t, sheet.Items, 1)

	item := sheet.Items[0]
	assert.Equal(t, "4.1", item.AccountCode)
	assert.Equal(t, 41, *item.ReducedCode)
	assert.True(t, item.Active)
	require.NotNil(t, item.RegisteredAt)
	assert.Equal(t, "2023-01-02", item.RegisteredAt.Format(time.DateOnly))
}

func TestReader_MissingColumns(t *testing.T) {
	csv := "Código Contábil;Descrição;Grupo\n1;ATIVO;1\n"

	_, err := planocontas.NewReader().Read(strings.NewReader(csv), spreadsheet.FormatCSV)
	require.ErrorIs(t, err, apperr.ErrSchema)

	var schemaErr *apperr.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"cod_reduzido", "fl_ativa"}, schemaErr.Missing)
}

func TestReader_NoValidRows(t *testing.T) {
	csv := "cod_conta;nome_conta;cod_reduzido;grupo_contas;fl_ativa\n1;ATIVO;;;S\n"

	_, err := planocontas.NewReader().Read(strings.NewReader(csv), spreadsheet.FormatCSV)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestCoerceBool(t *testing.T) {
	for _, s := range []string{"true", "T", "1", "y", "YES", "s", "Sim", " sim "} {
		assert.True(t, planocontas.CoerceBool(s), s)
	}

	for _, s := range []string{"false", "f", "0", "n", "no", "nao", "Não", "", "talvez"} {
		assert.False(t, planocontas.CoerceBool(s), s)
	}
}

func TestIntOrNil(t *testing.T) {
	assert.Equal(t, 12, *planocontas.IntOrNil("12"))
	assert.Equal(t, 12, *planocontas.IntOrNil("12.0"))
	assert.Nil(t, planocontas.IntOrNil(""))
	assert.Nil(t, planocontas.IntOrNil("abc"))
}

func TestDateOrNil(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, s := range []string{"15/03/2024", "2024-03-15", "2024-03-15 00:00:00", "45366"} {
		got := planocontas.DateOrNil(s)
		require.NotNil(t, got, s)
		assert.True(t, want.Equal(*got), s)
	}

	assert.Nil(t, planocontas.DateOrNil("ontem"))
}
