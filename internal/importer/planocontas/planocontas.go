// Package planocontas reads chart-of-accounts sheets exported by different
// ERPs into chart items, whatever their header spelling.
package planocontas

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/chartofaccounts"
	"github.com/ebisa/contabil/internal/encoding"
	"github.com/ebisa/contabil/internal/importer/columns"
	"github.com/ebisa/contabil/internal/locale"
	"github.com/ebisa/contabil/internal/spreadsheet"
)

const (
	FieldCode         = "cod_conta"
	FieldName         = "nome_conta"
	FieldReduced      = "cod_reduzido"
	FieldGroup        = "grupo_contas"
	FieldType         = "tipo_conta"
	FieldBalanceSheet = "usar_no_balanco"
	FieldSplit        = "permite_rateio"
	FieldContra       = "redutora"
	FieldRegistered   = "data_cadastramento"
	FieldReference    = "conta_referencial"
	FieldEvent        = "codigo_evento"
	FieldActive       = "fl_ativa"
)

// Aliases is the fixed header table. Order matters: a header listed under an
// earlier field is not available to later ones.
var Aliases = columns.AliasMap{
	{Canonical: FieldCode, Names: []string{"Código Contábil", "cod_conta", "Código da Conta", "Conta", "CodConta", "Código"}},
	{Canonical: FieldName, Names: []string{"Descrição", "nome_conta", "Nome da Conta", "Descricao", "Conta Nome"}},
	{Canonical: FieldReduced, Names: []string{"cod_reduzido", "Código Reduzido", "Reduzido", "CodReduzido"}},
	{Canonical: FieldGroup, Names: []string{"Grupo de conta", "grupo_contas", "Grupo", "Grupo Contábil", "GrupoConta"}},
	{Canonical: FieldType, Names: []string{"Tipo de Conta"}},
	{Canonical: FieldBalanceSheet, Names: []string{"Usar no balanço patrimonial"}},
	{Canonical: FieldSplit, Names: []string{"Permite Rateio"}},
	{Canonical: FieldContra, Names: []string{"Redutora"}},
	{Canonical: FieldRegistered, Names: []string{"Data Cadastramento"}},
	{Canonical: FieldReference, Names: []string{"Conta referencial"}},
	{Canonical: FieldEvent, Names: []string{"Código do evento"}},
	{Canonical: FieldActive, Names: []string{"fl_ativa", "Ativa", "Ativo", "Status", "Conta Ativa"}},
}

var Required = []string{FieldCode, FieldName, FieldReduced, FieldGroup, FieldActive}

// Sheet is the outcome of reading one upload.
type Sheet struct {
	Items []chartofaccounts.ItemParams
	// Dropped lists headers that matched no known field.
	Dropped []string
	// Skipped counts rows without code, name, reduced code or group.
	Skipped int
}

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Read(rd io.Reader, format spreadsheet.Format) (*Sheet, error) {
	var (
		rows [][]string
		err  error
	)

	switch format {
	case spreadsheet.FormatCSV:
		rows, err = readCSV(rd)
	default:
		rows, err = spreadsheet.Rows(rd, format)
	}

	if err != nil {
		return nil, err
	}

	return r.Parse(rows)
}

// Parse treats the first non-empty row as the header.
func (r *Reader) Parse(rows [][]string) (*Sheet, error) {
	header := -1

	for i, row := range rows {
		if !blank(row) {
			header = i
			break
		}
	}

	if header < 0 {
		return nil, fmt.Errorf("%w: empty sheet", apperr.ErrMalformed)
	}

	res, err := columns.Reconcile(columns.Table{Columns: rows[header], Rows: rows[header+1:]}, Aliases, Required)
	if err != nil {
		return nil, err
	}

	idx := res.Table.Index()
	sheet := &Sheet{Dropped: res.Dropped}

	for _, row := range res.Table.Rows {
		if blank(row) {
			continue
		}

		item, ok := toItem(row, idx)
		if !ok {
			sheet.Skipped++
			continue
		}

		sheet.Items = append(sheet.Items, item)
	}

	if len(sheet.Items) == 0 {
		return nil, fmt.Errorf("%w: no valid rows", apperr.ErrInvalidInput)
	}

	return sheet, nil
}

func toItem(row []string, idx map[string]int) (chartofaccounts.ItemParams, bool) {
	get := func(field string) string {
		i, ok := idx[field]
		if !ok || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	item := chartofaccounts.ItemParams{
		AccountCode:       get(FieldCode),
		AccountName:       get(FieldName),
		ReducedCode:       IntOrNil(get(FieldReduced)),
		GroupCode:         IntOrNil(get(FieldGroup)),
		AccountType:       get(FieldType),
		UseInBalanceSheet: CoerceBool(get(FieldBalanceSheet)),
		AllowsSplit:       CoerceBool(get(FieldSplit)),
		Contra:            CoerceBool(get(FieldContra)),
		ReferenceAccount:  get(FieldReference),
		Active:            CoerceBool(get(FieldActive)),
		RegisteredAt:      DateOrNil(get(FieldRegistered)),
		EventCode:         get(FieldEvent),
	}

	ok := item.AccountCode != "" && item.AccountName != "" && item.ReducedCode != nil && item.GroupCode != nil

	return item, ok
}

// readCSV sniffs the encoding and tries ';' before ','.
func readCSV(rd io.Reader) ([][]string, error) {
	utf8r, err := encoding.NewUTF8Reader(rd)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	for _, sep := range []rune{';', ','} {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = sep
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		rows, err := reader.ReadAll()
		if err != nil {
			continue
		}

		if len(rows) > 0 && len(rows[0]) > 1 {
			return rows, nil
		}
	}

	return nil, fmt.Errorf("%w: csv is neither ';' nor ',' delimited", apperr.ErrMalformed)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

var truthy = map[string]bool{"true": true, "t": true, "1": true, "y": true, "yes": true, "s": true, "sim": true}

// CoerceBool reads the yes/no spellings found in exports. Unknown values are
// false.
func CoerceBool(s string) bool {
	return truthy[locale.FoldKey(s)]
}

// IntOrNil keeps the integer part of s ("12.0" -> 12). Empty or non-numeric
// input is nil.
func IntOrNil(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	head, _, _ := strings.Cut(s, ".")

	n, err := strconv.Atoi(head)
	if err != nil {
		return nil
	}

	return &n
}

var dateLayouts = []string{
	"02/01/2006",
	time.DateOnly,
	time.DateTime,
	"02/01/2006 15:04:05",
	"2006-01-02T15:04:05",
}

// DateOrNil parses the date formats seen in exports, including the serial
// numbers spreadsheets store dates as.
func DateOrNil(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}

	return nil
}
