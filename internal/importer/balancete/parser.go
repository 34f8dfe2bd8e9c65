// Package balancete reads the sectioned trial-balance export of the ERP.
//
// The file interleaves marker rows (empresa, período, centro de custo) with
// account tables introduced by a "Cód. Contábil" header row. Each table row
// inherits the cost center of the last marker seen.
package balancete

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ebisa/contabil/internal/accounting"
	"github.com/ebisa/contabil/internal/apperr"
	"github.com/ebisa/contabil/internal/encoding"
	"github.com/ebisa/contabil/internal/locale"
	"github.com/ebisa/contabil/internal/trialbalance"
)

const (
	keyCompany    = "empresa"
	keyPeriod     = "periodo"
	keyCostCenter = "centro de custo"
	keyHeader     = "cod. contabil"
)

// Column positions inside an account table.
const (
	colCode = iota
	colReduced
	colName
	colPrior
	colPriorSide
	colDebit
	colCredit
	colCurrent
	colCurrentSide
)

// Expectation is the company and period the caller is importing into. The
// file must agree with it.
type Expectation struct {
	Company string
	Month   int
	Year    int
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseReader decodes a ';' delimited export and parses it.
func (p *Parser) ParseReader(r io.Reader, want Expectation) ([]trialbalance.ItemParams, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	decoded, err := encoding.DecodeResilient(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(decoded.Text))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return p.Parse(rows, want)
}

type state int

const (
	stateSeek state = iota
	stateTable
)

type costCenter struct {
	code *int
	name *string
}

// Parse walks the rows once. It fails on the first marker that contradicts
// want, before any item is returned.
func (p *Parser) Parse(rows [][]string, want Expectation) ([]trialbalance.ItemParams, error) {
	var (
		items []trialbalance.ItemParams
		cc    costCenter
		st    = stateSeek
	)

	for i, row := range rows {
		line := i + 1
		key := locale.FoldKey(cellValue(row, 0))

		if isMarker(key) {
			st = stateSeek

			next, err := p.marker(key, row, line, want)
			if err != nil {
				return nil, err
			}

			if next != nil {
				cc = *next
			}

			continue
		}

		if key == keyHeader && len(row) > 3 {
			st = stateTable
			continue
		}

		if st != stateTable || key == "" {
			continue
		}

		items = append(items, parseAccount(row, cc))
	}

	return items, nil
}

func isMarker(key string) bool {
	return key == keyCompany || key == keyPeriod || key == keyCostCenter
}

// marker validates or applies a section marker. It returns a new cost
// center when the marker opens one.
func (p *Parser) marker(key string, row []string, line int, want Expectation) (*costCenter, error) {
	value := cellValue(row, 1)

	switch key {
	case keyCompany:
		_, name := splitCodeName(value)
		if !strings.EqualFold(name, strings.TrimSpace(want.Company)) {
			return nil, &apperr.ContextMismatchError{Field: "empresa", Expected: want.Company, Got: name}
		}
	case keyPeriod:
		start, err := periodStart(value)
		if err != nil {
			return nil, &apperr.FormatError{Line: line, Msg: fmt.Sprintf("período %q: %v", value, err)}
		}

		if int(start.Month()) != want.Month || start.Year() != want.Year {
			return nil, &apperr.ContextMismatchError{
				Field:    "período",
				Expected: fmt.Sprintf("%02d/%d", want.Month, want.Year),
				Got:      value,
			}
		}
	case keyCostCenter:
		code, name := splitCodeName(value)

		return &costCenter{code: digitsToInt(code), name: &name}, nil
	}

	return nil, nil
}

// periodStart reads the first date of "dd/mm/yyyy a dd/mm/yyyy".
func periodStart(s string) (time.Time, error) {
	first, _, _ := strings.Cut(s, " a ")

	return time.Parse("02/01/2006", strings.TrimSpace(first))
}

// splitCodeName splits "<code> - <name>". Without a separator the whole value
// is the name.
func splitCodeName(s string) (string, string) {
	code, name, ok := strings.Cut(s, " - ")
	if !ok {
		return "", strings.TrimSpace(s)
	}

	return strings.TrimSpace(code), strings.TrimSpace(name)
}

func parseAccount(row []string, cc costCenter) trialbalance.ItemParams {
	code := cellValue(row, colCode)

	return trialbalance.ItemParams{
		AccountCode: code,
		AccountName: cellValue(row, colName),
		ReducedCode: digitsToInt(cellValue(row, colReduced)),
		PriorBalance: accounting.AdjustSign(code,
			locale.ParseDecimal(cellValue(row, colPrior)),
			accounting.ParseSide(cellValue(row, colPriorSide))),
		Debit:  locale.ParseDecimal(cellValue(row, colDebit)),
		Credit: locale.ParseDecimal(cellValue(row, colCredit)),
		CurrentBalance: accounting.AdjustSign(code,
			locale.ParseDecimal(cellValue(row, colCurrent)),
			accounting.ParseSide(cellValue(row, colCurrentSide))),
		CostCenterCode: cc.code,
		CostCenterName: cc.name,
	}
}

// digitsToInt converts an all-digit string. Anything else is nil.
func digitsToInt(s string) *int {
	if s == "" {
		return nil
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &n
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
