// Package locale reads the Brazilian number and text conventions found in
// ERP exports.
package locale

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var errEmpty = errors.New("empty value")

// thousandsOnly matches integers grouped with dots, e.g. "1.234" or "-12.345.678".
var thousandsOnly = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// Decimal parses a pt-BR formatted number ("1.234,56"). Strings without a
// comma are accepted too: dots are thousands separators when they group by
// three, otherwise a single dot is the decimal point of a raw spreadsheet value.
func Decimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", ""))
	if s == "" {
		return decimal.Zero, errEmpty
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case thousandsOnly.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	return decimal.NewFromString(s)
}

// ParseDecimal never fails: empty or unreadable input is 0.
func ParseDecimal(s string) float64 {
	d, err := Decimal(s)
	if err != nil {
		return 0
	}

	return d.InexactFloat64()
}
