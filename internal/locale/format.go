package locale

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatDecimal renders v with two decimals in the Brazilian layout, the
// inverse of Decimal: 1234.5 becomes "1.234,50".
func FormatDecimal(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder

	sb.WriteString(sign)

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}

		sb.WriteRune(r)
	}

	sb.WriteByte(',')
	sb.WriteString(frac)

	return sb.String()
}
