package company

import (
	"strings"
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// NormalizeCNPJ keeps only the digits of s, so "12.345.678/0001-95" and
// "12345678000195" compare equal.
func NormalizeCNPJ(s string) string {
	var sb strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// ValidCNPJ checks length and both check digits of a normalized CNPJ.
func ValidCNPJ(digits string) bool {
	if len(digits) != 14 {
		return false
	}

	if strings.Count(digits, digits[:1]) == 14 {
		return false
	}

	return checkDigit(digits[:12], cnpjFirstWeights) == digits[12] &&
		checkDigit(digits[:13], cnpjSecondWeights) == digits[13]
}

func checkDigit(digits string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}

	rem := sum % 11
	if rem < 2 {
		return '0'
	}

	return byte('0' + 11 - rem)
}
