package accounting

import (
	"math"
	"strings"
)

// Side is the debit/credit flag printed next to a balance.
type Side string

const (
	Debit  Side = "D"
	Credit Side = "C"
)

// ParseSide reads a D/C flag. An empty flag is a debit, which is how the ERP
// prints balances whose flag column is absent. Anything else is returned as is
// and never counts as the positive side of any class.
func ParseSide(s string) Side {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Debit
	}

	return Side(s)
}

type Class int

const (
	ClassOther Class = iota
	ClassAsset
	ClassLiability
	ClassRevenue
	ClassExpense
)

type convention struct {
	class    Class
	positive Side
}

// conventions is keyed by the first character of the account code.
var conventions = map[byte]convention{
	'1': {class: ClassAsset, positive: Debit},
	'2': {class: ClassLiability, positive: Credit},
	'3': {class: ClassRevenue, positive: Credit},
	'4': {class: ClassExpense, positive: Credit},
}

var defaultConvention = convention{class: ClassOther, positive: Credit}

func lookup(code string) convention {
	code = strings.TrimSpace(code)
	if code == "" {
		return defaultConvention
	}

	if c, ok := conventions[code[0]]; ok {
		return c
	}

	return defaultConvention
}

// ClassOf returns the accounting class of an account code.
func ClassOf(code string) Class {
	return lookup(code).class
}

// AdjustSign applies the class sign convention to value. Values that are not
// finite numbers become 0.
func AdjustSign(code string, value float64, side Side) float64 {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	if side == lookup(code).positive {
		return value
	}

	return -value
}
