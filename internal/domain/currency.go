// internal/domain/currency.go
package domain

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"farmvora/internal/util"
)

// DefaultCurrency is assumed when a project carries no currency code.
const DefaultCurrency = "NGN"

var hundred = decimal.NewFromInt(100)

// CurrencyInfo describes one supported project currency.
type CurrencyInfo struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var currencies = map[string]CurrencyInfo{
	"NGN": {Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"GHS": {Code: "GHS", Symbol: "₵", Name: "Ghanaian Cedi"},
	"KES": {Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling"},
	"ZAR": {Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
}

// SupportedCurrencies returns the currency catalogue ordered by code.
func SupportedCurrencies() []CurrencyInfo {
	out := make([]CurrencyInfo, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// LookupCurrency returns the catalogue entry for code.
func LookupCurrency(code string) (CurrencyInfo, bool) {
	c, ok := currencies[code]
	return c, ok
}

// ValidateCurrency returns util.ErrUnsupportedCurrency for unknown codes.
func ValidateCurrency(code string) error {
	if _, ok := LookupCurrency(code); !ok {
		return fmt.Errorf("%w: %q", util.ErrUnsupportedCurrency, code)
	}
	return nil
}

// FormatCurrency renders amount with the currency symbol and two decimals,
// e.g. "₦1,000.00" or "KSh 1,000.00". Unknown codes fall back to NGN.
func FormatCurrency(amount decimal.Decimal, code string) string {
	c, ok := LookupCurrency(code)
	if !ok {
		c = currencies[DefaultCurrency]
	}
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	n, _ := new(big.Int).SetString(whole, 10)
	formatted := humanize.BigComma(n) + "." + frac
	if c.Code == "KES" {
		return sign + c.Symbol + " " + formatted
	}
	return sign + c.Symbol + formatted
}

// CalculateROI returns principal × roiPercentage / 100 rounded to two places.
func CalculateROI(principal, roiPercentage decimal.Decimal) decimal.Decimal {
	return principal.Mul(roiPercentage).Div(hundred).Round(2)
}
