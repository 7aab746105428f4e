// internal/domain/ledger.go
package domain

import (
	"sort"

	"github.com/shopspring/decimal"

	"farmvora/internal/util"
)

// CurrencyBucket totals the investments of a single currency.
type CurrencyBucket struct {
	Currency            string          `json:"currency"`
	TotalInvested       decimal.Decimal `json:"total_invested"`
	TotalExpectedReturn decimal.Decimal `json:"total_expected_return"`
	Profit              decimal.Decimal `json:"profit"` // expected return minus principal
	Count               int             `json:"count"`
}

// CurrencyLedger groups investments by currency. Buckets of different
// currencies are never merged.
type CurrencyLedger struct {
	Buckets []CurrencyBucket `json:"buckets"`
}

// AggregateByCurrency groups investments by currency code, ordered by code.
// With approvedOnly set, non-approved investments are skipped.
func AggregateByCurrency(investments []Investment, approvedOnly bool) CurrencyLedger {
	index := make(map[string]int)
	var buckets []CurrencyBucket
	for _, inv := range investments {
		if approvedOnly && inv.Status != StatusApproved {
			continue
		}
		code := inv.CurrencyCode()
		i, ok := index[code]
		if !ok {
			i = len(buckets)
			index[code] = i
			buckets = append(buckets, CurrencyBucket{
				Currency:            code,
				TotalInvested:       decimal.Zero,
				TotalExpectedReturn: decimal.Zero,
			})
		}
		buckets[i].TotalInvested = buckets[i].TotalInvested.Add(inv.Amount)
		buckets[i].TotalExpectedReturn = buckets[i].TotalExpectedReturn.Add(inv.ExpectedReturn)
		buckets[i].Count++
	}
	for i := range buckets {
		buckets[i].Profit = buckets[i].TotalExpectedReturn.Sub(buckets[i].TotalInvested)
	}
	sort.Slice(buckets, func(a, b int) bool { return buckets[a].Currency < buckets[b].Currency })
	if buckets == nil {
		buckets = []CurrencyBucket{}
	}
	return CurrencyLedger{Buckets: buckets}
}

// MultiCurrency reports whether more than one currency is present. Views
// use it to show the note that currencies are tracked independently.
func (l CurrencyLedger) MultiCurrency() bool {
	return len(l.Buckets) > 1
}

// SingleTotal returns the total invested when exactly one currency is
// present. It refuses to add amounts across currencies.
func (l CurrencyLedger) SingleTotal() (decimal.Decimal, string, error) {
	switch len(l.Buckets) {
	case 0:
		return decimal.Zero, "", nil
	case 1:
		return l.Buckets[0].TotalInvested, l.Buckets[0].Currency, nil
	default:
		return decimal.Zero, "", util.ErrMixedCurrencies
	}
}

// DetailsToInvestments strips the joined display fields.
func DetailsToInvestments(details []InvestmentDetail) []Investment {
	out := make([]Investment, len(details))
	for i, d := range details {
		out[i] = d.Investment
	}
	return out
}
