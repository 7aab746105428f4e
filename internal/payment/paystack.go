// Package payment builds the configuration the Paystack inline widget is
// opened with. Settlement happens in the widget; nothing is verified here.
package payment

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"farmvora/internal/domain"
	"farmvora/internal/util"
)

const (
	// ScriptURL is the inline widget the browser loads.
	ScriptURL = "https://js.paystack.co/v1/inline.js"
	// PlaceholderKey is used when no public key is configured.
	PlaceholderKey         = "pk_test_placeholder"
	DefaultReferencePrefix = "FV"
)

var minorUnits = decimal.NewFromInt(100)

// Checkout is the widget setup payload.
type Checkout struct {
	Key       string         `json:"key"`
	Email     string         `json:"email"`
	Amount    int64          `json:"amount"` // minor units
	Currency  string         `json:"currency"`
	Reference string         `json:"ref"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	ScriptURL string         `json:"script_url"`
}

// NewCheckout converts amount to minor units and fills a fresh reference.
func NewCheckout(publicKey, email string, amount decimal.Decimal, currency string, metadata map[string]any) (*Checkout, error) {
	if !amount.IsPositive() {
		return nil, util.ErrInvalidAmount
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", util.ErrInvalidInput)
	}
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if err := domain.ValidateCurrency(currency); err != nil {
		return nil, err
	}
	if publicKey == "" {
		publicKey = PlaceholderKey
	}
	return &Checkout{
		Key:       publicKey,
		Email:     email,
		Amount:    amount.Mul(minorUnits).Round(0).IntPart(),
		Currency:  currency,
		Reference: GenerateReference(DefaultReferencePrefix),
		Metadata:  metadata,
		ScriptURL: ScriptURL,
	}, nil
}

// GenerateReference returns PREFIX_<unix millis>_<0..999999>. References are
// not checked for collisions.
func GenerateReference(prefix string) string {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixMilli(), rand.Intn(1000000))
}
