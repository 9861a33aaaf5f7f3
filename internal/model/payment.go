package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	ProviderStripe = "stripe"
	ProviderPaypal = "paypal"

	MetadataUserID    = "userId"
	MetadataScriptIDs = "scriptIds"
)

var hundred = decimal.NewFromInt(100)

// ToCents converts a major-unit amount to integer minor units, rounding half away from zero.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

type CheckoutLine struct {
	ScriptID   int64
	Title      string
	UnitAmount int64 // cents
	Quantity   int64
}

type CheckoutRequest struct {
	Lines      []CheckoutLine
	Currency   string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

func (r *CheckoutRequest) TotalCents() int64 {
	var total int64
	for _, l := range r.Lines {
		total += l.UnitAmount * l.Quantity
	}
	return total
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentEvent is a verified provider webhook in provider-neutral form.
type PaymentEvent struct {
	ID              string
	Provider        string
	Type            string
	Completed       bool
	Verified        bool // false when accepted without a configured secret
	SessionID       string
	PaymentIntentID string
	AmountTotal     int64 // cents
	Metadata        map[string]string
}

func EncodeScriptIDs(ids []int64) string {
	b, _ := json.Marshal(ids)
	return string(b)
}

// ParseScriptIDs decodes a JSON list of ids given either as numbers or numeric strings.
func ParseScriptIDs(raw string) ([]int64, error) {
	var values []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decode script ids: %w", err)
	}

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		var n int64
		if err := json.Unmarshal(v, &n); err == nil {
			ids = append(ids, n)
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, fmt.Errorf("script id %s is neither number nor string", string(v))
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("script id %q: %w", s, err)
		}
		ids = append(ids, n)
	}
	return ids, nil
}
