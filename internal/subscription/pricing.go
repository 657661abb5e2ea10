package subscription

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultGTQRate is the USD to GTQ factor used when none is configured.
const DefaultGTQRate = 8

// Pricing derives display figures from stored prices and payments.
// All methods are pure.
type Pricing struct {
	rate decimal.Decimal
}

func NewPricing(rate float64) Pricing {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = DefaultGTQRate
	}
	return Pricing{rate: decimal.NewFromFloat(rate)}
}

func (p Pricing) Rate() decimal.Decimal {
	if p.rate.IsZero() {
		return decimal.NewFromInt(DefaultGTQRate)
	}
	return p.rate
}

// GTQPrice converts a USD price, rounded to cents.
func (p Pricing) GTQPrice(usdPrice float64) decimal.Decimal {
	return fromFloat(usdPrice).Mul(p.Rate()).Round(2)
}

// EffectiveTotalDebited is the stored total when it is set and non-zero,
// otherwise the converted USD price.
func (p Pricing) EffectiveTotalDebited(s Subscription) decimal.Decimal {
	if s.TotalDebited != nil && *s.TotalDebited != 0 && finite(*s.TotalDebited) {
		return decimal.NewFromFloat(*s.TotalDebited)
	}
	return p.GTQPrice(s.USDPrice)
}

// MonthlyEquivalent normalizes a periodic payment to a per-month rate.
// Unknown frequencies are treated as monthly.
func MonthlyEquivalent(payment float64, f Frequency) decimal.Decimal {
	amount := fromFloat(payment)
	switch f {
	case FrequencyAnnual:
		return amount.Div(decimal.NewFromInt(12))
	case FrequencyQuarterly:
		return amount.Div(decimal.NewFromInt(3))
	case FrequencySemiannual:
		return amount.Div(decimal.NewFromInt(6))
	default:
		return amount
	}
}

// TotalReceivedMonthly sums the monthly equivalent of every member payment,
// rounded to cents. Members without a payment add nothing.
func TotalReceivedMonthly(s Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, m := range s.Members {
		if m.Payment == nil {
			continue
		}
		total = total.Add(MonthlyEquivalent(*m.Payment, m.Frequency))
	}
	return total.Round(2)
}

// BillingMultiplier is the number of months one charge covers. Semestral
// and unknown values count as one.
func BillingMultiplier(f Frequency) int {
	switch f {
	case FrequencyQuarterly:
		return 3
	case FrequencyAnnual:
		return 12
	default:
		return 1
	}
}

// CycleCharge scales a monthly base price to a full billing cycle.
func CycleCharge(basePrice float64, f Frequency) decimal.Decimal {
	return fromFloat(basePrice).Mul(decimal.NewFromInt(int64(BillingMultiplier(f))))
}

// Amount is a money value that serializes as a JSON number with two
// decimals.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(2)}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

// Summary holds the figures shown for one subscription card. It is
// recomputed on every read and never stored.
type Summary struct {
	USDPrice             Amount          `json:"usdPrice"`
	GTQPrice             Amount          `json:"gtqPrice"`
	Frequency            Frequency       `json:"frequency"`
	MemberCount          int             `json:"memberCount"`
	PaidCount            int             `json:"paidCount"`
	PendingCount         int             `json:"pendingCount"`
	TotalReceivedMonthly Amount          `json:"totalReceivedMonthly"`
	TotalDebited         Amount          `json:"totalDebited"`
	// CycleCharge is the USD price of one full billing cycle.
	CycleCharge          Amount          `json:"cycleCharge"`
	Members              []MemberSummary `json:"members"`
}

// MemberSummary holds the per-member figures of a card.
type MemberSummary struct {
	ID                string   `json:"id"`
	MonthlyEquivalent Amount   `json:"monthlyEquivalent"`
	CoveredMonths     []string `json:"coveredMonths,omitempty"`
}

func (p Pricing) Summarize(s Subscription) Summary {
	sum := Summary{
		USDPrice:             NewAmount(fromFloat(s.USDPrice)),
		GTQPrice:             NewAmount(p.GTQPrice(s.USDPrice)),
		Frequency:            s.Frequency,
		MemberCount:          len(s.Members),
		TotalReceivedMonthly: NewAmount(TotalReceivedMonthly(s)),
		TotalDebited:         NewAmount(p.EffectiveTotalDebited(s)),
		Members:              make([]MemberSummary, 0, len(s.Members)),
	}
	if sum.Frequency == "" {
		sum.Frequency = FrequencyMonthly
	}
	sum.CycleCharge = NewAmount(CycleCharge(s.USDPrice, sum.Frequency))
	for _, m := range s.Members {
		ms := MemberSummary{ID: m.ID, CoveredMonths: m.CoveredMonths()}
		if m.Payment != nil {
			ms.MonthlyEquivalent = NewAmount(MonthlyEquivalent(*m.Payment, m.Frequency))
		}
		sum.Members = append(sum.Members, ms)
		if m.IsPaid {
			sum.PaidCount++
		} else {
			sum.PendingCount++
		}
	}
	return sum
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func fromFloat(f float64) decimal.Decimal {
	if !finite(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
