package subscription

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Frequency string
type PaymentPeriod string
type PaymentMethod string

const (
	FrequencyMonthly    Frequency = "Mensual"
	FrequencyQuarterly  Frequency = "Trimestral"
	FrequencySemiannual Frequency = "Semestral"
	FrequencyAnnual     Frequency = "Anual"

	PeriodFirstSemester  PaymentPeriod = "first-semester"
	PeriodSecondSemester PaymentPeriod = "second-semester"
	PeriodCustom         PaymentPeriod = "custom"

	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodCard     PaymentMethod = "card"

	// legacyMethodPaid was stored as a payment method by an older form
	// variant; it is a payment status and folds into Member.IsPaid.
	legacyMethodPaid PaymentMethod = "paid"
)

// MonthLabels are the month names accepted in Member.SelectedMonths.
var MonthLabels = []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

func (p PaymentPeriod) Valid() bool {
	switch p {
	case PeriodFirstSemester, PeriodSecondSemester, PeriodCustom:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard:
		return true
	}
	return false
}

func validMonth(label string) bool {
	for _, m := range MonthLabels {
		if m == label {
			return true
		}
	}
	return false
}

type Member struct {
	ID             string          `json:"id"`
	Name           string          `json:"name" validate:"required"`
	Payment        *float64        `json:"payment,omitempty" validate:"omitempty,gte=0"`
	Frequency      Frequency       `json:"frequency" validate:"required,frequency"`
	PaymentPeriod  PaymentPeriod   `json:"paymentPeriod,omitempty" validate:"omitempty,period"`
	SelectedMonths []string        `json:"selectedMonths,omitempty" validate:"dive,month"`
	PaymentMethods []PaymentMethod `json:"paymentMethods,omitempty" validate:"dive,method"`
	IsPaid         bool            `json:"isPaid"`
	ReceiptImages  []string        `json:"receiptImages,omitempty"`
	Comments       []string        `json:"comments,omitempty"`
}

// CoveredMonths returns the month labels the member's payment period covers.
func (m Member) CoveredMonths() []string {
	switch m.PaymentPeriod {
	case PeriodFirstSemester:
		return append([]string(nil), MonthLabels[:6]...)
	case PeriodSecondSemester:
		return append([]string(nil), MonthLabels[6:]...)
	case PeriodCustom:
		return append([]string(nil), m.SelectedMonths...)
	}
	return nil
}

func (m Member) clone() Member {
	c := m
	if m.Payment != nil {
		p := *m.Payment
		c.Payment = &p
	}
	c.SelectedMonths = cloneSlice(m.SelectedMonths)
	c.PaymentMethods = cloneSlice(m.PaymentMethods)
	c.ReceiptImages = cloneSlice(m.ReceiptImages)
	c.Comments = cloneSlice(m.Comments)
	return c
}

// normalize trims text, fills defaults and folds legacy values. New
// members get a random id here.
func (m *Member) normalize() {
	m.Name = strings.TrimSpace(m.Name)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Frequency == "" {
		m.Frequency = FrequencyMonthly
	}

	methods := m.PaymentMethods[:0:0]
	seen := make(map[PaymentMethod]bool, len(m.PaymentMethods))
	for _, pm := range m.PaymentMethods {
		if pm == legacyMethodPaid {
			m.IsPaid = true
			continue
		}
		if !seen[pm] {
			seen[pm] = true
			methods = append(methods, pm)
		}
	}
	m.PaymentMethods = methods

	if m.PaymentPeriod == PeriodCustom {
		m.SelectedMonths = orderMonths(m.SelectedMonths)
	} else {
		m.SelectedMonths = nil
	}
}

// orderMonths dedupes labels and sorts known ones in calendar order.
// Unknown labels are kept at the end so validation can report them.
func orderMonths(labels []string) []string {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[strings.TrimSpace(l)] = true
	}
	out := make([]string, 0, len(set))
	for _, m := range MonthLabels {
		if set[m] {
			out = append(out, m)
			delete(set, m)
		}
	}
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if set[l] {
			out = append(out, l)
			delete(set, l)
		}
	}
	return out
}

var legacyMemberNamespace = uuid.MustParse("7b0e4c1e-5f3a-4d8e-9a51-2c6f0d9e8b14")

// legacyMemberID derives a stable id for a member stored without one, so
// repeated reads agree until the record is rewritten with real ids.
func legacyMemberID(position int, name string) string {
	return uuid.NewSHA1(legacyMemberNamespace, []byte(fmt.Sprintf("%d/%s", position, name))).String()
}

// Members is stored as one JSON document per subscription row.
type Members []Member

func (ms Members) Value() (driver.Value, error) {
	if ms == nil {
		ms = Members{}
	}
	b, err := json.Marshal(ms)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (ms *Members) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*ms = Members{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("members: unsupported column type %T", src)
	}

	out := Members{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("members: %w", err)
		}
	}
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = legacyMemberID(i, out[i].Name)
		}
		out[i].normalize()
	}
	*ms = out
	return nil
}

func (ms Members) index(memberID string) int {
	for i, m := range ms {
		if m.ID == memberID {
			return i
		}
	}
	return -1
}

type Subscription struct {
	ID           int64     `db:"id" json:"id"`
	Position     int       `db:"position" json:"position"`
	Name         string    `db:"name" json:"name" validate:"required"`
	USDPrice     float64   `db:"usd_price" json:"usdPrice" validate:"gt=0"`
	TotalDebited *float64  `db:"total_debited" json:"totalDebited,omitempty" validate:"omitempty,gte=0"`
	Frequency    Frequency `db:"frequency" json:"frequency" validate:"required,frequency"`
	Logo         string    `db:"logo" json:"logo,omitempty"`
	Members      Members   `db:"members" json:"members" validate:"dive"`
	Version      int       `db:"version" json:"version"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Clone returns a deep copy so cached records are never edited in place.
func (s Subscription) Clone() Subscription {
	c := s
	if s.TotalDebited != nil {
		td := *s.TotalDebited
		c.TotalDebited = &td
	}
	c.Members = make(Members, len(s.Members))
	for i, m := range s.Members {
		c.Members[i] = m.clone()
	}
	return c
}

func (s *Subscription) normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Logo = strings.TrimSpace(s.Logo)
	if s.Frequency == "" {
		s.Frequency = FrequencyMonthly
	}
	if s.Members == nil {
		s.Members = Members{}
	}
	for i := range s.Members {
		s.Members[i].normalize()
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

// SubscriptionInput carries the user-editable fields of a subscription.
type SubscriptionInput struct {
	Name         string    `json:"name"`
	USDPrice     float64   `json:"usdPrice"`
	TotalDebited *float64  `json:"totalDebited"`
	Frequency    Frequency `json:"frequency"`
	Logo         *string   `json:"logo"`
}

// MemberInput carries the user-editable fields of a member. Comments and
// receipts are edited through their own operations when Comments or
// ReceiptImages are nil.
type MemberInput struct {
	Name           string          `json:"name"`
	Payment        *float64        `json:"payment"`
	Frequency      Frequency       `json:"frequency"`
	PaymentPeriod  PaymentPeriod   `json:"paymentPeriod"`
	SelectedMonths []string        `json:"selectedMonths"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	IsPaid         bool            `json:"isPaid"`
	ReceiptImages  []string        `json:"receiptImages"`
	Comments       []string        `json:"comments"`
}

func (in MemberInput) apply(m *Member) {
	m.Name = in.Name
	m.Payment = in.Payment
	m.Frequency = in.Frequency
	m.PaymentPeriod = in.PaymentPeriod
	m.SelectedMonths = nil
	if in.PaymentPeriod == PeriodCustom {
		m.SelectedMonths = cloneSlice(in.SelectedMonths)
	}
	m.PaymentMethods = cloneSlice(in.PaymentMethods)
	m.IsPaid = in.IsPaid
	if in.ReceiptImages != nil {
		m.ReceiptImages = cloneSlice(in.ReceiptImages)
	}
	if in.Comments != nil {
		m.Comments = trimComments(in.Comments)
	}
}

func trimComments(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
