package income

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionRule is the per-staff, per-project distribution configuration.
// Rules are maintained by external admin screens; this core only reads them.
type CommissionRule struct {
	ID          string
	UserID      string
	ProjectID   string
	Percentage  decimal.Decimal
	BaseAmount  decimal.Decimal
	BonusAmount decimal.Decimal
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type IncomeType string

const (
	IncomeTypeCommission IncomeType = "commission"
	IncomeTypeBonus      IncomeType = "bonus"
	IncomeTypeAdjustment IncomeType = "adjustment"
)

// IncomeRecord is an append-only ledger entry. Entries are never updated or
// deleted; corrections are new adjustment entries.
type IncomeRecord struct {
	ID          string
	UserID      string
	ProjectID   string
	IncomeType  IncomeType
	Amount      decimal.Decimal
	Month       string // "YYYY-MM"
	Description string
	CreatedAt   time.Time
}

// CommissionAmount computes the payout for one rule given a project total:
// total * percentage/100 + base + bonus, rounded to 2 decimal places.
func (r CommissionRule) CommissionAmount(totalAmount decimal.Decimal) decimal.Decimal {
	share := totalAmount.Mul(r.Percentage).Div(decimal.NewFromInt(100))
	return share.Add(r.BaseAmount).Add(r.BonusAmount).Round(2)
}
