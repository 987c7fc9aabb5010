package income

import (
	"github.com/shopspring/decimal"

	"github.com/worklog-hq/worklog-backend-go/internal/pkg/validator"
)

type DistributeIncomeRequest struct {
	ProjectID   string `json:"project_id"`
	TotalAmount string `json:"total_amount"`
	Month       string `json:"month"`
	Description string `json:"description"`
}

func (r *DistributeIncomeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if validator.IsEmpty(r.TotalAmount) {
		errs = append(errs, validator.ValidationError{
			Field:   "total_amount",
			Message: "total_amount is required",
		})
	} else if !validator.IsValidDecimal(r.TotalAmount) {
		errs = append(errs, validator.ValidationError{
			Field:   "total_amount",
			Message: "total_amount must be a decimal number",
		})
	}

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Amount parses the validated total amount.
func (r *DistributeIncomeRequest) Amount() (decimal.Decimal, error) {
	return decimal.NewFromString(r.TotalAmount)
}

type MyIncomeFilter struct {
	Month string `json:"month"`
}

func (f *MyIncomeFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(f.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DistributeIncomeResponse struct {
	ProjectID      string                 `json:"project_id"`
	Month          string                 `json:"month"`
	TotalAmount    string                 `json:"total_amount"`
	RecordsWritten int                    `json:"records_written"`
	Records        []IncomeRecordResponse `json:"records"`
}

type IncomeRecordResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	ProjectID   string `json:"project_id"`
	IncomeType  string `json:"income_type"`
	Amount      string `json:"amount"`
	Month       string `json:"month"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type ListIncomeResponse struct {
	Month       string                 `json:"month"`
	TotalAmount string                 `json:"total_amount"`
	Records     []IncomeRecordResponse `json:"records"`
}
