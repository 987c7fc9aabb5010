package income

import (
	"context"
)

// IncomeService distributes project income across commission rules and
// reads the resulting ledger.
type IncomeService interface {
	// DistributeProjectIncome appends one commission ledger entry per rule
	// configured for the project. Not idempotent: invoking it twice for the
	// same (project, month) appends a second batch.
	DistributeProjectIncome(ctx context.Context, req DistributeIncomeRequest) (DistributeIncomeResponse, error)

	// GetMyIncome retrieves the caller's ledger entries for one month.
	GetMyIncome(ctx context.Context, filter MyIncomeFilter) (ListIncomeResponse, error)
}
