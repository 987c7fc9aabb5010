package income

import (
	"context"
)

// CommissionRepository reads commission configuration. Rules are unique per
// (user, project); maintenance happens outside this core.
type CommissionRepository interface {
	// ListByProject retrieves all rules configured for a project, ordered
	// by user id for deterministic distribution output.
	ListByProject(ctx context.Context, projectID string) ([]CommissionRule, error)
}

// IncomeRepository appends to and reads the income ledger.
type IncomeRepository interface {
	// Create appends one ledger entry.
	Create(ctx context.Context, rec IncomeRecord) (IncomeRecord, error)

	// ListByUserAndMonth retrieves a user's ledger entries for one month,
	// newest first.
	ListByUserAndMonth(ctx context.Context, userID string, month string) ([]IncomeRecord, error)
}
