package postgresql

import (
	"context"
	"fmt"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/income"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

type commissionRepository struct {
	db *database.DB
}

func NewCommissionRepository(db *database.DB) income.CommissionRepository {
	return &commissionRepository{db: db}
}

// ListByProject implements income.CommissionRepository.
func (c *commissionRepository) ListByProject(ctx context.Context, projectID string) ([]income.CommissionRule, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, user_id, project_id, percentage, base_amount, bonus_amount, notes, created_at, updated_at
		FROM commission_rules
		WHERE project_id = $1
		ORDER BY user_id ASC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query commission rules: %w", err)
	}
	defer rows.Close()

	var rules []income.CommissionRule
	for rows.Next() {
		var rule income.CommissionRule
		err := rows.Scan(
			&rule.ID, &rule.UserID, &rule.ProjectID, &rule.Percentage,
			&rule.BaseAmount, &rule.BonusAmount, &rule.Notes, &rule.CreatedAt, &rule.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
