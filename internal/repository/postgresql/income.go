package postgresql

import (
	"context"
	"fmt"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/income"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

type incomeRepository struct {
	db *database.DB
}

func NewIncomeRepository(db *database.DB) income.IncomeRepository {
	return &incomeRepository{db: db}
}

// Create implements income.IncomeRepository. The ledger is append-only:
// there is deliberately no Update or Delete on this repository.
func (i *incomeRepository) Create(ctx context.Context, rec income.IncomeRecord) (income.IncomeRecord, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		INSERT INTO income_records (
			user_id, project_id, income_type, amount, month, description
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rec.UserID,
		rec.ProjectID,
		rec.IncomeType,
		rec.Amount,
		rec.Month,
		rec.Description,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		return income.IncomeRecord{}, fmt.Errorf("failed to create income record: %w", err)
	}

	return rec, nil
}

// ListByUserAndMonth implements income.IncomeRepository.
func (i *incomeRepository) ListByUserAndMonth(ctx context.Context, userID string, month string) ([]income.IncomeRecord, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT id, user_id, project_id, income_type, amount, month, description, created_at
		FROM income_records
		WHERE user_id = $1
		  AND month = $2
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query income records: %w", err)
	}
	defer rows.Close()

	var records []income.IncomeRecord
	for rows.Next() {
		var rec income.IncomeRecord
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.ProjectID, &rec.IncomeType,
			&rec.Amount, &rec.Month, &rec.Description, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
