package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/overtime"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

// Create implements overtime.OvertimeRepository. The partial unique index
// uq_overtime_sessions_started ((staff_id, work_date) WHERE status =
// 'started') rejects a second concurrent started session for the day.
func (o *overtimeRepository) Create(ctx context.Context, sess overtime.Session) (overtime.Session, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO overtime_sessions (
			staff_id, work_date, work_content, start_time, status
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sess.StaffID,
		sess.WorkDate,
		sess.WorkContent,
		sess.StartTime,
		sess.Status,
	).Scan(&sess.ID, &sess.CreatedAt, &sess.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return overtime.Session{}, overtime.ErrOvertimeInProgress
		}
		return overtime.Session{}, fmt.Errorf("failed to create overtime session: %w", err)
	}

	return sess, nil
}

// GetStarted implements overtime.OvertimeRepository. Ownership is part of
// the predicate so a session id cannot be ended by another staff member.
func (o *overtimeRepository) GetStarted(ctx context.Context, id string, staffID string) (overtime.Session, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, staff_id, work_date, work_content, start_time, end_time, hours, status, created_at, updated_at
		FROM overtime_sessions
		WHERE id = $1
		  AND staff_id = $2
		  AND status = 'started'
	`

	var sess overtime.Session
	err := q.QueryRow(ctx, query, id, staffID).Scan(
		&sess.ID, &sess.StaffID, &sess.WorkDate, &sess.WorkContent, &sess.StartTime,
		&sess.EndTime, &sess.Hours, &sess.Status, &sess.CreatedAt, &sess.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Session{}, overtime.ErrNoActiveOvertime
		}
		return overtime.Session{}, fmt.Errorf("failed to get started overtime session: %w", err)
	}

	return sess, nil
}

// End implements overtime.OvertimeRepository.
func (o *overtimeRepository) End(ctx context.Context, id string, endTime time.Time, hours float64) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE overtime_sessions
		SET end_time = $1, hours = $2, status = 'ended', updated_at = NOW()
		WHERE id = $3
		  AND status = 'started'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, endTime, hours, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.ErrNoActiveOvertime
		}
		return fmt.Errorf("failed to end overtime session: %w", err)
	}

	return nil
}

// ListByStaffAndMonth implements overtime.OvertimeRepository.
func (o *overtimeRepository) ListByStaffAndMonth(ctx context.Context, staffID string, year int, month time.Month) ([]overtime.Session, error) {
	q := GetQuerier(ctx, o.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT id, staff_id, work_date, work_content, start_time, end_time, hours, status, created_at, updated_at
		FROM overtime_sessions
		WHERE staff_id = $1
		  AND work_date >= $2
		  AND work_date < $3
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, staffID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime sessions: %w", err)
	}
	defer rows.Close()

	var sessions []overtime.Session
	for rows.Next() {
		var sess overtime.Session
		err := rows.Scan(
			&sess.ID, &sess.StaffID, &sess.WorkDate, &sess.WorkContent, &sess.StartTime,
			&sess.EndTime, &sess.Hours, &sess.Status, &sess.CreatedAt, &sess.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime session: %w", err)
		}
		sessions = append(sessions, sess)
	}

	return sessions, nil
}
