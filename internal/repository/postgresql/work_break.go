package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

type breakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) attendance.BreakRepository {
	return &breakRepository{db: db}
}

// Create implements attendance.BreakRepository. The partial unique index
// uq_break_intervals_open (attendance_id WHERE ended_at IS NULL) rejects a
// second open interval on the same record.
func (b *breakRepository) Create(ctx context.Context, newBreak attendance.BreakInterval) (attendance.BreakInterval, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		INSERT INTO break_intervals (
			attendance_id, break_type, started_at
		) VALUES (
			$1, $2, $3
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		newBreak.AttendanceID,
		newBreak.BreakType,
		newBreak.StartedAt,
	).Scan(&newBreak.ID, &newBreak.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.BreakInterval{}, attendance.ErrBreakInProgress
		}
		return attendance.BreakInterval{}, fmt.Errorf("failed to create break interval: %w", err)
	}

	return newBreak, nil
}

// GetOpenByAttendance implements attendance.BreakRepository.
func (b *breakRepository) GetOpenByAttendance(ctx context.Context, attendanceID string) (attendance.BreakInterval, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, attendance_id, break_type, started_at, ended_at, minutes, created_at
		FROM break_intervals
		WHERE attendance_id = $1
		  AND ended_at IS NULL
		LIMIT 1
	`

	var br attendance.BreakInterval
	err := q.QueryRow(ctx, query, attendanceID).Scan(
		&br.ID, &br.AttendanceID, &br.BreakType, &br.StartedAt, &br.EndedAt, &br.Minutes, &br.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.BreakInterval{}, attendance.ErrNoOpenBreak
		}
		return attendance.BreakInterval{}, fmt.Errorf("failed to get open break: %w", err)
	}

	return br, nil
}

// Close implements attendance.BreakRepository. Conditional on ended_at still
// being NULL so a concurrent duplicate end-break closes nothing.
func (b *breakRepository) Close(ctx context.Context, id string, endedAt time.Time, minutes int) error {
	q := GetQuerier(ctx, b.db)

	query := `
		UPDATE break_intervals
		SET ended_at = $1, minutes = $2
		WHERE id = $3
		  AND ended_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, endedAt, minutes, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrNoOpenBreak
		}
		return fmt.Errorf("failed to close break interval: %w", err)
	}

	return nil
}

// SumClosedMinutes implements attendance.BreakRepository.
func (b *breakRepository) SumClosedMinutes(ctx context.Context, attendanceID string) (int, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT COALESCE(SUM(minutes), 0)
		FROM break_intervals
		WHERE attendance_id = $1
		  AND ended_at IS NOT NULL
	`

	var total int
	if err := q.QueryRow(ctx, query, attendanceID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum closed break minutes: %w", err)
	}

	return total, nil
}

// ListByAttendance implements attendance.BreakRepository.
func (b *breakRepository) ListByAttendance(ctx context.Context, attendanceID string) ([]attendance.BreakInterval, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, attendance_id, break_type, started_at, ended_at, minutes, created_at
		FROM break_intervals
		WHERE attendance_id = $1
		ORDER BY started_at ASC
	`

	rows, err := q.Query(ctx, query, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query break intervals: %w", err)
	}
	defer rows.Close()

	var breaks []attendance.BreakInterval
	for rows.Next() {
		var br attendance.BreakInterval
		err := rows.Scan(
			&br.ID, &br.AttendanceID, &br.BreakType, &br.StartedAt, &br.EndedAt, &br.Minutes, &br.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break interval: %w", err)
		}
		breaks = append(breaks, br)
	}

	return breaks, nil
}
