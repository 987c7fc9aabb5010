package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, staff_id, work_date, clock_in, clock_out,
	status, total_hours, total_break_minutes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.StaffID, &att.WorkDate, &att.ClockIn, &att.ClockOut,
		&att.Status, &att.TotalHours, &att.TotalBreakMinutes, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. The unique index
// uq_attendance_records_staff_date makes the losing concurrent clock-in
// fail here instead of creating a second daily record.
func (a *attendanceRepository) Create(ctx context.Context, newAtt attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			staff_id, work_date, clock_in, status, total_break_minutes
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAtt.StaffID,
		newAtt.WorkDate,
		newAtt.ClockIn,
		newAtt.Status,
		newAtt.TotalBreakMinutes,
	).Scan(&newAtt.ID, &newAtt.CreatedAt, &newAtt.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return newAtt, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE staff_id = $1
		  AND work_date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, staffID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by staff and date: %w", err)
	}

	return &att, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenSession(ctx context.Context, staffID string, workDate time.Time) (attendance.Attendance, error) {
	att, err := a.GetByStaffAndDate(ctx, staffID, workDate)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if att == nil {
		return attendance.Attendance{}, attendance.ErrNotClockedIn
	}
	if att.ClockOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}
	return *att, nil
}

// CloseSession implements attendance.AttendanceRepository. The clock_out IS
// NULL condition makes the update apply at most once per record.
func (a *attendanceRepository) CloseSession(ctx context.Context, id string, clockOut time.Time, status attendance.Status, totalHours float64) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET clock_out = $1, status = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $4
		  AND clock_out IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, clockOut, status, totalHours, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyClockedOut
		}
		return fmt.Errorf("failed to close attendance session: %w", err)
	}

	return nil
}

// UpdateBreakMinutes implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateBreakMinutes(ctx context.Context, id string, minutes int) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET total_break_minutes = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, minutes, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update break minutes: %w", err)
	}

	return nil
}

// ListByStaff implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByStaff(ctx context.Context, staffID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "staff_id = $1"
	args := []interface{}{staffID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND work_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND work_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendance_records WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	// Build ORDER BY
	orderByField := "work_date"
	switch filter.SortBy {
	case "clock_in_time":
		orderByField = "clock_in"
	case "clock_out_time":
		orderByField = "clock_out"
	case "status":
		orderByField = "status"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, total, nil
}
