package attendance

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklog-hq/worklog-backend-go/internal/config"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/audit"
)

const testStaffID = "11111111-1111-1111-1111-111111111111"

// staffContext builds a request context carrying the claims the jwtauth
// verifier would have attached.
func staffContext(t *testing.T, staffID string, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"staff_id": staffID,
		"role":     role,
		"type":     "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// fakeTxRunner runs the function directly; the fakes have no transactions.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]*attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) findLocked(staffID string, workDate time.Time) *attendance.Attendance {
	for _, rec := range f.records {
		if rec.StaffID == staffID && rec.WorkDate.Equal(workDate) {
			return rec
		}
	}
	return nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findLocked(att.StaffID, att.WorkDate) != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}

	f.seq++
	att.ID = fmt.Sprintf("att-%d", f.seq)
	att.CreatedAt = att.ClockIn
	att.UpdatedAt = att.ClockIn
	stored := att
	f.records[att.ID] = &stored
	return att, nil
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(ctx context.Context, staffID string, workDate time.Time) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.findLocked(staffID, workDate)
	if rec == nil {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, staffID string, workDate time.Time) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.findLocked(staffID, workDate)
	if rec == nil {
		return attendance.Attendance{}, attendance.ErrNotClockedIn
	}
	if rec.ClockOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}
	return *rec, nil
}

func (f *fakeAttendanceRepo) CloseSession(ctx context.Context, id string, clockOut time.Time, status attendance.Status, totalHours float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	if !ok || rec.ClockOut != nil {
		return attendance.ErrAlreadyClockedOut
	}
	rec.ClockOut = &clockOut
	rec.Status = status
	rec.TotalHours = &totalHours
	rec.UpdatedAt = clockOut
	return nil
}

func (f *fakeAttendanceRepo) UpdateBreakMinutes(ctx context.Context, id string, minutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	rec.TotalBreakMinutes = minutes
	return nil
}

func (f *fakeAttendanceRepo) ListByStaff(ctx context.Context, staffID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.StaffID == staffID {
			out = append(out, *rec)
		}
	}
	return out, int64(len(out)), nil
}

type fakeBreakRepo struct {
	mu        sync.Mutex
	intervals map[string]*attendance.BreakInterval
	seq       int
}

func newFakeBreakRepo() *fakeBreakRepo {
	return &fakeBreakRepo{intervals: make(map[string]*attendance.BreakInterval)}
}

func (f *fakeBreakRepo) Create(ctx context.Context, br attendance.BreakInterval) (attendance.BreakInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, iv := range f.intervals {
		if iv.AttendanceID == br.AttendanceID && iv.EndedAt == nil {
			return attendance.BreakInterval{}, attendance.ErrBreakInProgress
		}
	}

	f.seq++
	br.ID = fmt.Sprintf("break-%d", f.seq)
	br.CreatedAt = br.StartedAt
	stored := br
	f.intervals[br.ID] = &stored
	return br, nil
}

func (f *fakeBreakRepo) GetOpenByAttendance(ctx context.Context, attendanceID string) (attendance.BreakInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, iv := range f.intervals {
		if iv.AttendanceID == attendanceID && iv.EndedAt == nil {
			return *iv, nil
		}
	}
	return attendance.BreakInterval{}, attendance.ErrNoOpenBreak
}

func (f *fakeBreakRepo) Close(ctx context.Context, id string, endedAt time.Time, minutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	iv, ok := f.intervals[id]
	if !ok || iv.EndedAt != nil {
		return attendance.ErrNoOpenBreak
	}
	iv.EndedAt = &endedAt
	iv.Minutes = &minutes
	return nil
}

func (f *fakeBreakRepo) SumClosedMinutes(ctx context.Context, attendanceID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, iv := range f.intervals {
		if iv.AttendanceID == attendanceID && iv.EndedAt != nil && iv.Minutes != nil {
			total += *iv.Minutes
		}
	}
	return total, nil
}

func (f *fakeBreakRepo) ListByAttendance(ctx context.Context, attendanceID string) ([]attendance.BreakInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []attendance.BreakInterval
	for _, iv := range f.intervals {
		if iv.AttendanceID == attendanceID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

// newTestService wires the service against in-memory fakes with a fixed
// UTC workday of 09:00-18:00 and 8 full-day hours.
func newTestService(t *testing.T, now time.Time) (*AttendanceServiceImpl, *fakeAttendanceRepo, *fakeBreakRepo) {
	t.Helper()

	rules, err := NewRules(config.WorkdayConfig{
		StandardStart: "09:00",
		StandardEnd:   "18:00",
		FullDayHours:  8,
	}, time.UTC)
	require.NoError(t, err)

	attRepo := newFakeAttendanceRepo()
	brRepo := newFakeBreakRepo()

	svc := &AttendanceServiceImpl{
		tx:                   fakeTxRunner{},
		AttendanceRepository: attRepo,
		BreakRepository:      brRepo,
		rules:                rules,
		recorder:             audit.NopRecorder{},
		clock:                func() time.Time { return now },
	}
	return svc, attRepo, brRepo
}

func TestAttendanceService_ClockIn_PresentBeforeStandardStart(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 55, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)
	ctx := staffContext(t, testStaffID, "staff")

	resp, err := svc.ClockIn(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, testStaffID, resp.StaffID)
}

func TestAttendanceService_ClockIn_LateAfterStandardStart(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)
	ctx := staffContext(t, testStaffID, "staff")

	resp, err := svc.ClockIn(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "late", resp.Status)
}

func TestAttendanceService_ClockIn_DuplicateSameDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceService_ClockOut_EarlyLeaveOverridesLate(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, clockIn)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	// 7h55m worked, before the standard end: early leave wins over late.
	svc.clock = func() time.Time { return time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC) }
	resp, err := svc.ClockOut(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "early_leave", resp.Status)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 7.92, *resp.TotalHours)
	require.NotNil(t, resp.ClockOutTime)
}

func TestAttendanceService_ClockOut_FullDayKeepsClockInStatus(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, clockIn)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	svc.clock = func() time.Time { return time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC) }
	resp, err := svc.ClockOut(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 10.0, *resp.TotalHours)
}

func TestAttendanceService_ClockOut_WithoutClockIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.ClockOut(ctx)

	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_ClockOut_Twice(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	svc.clock = func() time.Time { return time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC) }
	_, err = svc.ClockOut(ctx)
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestAttendanceService_ClockIn_NoIdentity(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)

	_, err := svc.ClockIn(context.Background())

	assert.Error(t, err)
}

func TestAttendanceService_GetMyAttendance_ReturnsOwnRecords(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, attRepo, _ := newTestService(t, now)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	// Another staff member's record must not leak into the listing.
	_, err = attRepo.Create(context.Background(), attendance.Attendance{
		StaffID:  "22222222-2222-2222-2222-222222222222",
		WorkDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ClockIn:  now,
		Status:   attendance.StatusPresent,
	})
	require.NoError(t, err)

	list, err := svc.GetMyAttendance(ctx, attendance.MyAttendanceFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
	require.Len(t, list.Attendances, 1)
	assert.Equal(t, testStaffID, list.Attendances[0].StaffID)
	assert.Equal(t, 20, list.Limit)
	assert.Equal(t, 1, list.TotalPages)
}

func TestAttendanceService_GetMyAttendance_InvalidFilter(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)
	ctx := staffContext(t, testStaffID, "staff")

	badDate := "10-03-2025"
	_, err := svc.GetMyAttendance(ctx, attendance.MyAttendanceFilter{StartDate: &badDate})

	assert.Error(t, err)
}
