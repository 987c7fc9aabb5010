package overtime

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/overtime"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/audit"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/validator"
)

const testStaffID = "11111111-1111-1111-1111-111111111111"

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

type fakeOvertimeRepo struct {
	mu       sync.Mutex
	sessions map[string]*overtime.Session
	seq      int
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{sessions: make(map[string]*overtime.Session)}
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, sess overtime.Session) (overtime.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.sessions {
		if s.StaffID == sess.StaffID && s.WorkDate.Equal(sess.WorkDate) && s.Status == overtime.StatusStarted {
			return overtime.Session{}, overtime.ErrOvertimeInProgress
		}
	}

	f.seq++
	sess.ID = fmt.Sprintf("ot-%d", f.seq)
	sess.CreatedAt = sess.StartTime
	sess.UpdatedAt = sess.StartTime
	stored := sess
	f.sessions[sess.ID] = &stored
	return sess, nil
}

func (f *fakeOvertimeRepo) GetStarted(ctx context.Context, id string, staffID string) (overtime.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sess, ok := f.sessions[id]
	if !ok || sess.StaffID != staffID || sess.Status != overtime.StatusStarted {
		return overtime.Session{}, overtime.ErrNoActiveOvertime
	}
	return *sess, nil
}

func (f *fakeOvertimeRepo) End(ctx context.Context, id string, endTime time.Time, hours float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	sess, ok := f.sessions[id]
	if !ok || sess.Status != overtime.StatusStarted {
		return overtime.ErrNoActiveOvertime
	}
	sess.EndTime = &endTime
	sess.Hours = &hours
	sess.Status = overtime.StatusEnded
	sess.UpdatedAt = endTime
	return nil
}

func (f *fakeOvertimeRepo) ListByStaffAndMonth(ctx context.Context, staffID string, year int, month time.Month) ([]overtime.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []overtime.Session
	for _, sess := range f.sessions {
		if sess.StaffID == staffID && sess.WorkDate.Year() == year && sess.WorkDate.Month() == month {
			out = append(out, *sess)
		}
	}
	return out, nil
}

func newTestService(now time.Time) (*OvertimeServiceImpl, *fakeOvertimeRepo) {
	repo := newFakeOvertimeRepo()
	svc := &OvertimeServiceImpl{
		OvertimeRepository: repo,
		location:           time.UTC,
		recorder:           audit.NopRecorder{},
		clock:              func() time.Time { return now },
	}
	return svc, repo
}

func TestOvertimeService_StartOvertime_Success(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	resp, err := svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "quarterly report"})

	assert.NoError(t, err)
	assert.Equal(t, "started", resp.Status)
	assert.Equal(t, "quarterly report", resp.WorkContent)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Nil(t, resp.Hours)
}

func TestOvertimeService_StartOvertime_EmptyContent(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "   "})

	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)
}

func TestOvertimeService_StartOvertime_AlreadyStarted(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "report"})
	require.NoError(t, err)

	_, err = svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "more report"})

	assert.ErrorIs(t, err, overtime.ErrOvertimeInProgress)
}

func TestOvertimeService_StartOvertime_SecondSessionAfterEnd(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	first, err := svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "report"})
	require.NoError(t, err)

	svc.clock = func() time.Time { return time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC) }
	_, err = svc.EndOvertime(ctx, overtime.EndOvertimeRequest{SessionID: first.ID})
	require.NoError(t, err)

	// Several sessions per day are allowed, just not two started at once.
	_, err = svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "deploy"})
	assert.NoError(t, err)
}

func TestOvertimeService_EndOvertime_DerivesHours(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	sess, err := svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "report"})
	require.NoError(t, err)

	svc.clock = func() time.Time { return time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC) }
	resp, err := svc.EndOvertime(ctx, overtime.EndOvertimeRequest{SessionID: sess.ID})

	assert.NoError(t, err)
	assert.Equal(t, "ended", resp.Status)
	require.NotNil(t, resp.Hours)
	assert.Equal(t, 2.5, *resp.Hours)
	require.NotNil(t, resp.EndTime)
}

func TestOvertimeService_EndOvertime_Twice(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	sess, err := svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "report"})
	require.NoError(t, err)

	svc.clock = func() time.Time { return time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC) }
	_, err = svc.EndOvertime(ctx, overtime.EndOvertimeRequest{SessionID: sess.ID})
	require.NoError(t, err)

	_, err = svc.EndOvertime(ctx, overtime.EndOvertimeRequest{SessionID: sess.ID})
	assert.ErrorIs(t, err, overtime.ErrNoActiveOvertime)
}

func TestOvertimeService_EndOvertime_OtherStaffsSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ownerCtx := staffContext(t, testStaffID, "staff")

	sess, err := svc.StartOvertime(ownerCtx, overtime.StartOvertimeRequest{WorkContent: "report"})
	require.NoError(t, err)

	otherCtx := staffContext(t, "22222222-2222-2222-2222-222222222222", "staff")
	_, err = svc.EndOvertime(otherCtx, overtime.EndOvertimeRequest{SessionID: sess.ID})

	assert.ErrorIs(t, err, overtime.ErrNoActiveOvertime)
}

func TestOvertimeService_EndOvertime_UnknownSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.EndOvertime(ctx, overtime.EndOvertimeRequest{SessionID: "missing"})

	assert.ErrorIs(t, err, overtime.ErrNoActiveOvertime)
}

func TestOvertimeService_GetMyOvertime_SumsMonth(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	first, err := svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "report"})
	require.NoError(t, err)
	svc.clock = func() time.Time { return time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC) }
	_, err = svc.EndOvertime(ctx, overtime.EndOvertimeRequest{SessionID: first.ID})
	require.NoError(t, err)

	svc.clock = func() time.Time { return time.Date(2025, 3, 11, 19, 0, 0, 0, time.UTC) }
	second, err := svc.StartOvertime(ctx, overtime.StartOvertimeRequest{WorkContent: "deploy"})
	require.NoError(t, err)
	svc.clock = func() time.Time { return time.Date(2025, 3, 11, 20, 30, 0, 0, time.UTC) }
	_, err = svc.EndOvertime(ctx, overtime.EndOvertimeRequest{SessionID: second.ID})
	require.NoError(t, err)

	list, err := svc.GetMyOvertime(ctx, overtime.MyOvertimeFilter{Month: "2025-03"})

	assert.NoError(t, err)
	assert.Equal(t, "2025-03", list.Month)
	assert.Equal(t, 3.5, list.TotalHours)
	assert.Len(t, list.Sessions, 2)
}

func TestOvertimeService_GetMyOvertime_InvalidMonth(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := staffContext(t, testStaffID, "staff")

	_, err := svc.GetMyOvertime(ctx, overtime.MyOvertimeFilter{Month: "March 2025"})

	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)
}
