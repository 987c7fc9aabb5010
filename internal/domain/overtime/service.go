package overtime

import (
	"context"
)

// OvertimeService defines business logic for overtime tracking.
type OvertimeService interface {
	// StartOvertime opens a session for today; at most one started session
	// per staff member per day.
	StartOvertime(ctx context.Context, req StartOvertimeRequest) (SessionResponse, error)

	// EndOvertime closes a started session owned by the caller and derives
	// its hours.
	EndOvertime(ctx context.Context, req EndOvertimeRequest) (SessionResponse, error)

	// GetMyOvertime retrieves the caller's sessions for one month.
	GetMyOvertime(ctx context.Context, filter MyOvertimeFilter) (ListSessionResponse, error)
}
