package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

// Recorder accepts audit events for every successful mutating operation.
// Recording is best-effort: it never blocks the caller beyond spawning the
// write and never surfaces an error to the primary operation.
type Recorder interface {
	Record(ctx context.Context, actorID string, action string, details string)
}

type postgresRecorder struct {
	db      *database.DB
	logger  *slog.Logger
	timeout time.Duration
}

func NewPostgresRecorder(db *database.DB, logger *slog.Logger) Recorder {
	return &postgresRecorder{
		db:      db,
		logger:  logger,
		timeout: 3 * time.Second,
	}
}

// Record writes the event asynchronously on the pool, outside any primary
// transaction, so a failed audit write cannot roll back the operation that
// produced it.
func (r *postgresRecorder) Record(ctx context.Context, actorID string, action string, details string) {
	// Detach from the request lifecycle: a client disconnect must not
	// cancel the audit write.
	bg := context.WithoutCancel(ctx)

	go func() {
		writeCtx, cancel := context.WithTimeout(bg, r.timeout)
		defer cancel()

		_, err := r.db.Exec(writeCtx, `
			INSERT INTO audit_logs (id, actor_id, action, details, created_at)
			VALUES ($1, $2, $3, $4, NOW())
		`, uuid.NewString(), actorID, action, details)
		if err != nil {
			r.logger.Warn("audit write failed",
				slog.String("actor_id", actorID),
				slog.String("action", action),
				slog.Any("error", err),
			)
		}
	}()
}

// NopRecorder discards all events. Used in tests.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, string, string, string) {}
