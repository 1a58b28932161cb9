// Package audit persists handled errors so they can be reviewed after the
// fact, independently of the log stream.
package audit

import (
	"context"
	"runtime/debug"

	"github.com/celly/backoffice/internal/domain/audit"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder writes handled errors to the error log table and to the logger.
// Recording failures are logged and swallowed so they never mask the
// original error.
type Recorder struct {
	repo   audit.Repository
	logger *zap.Logger
}

// NewRecorder creates a new Recorder
func NewRecorder(repo audit.Repository, logger *zap.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Record persists an error with the call-site stack and optional request info
func (r *Recorder) Record(ctx context.Context, err error, info string, userID *uuid.UUID) {
	if err == nil {
		return
	}

	entry := audit.NewErrorLog(err.Error(), string(debug.Stack()), info, userID)
	if saveErr := r.repo.Save(ctx, entry); saveErr != nil {
		r.logger.Error("failed to persist error log",
			zap.Error(saveErr),
			zap.String("original_error", err.Error()),
		)
		return
	}

	r.logger.Error("handled error recorded",
		zap.Error(err),
		zap.String("info", info),
	)
}

// Recent lists the most recent error log entries
func (r *Recorder) Recent(ctx context.Context, limit int) ([]audit.ErrorLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.repo.FindRecent(ctx, limit)
}
