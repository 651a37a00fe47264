// path: reports/store.go

// Package reports holds the report lifecycle service and its
// query/aggregation layer. Persistence is behind the Store interface;
// the mongo implementation lives in the database package.
package reports

import (
	"context"

	"github.com/ljh8159/rail-back/models"
)

// Filter selects report rows. Zero values mean "don't filter on this
// field" (stages are 1-5, so 0 is safe as unset).
type Filter struct {
	Type           string
	Stage          int
	UserID         string
	UserpageType   string
	UserpageStage  int
	DispatchUserID string
}

type Store interface {
	// Insert persists a new report and assigns its monotonic id.
	Insert(ctx context.Context, r *models.Report) error

	// MarkDispatched flips every REPORT-track row at exactly this
	// location to DISPATCHED/stage 1 with the given responder id, and
	// returns how many rows matched. Zero matches is not an error.
	MarkDispatched(ctx context.Context, location, dispatchUserID string) (int64, error)

	// SetDecision writes stage into ai_stage and for_userpage_stage of
	// one report. Returns apperr.NotFoundError when the id is unknown.
	SetDecision(ctx context.Context, id int64, stage int) error

	// FindRecent returns rows matching any of the filters, newest
	// timestamp first, truncated to limit (limit <= 0 means no limit).
	FindRecent(ctx context.Context, filters []Filter, limit int64) ([]models.Report, error)

	// FindMarkers returns rows matching the filter, newest id first.
	FindMarkers(ctx context.Context, f Filter) ([]models.Report, error)

	Count(ctx context.Context, f Filter) (int64, error)
}
