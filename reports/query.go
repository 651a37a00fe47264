// path: reports/query.go
package reports

import (
	"context"
	"time"

	"github.com/ljh8159/rail-back/models"
)

// Point weights for the scoreboard; purely derived, never stored.
const (
	PointsPerReport   = 5000
	PointsPerDispatch = 10000
)

// DefaultActivityLimit caps activity feeds when the caller gives none.
const DefaultActivityLimit = 3

// Scope selects the visibility track of an activity/stat query.
type Scope int

const (
	// ScopeGlobal: confirmed reports plus active dispatches, everyone's.
	ScopeGlobal Scope = iota
	// ScopeUser: the same union, but the report side filtered through
	// the reporter's userpage shadow columns and the dispatch side
	// through dispatch_user_id.
	ScopeUser
)

// ActivityItem is one entry of a recent-activity feed.
type ActivityItem struct {
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	Time      string    `json:"time"`
}

// PendingReport is one entry of the admin review queue.
type PendingReport struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	Location      string    `json:"location"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	PhotoFilename string    `json:"photo_filename"`
	AIStage       int       `json:"ai_stage"`
	Timestamp     time.Time `json:"timestamp"`
	Time          string    `json:"time"`
}

// Marker is one confirmed report pin for the map view.
type Marker struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats are the per-scope report/dispatch tallies.
type Stats struct {
	ReportCount   int64 `json:"report_count"`
	DispatchCount int64 `json:"dispatch_count"`
}

// Queries is the read-side projection layer over the report store.
type Queries struct {
	store Store
	now   func() time.Time
}

func NewQueries(store Store) *Queries {
	return &Queries{store: store, now: time.Now}
}

// scopeFilters returns the two track filters of a scope: the confirmed
// report side and the active dispatch side, in that order.
func scopeFilters(scope Scope, userID string) [2]Filter {
	if scope == ScopeUser {
		return [2]Filter{
			{UserID: userID, UserpageType: models.TypeReport, UserpageStage: models.StageConfirmed},
			{DispatchUserID: userID, Type: models.TypeDispatched, Stage: models.StageDispatched},
		}
	}
	return [2]Filter{
		{Type: models.TypeReport, Stage: models.StageConfirmed},
		{Type: models.TypeDispatched, Stage: models.StageDispatched},
	}
}

// RecentActivity returns the newest feed entries of the scope, most
// recent first. userID is only consulted for ScopeUser. limit <= 0
// falls back to DefaultActivityLimit.
func (q *Queries) RecentActivity(ctx context.Context, scope Scope, userID string, limit int) ([]ActivityItem, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	f := scopeFilters(scope, userID)
	rows, err := q.store.FindRecent(ctx, f[:], int64(limit))
	if err != nil {
		return nil, err
	}

	now := q.now().UTC()
	items := make([]ActivityItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ActivityItem{
			Type:      r.Type,
			Location:  r.Location,
			Timestamp: r.Timestamp,
			Time:      RelativeAge(now, r.Timestamp),
		})
	}
	return items, nil
}

// Stats counts the scope's two tracks under the same predicates as
// RecentActivity.
func (q *Queries) Stats(ctx context.Context, scope Scope, userID string) (Stats, error) {
	f := scopeFilters(scope, userID)
	reportCount, err := q.store.Count(ctx, f[0])
	if err != nil {
		return Stats{}, err
	}
	dispatchCount, err := q.store.Count(ctx, f[1])
	if err != nil {
		return Stats{}, err
	}
	return Stats{ReportCount: reportCount, DispatchCount: dispatchCount}, nil
}

// Points computes a user's score from their stats.
func (q *Queries) Points(ctx context.Context, userID string) (int64, error) {
	st, err := q.Stats(ctx, ScopeUser, userID)
	if err != nil {
		return 0, err
	}
	return st.ReportCount*PointsPerReport + st.DispatchCount*PointsPerDispatch, nil
}

// AdminQueue lists reports awaiting review (REPORT track, stage 2),
// newest first.
func (q *Queries) AdminQueue(ctx context.Context) ([]PendingReport, error) {
	rows, err := q.store.FindRecent(ctx, []Filter{
		{Type: models.TypeReport, Stage: models.StagePending},
	}, 0)
	if err != nil {
		return nil, err
	}

	now := q.now().UTC()
	items := make([]PendingReport, 0, len(rows))
	for _, r := range rows {
		items = append(items, PendingReport{
			ID:            r.ID,
			UserID:        r.UserID,
			Location:      r.Location,
			Lat:           r.Lat,
			Lng:           r.Lng,
			PhotoFilename: r.PhotoFilename,
			AIStage:       r.AIStage,
			Timestamp:     r.Timestamp,
			Time:          RelativeAge(now, r.Timestamp),
		})
	}
	return items, nil
}

// MapMarkers lists confirmed reports for the map view.
func (q *Queries) MapMarkers(ctx context.Context) ([]Marker, error) {
	rows, err := q.store.FindMarkers(ctx, Filter{
		Type:  models.TypeReport,
		Stage: models.StageConfirmed,
	})
	if err != nil {
		return nil, err
	}

	markers := make([]Marker, 0, len(rows))
	for _, r := range rows {
		markers = append(markers, Marker{
			Lat:       r.Lat,
			Lng:       r.Lng,
			Location:  r.Location,
			Timestamp: r.Timestamp,
		})
	}
	return markers, nil
}
