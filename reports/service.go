// path: reports/service.go
package reports

import (
	"context"
	"time"

	"github.com/ljh8159/rail-back/apperr"
	"github.com/ljh8159/rail-back/models"
)

// Submission timestamps default to wall clock shifted by a literal +9h.
// The deployed clients were written against this exact convention (not
// a zone-aware KST), so it is preserved as-is.
const timestampOffset = 9 * time.Hour

// Service enforces the report lifecycle: submission, dispatch claiming,
// and admin approval/rejection.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SubmitInput carries a citizen submission. Zero values fall back to
// the lifecycle defaults (guest reporter, REPORT track, current time).
type SubmitInput struct {
	UserID        string
	Type          string
	PhotoFilename string
	Location      string
	Lat           float64
	Lng           float64
	Timestamp     time.Time
	AIStage       int
	Extra         string

	DispatchUserID   string
	ForUserpageType  string
	ForUserpageStage int
}

// Submit creates a report row. The userpage shadow columns mirror
// type/ai_stage unless the caller supplies them explicitly.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*models.Report, error) {
	if in.Location == "" {
		return nil, apperr.Validationf("location is required")
	}

	r := &models.Report{
		UserID:           in.UserID,
		Type:             in.Type,
		PhotoFilename:    in.PhotoFilename,
		Location:         in.Location,
		Lat:              in.Lat,
		Lng:              in.Lng,
		Timestamp:        in.Timestamp,
		AIStage:          in.AIStage,
		Extra:            in.Extra,
		DispatchUserID:   in.DispatchUserID,
		ForUserpageType:  in.ForUserpageType,
		ForUserpageStage: in.ForUserpageStage,
	}
	if r.UserID == "" {
		r.UserID = models.GuestUserID
	}
	if r.Type == "" {
		r.Type = models.TypeReport
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = s.now().UTC().Add(timestampOffset)
	}
	if r.ForUserpageType == "" {
		r.ForUserpageType = r.Type
	}
	if r.ForUserpageStage == 0 {
		r.ForUserpageStage = r.AIStage
	}

	if err := s.store.Insert(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Dispatch claims every pending REPORT-track row at exactly this
// location for the responder: type flips to DISPATCHED, ai_stage drops
// to 1, dispatch_user_id is recorded. Matching is raw string equality
// and intentionally bulk; a location with no pending report is a silent
// no-op.
func (s *Service) Dispatch(ctx context.Context, location, dispatchUserID string) error {
	if location == "" {
		return apperr.Validationf("location is required")
	}
	_, err := s.store.MarkDispatched(ctx, location, dispatchUserID)
	return err
}

// AdminDecide records an admin decision on one report: stage 3 confirms
// it, stage 5 rejects it. Both ai_stage and for_userpage_stage are
// written; the type pair is never touched. There is no guard against
// re-deciding an already-decided report — the last write wins.
func (s *Service) AdminDecide(ctx context.Context, id int64, stage int) error {
	if stage != models.StageConfirmed && stage != models.StageRejected {
		return apperr.Validationf("ai_stage must be %d or %d", models.StageConfirmed, models.StageRejected)
	}
	return s.store.SetDecision(ctx, id, stage)
}
