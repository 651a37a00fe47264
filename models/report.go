// path: models/report.go
package models

import "time"

// Report type track: a row starts on the citizen-report track and flips
// to the dispatch track when a responder claims it.
const (
	TypeReport     = "REPORT"
	TypeDispatched = "DISPATCHED"
)

// ai_stage values. 1 marks a dispatched row as in-progress; 2/3/5 are
// the admin-review states layered on top of the classifier output.
const (
	StageDispatched = 1
	StagePending    = 2
	StageConfirmed  = 3
	StageRejected   = 5
)

// GuestUserID is the anonymous reporter sentinel.
const GuestUserID = "guest"

type Report struct {
	ID            int64     `bson:"_id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Type          string    `bson:"type" json:"type"`
	PhotoFilename string    `bson:"photo_filename" json:"photo_filename"`
	Location      string    `bson:"location" json:"location"`
	Lat           float64   `bson:"lat" json:"lat"`
	Lng           float64   `bson:"lng" json:"lng"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
	AIStage       int       `bson:"ai_stage" json:"ai_stage"`
	Extra         string    `bson:"extra,omitempty" json:"extra,omitempty"`

	// Set when a responder claims the report; empty until then.
	DispatchUserID string `bson:"dispatch_user_id,omitempty" json:"dispatch_user_id,omitempty"`

	// Shadow copy of type/ai_stage for the reporter's personal history.
	// Mirrors type/ai_stage at creation; an admin decision updates
	// for_userpage_stage together with ai_stage but never the type pair,
	// so the reporter's own log is not rewritten by later workflow moves.
	ForUserpageType  string `bson:"for_userpage_type" json:"for_userpage_type"`
	ForUserpageStage int    `bson:"for_userpage_stage" json:"for_userpage_stage"`
}
