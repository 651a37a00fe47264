// path: models/responses.go
package models

// ReportPayload is the JSON body for POST /api/report. Only location is
// mandatory; everything else falls back to the submission defaults.
type ReportPayload struct {
	UserID        string  `json:"user_id"`
	Type          string  `json:"type"`
	PhotoFilename string  `json:"photo_filename"`
	Location      string  `json:"location"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Timestamp     string  `json:"timestamp"`
	AIStage       int     `json:"ai_stage"`
	Extra         string  `json:"extra"`

	DispatchUserID   string `json:"dispatch_user_id"`
	ForUserpageType  string `json:"for_userpage_type"`
	ForUserpageStage int    `json:"for_userpage_stage"`
}

// DispatchPayload is the JSON body for POST /api/report_update.
type DispatchPayload struct {
	Location       string `json:"location"`
	DispatchUserID string `json:"dispatch_user_id"`
}

// DecisionPayload is the JSON body for POST /api/admin_approve.
type DecisionPayload struct {
	ID      int64 `json:"id"`
	AIStage int   `json:"ai_stage"`
}

// CredentialsPayload is the JSON body for /api/register and /api/login.
type CredentialsPayload struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// PredictPayload is the JSON body for POST /api/predict.
type PredictPayload struct {
	Filename string `json:"filename"`
}
