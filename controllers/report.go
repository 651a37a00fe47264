// path: controllers/report.go
package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ljh8159/rail-back/models"
	"github.com/ljh8159/rail-back/reports"
)

// ReportHandler owns the report lifecycle and read-side endpoints.
type ReportHandler struct {
	Svc *reports.Service
	Q   *reports.Queries
}

func NewReportHandler(svc *reports.Service, q *reports.Queries) *ReportHandler {
	return &ReportHandler{Svc: svc, Q: q}
}

// CreateReport handles POST /api/report.
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var p models.ReportPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}

	in := reports.SubmitInput{
		UserID:           p.UserID,
		Type:             p.Type,
		PhotoFilename:    p.PhotoFilename,
		Location:         strings.TrimSpace(p.Location),
		Lat:              p.Lat,
		Lng:              p.Lng,
		AIStage:          p.AIStage,
		Extra:            p.Extra,
		DispatchUserID:   p.DispatchUserID,
		ForUserpageType:  p.ForUserpageType,
		ForUserpageStage: p.ForUserpageStage,
	}
	if p.Timestamp != "" {
		t, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			return badReq(c, "invalid timestamp (RFC3339)")
		}
		in.Timestamp = t
	}

	if _, err := h.Svc.Submit(c.Context(), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(ResultResp{Result: "success"})
}

// UpdateReport handles POST /api/report_update: a responder claims
// every pending report at the given location.
func (h *ReportHandler) UpdateReport(c *fiber.Ctx) error {
	var p models.DispatchPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}
	if err := h.Svc.Dispatch(c.Context(), strings.TrimSpace(p.Location), p.DispatchUserID); err != nil {
		return fail(c, err)
	}
	return c.JSON(ResultResp{Result: "updated"})
}

// AdminApprove handles POST /api/admin_approve: stage 3 confirms,
// stage 5 rejects.
func (h *ReportHandler) AdminApprove(c *fiber.Ctx) error {
	var p models.DecisionPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}
	if p.ID == 0 {
		return badReq(c, "id is required")
	}
	if err := h.Svc.AdminDecide(c.Context(), p.ID, p.AIStage); err != nil {
		return fail(c, err)
	}
	return c.JSON(ResultResp{Result: "success"})
}
