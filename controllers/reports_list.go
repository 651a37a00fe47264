// path: controllers/reports_list.go
package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ljh8159/rail-back/models"
	"github.com/ljh8159/rail-back/reports"
)

// MapReports handles GET /api/reports: confirmed reports as map pins.
func (h *ReportHandler) MapReports(c *fiber.Ctx) error {
	markers, err := h.Q.MapMarkers(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(markers)
}

// ReportStats handles GET /api/report_stats: the global tallies.
func (h *ReportHandler) ReportStats(c *fiber.Ctx) error {
	st, err := h.Q.Stats(c.Context(), reports.ScopeGlobal, "")
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"blocked_count":    st.ReportCount,
		"dispatched_count": st.DispatchCount,
	})
}

// UserStats handles GET /api/user_stats?user_id=.
func (h *ReportHandler) UserStats(c *fiber.Ctx) error {
	userID := c.Query("user_id", models.GuestUserID)
	st, err := h.Q.Stats(c.Context(), reports.ScopeUser, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"report_count":   st.ReportCount,
		"dispatch_count": st.DispatchCount,
	})
}

// UserPoint handles GET /api/user_point?user_id=.
func (h *ReportHandler) UserPoint(c *fiber.Ctx) error {
	userID := c.Query("user_id", models.GuestUserID)
	point, err := h.Q.Points(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"point": point})
}

// UserReports handles GET /api/user_reports?user_id=&limit=: the
// reporter's personal activity feed.
func (h *ReportHandler) UserReports(c *fiber.Ctx) error {
	userID := c.Query("user_id", models.GuestUserID)
	limit := queryLimit(c, reports.DefaultActivityLimit)
	items, err := h.Q.RecentActivity(c.Context(), reports.ScopeUser, userID, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// AllReports handles GET /api/all_reports?limit=: the global feed.
func (h *ReportHandler) AllReports(c *fiber.Ctx) error {
	limit := queryLimit(c, reports.DefaultActivityLimit)
	items, err := h.Q.RecentActivity(c.Context(), reports.ScopeGlobal, "", limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// AdminReports handles GET /api/admin_reports: the pending review queue.
func (h *ReportHandler) AdminReports(c *fiber.Ctx) error {
	items, err := h.Q.AdminQueue(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}
