// path: routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ljh8159/rail-back/controllers"
)

// Handlers bundles everything Register wires up.
type Handlers struct {
	Upload *controllers.UploadHandler
	Report *controllers.ReportHandler
	Auth   *controllers.AuthHandler
}

// Register attaches all API endpoints to the app.
func Register(app *fiber.App, h *Handlers) {
	api := app.Group("/api")

	api.Post("/upload_photo", h.Upload.UploadPhoto)
	api.Post("/predict", h.Upload.Predict)

	api.Post("/report", h.Report.CreateReport)
	api.Post("/report_update", h.Report.UpdateReport)
	api.Get("/reports", h.Report.MapReports)

	api.Get("/report_stats", h.Report.ReportStats)
	api.Get("/user_stats", h.Report.UserStats)
	api.Get("/user_point", h.Report.UserPoint)
	api.Get("/user_reports", h.Report.UserReports)
	api.Get("/all_reports", h.Report.AllReports)

	api.Get("/admin_reports", h.Report.AdminReports)
	api.Post("/admin_approve", h.Report.AdminApprove)

	api.Post("/register", h.Auth.Register)
	api.Post("/login", h.Auth.Login)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
