// path: controllers/upload.go
package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ljh8159/rail-back/classifier"
	"github.com/ljh8159/rail-back/models"
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// UploadHandler owns photo upload and classifier prediction.
type UploadHandler struct {
	Dir   string
	Model classifier.Classifier
}

func NewUploadHandler(dir string, model classifier.Classifier) *UploadHandler {
	return &UploadHandler{Dir: dir, Model: model}
}

// UploadPhoto handles POST /api/upload_photo (multipart field "file").
// The stored name is image_<unix>.<ext>; clients pass it back to
// /api/predict and /api/report.
func (h *UploadHandler) UploadPhoto(c *fiber.Ctx) error {
	f, err := c.FormFile("file")
	if err != nil || f == nil {
		return badReq(c, "No file part")
	}
	if f.Filename == "" {
		return badReq(c, "No selected file")
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Filename), "."))
	if !allowedExtensions[ext] {
		return badReq(c, "Invalid file type")
	}

	name := fmt.Sprintf("image_%d.%s", time.Now().Unix(), ext)
	if err := saveFormFile(f, filepath.Join(h.Dir, name)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"filename": name})
}

// Predict handles POST /api/predict: reads the previously uploaded file
// and asks the external model for its severity stage.
func (h *UploadHandler) Predict(c *fiber.Ctx) error {
	var p models.PredictPayload
	if err := c.BodyParser(&p); err != nil || p.Filename == "" {
		return badReq(c, "No filename provided")
	}

	// filepath.Base blocks path traversal out of the upload dir.
	path := filepath.Join(h.Dir, filepath.Base(p.Filename))
	img, err := os.ReadFile(path)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResp{Error: "File not found"})
	}

	stage, err := h.Model.Classify(c.Context(), img)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"stage": stage})
}

func saveFormFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
