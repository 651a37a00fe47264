// path: controllers/helpers.go
package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ljh8159/rail-back/apperr"
	"github.com/ljh8159/rail-back/classifier"
)

type ErrorResp struct {
	Error string `json:"error"`
}

type ResultResp struct {
	Result string `json:"result"`
}

func badReq(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResp{Error: msg})
}

// fail maps the error taxonomy onto status codes: validation/conflict
// 400, not-found 404, classifier 500, anything else 500.
func fail(c *fiber.Ctx, err error) error {
	var (
		ve *apperr.ValidationError
		nf *apperr.NotFoundError
		ce *apperr.ConflictError
		cl *classifier.ClassificationError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ce):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResp{Error: err.Error()})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResp{Error: err.Error()})
	case errors.As(err, &cl):
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResp{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResp{Error: err.Error()})
	}
}

// queryLimit parses a limit query param clamped to [1,100]; def when
// absent or unparseable.
func queryLimit(c *fiber.Ctx, def int) int {
	v := c.Query("limit")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if n < 1 {
		n = 1
	}
	if n > 100 {
		n = 100
	}
	return n
}
