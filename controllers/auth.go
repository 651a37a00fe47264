// path: controllers/auth.go
package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ljh8159/rail-back/apperr"
	"github.com/ljh8159/rail-back/auth"
	"github.com/ljh8159/rail-back/models"
)

// UserStore is the credential store the auth endpoints need.
type UserStore interface {
	CreateUser(ctx context.Context, userID, passwordHash string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// AuthHandler owns registration and login.
type AuthHandler struct {
	Users  UserStore
	Tokens *auth.TokenIssuer
}

func NewAuthHandler(users UserStore, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var p models.CredentialsPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}
	if p.UserID == "" || p.Password == "" {
		return badReq(c, "user_id and password are required")
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return fail(c, err)
	}
	if err := h.Users.CreateUser(c.Context(), p.UserID, hash); err != nil {
		return fail(c, err)
	}
	return c.JSON(ResultResp{Result: "success"})
}

// Login handles POST /api/login. On success an ephemeral token is
// issued; it is not persisted and currently not checked anywhere.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var p models.CredentialsPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}
	if p.UserID == "" || p.Password == "" {
		return badReq(c, "user_id and password are required")
	}

	u, err := h.Users.GetUser(c.Context(), p.UserID)
	if err != nil {
		var nf *apperr.NotFoundError
		// An unknown user reads the same as a wrong password.
		if errors.As(err, &nf) {
			return badReq(c, "invalid user_id or password")
		}
		return fail(c, err)
	}
	if err := auth.CheckPassword(p.Password, u.PasswordHash); err != nil {
		return badReq(c, "invalid user_id or password")
	}

	token, err := h.Tokens.Issue(u.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"result":  "success",
		"user_id": u.UserID,
		"token":   token,
	})
}
