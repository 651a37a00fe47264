// path: database/userstore.go
package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ljh8159/rail-back/apperr"
	"github.com/ljh8159/rail-back/models"
)

// UserStore is the MongoDB-backed credential store.
type UserStore struct{}

func NewUserStore() *UserStore { return &UserStore{} }

// CreateUser inserts a credential record. The unique index on user_id
// turns a duplicate registration into a ConflictError.
func (s *UserStore) CreateUser(ctx context.Context, userID, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := Col("users").InsertOne(ctx, models.User{
		UserID:       userID,
		PasswordHash: passwordHash,
	})
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflictf("user %s already exists", userID)
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *UserStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var u models.User
	err := Col("users").FindOne(ctx, bson.M{"user_id": userID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFoundf("user %s not found", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
