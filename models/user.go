// path: models/user.go
package models

// User is a credential record. There is no session table: login hands
// out an ephemeral token that is never persisted.
type User struct {
	UserID       string `bson:"user_id" json:"user_id"`
	PasswordHash string `bson:"password_hash" json:"-"`
}
