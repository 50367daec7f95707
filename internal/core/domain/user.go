package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidInput = errors.New("invalid input")

// User is a managed account record, one row in the user management table.
// It is distinct from Principal: a User is server-owned data, a Principal
// is the client-side identity of whoever is logged in.
type User struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Role       Role      `json:"role" bson:"role"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Department string    `json:"department,omitempty" bson:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
