package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role classifies a stored user record.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserStore defines persistence operations for signup records.
type UserStore interface {
	Create(ctx context.Context, user User) (string, error)
	List(ctx context.Context) ([]User, error)
}

// User represents a signup record collected by the chatbot.
// Records are written once on wizard completion and never mutated.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username  string             `bson:"username" json:"username"`
	FullName  string             `bson:"fullName" json:"fullName"`
	Email     string             `bson:"email" json:"email"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewUser carries the client-supplied signup fields. Role and creation
// time are assigned server-side on insert.
type NewUser struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
