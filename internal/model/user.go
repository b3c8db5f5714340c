package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. The password is stored as a bcrypt hash
// and never serialized into responses.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"` // e.g., admin, user
	Phone        string             `bson:"phone" json:"phone"`
	Date         time.Time          `bson:"date" json:"date"`
}

// FullName returns the display name carried in session tokens.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
