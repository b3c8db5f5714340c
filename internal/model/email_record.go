package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailRecord is an append-only log entry written after an outbound
// notification email is sent. There is no read path.
type EmailRecord struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email string             `bson:"email" json:"email"`
	Date  time.Time          `bson:"date" json:"date"`
}
