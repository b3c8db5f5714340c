package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactEntry is a contact form submission.
type ContactEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Message     string             `bson:"message" json:"message"`
	Phone       string             `bson:"phone" json:"phone"`
	CompanyName string             `bson:"companyName" json:"companyName"`
	CountryCode string             `bson:"countryCode,omitempty" json:"countryCode,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
}
