package repository

import (
	"context"
	"time"

	"github.com/adworks/marketing-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IEmailRecordRepository defines the append-only email send log.
type IEmailRecordRepository interface {
	Create(ctx context.Context, email string) (primitive.ObjectID, error)
}

// EmailRecordRepository implements the email send log
type EmailRecordRepository struct {
	collection *mongo.Collection
}

func NewEmailRecordRepository(db *mongo.Database) IEmailRecordRepository {
	return &EmailRecordRepository{collection: db.Collection("emailrecords")}
}

func (r *EmailRecordRepository) Create(ctx context.Context, email string) (primitive.ObjectID, error) {
	rec := model.EmailRecord{Email: email, Date: time.Now()}
	res, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return primitive.NilObjectID, translate(err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}
