package repository

import (
	"context"
	"time"

	"github.com/adworks/marketing-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IContactRepository defines contact form entry persistence.
type IContactRepository interface {
	Create(ctx context.Context, entry *model.ContactEntry) (*model.ContactEntry, error)
	List(ctx context.Context) ([]*model.ContactEntry, error)
}

// ContactRepository implements contact entry persistence
type ContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) IContactRepository {
	return &ContactRepository{collection: db.Collection("contactforms")}
}

func (r *ContactRepository) Create(ctx context.Context, entry *model.ContactEntry) (*model.ContactEntry, error) {
	entry.Date = time.Now()
	res, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, translate(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid
	}
	return entry, nil
}

// List returns every entry in insertion order, no pagination.
func (r *ContactRepository) List(ctx context.Context) ([]*model.ContactEntry, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	entries := []*model.ContactEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, translate(err)
	}
	return entries, nil
}
