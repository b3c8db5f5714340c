package repository

import (
	"context"
	"time"

	"github.com/adworks/marketing-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IContentRepository defines content persistence for one content kind.
type IContentRepository interface {
	Create(ctx context.Context, item *model.ContentItem) (*model.ContentItem, error)
	List(ctx context.Context) ([]*model.ContentItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ContentItem, error)
	Update(ctx context.Context, id primitive.ObjectID, upd model.ContentUpdate) (*model.ContentItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Kind() model.ContentKind
}

// ContentRepository implements content persistence against the collection
// selected by the kind. One implementation serves blog posts, infographics
// and articles.
type ContentRepository struct {
	kind       model.ContentKind
	collection *mongo.Collection
}

func NewContentRepository(kind model.ContentKind, db *mongo.Database) IContentRepository {
	return &ContentRepository{kind: kind, collection: db.Collection(kind.Collection())}
}

func (r *ContentRepository) Kind() model.ContentKind {
	return r.kind
}

func (r *ContentRepository) Create(ctx context.Context, item *model.ContentItem) (*model.ContentItem, error) {
	item.Date = time.Now()
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, translate(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return item, nil
}

func (r *ContentRepository) List(ctx context.Context) ([]*model.ContentItem, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	items := []*model.ContentItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *ContentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ContentItem, error) {
	var item model.ContentItem
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// Update replaces title, content, author and imagePath with the supplied
// values. Empty fields overwrite the stored ones; this is replace, not
// merge. Returns the post-update document.
func (r *ContentRepository) Update(ctx context.Context, id primitive.ObjectID, upd model.ContentUpdate) (*model.ContentItem, error) {
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	set := bson.M{
		"title":     upd.Title,
		"content":   upd.Content,
		"author":    upd.Author,
		"imagePath": upd.ImagePath,
	}

	var item model.ContentItem
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *ContentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
