package service

import (
	"context"
	"fmt"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentService handles blog, infographic and article content. One
// service covers all three kinds; the kind selects the backing collection.
type ContentService struct {
	repos map[model.ContentKind]repository.IContentRepository
}

// NewContentService creates a content service over per-kind repositories
func NewContentService(repos map[model.ContentKind]repository.IContentRepository) *ContentService {
	return &ContentService{repos: repos}
}

func (s *ContentService) repo(kind model.ContentKind) (repository.IContentRepository, error) {
	r, ok := s.repos[kind]
	if !ok {
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
	return r, nil
}

// Create stores a new content item. Title, category and content are
// required; imageUrl is optional.
func (s *ContentService) Create(ctx context.Context, kind model.ContentKind, item *model.ContentItem) (*model.ContentItem, error) {
	if item.Title == "" {
		return nil, missingField("title")
	}
	if item.Category == "" {
		return nil, missingField("category")
	}
	if item.Content == "" {
		return nil, missingField("content")
	}
	r, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	return r.Create(ctx, item)
}

// List returns all items of the kind.
func (s *ContentService) List(ctx context.Context, kind model.ContentKind) ([]*model.ContentItem, error) {
	r, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	return r.List(ctx)
}

// Get returns an item by id.
func (s *ContentService) Get(ctx context.Context, kind model.ContentKind, id primitive.ObjectID) (*model.ContentItem, error) {
	r, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Update replaces title, content, author and imagePath on the item.
// Omitted fields are overwritten with empty values.
func (s *ContentService) Update(ctx context.Context, kind model.ContentKind, id primitive.ObjectID, upd model.ContentUpdate) (*model.ContentItem, error) {
	r, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	return r.Update(ctx, id, upd)
}

// Delete removes an item by id.
func (s *ContentService) Delete(ctx context.Context, kind model.ContentKind, id primitive.ObjectID) error {
	r, err := s.repo(kind)
	if err != nil {
		return err
	}
	return r.Delete(ctx, id)
}
