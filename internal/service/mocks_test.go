package service

import (
	"context"
	"time"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"
	"github.com/adworks/marketing-backend/pkg/mail"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---------------------------------------------------------------------------
// In-memory repositories and mailer used across the service tests. Each has
// an err field to force failures.
// ---------------------------------------------------------------------------

type memContentRepo struct {
	kind  model.ContentKind
	items []*model.ContentItem
	err   error
}

func newMemContentRepo(kind model.ContentKind) *memContentRepo {
	return &memContentRepo{kind: kind}
}

func (r *memContentRepo) Kind() model.ContentKind { return r.kind }

func (r *memContentRepo) Create(_ context.Context, item *model.ContentItem) (*model.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	item.ID = primitive.NewObjectID()
	item.Date = time.Now()
	r.items = append(r.items, item)
	return item, nil
}

func (r *memContentRepo) List(_ context.Context) ([]*model.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]*model.ContentItem{}, r.items...), nil
}

func (r *memContentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memContentRepo) Update(_ context.Context, id primitive.ObjectID, upd model.ContentUpdate) (*model.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, it := range r.items {
		if it.ID == id {
			it.Title = upd.Title
			it.Content = upd.Content
			it.Author = upd.Author
			it.ImagePath = upd.ImagePath
			return it, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memContentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if r.err != nil {
		return r.err
	}
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memContactRepo struct {
	entries []*model.ContactEntry
	err     error
}

func (r *memContactRepo) Create(_ context.Context, entry *model.ContactEntry) (*model.ContactEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	entry.ID = primitive.NewObjectID()
	entry.Date = time.Now()
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *memContactRepo) List(_ context.Context) ([]*model.ContactEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]*model.ContactEntry{}, r.entries...), nil
}

type memUserRepo struct {
	users []*model.User
	err   error
}

func (r *memUserRepo) EnsureIndexes(_ context.Context) error { return nil }

func (r *memUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.Date = time.Now()
	r.users = append(r.users, user)
	return user, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memEmailRepo struct {
	sent []string
	err  error
}

func (r *memEmailRepo) Create(_ context.Context, email string) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	r.sent = append(r.sent, email)
	return primitive.NewObjectID(), nil
}

type mockMailer struct {
	messages []mail.Message
	err      error
}

func (m *mockMailer) Send(msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}
