package handler

import (
	"context"
	"time"

	"github.com/adworks/marketing-backend/internal/config"
	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"
	"github.com/adworks/marketing-backend/internal/service"
	"github.com/adworks/marketing-backend/pkg/mail"
	"github.com/adworks/marketing-backend/pkg/token"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler tests run the real services over in-memory repositories and a
// mock mailer, exercising the full request path below the router.

const testSecret = "handler-test-secret"

type fakeContentRepo struct {
	kind  model.ContentKind
	items map[primitive.ObjectID]*model.ContentItem
	order []primitive.ObjectID
	err   error
}

func newFakeContentRepo(kind model.ContentKind) *fakeContentRepo {
	return &fakeContentRepo{kind: kind, items: map[primitive.ObjectID]*model.ContentItem{}}
}

func (r *fakeContentRepo) Kind() model.ContentKind { return r.kind }

func (r *fakeContentRepo) Create(_ context.Context, item *model.ContentItem) (*model.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	item.ID = primitive.NewObjectID()
	item.Date = time.Now()
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return item, nil
}

func (r *fakeContentRepo) List(_ context.Context) ([]*model.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*model.ContentItem{}
	for _, id := range r.order {
		if it, ok := r.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	it, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return it, nil
}

func (r *fakeContentRepo) Update(_ context.Context, id primitive.ObjectID, upd model.ContentUpdate) (*model.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	it, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	it.Title = upd.Title
	it.Content = upd.Content
	it.Author = upd.Author
	it.ImagePath = upd.ImagePath
	return it, nil
}

func (r *fakeContentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeContactRepo struct {
	entries []*model.ContactEntry
	err     error
}

func (r *fakeContactRepo) Create(_ context.Context, entry *model.ContactEntry) (*model.ContactEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	entry.ID = primitive.NewObjectID()
	entry.Date = time.Now()
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *fakeContactRepo) List(_ context.Context) ([]*model.ContactEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]*model.ContactEntry{}, r.entries...), nil
}

type fakeUserRepo struct {
	users []*model.User
	err   error
}

func (r *fakeUserRepo) EnsureIndexes(_ context.Context) error { return nil }

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
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

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
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

type fakeEmailRepo struct {
	sent []string
	err  error
}

func (r *fakeEmailRepo) Create(_ context.Context, email string) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	r.sent = append(r.sent, email)
	return primitive.NewObjectID(), nil
}

type fakeMailer struct {
	messages []mail.Message
	err      error
}

func (m *fakeMailer) Send(msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func testMailConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mail.From = "noreply@agency.test"
	cfg.Mail.NotifyTo = "owner@agency.test"
	return cfg
}

func testIssuer() *token.Issuer {
	return token.NewIssuer(testSecret, time.Hour)
}

func newContentFixture() (*service.ContentService, map[model.ContentKind]*fakeContentRepo) {
	fakes := map[model.ContentKind]*fakeContentRepo{}
	repos := map[model.ContentKind]repository.IContentRepository{}
	for _, kind := range model.Kinds {
		f := newFakeContentRepo(kind)
		fakes[kind] = f
		repos[kind] = f
	}
	return service.NewContentService(repos), fakes
}
