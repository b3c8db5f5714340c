package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Integration tests against a live MongoDB. Set MONGO_TEST_URI to run,
// e.g. MONGO_TEST_URI=mongodb://localhost:27017 go test ./internal/repository/...

func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	db := client.Database(fmt.Sprintf("marketing_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestContentRepository_CRUD(t *testing.T) {
	db := testDatabase(t)
	repo := repository.NewContentRepository(model.KindBlog, db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.ContentItem{Title: "T", Category: "C", Content: "body"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected a server-assigned id")
	}
	if created.Date.IsZero() {
		t.Error("expected a creation timestamp")
	}

	got, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Title != "T" || got.Category != "C" || got.Content != "body" {
		t.Errorf("retrieved item does not match input: %+v", got)
	}

	// Replace semantics: omitted author/imagePath become empty
	updated, err := repo.Update(ctx, created.ID, model.ContentUpdate{Title: "T2", Content: "body2"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "T2" || updated.Author != "" || updated.ImagePath != "" {
		t.Errorf("replace semantics violated: %+v", updated)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestContentRepository_NotFound(t *testing.T) {
	db := testDatabase(t)
	repo := repository.NewContentRepository(model.KindArticle, db)
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, primitive.NewObjectID()); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByID: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Update(ctx, primitive.NewObjectID(), model.ContentUpdate{}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, primitive.NewObjectID()); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	db := testDatabase(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	user := &model.User{FirstName: "A", LastName: "B", Email: "a@x.com", PasswordHash: "h", Role: "user", Phone: "1"}
	if _, err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	dup := &model.User{FirstName: "C", LastName: "D", Email: "a@x.com", PasswordHash: "h2", Role: "user", Phone: "2"}
	if _, err := repo.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	found, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if found.FirstName != "A" {
		t.Errorf("expected the first user, got %+v", found)
	}
}

func TestContactRepository_InsertionOrder(t *testing.T) {
	db := testDatabase(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &model.ContactEntry{
			Name: name, Email: name + "@x.com", Message: "m", Phone: "1", CompanyName: "co",
		})
		if err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, entries[i].Name)
		}
	}
}

func TestEmailRecordRepository_Append(t *testing.T) {
	db := testDatabase(t)
	repo := repository.NewEmailRecordRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "v@x.com")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id.IsZero() {
		t.Error("expected a non-zero record id")
	}
}
