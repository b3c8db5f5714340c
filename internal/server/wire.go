package server

import (
	"github.com/adworks/marketing-backend/internal/config"
	"github.com/adworks/marketing-backend/internal/handler"
	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"
	"github.com/adworks/marketing-backend/internal/service"
	"github.com/adworks/marketing-backend/pkg/mail"
	"github.com/adworks/marketing-backend/pkg/token"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles the persistence layer.
type Repositories struct {
	Content map[model.ContentKind]repository.IContentRepository
	Contact repository.IContactRepository
	User    repository.IUserRepository
	Email   repository.IEmailRecordRepository
}

// Services bundles the business layer.
type Services struct {
	Content  *service.ContentService
	Contact  *service.ContactService
	User     *service.UserService
	Notifier *service.NotificationService
}

// Handlers bundles the HTTP layer.
type Handlers struct {
	Content *handler.ContentHandler
	Contact *handler.ContactHandler
	Auth    *handler.AuthHandler
	Notify  *handler.NotifyHandler
}

// InitRepositories builds all repositories over the database.
func InitRepositories(db *mongo.Database) *Repositories {
	content := make(map[model.ContentKind]repository.IContentRepository, len(model.Kinds))
	for _, kind := range model.Kinds {
		content[kind] = repository.NewContentRepository(kind, db)
	}
	return &Repositories{
		Content: content,
		Contact: repository.NewContactRepository(db),
		User:    repository.NewUserRepository(db),
		Email:   repository.NewEmailRecordRepository(db),
	}
}

// InitServices builds all services over the repositories.
func InitServices(cfg *config.Config, repos *Repositories, mailer mail.Mailer) *Services {
	tokens := token.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	notifier := service.NewNotificationService(cfg, mailer, repos.Email)
	return &Services{
		Content:  service.NewContentService(repos.Content),
		Contact:  service.NewContactService(repos.Contact, notifier),
		User:     service.NewUserService(repos.User, tokens),
		Notifier: notifier,
	}
}

// InitHandlers builds all handlers over the services.
func InitHandlers(services *Services, log zerolog.Logger) *Handlers {
	return &Handlers{
		Content: handler.NewContentHandler(services.Content, log),
		Contact: handler.NewContactHandler(services.Contact, log),
		Auth:    handler.NewAuthHandler(services.User, log),
		Notify:  handler.NewNotifyHandler(services.Notifier, log),
	}
}
