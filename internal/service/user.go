package service

import (
	"context"
	"errors"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"
	"github.com/adworks/marketing-backend/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest carries a registration payload. All fields are required.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// UserService handles registration and login. Passwords are bcrypt-hashed
// at registration and verified with bcrypt's constant-time compare.
type UserService struct {
	repo   repository.IUserRepository
	tokens *token.Issuer
}

func NewUserService(repo repository.IUserRepository, tokens *token.Issuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates the user and issues a session token.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*model.User, string, error) {
	switch {
	case req.FirstName == "":
		return nil, "", missingField("firstName")
	case req.LastName == "":
		return nil, "", missingField("lastName")
	case req.Email == "":
		return nil, "", missingField("email")
	case req.Password == "":
		return nil, "", missingField("password")
	case req.Phone == "":
		return nil, "", missingField("phone")
	case req.Role == "":
		return nil, "", missingField("role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
	}

	stored, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(stored.Email, stored.FullName())
	if err != nil {
		return nil, "", err
	}
	return stored, tok, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password are indistinguishable to the caller; both return
// repository.ErrNotFound.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", repository.ErrNotFound
		}
		return nil, "", err
	}

	tok, err := s.tokens.Issue(user.Email, user.FullName())
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}
