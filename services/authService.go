package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmuiruri/duka-api/models"
	"github.com/jmuiruri/duka-api/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default cost for bcrypt password hashing
const bcryptCost = 10

// dummyHash is compared against when a login names an email with no
// account, so the unknown-email path costs the same as a real mismatch.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService struct {
	users *repositories.UserRepo
}

func NewAuthService(users *repositories.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account unless the email is already taken. The caller
// establishes the session for the returned user.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	_, err := s.users.ByEmail(ctx, email)
	if err == nil {
		return nil, ErrDuplicateIdentity
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{Email: email, Password: string(hash), Name: name}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Login verifies the password against the stored hash. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
