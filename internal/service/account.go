package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/minishop/minishop-go/internal/crypto"
	"github.com/minishop/minishop-go/internal/model"
	"github.com/minishop/minishop-go/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 8
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// userStore is the subset of the user repository the account service uses.
type userStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

// AccountService handles registration and authentication business logic.
type AccountService struct {
	users userStore
}

// NewAccountService creates a new AccountService.
func NewAccountService(users userStore) *AccountService {
	return &AccountService{users: users}
}

// Register validates the registration form, hashes the password and persists
// the user. All field checks run before any write; failures come back as a
// *ValidationError and leave the store untouched. The existence checks give
// friendly field errors, but the UNIQUE constraints are the authority: a
// duplicate that slips past them maps back to the same field errors.
func (s *AccountService) Register(ctx context.Context, form model.RegisterForm) (*model.User, error) {
	var verr ValidationError

	username := strings.TrimSpace(form.Username)
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		verr.add("username", "username must be between 3 and 30 characters")
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))
	if !emailPattern.MatchString(email) {
		verr.add("email", "email address is not valid")
	}

	if len(form.Password) < passwordMinLen {
		verr.add("password", "password must be at least 8 characters")
	}
	if form.ConfirmPassword != form.Password {
		verr.add("confirm_password", "passwords do not match")
	}

	if verr.Fields["username"] == "" {
		taken, err := s.users.UsernameTaken(ctx, username)
		if err != nil {
			return nil, err
		}
		if taken {
			verr.add("username", "username is already taken")
		}
	}
	if verr.Fields["email"] == "" {
		taken, err := s.users.EmailTaken(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			verr.add("email", "email is already registered")
		}
	}

	if err := verr.errOrNil(); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			verr.add("username", "username is already taken")
			return nil, &verr
		case errors.Is(err, repository.ErrDuplicateEmail):
			verr.add("email", "email is already registered")
			return nil, &verr
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a user by email and password. A missing user and a
// wrong password both return ErrInvalidCredentials so the caller cannot
// distinguish the two.
func (s *AccountService) Login(ctx context.Context, form model.LoginForm) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(form.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := crypto.VerifyPassword(form.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AccountService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}
