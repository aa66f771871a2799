package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/domain/repository"
	pkgAuth "github.com/logistservice/logist/internal/pkg/auth"
)

// AuthUseCase handles credential checks, token management and account
// administration.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Authenticate validates credentials and returns auth token. Disabled
// accounts are rejected the same way as wrong credentials.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !usr.Active {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// CreateUser registers a back-office account with a hashed password.
func (u *AuthUseCase) CreateUser(ctx context.Context, user *model.User, password string) (*model.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	return u.users.Create(ctx, user)
}

// UpdateUser overwrites account fields; a non-empty password is re-hashed,
// an empty one keeps the stored hash.
func (u *AuthUseCase) UpdateUser(ctx context.Context, user *model.User, password string) error {
	current, err := u.users.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}

	if password != "" {
		hash, err := u.hasher.Hash(password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	} else {
		user.PasswordHash = current.PasswordHash
	}

	return u.users.Update(ctx, user)
}
