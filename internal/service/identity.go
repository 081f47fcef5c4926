package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"donatehub/internal/domain"
	"donatehub/internal/security"
)

// PasswordHasher is the credential hashing contract the identity service needs.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// TokenIssuer signs bearer tokens for authenticated identities.
type TokenIssuer interface {
	Issue(id security.Identity) (string, error)
}

// RegistrationInput carries the fields of a new account.
type RegistrationInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.UserRole
}

// IdentityService handles registration, login and profile lookups.
type IdentityService struct {
	users  domain.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewIdentityService(users domain.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *IdentityService {
	return &IdentityService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates the account and returns it with a signed token.
func (s *IdentityService) Register(ctx context.Context, input RegistrationInput) (*domain.User, string, error) {
	if err := domain.ValidateRegistration(input.Name, input.Email, input.Password, input.Role).OrNil(); err != nil {
		return nil, "", err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", domain.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and returns the account with a signed
// token. Unknown email and wrong password produce the same error.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthenticated
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrUnauthenticated
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile returns the account for the given id.
func (s *IdentityService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *IdentityService) issueToken(user *domain.User) (string, error) {
	token, err := s.tokens.Issue(security.Identity{
		UserID: user.ID,
		Role:   string(user.Role),
		Email:  user.Email,
	})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
