package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VinayKumar2k24/Skill-Sphere-AI-Tutor/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService covers signup, login, and onboarding.
type AuthService struct {
	store Store
}

func NewAuthService(store Store) *AuthService {
	return &AuthService{store: store}
}

// SignupInput is the validated signup request.
type SignupInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// Signup creates an account with a bcrypt-hashed password.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || len(in.Password) < 6 {
		return domain.User{}, fmt.Errorf("%w: username, email and a password of at least 6 characters are required", domain.ErrInvalidInput)
	}

	if _, err := s.store.UserByUsername(ctx, in.Username); err == nil {
		return domain.User{}, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}
	if _, err := s.store.UserByEmail(ctx, in.Email); err == nil {
		return domain.User{}, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login authenticates by username and password. Unknown usernames and
// wrong passwords both map to ErrInvalidCredentials so the response
// cannot be used for username enumeration.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	user, err := s.store.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Onboard records the learning domains a user selected. The server copy
// is the source of truth; clients must not rely on cached selections.
func (s *AuthService) Onboard(ctx context.Context, userID string, domains []string) ([]string, error) {
	cleaned := make([]string, 0, len(domains))
	for _, d := range domains {
		if d = strings.TrimSpace(d); d != "" {
			cleaned = append(cleaned, d)
		}
	}
	if userID == "" || len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: userId and at least one domain are required", domain.ErrInvalidInput)
	}

	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.store.SetSelectedDomains(ctx, userID, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}
