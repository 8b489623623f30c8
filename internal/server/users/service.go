package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmaslov/passport/internal/common"
	"github.com/dmaslov/passport/internal/server/auth"
	"github.com/dmaslov/passport/internal/server/config"
)

// Token is the result of a successful login: a signed bearer token with its
// validity window. The service does not persist or revoke issued tokens.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// Hasher is the credential-hashing contract the workflow depends on.
// *password.Hasher satisfies it.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

// Service orchestrates signup and login over the credential store, the
// password hasher and the token issuer. It holds no mutable state and is
// safe for concurrent use; the only shared resource is the store, which
// enforces email uniqueness on its own write path.
type Service struct {
	repo          Repository
	hasher        Hasher
	jwtSecret     []byte
	tokenValidity time.Duration

	// dummyHash is verified against when the email is unknown, so an
	// unknown-email login costs the same bcrypt work as a wrong password.
	dummyHash string
}

func NewService(repo Repository, hasher Hasher, cfg *config.Config) (*Service, error) {
	dummyHash, err := hasher.Hash("passport-dummy-credential")
	if err != nil {
		return nil, fmt.Errorf("computing dummy hash: %w", err)
	}

	return &Service{
		repo:          repo,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		dummyHash:     dummyHash,
	}, nil
}

// Register creates a new account. Missing fields yield
// common.ErrorValidation before any store call; a taken email yields
// common.ErrorAlreadyExists. The returned user carries identity fields
// only, never the password digest.
func (s *Service) Register(ctx context.Context, email, plaintext, name string) (*User, error) {

	if email == "" || plaintext == "" || name == "" {
		return nil, common.ErrorValidation
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}

	user, err := s.repo.Create(ctx, &User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}

	return &User{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password collapse into the same common.ErrorInvalidCredentials:
// the unknown-email path still performs a full bcrypt comparison against a
// dummy digest so the two cases are indistinguishable from outside.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*Token, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(plaintext, s.dummyHash)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}

	ok, err := s.hasher.Verify(plaintext, user.PasswordHash)
	if err != nil {
		// Malformed stored digest: data corruption, not a bad password.
		return nil, err
	}
	if !ok {
		return nil, common.ErrorInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorPersistence, err)
	}

	return &Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenValidity.Seconds()),
	}, nil
}
