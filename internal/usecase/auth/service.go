package auth

import (
	"context"
	"errors"
	"strings"

	domuser "example.com/supplement-store/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type Claims struct {
	UserID  string
	Email   string
	IsAdmin bool
}

type TokenService interface {
	GenerateToken(u *domuser.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	userRepo domuser.Repository
	hasher   PasswordHasher
	tokens   TokenService
}

func NewService(
	userRepo domuser.Repository,
	hasher PasswordHasher,
	tokens TokenService,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *domuser.User
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if username == "" || email == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	existing, err := s.userRepo.GetByEmailOrUsername(ctx, email, username)
	if err == nil {
		if existing.Email == email {
			return nil, domuser.ErrEmailTaken
		}
		return nil, domuser.ErrUsernameTaken
	}
	if !errors.Is(err, domuser.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.Create(ctx, &domuser.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (*domuser.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Username string
	Email    string
	Profile  domuser.Profile
}

// UpdateProfile merges the given fields into the stored user. Empty
// username/email keep the current value; a change is rejected when the
// new value already belongs to another account.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domuser.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if username == "" {
		username = u.Username
	}
	if email == "" {
		email = u.Email
	}

	if username != u.Username || email != u.Email {
		taken, err := s.userRepo.GetTakenBy(ctx, u.ID.Hex(), email, username)
		if err == nil {
			if taken.Email == email {
				return nil, domuser.ErrEmailTaken
			}
			return nil, domuser.ErrUsernameTaken
		}
		if !errors.Is(err, domuser.ErrUserNotFound) {
			return nil, err
		}
	}

	u.Username = username
	u.Email = email
	mergeProfile(&u.Profile, in.Profile)

	return s.userRepo.Update(ctx, u)
}

func mergeProfile(dst *domuser.Profile, src domuser.Profile) {
	if src.Phone != "" {
		dst.Phone = src.Phone
	}
	if src.Address != "" {
		dst.Address = src.Address
	}
	if src.City != "" {
		dst.City = src.City
	}
	if src.PostalCode != "" {
		dst.PostalCode = src.PostalCode
	}
}
