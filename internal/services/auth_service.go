package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dianapq/Back-Asistente/config"
	"github.com/Dianapq/Back-Asistente/internal/domain/user"
	"github.com/Dianapq/Back-Asistente/internal/repository"
	asistente_errors "github.com/Dianapq/Back-Asistente/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.JWTExpiryDays) * 24 * time.Hour,
	}
}

// Configured reports whether a signing secret is present. Without one the
// service stays up but every register/login fails at call time.
func (s *AuthService) Configured() bool {
	return len(s.jwtSecret) > 0
}

type CredentialsInput struct {
	Username string
	Password string
}

type AuthResponse struct {
	Token string
	User  UserInfo
}

type UserInfo struct {
	ID       string
	Username string
}

type AccessClaims struct {
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, in CredentialsInput) (AuthResponse, error) {
	if err := validateCredentials(in); err != nil {
		return AuthResponse{}, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, in.Username); err == nil {
		return AuthResponse{}, asistente_errors.ErrAlreadyExists
	} else if !errors.Is(err, asistente_errors.ErrNotFound) {
		return AuthResponse{}, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Username:     in.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return AuthResponse{}, err
	}

	token, err := s.IssueToken(newUser.ID)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{Token: token, User: toUserInfo(*newUser)}, nil
}

func (s *AuthService) Login(ctx context.Context, in CredentialsInput) (AuthResponse, error) {
	if err := validateCredentials(in); err != nil {
		return AuthResponse{}, err
	}

	// A missing user and a wrong password must be indistinguishable.
	u, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, asistente_errors.ErrNotFound) {
			return AuthResponse{}, asistente_errors.ErrUnauthorized
		}
		return AuthResponse{}, err
	}

	if err := comparePassword(u.PasswordHash, in.Password); err != nil {
		return AuthResponse{}, asistente_errors.ErrUnauthorized
	}

	token, err := s.IssueToken(u.ID)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{Token: token, User: toUserInfo(u)}, nil
}

func (s *AuthService) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" || !s.Configured() {
		return uuid.Nil, asistente_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, asistente_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, asistente_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, asistente_errors.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, asistente_errors.ErrUnauthorized
	}
	return userID, nil
}

func (s *AuthService) IssueToken(userID uuid.UUID) (string, error) {
	if !s.Configured() {
		return "", asistente_errors.ErrNotConfigured
	}

	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, asistente_errors.ErrInvalidInput),
		errors.Is(err, asistente_errors.ErrAlreadyExists):
		return 400
	case errors.Is(err, asistente_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, asistente_errors.ErrNotFound):
		return 404
	default:
		return 500
	}
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func validateCredentials(in CredentialsInput) error {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return asistente_errors.ErrInvalidInput
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func toUserInfo(u user.User) UserInfo {
	return UserInfo{ID: u.ID.String(), Username: u.Username}
}
