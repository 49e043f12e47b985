package services

import (
	"errors"
	"fmt"
	"time"

	"ticket-commerce-platform/internal/models"
	"ticket-commerce-platform/internal/utils"

	"github.com/golang-jwt/jwt"
)

// tokenTTL is how long an issued token stays valid
const tokenTTL = 7 * 24 * time.Hour

// AuthService handles registration and token-based authentication. Issued
// tokens are persisted per user so logout actually revokes them; a token that
// verifies but is no longer stored is rejected.
type AuthService struct {
	userRepo  UserRepository
	jwtSecret []byte
}

// UserRepository interface for user account data operations
type UserRepository interface {
	Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetByAccount(account string) (*models.User, error)
	AddToken(userID int, token string) error
	RemoveToken(userID int, token string) error
	ReplaceToken(userID int, oldToken, newToken string) error
	HasToken(userID int, token string) (bool, error)
}

// AuthClaims are the JWT claims carried by issued tokens
type AuthClaims struct {
	UserID int `json:"user_id"`
	jwt.StandardClaims
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a new user account. A duplicate account or email surfaces
// as models.ErrDuplicateEntry.
func (s *AuthService) Register(req *models.UserCreateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.Create(req, passwordHash)
}

// Login verifies credentials and issues a fresh token, storing it so it can
// be revoked later.
func (s *AuthService) Login(account, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByAccount(account)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, "", models.ErrUnauthorized
		}
		return nil, "", err
	}

	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, "", models.ErrUnauthorized
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	if err := s.userRepo.AddToken(user.ID, token); err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout revokes the given token
func (s *AuthService) Logout(userID int, token string) error {
	return s.userRepo.RemoveToken(userID, token)
}

// Extend swaps the presented token for a fresh one with a full lifetime
func (s *AuthService) Extend(userID int, token string) (string, error) {
	newToken, err := s.issueToken(userID)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.ReplaceToken(userID, token, newToken); err != nil {
		return "", err
	}

	return newToken, nil
}

// ValidateToken checks a presented token's signature, expiry and presence in
// the token store, and returns the authenticated user.
func (s *AuthService) ValidateToken(tokenString string) (*models.User, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, models.ErrUnauthorized
	}

	stored, err := s.userRepo.HasToken(claims.UserID, tokenString)
	if err != nil {
		return nil, err
	}
	if !stored {
		return nil, models.ErrUnauthorized
	}

	return s.userRepo.GetByID(claims.UserID)
}

// issueToken signs a new JWT for the user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
