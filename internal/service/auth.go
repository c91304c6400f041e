package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/logger"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

const tokenLifetime = 24 * time.Hour

// TokenClaims are the verified claims of a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
}

// AuthService issues and verifies bearer tokens backed by the accounts
// collection. Signup publishes a user-signed-up event that the profile
// bootstrap reacts to.
type AuthService struct {
	accounts  AccountStore
	bus       events.Bus
	jwtSecret string
}

func NewAuthService(accounts AccountStore, bus events.Bus, jwtSecret string) *AuthService {
	return &AuthService{accounts: accounts, bus: bus, jwtSecret: jwtSecret}
}

// Register creates a new account and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return "", ErrAccountExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.accounts.Insert(ctx, &account); err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	evt, err := events.New(events.UserSignedUp, events.UserSignedUpPayload{
		UserID: account.ID,
		Name:   account.Name,
		Email:  account.Email,
	})
	if err != nil {
		logger.Log.Errorf("failed to build signup event for %s: %v", account.ID, err)
	} else if err := s.bus.Publish(ctx, evt); err != nil {
		logger.Log.Errorf("failed to publish signup event for %s: %v", account.ID, err)
	}

	return s.generateToken(&account)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(account)
}

// ValidateToken verifies a bearer token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, errors.New("token has no subject")
	}
	email, _ := claims["email"].(string)

	return &TokenClaims{UserID: userID, Email: email}, nil
}

func (s *AuthService) generateToken(account *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"user_id": account.ID,
		"email":   account.Email,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
