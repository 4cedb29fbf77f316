package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"onemorning/internal/common/clock"
	"onemorning/internal/common/uuid"
)

// defaultTokenTTL matches the session retention in the player repository
const defaultTokenTTL = 24 * time.Hour

// Typed errors
const (
	ErrNilConfig        = AuthError("config cannot be nil")
	ErrMissingSecret    = AuthError("secret cannot be empty")
	ErrNilClock         = AuthError("clock cannot be nil")
	ErrNilUUIDGenerator = AuthError("uuid generator cannot be nil")
	ErrMissingName      = AuthError("player name cannot be empty")
	ErrInvalidToken     = AuthError("invalid token")
)

// AuthError is a typed error
type AuthError string

func (e AuthError) Error() string {
	return string(e)
}

// Claims carried by a guest token
type Claims struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	jwt.RegisteredClaims
}

// Config for the token issuer
type Config struct {
	// Secret signs and verifies tokens, required
	Secret []byte

	// TokenTTL defaults to 24h
	TokenTTL time.Duration

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Issuer mints and verifies guest identities. There is no account system;
// a token is the player's only proof of identity across reconnects.
type Issuer struct {
	secret   []byte
	tokenTTL time.Duration
	clock    clock.Clock
	uuider   uuid.UUID
}

// New creates a new token issuer
func New(cfg *Config) (*Issuer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Secret) == 0 {
		return nil, ErrMissingSecret
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	tokenTTL := cfg.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	return &Issuer{
		secret:   cfg.Secret,
		tokenTTL: tokenTTL,
		clock:    cfg.Clock,
		uuider:   cfg.UUIDGenerator,
	}, nil
}

// IssueGuest mints a fresh player identity and its signed token
func (i *Issuer) IssueGuest(playerName string) (playerID string, token string, err error) {
	if playerName == "" {
		return "", "", ErrMissingName
	}

	playerID = i.uuider.NewUUID()
	now := i.clock.Now()

	claims := &Claims{
		PlayerID:   playerID,
		PlayerName: playerName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.tokenTTL)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", "", err
	}

	return playerID, token, nil
}

// Verify parses a token and returns its claims
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.clock.Now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.PlayerID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
