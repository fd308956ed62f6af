package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid access token")

const (
	// clockSkew tolerated between this service and the auth service.
	clockSkew = 30 * time.Second
	// anonRole marks the project's public anon key, which is a valid JWT
	// but carries no user.
	anonRole = "anon"
)

// JWTManager verifies HS256 access tokens issued by the backend auth
// service. It can also mint compatible tokens for local development and tests.
type JWTManager struct {
	secret    []byte
	audience  string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret, audience string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		audience:  audience,
		accessTTL: accessTTL,
	}
}

// accessClaims mirrors the claims the auth service puts in its access tokens.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for the identity.
func (m *JWTManager) GenerateAccessToken(id domain.Identity) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID.String(),
			Audience:  jwt.ClaimStrings{m.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: id.Email,
		Role:  "authenticated",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates an access token and returns the
// identity it asserts. All failures wrap ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithAudience(m.audience), jwt.WithExpirationRequired(), jwt.WithLeeway(clockSkew),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	if claims.Role == anonRole {
		return domain.Identity{}, fmt.Errorf("%w: anonymous key is not a session", ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: invalid subject: %v", ErrInvalidToken, err)
	}

	return domain.Identity{ID: userID, Email: claims.Email}, nil
}
