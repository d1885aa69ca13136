package auth

import (
	"fmt"
	"time"

	"resto-live/domain"
	apperrors "resto-live/errors"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier checks signature and expiry against the shared secret
// provisioned in configuration. The broker never issues tokens itself.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) TokenVerifier {
	return TokenVerifier{secret: []byte(secret)}
}

// Verify parses and validates a JWT string and extracts the identity bound
// to the session. Any failure is terminal for the connection attempt.
func (v TokenVerifier) Verify(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", apperrors.ErrAuthentication, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, apperrors.ErrAuthentication
	}
	if claims.UserID == "" || claims.Role == "" {
		return domain.Identity{}, fmt.Errorf("%w: token carries no identity", apperrors.ErrAuthentication)
	}

	return domain.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// GenerateToken creates a signed JWT for a user. Issuance belongs to the
// external credential service; this helper exists for the dev tooling and
// the tests.
func GenerateToken(secret, userID, role string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "resto-live",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
