package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fasalmbt/complainto/domain"
)

// JWTServiceImpl implements domain.TokenService with HS256-signed,
// self-contained session tokens. Nothing is persisted; a token is valid
// iff its signature checks out and its expiry claim is in the future.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTService creates a new JWT session token service
func NewJWTService(secretKey, issuer string, accessTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// Generate implements domain.TokenService
func (j *JWTServiceImpl) Generate(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": j.issuer,
		"iat": now.Unix(),
		"exp": now.Add(j.accessTTL).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService. Every failure mode (bad
// signature, tampered payload, expiry, missing subject) collapses to
// domain.ErrUnauthorized so callers cannot distinguish them.
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrUnauthorized
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domain.ErrUnauthorized
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	iat, _ := claims["iat"].(float64)

	return &domain.TokenClaims{
		Subject:   sub,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
