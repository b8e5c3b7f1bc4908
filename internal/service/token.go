package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"assetz/internal/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	IsCompanyAdmin bool   `json:"is_company_admin"`
	IsApprover     bool   `json:"is_approver"`
	IsCustodian    bool   `json:"is_asset_custodian"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies access tokens with an HMAC secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenIssuer{secret: []byte(cfg.SecretKey), ttl: ttl}
}

func (t *TokenIssuer) Issue(userID, username string, isAdmin, isApprover, isCustodian bool) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.ttl)
	claims := &Claims{
		UserID:         userID,
		Username:       username,
		IsCompanyAdmin: isAdmin,
		IsApprover:     isApprover,
		IsCustodian:    isCustodian,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
