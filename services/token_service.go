package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	refreshTokenTTL = 7 * 24 * time.Hour
)

// TokenService signs and validates the access/refresh token pair. Both
// carry a "type" claim so one can never stand in for the other.
type TokenService struct {
	secret    []byte
	method    jwt.SigningMethod
	accessTTL time.Duration
}

func NewTokenService(secret, algorithm string, accessExpireHours int) *TokenService {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &TokenService{
		secret:    []byte(secret),
		method:    method,
		accessTTL: time.Duration(accessExpireHours) * time.Hour,
	}
}

func (s *TokenService) IssueAccessToken(userID uint) (string, error) {
	return s.issue(userID, TokenTypeAccess, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(userID uint) (string, error) {
	return s.issue(userID, TokenTypeRefresh, refreshTokenTTL)
}

func (s *TokenService) issue(userID uint, tokenType string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(s.method, jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"exp":  time.Now().Add(ttl).Unix(),
		"type": tokenType,
	})
	return token.SignedString(s.secret)
}

// Decode validates the signature, expiry and type claim and returns the
// subject user id. Every failure maps to KindUnauthorized.
func (s *TokenService) Decode(tokenString, expectedType string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, E(KindUnauthorized, "Token expired")
		}
		return 0, E(KindUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, E(KindUnauthorized, "Invalid token")
	}
	if tokenType, _ := claims["type"].(string); tokenType != expectedType {
		return 0, E(KindUnauthorized, "Invalid token type")
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, E(KindUnauthorized, "Invalid token")
	}
	return uint(userID), nil
}
