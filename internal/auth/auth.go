package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtIssuer   = "cuotas-api"
	jwtAudience = "cuotas-owner"

	// OwnerSubject is the only principal: the person tracking the shared
	// subscriptions.
	OwnerSubject = "owner"

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrEmptyJWTSecret   = errors.New("jwt secret cannot be empty")
	ErrWrongPasscode    = errors.New("wrong passcode")
)

type JWTClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func HashPasscode(passcode string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func CheckPasscode(hashedPasscode, plainPasscode string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPasscode), []byte(plainPasscode))
	return err == nil
}

func generateToken(tokenType, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptyJWTSecret
	}

	now := time.Now()
	claims := &JWTClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   OwnerSubject,
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateAccessToken(secret string) (string, error) {
	return generateToken(tokenTypeAccess, secret, AccessTokenTTL)
}

func GenerateRefreshToken(secret string) (string, error) {
	return generateToken(tokenTypeRefresh, secret, RefreshTokenTTL)
}

func GenerateTokens(secret string) (accessToken, refreshToken string, err error) {
	accessToken, err = GenerateAccessToken(secret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = GenerateRefreshToken(secret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Login exchanges the owner passcode for a token pair.
func Login(passcodeHash, passcode, secret string) (accessToken, refreshToken string, err error) {
	if !CheckPasscode(passcodeHash, passcode) {
		return "", "", ErrWrongPasscode
	}
	return GenerateTokens(secret)
}

func ValidateToken(tokenString, secret string) (*JWTClaims, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&JWTClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
		jwt.WithIssuer(jwtIssuer),
		jwt.WithAudience(jwtAudience),
		jwt.WithSubject(OwnerSubject),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func RefreshAccessToken(refreshToken, secret string) (string, error) {
	claims, err := ValidateToken(refreshToken, secret)
	if err != nil {
		return "", err
	}

	if claims.TokenType != tokenTypeRefresh {
		return "", ErrInvalidTokenType
	}

	return GenerateAccessToken(secret)
}
