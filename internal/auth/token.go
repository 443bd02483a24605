// Package auth implements the credential and token codecs: bcrypt password
// hashing with an application-wide extra salt, and HS256 JWTs carrying the
// user id and email.
package auth

import (
	"time"

	"github.com/dobleb/todo-backend/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the fixed lifetime of an issued token.
const TokenValidity = 7 * 24 * time.Hour

// Claims carries the registered claims plus the user's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Identity is the verified content of a token.
type Identity struct {
	UserID string
	Email  string
}

// IssueToken signs a token with sub=userID, the email claim, iat=now and
// exp=now+TokenValidity.
func IssueToken(userID, email string, secretKey []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken parses and verifies signature and expiry. Any failure —
// malformed token, bad signature, expiry, missing sub or email — comes back
// as common.ErrInvalidToken; callers do not need to distinguish.
func VerifyToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
