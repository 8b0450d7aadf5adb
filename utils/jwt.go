package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"

	"roomly/config"
)

// TokenClaims is what the gateway needs from a verified token. Tokens are
// issued by the reservation service; the gateway only verifies and forwards
// them.
type TokenClaims struct {
	UserID int64    `json:"userId"`
	Roles  []string `json:"roles"`
}

// HasRole reports whether the token carries the given role.
func (c TokenClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// ExtractClaims validates a token and pulls out the user ID and roles.
func ExtractClaims(tokenString string) (TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, errors.New("invalid token")
	}

	out := TokenClaims{}
	switch sub := claims["sub"].(type) {
	case float64:
		out.UserID = int64(sub)
	case string:
		if _, err := fmt.Sscan(sub, &out.UserID); err != nil {
			return TokenClaims{}, errors.New("token does not contain a valid 'sub' claim")
		}
	default:
		return TokenClaims{}, errors.New("token does not contain a valid 'sub' claim")
	}

	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, raw := range rawRoles {
			if role, ok := raw.(string); ok {
				out.Roles = append(out.Roles, role)
			}
		}
	}
	return out, nil
}
