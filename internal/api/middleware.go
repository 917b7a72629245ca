package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vitalfit/wellness-app/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// Constants for context keys
const (
	ContextUserIDKey = "userID"
)

// SessionMiddleware validates the session token issued by the auth backend
// and requires one to be present. The user's identity is the token's
// subject claim.
func SessionMiddleware(jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromHeader(c, jwtCfg)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalSessionMiddleware resolves the session identity when a token is
// present but lets unauthenticated requests through. Handlers behind it see
// an empty user ID for anonymous visitors.
func OptionalSessionMiddleware(jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		userID, err := userIDFromHeader(c, jwtCfg)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func userIDFromHeader(c *gin.Context, jwtCfg config.JWTConfig) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header is missing")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("Authorization header format must be Bearer {token}")
	}
	tokenString := parts[1]

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtCfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.New("Session has expired")
		}
		return "", fmt.Errorf("Invalid session token: %v", err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", errors.New("Invalid session token or missing subject")
	}

	// Sanity bound: a token claiming more remaining lifetime than the
	// configured expiration was not minted by our auth backend.
	if jwtCfg.Expiration > 0 && claims.ExpiresAt != nil &&
		time.Until(claims.ExpiresAt.Time) > jwtCfg.Expiration {
		return "", errors.New("Session token lifetime exceeds the accepted bound")
	}

	return claims.Subject, nil
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// getUserIDFromContext returns the resolved session identity, or an error
// when the request carried none. Handlers behind SessionMiddleware can rely
// on it being set.
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

// optionalUserID is getUserIDFromContext for handlers behind the optional
// middleware: anonymous requests yield "".
func optionalUserID(c *gin.Context) string {
	id, err := getUserIDFromContext(c)
	if err != nil {
		return ""
	}
	return id
}
