package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-api/auth"
	"restaurant-api/models"
)

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
	ctxRole     = "role"
)

// extractBearer pulls the token out of an Authorization header. The header
// must be exactly "Bearer <token>", two whitespace-separated parts.
func extractBearer(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("authorization header must be 'Bearer <token>'")
	}
	return parts[1], nil
}

func attachIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUsername, claims.Username)
	c.Set(ctxRole, string(claims.Role))
}

func rejectToken(c *gin.Context, err error) {
	msg := "Invalid token"
	if errors.Is(err, auth.ErrTokenExpired) {
		msg = "Token has expired"
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	c.Abort()
}

// AuthRequired validates the bearer token and injects the identity into the
// request context. Identity lives only for this request.
func AuthRequired(ts *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr, err := extractBearer(header)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		claims, err := ts.Parse(tokenStr)
		if err != nil {
			rejectToken(c, err)
			return
		}
		attachIdentity(c, claims)
		c.Next()
	}
}

// AuthOptional attaches an identity when a bearer token is present but lets
// anonymous requests through. A present-but-invalid token is still rejected.
func AuthOptional(ts *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		tokenStr, err := extractBearer(header)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		claims, err := ts.Parse(tokenStr)
		if err != nil {
			rejectToken(c, err)
			return
		}
		attachIdentity(c, claims)
		c.Next()
	}
}

// RoleRequired enforces that the caller has one of the allowed roles.
// An identity with no role is denied; denial is 403, never 401.
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ctxRole)
		if !exists || roleVal.(string) == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Required role(s): " + rolesString(roles)})
			c.Abort()
			return
		}
		callerRole := models.UserRole(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Required role(s): " + rolesString(roles)})
		c.Abort()
	}
}

func rolesString(roles []models.UserRole) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetUserID extracts the caller's user ID from context (0 when anonymous).
func GetUserID(c *gin.Context) uint {
	if val, ok := c.Get(ctxUserID); ok {
		return val.(uint)
	}
	return 0
}

// GetUsername extracts the caller's username from context.
func GetUsername(c *gin.Context) string {
	if val, ok := c.Get(ctxUsername); ok {
		return val.(string)
	}
	return ""
}

// GetRole extracts the caller's role from context.
func GetRole(c *gin.Context) models.UserRole {
	if val, ok := c.Get(ctxRole); ok {
		return models.UserRole(val.(string))
	}
	return ""
}
