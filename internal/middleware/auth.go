package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Joaolrm/quantodeu/internal/auth"
)

const (
	// peopleIDKey is the gin context key for the authenticated person's id.
	peopleIDKey = "people_id"
	// phoneKey is the gin context key for the authenticated phone number.
	phoneKey = "phone_number"
)

// PeopleID extracts the authenticated person's id from the context.
// Returns 0 if not found.
func PeopleID(c *gin.Context) int64 {
	id, _ := c.Get(peopleIDKey)
	peopleID, _ := id.(int64)
	return peopleID
}

// Phone extracts the authenticated phone number from the context.
// Returns empty string if not found.
func Phone(c *gin.Context) string {
	v, _ := c.Get(phoneKey)
	phone, _ := v.(string)
	return phone
}

// RequireAuth validates the Bearer token and stores the session identity on
// the request context. Requests without a valid token are rejected.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		c.Set(peopleIDKey, claims.PeopleID)
		c.Set(phoneKey, claims.PhoneNumber)
		c.Next()
	}
}
