package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mottasimsadi/food-share-server/internal/auth"
)

// subjectKey is where RequireAuth stores the verified subject in the gin
// context.
const subjectKey = "authSubject"

const bearerPrefix = "Bearer "

// RequireAuth rejects any request without a valid Firebase bearer token.
// A missing or non-Bearer Authorization header fails immediately, without a
// verifier call; a token the provider rejects fails the same way regardless
// of the provider's reason.
func RequireAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
			return
		}

		subject, err := verifier.Verify(c.Request.Context(), strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid token"})
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

// SubjectFrom returns the verified subject RequireAuth stored, or nil when
// the route ran without the auth middleware.
func SubjectFrom(c *gin.Context) *auth.Subject {
	v, ok := c.Get(subjectKey)
	if !ok {
		return nil
	}
	subject, _ := v.(*auth.Subject)
	return subject
}
