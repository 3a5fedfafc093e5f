package auth

import (
	"net/http"
	"strings"

	"github.com/firstshift/jobboard/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userContextKey = "auth.user"

// Middleware attaches the authenticated user to the request context.
// It loads the user row so role checks always see the current role,
// not the one baked into an old token.
type Middleware struct {
	tokens *TokenManager
	db     *gorm.DB
}

func NewMiddleware(tokens *TokenManager, db *gorm.DB) *Middleware {
	return &Middleware{tokens: tokens, db: db}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := m.tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		var user models.User
		if err := m.db.WithContext(c.Request.Context()).First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole rejects authenticated users whose role does not match.
// Must run after RequireAuth.
func (m *Middleware) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
