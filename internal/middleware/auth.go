package middleware

import (
	"log"
	"net/http"

	"github.com/dhruvkp2310/resume-pilot/internal/token"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "auth.userID"
	ctxRole   = "auth.role"
)

// authenticate verifies the x-auth-token header and stores the decoded
// identity in the request context. It never calls Next; the caller decides
// whether the chain continues. Returns false after aborting on failure.
func authenticate(c *gin.Context, secret string) bool {
	tok := c.GetHeader("x-auth-token")
	if tok == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return false
	}
	if secret == "" {
		log.Println("JWT_SECRET is not defined in environment variables")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "Server configuration error"})
		return false
	}
	claims, err := token.Parse(secret, tok)
	if err != nil {
		log.Println("Token verification error:", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return false
	}
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxRole, claims.Role)
	return true
}

// RequireAuth guards routes that need any authenticated user. The header
// name matches what the client already sends; this is not a cookie session.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequireAuth plus a role check. The role is verified
// before the chain continues so a non-admin never reaches the handler.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			return
		}
		if RoleFromContext(c) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "Access denied. Admin privileges required."})
			return
		}
		c.Next()
	}
}

func UserIDFromContext(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func RoleFromContext(c *gin.Context) string {
	if v, ok := c.Get(ctxRole); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
