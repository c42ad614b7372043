package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	model "fishmarket/internal/models"
	profile "fishmarket/internal/profileService"
	"fishmarket/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// TokenParser validates a bearer token into claims.
type TokenParser interface {
	ParseToken(tokenString string) (profile.Claims, error)
}

// AuthMiddleware validates the Authorization header and stores the
// caller's profile id and role on the request context.
func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, nil, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("profile_id", claims.ProfileID)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role is not in the
// allowed set. Admin always passes.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := model.Role(c.GetString("role"))
		if role == model.RoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.JSONError(c, http.StatusForbidden, nil, "operation not permitted for role "+string(role))
		utils.Warn("role check failed", map[string]any{
			"profile_id": c.GetString("profile_id"),
			"role":       role,
			"path":       c.Request.URL.Path,
		})
		c.Abort()
	}
}

// RequireBuyer allows suppliers, hotels and markets.
func RequireBuyer() gin.HandlerFunc {
	return RequireRole(model.RoleSupplier, model.RoleHotel, model.RoleMarket)
}
