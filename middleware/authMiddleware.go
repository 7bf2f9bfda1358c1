package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	helper "github.com/abanoubkerols/SpotifyApi/helpers"
)

// Authentication guards routes that require a logged-in user.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "No token found in the header",
				"status":  "error",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid Authorization format",
				"status":  "error",
			})
			return
		}

		claims, err := helper.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Not authorized, token failed",
				"status":  "error",
			})
			return
		}

		c.Set("user_id", claims.Uid)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuthentication is for public routes that behave differently when a
// user happens to be logged in (private playlist reads, play history).
func OptionalAuthentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := helper.ValidateToken(parts[1]); err == nil {
				c.Set("user_id", claims.Uid)
				c.Set("is_admin", claims.IsAdmin)
			}
		}
		c.Next()
	}
}

// AdminOnly requires the global admin flag on top of Authentication.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Not authorized as an admin",
				"status":  "error",
			})
			return
		}
		c.Next()
	}
}
