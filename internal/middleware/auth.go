package middleware

import (
	"strings"

	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid session token on the request. Reset tokens
// are rejected: they can only be spent on the password-reset endpoint.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil || claims.TokenType != util.TokenTypeSession {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
