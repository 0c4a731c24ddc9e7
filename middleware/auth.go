package middleware

import (
	"strings"

	"hoteldesk/errors"
	"hoteldesk/response"
	"hoteldesk/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the bearer token and optionally
// restricts the route to the given roles.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		staffID, staffRole, err := services.GetStaffFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == staffRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("staffID", staffID)
		c.Set("staffRole", staffRole)
		c.Next()
	}
}

// RoleMiddleware restricts an already-authenticated route to roles
func RoleMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffRole, exists := c.Get("staffRole")
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		role := staffRole.(int)
		hasRole := false
		for _, r := range roles {
			if r == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ErrorHandler converts trailing gin errors into envelope responses
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr, ok := err.(*errors.AppError); ok {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
