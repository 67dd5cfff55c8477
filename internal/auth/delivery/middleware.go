package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawdesk-backend/internal/auth/usecase"
)

// AuthMiddleware authenticates the request from the session cookie and puts
// the user ID on the context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			c.Abort()
			return
		}

		userID, err := authUsecase.VerifySession(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
