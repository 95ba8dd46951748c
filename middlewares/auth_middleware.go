package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ardhiansyah/resto-pos/utils"
)

// AuthMiddleware memvalidasi token Bearer dan menaruh identitas user
// (id, role, nama, email) ke context request. Handler membaca identitas
// dari sini, bukan dari state sesi global.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token tidak ditemukan"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(token, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token tidak valid"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("name", claims.Name)
		c.Set("email", claims.Email)
		c.Next()
	}
}
