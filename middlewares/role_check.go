package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles membatasi route ke daftar role yang diizinkan. Role di luar
// daftar dialihkan ke dashboard utama, tanpa output parsial.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusFound, "/dashboard")
		c.Abort()
	}
}
