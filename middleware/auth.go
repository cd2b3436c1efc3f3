package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"nourshop-backend/token"
)

// AdminIDKey adalah key context untuk ID admin hasil verifikasi token.
const AdminIDKey = "adminID"

// RequireAdmin menolak request tanpa bearer token yang valid.
// Header absen ditolak sebelum menyentuh store; token rusak atau
// kedaluwarsa ditolak dengan pesan berbeda.
func RequireAdmin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied"})
			return
		}

		adminID, err := token.Verify(secret, strings.TrimPrefix(header, "Bearer "), time.Now())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Next()
	}
}
