// File: controllers/auth.controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"nourshop-backend/models"
	"nourshop-backend/stores"
	"nourshop-backend/token"
)

// Login menangani proses login admin. Username tak dikenal dan password
// salah ditolak dengan status dan pesan berbeda.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := ctrl.Admins.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password"})
		return
	}

	tok, err := token.Issue(ctrl.PasetoSecretKey, admin.ID.Hex(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok})
}

// SeedAdmin membuat admin baru dengan password ter-hash jika username
// belum ada. Bukan endpoint HTTP; dipanggil dari main saat startup.
func SeedAdmin(ctx context.Context, admins stores.AdminStore, username, password string) error {
	if _, err := admins.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, stores.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = admins.Insert(ctx, models.Admin{
		Username: username,
		Password: string(hashed),
	})
	return err
}
